package constants

import "time"

// 对战相关常量
const (
	// 准入控制：一支队伍同时最多持有的活跃房间数
	MaxActiveRoomsPerTeam = 6

	// 一场对战最少的参战队伍数
	MinTeamsPerRoom = 2

	// 房间状态
	RoomStatusWaiting  = "Waiting"
	RoomStatusRunning  = "Running"
	RoomStatusFinished = "Finished"

	// 编译状态
	CompileStatusSuccess = "Success"
	CompileStatusPending = "Pending"
	CompileStatusFailed  = "Failed"
	CompileStatusNoNeed  = "No Need" // 解释型语言无需编译

	// 支持的代码语言
	LanguageCpp    = "cpp"
	LanguagePython = "py"
)

// 文件系统相关常量
const (
	// 选手代码缓存目录名与对战工作目录名（比赛目录下）
	CodeDirName  = "code"
	ArenaDirName = "arena"

	// 目录与文件权限
	ArenaDirPerm = 0755
	CodeFilePerm = 0644
)

// 租约相关常量
const (
	// 流水线运行期间持有的队伍租约的过期时间
	TeamLeaseTTL = 2 * time.Minute
)

// 执行队列相关常量
const (
	// 默认队列容量
	DefaultMatchQueueSize = 64
)

// 日志相关常量
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	DefaultLogFile = "log/server.log"
)

// HTTP 相关常量
const (
	DefaultServerPort = 28888
)
