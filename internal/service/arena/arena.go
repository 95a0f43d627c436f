package arena

import (
	"context"

	v1 "github.com/eesast/sast-api/api/arena/v1"
	"github.com/eesast/sast-api/internal/cache"
	"github.com/eesast/sast-api/internal/conf"
	"github.com/eesast/sast-api/internal/dao"
	daominio "github.com/eesast/sast-api/internal/dao/minio"
	"github.com/eesast/sast-api/internal/matchqueue"
	"github.com/eesast/sast-api/internal/model"
	"github.com/spf13/viper"
)

// RosterStore 比赛名册存储（比赛、队伍、参战位、房间记录）
type RosterStore interface {
	ContestIDByName(ctx context.Context, name string) (string, error)
	ContestSettings(ctx context.Context, contestID string) (*model.ContestSettings, error)
	IsManager(ctx context.Context, userUUID, contestID string) (bool, error)
	TeamByUser(ctx context.Context, userUUID, contestID string) (string, error)
	CountActiveRooms(ctx context.Context, contestID, teamID string) (int, error)
	PlayerLabels(ctx context.Context, contestID, teamLabel string) ([]string, error)
	PlayerAssignment(ctx context.Context, teamID, playerLabel string) (*model.PlayerAssignment, error)
	CreateRoom(ctx context.Context, contestID, status, mapID string) (string, error)
	InsertRoomTeams(ctx context.Context, teams []model.RoomTeam) (int64, error)
	DeleteRoomTeams(ctx context.Context, roomID string) error
	DeleteRoom(ctx context.Context, roomID string) error
}

// CodeAssetStore 代码存储（编译状态与语言），只读
type CodeAssetStore interface {
	CodeInfo(ctx context.Context, codeID string) (*model.CodeInfo, error)
}

// ArtifactCache 本地代码缓存，缺失时从对象存储取
type ArtifactCache interface {
	EnsurePresent(ctx context.Context, contestName string, entries []cache.Entry) error
	FilePath(contestName string, e cache.Entry) string
}

// TeamLease 队伍开房租约，流水线运行期间独占
type TeamLease interface {
	Acquire(ctx context.Context, contestID, teamID string) (bool, func(), error)
}

// MatchQueue 对战执行队列，晋升完成后入队
type MatchQueue interface {
	TryPush(job matchqueue.Job) error
}

// Service 对战房间创建流水线
type Service struct {
	roster         RosterStore
	codes          CodeAssetStore
	cache          ArtifactCache
	lease          TeamLease
	queue          MatchQueue
	baseDir        string
	maxActiveRooms int
}

// NewService 组装流水线，全部协作方显式注入
func NewService(roster RosterStore, codes CodeAssetStore, artifacts ArtifactCache,
	lease TeamLease, queue MatchQueue, baseDir string, maxActiveRooms int) *Service {
	return &Service{
		roster:         roster,
		codes:          codes,
		cache:          artifacts,
		lease:          lease,
		queue:          queue,
		baseDir:        baseDir,
		maxActiveRooms: maxActiveRooms,
	}
}

var (
	defaultService *Service
	defaultQueue   *matchqueue.Queue
	defaultCache   *cache.CodeCache
)

// MustInit 用全局 dao 客户端组装默认服务实例
// 依赖 dao.MustInitPostgres / MustInitRedis / MustInitMinIO 已完成
func MustInit(cfg *viper.Viper) {
	ac := conf.LoadArenaConfig(cfg)
	defaultQueue = matchqueue.New(ac.QueueSize)
	defaultCache = cache.NewCodeCache(ac.BaseDir, ac.Bucket, daominio.Storage{})
	defaultService = NewService(
		dao.NewRosterDao(),
		dao.NewCodeDao(),
		defaultCache,
		dao.NewLeaseDao(),
		defaultQueue,
		ac.BaseDir,
		ac.MaxActiveRooms,
	)
}

// DefaultQueue 默认执行队列，供下游执行器消费
func DefaultQueue() *matchqueue.Queue {
	return defaultQueue
}

// DefaultCache 默认代码缓存，监控接口读取其统计
func DefaultCache() *cache.CodeCache {
	return defaultCache
}

// CreateRoom 用默认服务实例执行创建流程
func CreateRoom(ctx context.Context, userUUID string, req *v1.CreateRoomReq) (string, error) {
	return defaultService.CreateRoom(ctx, userUUID, req)
}
