package model

// TeamRoster 一支队伍解析完成的参战名单
// PlayerLabels / PlayerRoles / PlayerCodes 按参战位顺序一一对应
type TeamRoster struct {
	TeamID       string   `json:"team_id"`
	Label        string   `json:"label"`
	PlayerLabels []string `json:"player_labels"`
	PlayerRoles  []string `json:"player_roles"`
	PlayerCodes  []string `json:"player_codes"`
}

// Workspace 一次房间创建的临时工作目录，晋升（重命名为房间 ID）前对外不可见
type Workspace struct {
	TempID string   `json:"temp_id"` // 随机临时目录名
	Path   string   `json:"path"`    // 临时目录绝对路径
	Files  []string `json:"files"`   // 已就位的代码文件名
}
