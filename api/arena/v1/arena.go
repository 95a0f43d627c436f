package v1

// TeamLabelBind 请求中一支参战队伍与其标签的绑定
type TeamLabelBind struct {
	TeamID string `json:"team_id" binding:"required"`
	Label  string `json:"label" binding:"required"`
}

// CreateRoomReq 创建对战房间请求
type CreateRoomReq struct {
	ContestName string          `json:"contest_name" binding:"required"`
	MapID       string          `json:"map_id" binding:"required"`
	TeamLabels  []TeamLabelBind `json:"team_labels" binding:"required"`
	Exposed     int             `json:"exposed"` // 对战是否公开可观战
}

// CreateRoomResp 创建对战房间响应
type CreateRoomResp struct {
	RoomID string `json:"room_id"`
}
