package model

// ContestTeamPlayer 队伍对某参战位的角色与代码分配
type ContestTeamPlayer struct {
	TeamID      string `json:"team_id" gorm:"primaryKey"`
	PlayerLabel string `json:"player_label" gorm:"primaryKey"`
	Role        string `json:"role"`    // 分配的角色，未分配时为空
	CodeID      string `json:"code_id"` // 绑定的代码 ID，未绑定时为空
}

func (ContestTeamPlayer) TableName() string { return "contest_team_player" }

// PlayerAssignment 某参战位的分配结果（角色 + 代码）
type PlayerAssignment struct {
	Role   string `json:"role"`
	CodeID string `json:"code_id"`
}

// Assigned 角色与代码是否均已分配
func (a *PlayerAssignment) Assigned() bool {
	return a != nil && a.Role != "" && a.CodeID != ""
}
