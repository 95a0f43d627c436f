package model

import "time"

// Room 一场对战的房间记录
type Room struct {
	ID        string    `json:"id" gorm:"primaryKey"` // 由 RosterStore 侧分配
	ContestID string    `json:"contest_id" gorm:"index"`
	Status    string    `json:"status"` // Waiting / Running / Finished
	MapID     string    `json:"map_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Room) TableName() string { return "contest_room" }

// RoomTeam 房间内的一支队伍及其参战配置
type RoomTeam struct {
	RoomID      string   `json:"room_id" gorm:"primaryKey"`
	TeamID      string   `json:"team_id" gorm:"primaryKey"`
	TeamLabel   string   `json:"team_label"`
	PlayerRoles []string `json:"player_roles" gorm:"serializer:json"` // 按参战位顺序
	PlayerCodes []string `json:"player_codes" gorm:"serializer:json"` // 按参战位顺序
}

func (RoomTeam) TableName() string { return "contest_room_team" }
