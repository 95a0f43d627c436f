package model

import "time"

// ContestSettings 比赛功能开关
type ContestSettings struct {
	ArenaSwitch bool `json:"arena_switch"` // 天梯对战是否开放
}

// Contest 比赛
type Contest struct {
	ID        string          `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"uniqueIndex"`
	Settings  ContestSettings `json:"settings" gorm:"serializer:json"`
	CreatedAt time.Time       `json:"created_at"`
}

func (Contest) TableName() string { return "contest" }

// ContestManager 比赛管理员
type ContestManager struct {
	ContestID string `json:"contest_id" gorm:"primaryKey"`
	UserUUID  string `json:"user_uuid" gorm:"primaryKey"`
}

func (ContestManager) TableName() string { return "contest_manager" }

// ContestTeam 参赛队伍
type ContestTeam struct {
	TeamID     string `json:"team_id" gorm:"primaryKey"`
	ContestID  string `json:"contest_id" gorm:"index"`
	LeaderUUID string `json:"leader_uuid"`
}

func (ContestTeam) TableName() string { return "contest_team" }

// ContestTeamMember 队伍成员
type ContestTeamMember struct {
	TeamID   string `json:"team_id" gorm:"primaryKey"`
	UserUUID string `json:"user_uuid" gorm:"primaryKey"`
}

func (ContestTeamMember) TableName() string { return "contest_team_member" }

// ContestPlayer 比赛的参战位定义，按队伍标签划分
type ContestPlayer struct {
	ContestID   string `json:"contest_id" gorm:"primaryKey"`
	TeamLabel   string `json:"team_label" gorm:"primaryKey"`
	PlayerLabel string `json:"player_label" gorm:"primaryKey"`
}

func (ContestPlayer) TableName() string { return "contest_player" }
