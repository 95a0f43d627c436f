package dao

import (
	"context"
	"errors"
	"time"

	"github.com/eesast/sast-api/internal/constants"
	"github.com/eesast/sast-api/internal/model"
	"github.com/eesast/sast-api/pkg/snowflake"
	"gorm.io/gorm"
)

// RosterDao 比赛名册存储，基于全局 Postgres 连接
type RosterDao struct {
	db *gorm.DB
}

func NewRosterDao() *RosterDao {
	return &RosterDao{db: DB}
}

// ContestIDByName 按名称查比赛 ID，不存在时返回空串
func (d *RosterDao) ContestIDByName(ctx context.Context, name string) (string, error) {
	var contest model.Contest
	err := d.db.WithContext(ctx).Select("id").Where("name = ?", name).Take(&contest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return contest.ID, nil
}

// ContestSettings 查比赛功能开关
func (d *RosterDao) ContestSettings(ctx context.Context, contestID string) (*model.ContestSettings, error) {
	var contest model.Contest
	err := d.db.WithContext(ctx).Select("settings").Where("id = ?", contestID).Take(&contest).Error
	if err != nil {
		return nil, err
	}
	return &contest.Settings, nil
}

// IsManager 用户是否为比赛管理员
func (d *RosterDao) IsManager(ctx context.Context, userUUID, contestID string) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&model.ContestManager{}).
		Where("contest_id = ? AND user_uuid = ?", contestID, userUUID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// TeamByUser 查用户在比赛中所属的队伍 ID（队长或队员），不在任何队伍时返回空串
func (d *RosterDao) TeamByUser(ctx context.Context, userUUID, contestID string) (string, error) {
	var team model.ContestTeam
	err := d.db.WithContext(ctx).
		Where("contest_id = ? AND leader_uuid = ?", contestID, userUUID).
		Take(&team).Error
	if err == nil {
		return team.TeamID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	err = d.db.WithContext(ctx).Model(&model.ContestTeam{}).
		Joins("JOIN contest_team_member ON contest_team_member.team_id = contest_team.team_id").
		Where("contest_team.contest_id = ? AND contest_team_member.user_uuid = ?", contestID, userUUID).
		Take(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return team.TeamID, nil
}

// CountActiveRooms 统计队伍当前的活跃（未结束）房间数
func (d *RosterDao) CountActiveRooms(ctx context.Context, contestID, teamID string) (int, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&model.Room{}).
		Joins("JOIN contest_room_team ON contest_room_team.room_id = contest_room.id").
		Where("contest_room.contest_id = ? AND contest_room_team.team_id = ? AND contest_room.status <> ?",
			contestID, teamID, constants.RoomStatusFinished).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// PlayerLabels 按比赛与队伍标签查参战位列表，保持定义顺序
func (d *RosterDao) PlayerLabels(ctx context.Context, contestID, teamLabel string) ([]string, error) {
	var players []model.ContestPlayer
	err := d.db.WithContext(ctx).
		Where("contest_id = ? AND team_label = ?", contestID, teamLabel).
		Order("player_label").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(players))
	for _, p := range players {
		labels = append(labels, p.PlayerLabel)
	}
	return labels, nil
}

// PlayerAssignment 查某参战位的角色与代码分配，未分配记录时返回 nil
func (d *RosterDao) PlayerAssignment(ctx context.Context, teamID, playerLabel string) (*model.PlayerAssignment, error) {
	var player model.ContestTeamPlayer
	err := d.db.WithContext(ctx).
		Where("team_id = ? AND player_label = ?", teamID, playerLabel).
		Take(&player).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &model.PlayerAssignment{Role: player.Role, CodeID: player.CodeID}, nil
}

// CreateRoom 插入房间记录并返回分配的房间 ID
func (d *RosterDao) CreateRoom(ctx context.Context, contestID, status, mapID string) (string, error) {
	roomID, err := snowflake.NextStringID()
	if err != nil {
		return "", err
	}
	room := &model.Room{
		ID:        roomID,
		ContestID: contestID,
		Status:    status,
		MapID:     mapID,
		CreatedAt: time.Now(),
	}
	if err := d.db.WithContext(ctx).Create(room).Error; err != nil {
		return "", err
	}
	return roomID, nil
}

// InsertRoomTeams 批量插入房间队伍记录，返回受影响行数
func (d *RosterDao) InsertRoomTeams(ctx context.Context, teams []model.RoomTeam) (int64, error) {
	result := d.db.WithContext(ctx).Create(&teams)
	return result.RowsAffected, result.Error
}

// DeleteRoomTeams 删除房间的全部队伍记录（补偿动作）
func (d *RosterDao) DeleteRoomTeams(ctx context.Context, roomID string) error {
	return d.db.WithContext(ctx).Where("room_id = ?", roomID).Delete(&model.RoomTeam{}).Error
}

// DeleteRoom 删除房间记录（补偿动作）
func (d *RosterDao) DeleteRoom(ctx context.Context, roomID string) error {
	return d.db.WithContext(ctx).Where("id = ?", roomID).Delete(&model.Room{}).Error
}
