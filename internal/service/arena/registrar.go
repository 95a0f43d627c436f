package arena

import (
	"context"
	"os"
	"path/filepath"

	"github.com/eesast/sast-api/internal/constants"
	"github.com/eesast/sast-api/internal/model"
	apperrors "github.com/eesast/sast-api/pkg/errors"
	"go.uber.org/zap"
)

// registerRoom 注册房间并晋升工作目录
// 每个已提交的步骤在 saga 中登记逆操作，后续任一步失败即逆序回滚：
// 房间队伍插入失败会清掉残留的队伍行并删掉刚建的房间，目录改名失败同样全部回滚
// 目录改名是唯一的可见性发布事件：改名之前外界观察不到以房间 ID 命名的目录
func (s *Service) registerRoom(ctx context.Context, elig *eligibleRequest,
	rosters []model.TeamRoster, ws *model.Workspace, sg *saga) (string, error) {

	// 1. 插入房间记录，拿到房间 ID
	roomID, err := s.roster.CreateRoom(ctx, elig.contestID, constants.RoomStatusWaiting, elig.mapID)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Room not created", err)
	}
	sg.add(func(cctx context.Context) {
		if err := s.roster.DeleteRoom(cctx, roomID); err != nil {
			zap.L().Error("回滚房间记录失败", zap.String("room_id", roomID), zap.Error(err))
		}
	})

	// 2. 组装并批量插入房间队伍记录
	teams := make([]model.RoomTeam, len(rosters))
	for i, r := range rosters {
		teams[i] = model.RoomTeam{
			RoomID:      roomID,
			TeamID:      r.TeamID,
			TeamLabel:   r.Label,
			PlayerRoles: r.PlayerRoles,
			PlayerCodes: r.PlayerCodes,
		}
	}
	// 批量插入可能部分成功，补偿须在插入前登记才能清掉残留行
	sg.add(func(cctx context.Context) {
		if err := s.roster.DeleteRoomTeams(cctx, roomID); err != nil {
			zap.L().Error("回滚房间队伍记录失败", zap.String("room_id", roomID), zap.Error(err))
		}
	})
	affected, err := s.roster.InsertRoomTeams(ctx, teams)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Room teams not created", err)
	}
	if affected != int64(len(teams)) {
		// 行数不符说明插入不完整
		return "", apperrors.Newf(apperrors.KindInternal,
			"Room teams not created: affected %d of %d", affected, len(teams))
	}

	// 3. 原子改名晋升工作目录
	finalPath := filepath.Join(s.arenaRoot(elig.contestName), roomID)
	if err := os.Rename(ws.Path, finalPath); err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Workspace promote failed", err)
	}
	zap.L().Info("对战目录晋升完成",
		zap.String("room_id", roomID),
		zap.String("path", finalPath))
	return roomID, nil
}
