package arena

import (
	"context"

	v1 "github.com/eesast/sast-api/api/arena/v1"
	"github.com/eesast/sast-api/internal/matchqueue"
	apperrors "github.com/eesast/sast-api/pkg/errors"
	"go.uber.org/zap"
)

// Stage 流水线状态，线性推进，任一状态可跳转到 StageFailed
type Stage int

const (
	StageReceived Stage = iota
	StageValidated
	StageRosterResolved
	StageCodeVerified
	StageStaged
	StageRegistered
	StagePromoted
	StageFailed
)

var stageNames = map[Stage]string{
	StageReceived:       "Received",
	StageValidated:      "Validated",
	StageRosterResolved: "RosterResolved",
	StageCodeVerified:   "CodeVerified",
	StageStaged:         "Staged",
	StageRegistered:     "Registered",
	StagePromoted:       "Promoted",
	StageFailed:         "Failed",
}

func (s Stage) String() string { return stageNames[s] }

// saga 已提交步骤的补偿栈，失败时逆序执行
type saga struct {
	comps []func(context.Context)
}

func (s *saga) add(f func(context.Context)) {
	s.comps = append(s.comps, f)
}

// unwind 逆序执行全部补偿动作
// 用独立 context：请求被取消后补偿仍要完成
func (s *saga) unwind() {
	ctx := context.Background()
	for i := len(s.comps) - 1; i >= 0; i-- {
		s.comps[i](ctx)
	}
	s.comps = nil
}

// CreateRoom 执行完整的房间创建流水线
// 六个阶段严格顺序执行，阶段内部按需并发展开；不自动重试，失败需重新发起请求
// ctx 贯穿每个阶段的每次外部调用，请求取消时中止当前阶段并不再进入下一阶段
func (s *Service) CreateRoom(ctx context.Context, userUUID string, req *v1.CreateRoomReq) (roomID string, err error) {
	metrics().RecordRequest()
	stage := StageReceived
	defer func() {
		if err != nil {
			metrics().RecordFailure(apperrors.KindOf(err))
			// stage 记录的是最后完成的阶段
			zap.L().Warn("房间创建失败",
				zap.String("stage", stage.String()),
				zap.String("user_uuid", userUUID),
				zap.Error(err))
		}
	}()

	// 资格校验（无副作用）
	elig, err := s.validate(ctx, userUUID, req)
	if err != nil {
		return "", err
	}

	// 取队伍租约，关闭先查后建的准入竞态；租约被占视同限流
	ok, release, err := s.lease.Acquire(ctx, elig.contestID, elig.teamIDs[0])
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Team lease failed", err)
	}
	if !ok {
		return "", apperrors.New(apperrors.KindRateLimited, "Request arena too frequently")
	}
	defer release()

	// 准入控制：活跃房间数
	if err = s.admit(ctx, elig); err != nil {
		return "", err
	}
	stage = StageValidated

	// 名单解析
	rosters, err := s.resolveRosters(ctx, elig)
	if err != nil {
		return "", err
	}
	stage = StageRosterResolved

	// 代码就绪检查，任何文件系统写入之前完成
	var flatCodes []string
	for _, r := range rosters {
		flatCodes = append(flatCodes, r.PlayerCodes...)
	}
	languages, err := s.checkReadiness(ctx, flatCodes)
	if err != nil {
		return "", err
	}
	stage = StageCodeVerified

	// 以下步骤产生副作用，失败时逆序补偿
	sg := &saga{}
	defer func() {
		if err != nil {
			sg.unwind()
		}
	}()

	// 搭建临时工作目录
	ws, err := s.stageWorkspace(ctx, elig.contestName, codeEntries(rosters, languages))
	if ws != nil {
		sg.add(func(context.Context) { s.discardWorkspace(ws) })
	}
	if err != nil {
		return "", err
	}
	stage = StageStaged

	// 注册房间并晋升目录
	roomID, err = s.registerRoom(ctx, elig, rosters, ws, sg)
	if err != nil {
		return "", err
	}
	stage = StageRegistered

	// 晋升完成，目录已在最终路径上，补偿栈不再回滚
	sg.comps = nil
	stage = StagePromoted
	metrics().RecordRoomCreated()

	// 入队交给下游执行器；队列满即拒绝
	// 房间已持久化，这里失败不回滚已发布的目录
	job := matchqueue.Job{
		ContestID: elig.contestID,
		RoomID:    roomID,
		TeamIDs:   elig.teamIDs,
		MapID:     elig.mapID,
		Exposed:   elig.exposed,
	}
	if err = s.queue.TryPush(job); err != nil {
		metrics().RecordEnqueueRejected()
		zap.L().Error("对战任务入队失败",
			zap.String("room_id", roomID),
			zap.Error(err))
		return "", apperrors.Wrap(apperrors.KindInternal, "Match enqueue failed", err)
	}
	zap.L().Info("房间创建完成",
		zap.String("room_id", roomID),
		zap.Strings("team_ids", elig.teamIDs))
	return roomID, nil
}
