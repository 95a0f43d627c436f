package arena

import (
	"context"

	v1 "github.com/eesast/sast-api/api/arena/v1"
	apperrors "github.com/eesast/sast-api/pkg/errors"
)

// eligibleRequest 通过资格校验的请求
type eligibleRequest struct {
	contestID   string
	contestName string
	mapID       string
	teamIDs     []string
	teamLabels  []string
	exposed     int
}

// validate 资格校验，按序短路，全部为只读操作
// 字段检查不发起任何外部调用，之后依次校验比赛、开关、身份、准入
func (s *Service) validate(ctx context.Context, userUUID string, req *v1.CreateRoomReq) (*eligibleRequest, error) {
	// 1. 必填字段与队伍数量
	if req == nil || req.ContestName == "" || req.MapID == "" || userUUID == "" ||
		len(req.TeamLabels) < 2 {
		return nil, apperrors.New(apperrors.KindValidation, "Missing credentials")
	}

	// 2. 标签在请求内唯一
	teamIDs := make([]string, 0, len(req.TeamLabels))
	teamLabels := make([]string, 0, len(req.TeamLabels))
	seen := make(map[string]struct{}, len(req.TeamLabels))
	for _, bind := range req.TeamLabels {
		if bind.TeamID == "" || bind.Label == "" {
			return nil, apperrors.New(apperrors.KindValidation, "Missing credentials")
		}
		if _, ok := seen[bind.Label]; ok {
			return nil, apperrors.New(apperrors.KindValidation, "Duplicate team labels")
		}
		seen[bind.Label] = struct{}{}
		teamIDs = append(teamIDs, bind.TeamID)
		teamLabels = append(teamLabels, bind.Label)
	}

	// 3. 比赛存在
	contestID, err := s.roster.ContestIDByName(ctx, req.ContestName)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Contest lookup failed", err)
	}
	if contestID == "" {
		return nil, apperrors.New(apperrors.KindNotFound, "Contest not found")
	}

	// 4. 天梯开关已打开
	settings, err := s.roster.ContestSettings(ctx, contestID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Contest settings lookup failed", err)
	}
	if settings == nil || !settings.ArenaSwitch {
		return nil, apperrors.New(apperrors.KindForbidden, "Arena is not open")
	}

	// 5. 发起者是管理员，或属于首支参战队伍
	isManager, err := s.roster.IsManager(ctx, userUUID, contestID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Manager lookup failed", err)
	}
	if !isManager {
		userTeamID, err := s.roster.TeamByUser(ctx, userUUID, contestID)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindInternal, "Team lookup failed", err)
		}
		if userTeamID == "" || userTeamID != teamIDs[0] {
			return nil, apperrors.New(apperrors.KindForbidden, "User not in team")
		}
	}

	return &eligibleRequest{
		contestID:   contestID,
		contestName: req.ContestName,
		mapID:       req.MapID,
		teamIDs:     teamIDs,
		teamLabels:  teamLabels,
		exposed:     req.Exposed,
	}, nil
}

// admit 准入控制：活跃房间数限流
// 先查后建的竞态由调用方持有的队伍租约兜底
func (s *Service) admit(ctx context.Context, elig *eligibleRequest) error {
	active, err := s.roster.CountActiveRooms(ctx, elig.contestID, elig.teamIDs[0])
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "Active room count failed", err)
	}
	if active > s.maxActiveRooms {
		return apperrors.New(apperrors.KindRateLimited, "Request arena too frequently")
	}
	return nil
}
