package arena

import (
	"context"

	"github.com/eesast/sast-api/internal/model"
	apperrors "github.com/eesast/sast-api/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// playerKey 展平后一个参战位的定位信息
type playerKey struct {
	TeamID      string
	TeamLabel   string
	PlayerLabel string
}

// resolveRosters 解析全部队伍的参战名单
// 先并发取各队参战位列表，展平后并发批量取角色与代码分配，再按队分组还原
func (s *Service) resolveRosters(ctx context.Context, elig *eligibleRequest) ([]model.TeamRoster, error) {
	rosters := make([]model.TeamRoster, len(elig.teamIDs))

	// 并发取各队伍标签下的参战位列表
	g, gctx := errgroup.WithContext(ctx)
	for i := range elig.teamIDs {
		g.Go(func() error {
			labels, err := s.roster.PlayerLabels(gctx, elig.contestID, elig.teamLabels[i])
			if err != nil {
				return apperrors.Wrap(apperrors.KindInternal, "Player labels lookup failed", err)
			}
			if len(labels) == 0 {
				return apperrors.New(apperrors.KindNotFound, "Player labels not found")
			}
			rosters[i] = model.TeamRoster{
				TeamID:       elig.teamIDs[i],
				Label:        elig.teamLabels[i],
				PlayerLabels: labels,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 展平为单个数组，记录各队人数用于还原分组
	flat, sizes := flattenRosters(rosters)

	// 并发批量取每个参战位的角色与代码分配
	flatRoles := make([]string, len(flat))
	flatCodes := make([]string, len(flat))
	g, gctx = errgroup.WithContext(ctx)
	for i, key := range flat {
		g.Go(func() error {
			assignment, err := s.roster.PlayerAssignment(gctx, key.TeamID, key.PlayerLabel)
			if err != nil {
				return apperrors.Wrap(apperrors.KindInternal, "Player assignment lookup failed", err)
			}
			if !assignment.Assigned() {
				return apperrors.New(apperrors.KindForbidden, "Team player not assigned")
			}
			flatRoles[i] = assignment.Role
			flatCodes[i] = assignment.CodeID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 按记录的各队人数还原分组，与展平严格互逆
	groupedRoles := regroup(flatRoles, sizes)
	groupedCodes := regroup(flatCodes, sizes)
	for i := range rosters {
		rosters[i].PlayerRoles = groupedRoles[i]
		rosters[i].PlayerCodes = groupedCodes[i]
	}
	return rosters, nil
}

// flattenRosters 将各队参战位展平为单个数组，并记录各队人数
func flattenRosters(rosters []model.TeamRoster) ([]playerKey, []int) {
	sizes := make([]int, len(rosters))
	var flat []playerKey
	for i, r := range rosters {
		sizes[i] = len(r.PlayerLabels)
		for _, label := range r.PlayerLabels {
			flat = append(flat, playerKey{
				TeamID:      r.TeamID,
				TeamLabel:   r.Label,
				PlayerLabel: label,
			})
		}
	}
	return flat, sizes
}

// regroup 按各组长度把展平数组还原为分组，是 flattenRosters 的精确逆运算
// 各组保持原有顺序；长度为 0 的组还原为空切片
func regroup[T any](flat []T, sizes []int) [][]T {
	groups := make([][]T, len(sizes))
	offset := 0
	for i, n := range sizes {
		groups[i] = flat[offset : offset+n : offset+n]
		offset += n
	}
	return groups
}
