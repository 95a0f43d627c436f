package arena

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/eesast/sast-api/internal/model"
)

func TestFlattenRegroupRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
	}{
		{name: "单支队伍", sizes: []int{3}},
		{name: "两支等长队伍", sizes: []int{2, 2}},
		{name: "长度不等的队伍", sizes: []int{1, 4, 2}},
		{name: "包含空队伍", sizes: []int{0, 3, 0, 1}},
		{name: "全部为空", sizes: []int{0, 0}},
		{name: "多支队伍", sizes: []int{5, 1, 0, 2, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 按 sizes 构造名单
			rosters := make([]model.TeamRoster, len(tt.sizes))
			var wantGroups [][]string
			for i, n := range tt.sizes {
				rosters[i].TeamID = fmt.Sprintf("team%d", i)
				rosters[i].Label = fmt.Sprintf("L%d", i)
				group := make([]string, 0, n)
				for j := 0; j < n; j++ {
					label := fmt.Sprintf("p%d-%d", i, j)
					rosters[i].PlayerLabels = append(rosters[i].PlayerLabels, label)
					group = append(group, label)
				}
				wantGroups = append(wantGroups, group)
			}

			flat, sizes := flattenRosters(rosters)
			if !reflect.DeepEqual(sizes, tt.sizes) {
				t.Fatalf("sizes = %v, want %v", sizes, tt.sizes)
			}

			// 还原后必须与展平前完全一致：同序、同内容
			flatLabels := make([]string, len(flat))
			for i, key := range flat {
				flatLabels[i] = key.PlayerLabel
			}
			groups := regroup(flatLabels, sizes)
			if len(groups) != len(wantGroups) {
				t.Fatalf("regroup returned %d groups, want %d", len(groups), len(wantGroups))
			}
			for i := range groups {
				if len(groups[i]) == 0 && len(wantGroups[i]) == 0 {
					continue
				}
				if !reflect.DeepEqual(groups[i], wantGroups[i]) {
					t.Errorf("group %d = %v, want %v", i, groups[i], wantGroups[i])
				}
			}
		})
	}
}

func TestFlattenKeepsTeamOrder(t *testing.T) {
	rosters := []model.TeamRoster{
		{TeamID: "t1", Label: "A", PlayerLabels: []string{"p1", "p2"}},
		{TeamID: "t2", Label: "B", PlayerLabels: []string{"q1"}},
	}
	flat, sizes := flattenRosters(rosters)

	want := []playerKey{
		{TeamID: "t1", TeamLabel: "A", PlayerLabel: "p1"},
		{TeamID: "t1", TeamLabel: "A", PlayerLabel: "p2"},
		{TeamID: "t2", TeamLabel: "B", PlayerLabel: "q1"},
	}
	if !reflect.DeepEqual(flat, want) {
		t.Errorf("flat = %v, want %v", flat, want)
	}
	if !reflect.DeepEqual(sizes, []int{2, 1}) {
		t.Errorf("sizes = %v, want [2 1]", sizes)
	}
}
