package arena

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/eesast/sast-api/internal/matchqueue"
	"github.com/eesast/sast-api/internal/model"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	// 替换全局logger
	zap.ReplaceGlobals(zap.NewNop())
	os.Exit(m.Run())
}

// fakeRoster 内存版名册存储，记录每次调用次数
type fakeRoster struct {
	mu      sync.Mutex
	calls   int
	plCalls int // PlayerLabels 调用次数

	contests     map[string]string                   // 比赛名 → 比赛 ID
	settings     map[string]model.ContestSettings    // 比赛 ID → 开关
	managers     map[string]bool                     // 用户 uuid → 是否管理员
	userTeams    map[string]string                   // 用户 uuid → 队伍 ID
	activeRooms  map[string]int                      // 队伍 ID → 活跃房间数
	playerLabels map[string][]string                 // 队伍标签 → 参战位列表
	assignments  map[string]*model.PlayerAssignment  // "队伍ID/参战位" → 分配

	nextRoomID     string
	createRoomErr  error
	insertAffected *int64 // 非空时覆盖批量插入的返回行数

	createdRooms []model.Room
	roomTeams    []model.RoomTeam
	deletedRooms []string
	deletedTeams []string
}

func newFakeRoster() *fakeRoster {
	return &fakeRoster{
		contests:     map[string]string{},
		settings:     map[string]model.ContestSettings{},
		managers:     map[string]bool{},
		userTeams:    map[string]string{},
		activeRooms:  map[string]int{},
		playerLabels: map[string][]string{},
		assignments:  map[string]*model.PlayerAssignment{},
		nextRoomID:   "10001",
	}
}

func (f *fakeRoster) record() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeRoster) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeRoster) ContestIDByName(_ context.Context, name string) (string, error) {
	f.record()
	return f.contests[name], nil
}

func (f *fakeRoster) ContestSettings(_ context.Context, contestID string) (*model.ContestSettings, error) {
	f.record()
	s := f.settings[contestID]
	return &s, nil
}

func (f *fakeRoster) IsManager(_ context.Context, userUUID, _ string) (bool, error) {
	f.record()
	return f.managers[userUUID], nil
}

func (f *fakeRoster) TeamByUser(_ context.Context, userUUID, _ string) (string, error) {
	f.record()
	return f.userTeams[userUUID], nil
}

func (f *fakeRoster) CountActiveRooms(_ context.Context, _, teamID string) (int, error) {
	f.record()
	return f.activeRooms[teamID], nil
}

func (f *fakeRoster) PlayerLabels(_ context.Context, _, teamLabel string) ([]string, error) {
	f.record()
	f.mu.Lock()
	f.plCalls++
	f.mu.Unlock()
	return f.playerLabels[teamLabel], nil
}

func (f *fakeRoster) playerLabelCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plCalls
}

func (f *fakeRoster) PlayerAssignment(_ context.Context, teamID, playerLabel string) (*model.PlayerAssignment, error) {
	f.record()
	return f.assignments[teamID+"/"+playerLabel], nil
}

func (f *fakeRoster) CreateRoom(_ context.Context, contestID, status, mapID string) (string, error) {
	f.record()
	if f.createRoomErr != nil {
		return "", f.createRoomErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdRooms = append(f.createdRooms, model.Room{
		ID: f.nextRoomID, ContestID: contestID, Status: status, MapID: mapID,
	})
	return f.nextRoomID, nil
}

func (f *fakeRoster) InsertRoomTeams(_ context.Context, teams []model.RoomTeam) (int64, error) {
	f.record()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roomTeams = append(f.roomTeams, teams...)
	if f.insertAffected != nil {
		return *f.insertAffected, nil
	}
	return int64(len(teams)), nil
}

func (f *fakeRoster) DeleteRoomTeams(_ context.Context, roomID string) error {
	f.record()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedTeams = append(f.deletedTeams, roomID)
	return nil
}

func (f *fakeRoster) DeleteRoom(_ context.Context, roomID string) error {
	f.record()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedRooms = append(f.deletedRooms, roomID)
	return nil
}

// fakeCodes 内存版代码存储
type fakeCodes struct {
	mu    sync.Mutex
	calls int
	infos map[string]*model.CodeInfo
}

func newFakeCodes() *fakeCodes {
	return &fakeCodes{infos: map[string]*model.CodeInfo{}}
}

func (f *fakeCodes) CodeInfo(_ context.Context, codeID string) (*model.CodeInfo, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.infos[codeID], nil
}

// fakeStorage 内存版对象存储
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte // 对象键 → 内容
	fetches []string
	failAll bool
	// beforeFetch 在每次下载前执行，用于模拟并发下载竞态
	beforeFetch func(objectName, savePath string)
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) FetchObject(_ context.Context, _, objectName, savePath string) error {
	f.mu.Lock()
	f.fetches = append(f.fetches, objectName)
	beforeFetch := f.beforeFetch
	failAll := f.failAll
	content, ok := f.objects[objectName]
	f.mu.Unlock()

	if beforeFetch != nil {
		beforeFetch(objectName, savePath)
	}
	if failAll {
		return fmt.Errorf("storage unavailable")
	}
	if !ok {
		return fmt.Errorf("object %s not found", objectName)
	}
	if err := os.MkdirAll(filepath.Dir(savePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(savePath, content, 0644)
}

func (f *fakeStorage) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fetches)
}

// fakeLease 内存版队伍租约
type fakeLease struct {
	mu       sync.Mutex
	held     bool // 模拟租约已被并发请求占用
	acquired int
	released int
}

func (f *fakeLease) Acquire(_ context.Context, _, _ string) (bool, func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.held {
		return false, nil, nil
	}
	f.acquired++
	return true, func() {
		f.mu.Lock()
		f.released++
		f.mu.Unlock()
	}, nil
}

// collectJobs 读空队列中的任务
func collectJobs(q *matchqueue.Queue) []matchqueue.Job {
	var jobs []matchqueue.Job
	for q.Len() > 0 {
		job, err := q.Pop(context.Background())
		if err != nil {
			break
		}
		jobs = append(jobs, job)
	}
	return jobs
}
