package matchqueue

import (
	"context"
	"errors"
)

// Job 一场待执行的对战
type Job struct {
	ContestID string   `json:"contest_id"`
	RoomID    string   `json:"room_id"`
	TeamIDs   []string `json:"team_ids"`
	MapID     string   `json:"map_id"`
	Exposed   int      `json:"exposed"` // 是否公开可观战
}

// ErrQueueFull 队列已满，任务被拒绝
var ErrQueueFull = errors.New("match queue is full")

// Queue 有界执行队列
// 生产端满时直接拒绝（不阻塞流水线），消费端阻塞等待
type Queue struct {
	ch chan Job
}

func New(size int) *Queue {
	return &Queue{ch: make(chan Job, size)}
}

// TryPush 入队；队列已满时返回 ErrQueueFull
func (q *Queue) TryPush(job Job) error {
	select {
	case q.ch <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Pop 阻塞出队，供下游执行器消费
func (q *Queue) Pop(ctx context.Context) (Job, error) {
	select {
	case job := <-q.ch:
		return job, nil
	case <-ctx.Done():
		return Job{}, ctx.Err()
	}
}

// Len 当前排队任务数
func (q *Queue) Len() int {
	return len(q.ch)
}

// Cap 队列容量
func (q *Queue) Cap() int {
	return cap(q.ch)
}
