package matchqueue

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestQueuePushPop(t *testing.T) {
	q := New(2)

	job := Job{ContestID: "c1", RoomID: "r1", TeamIDs: []string{"t1", "t2"}, MapID: "m1"}
	if err := q.TryPush(job); err != nil {
		t.Fatalf("TryPush failed: %v", err)
	}
	if q.Len() != 1 {
		t.Errorf("Len = %d, want 1", q.Len())
	}

	got, err := q.Pop(context.Background())
	if err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	if got.RoomID != "r1" || got.ContestID != "c1" {
		t.Errorf("job = %+v", got)
	}
}

func TestQueueRejectsWhenFull(t *testing.T) {
	q := New(1)

	if err := q.TryPush(Job{RoomID: "r1"}); err != nil {
		t.Fatalf("TryPush failed: %v", err)
	}
	// 队列满时拒绝而非阻塞
	err := q.TryPush(Job{RoomID: "r2"})
	if !errors.Is(err, ErrQueueFull) {
		t.Errorf("err = %v, want ErrQueueFull", err)
	}
	if q.Len() != 1 {
		t.Errorf("Len = %d, want 1", q.Len())
	}
}

func TestQueuePopRespectsCancellation(t *testing.T) {
	q := New(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := q.Pop(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want DeadlineExceeded", err)
	}
}
