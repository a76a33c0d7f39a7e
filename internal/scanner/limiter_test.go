package scanner

import (
	"testing"
	"time"
)

func TestNewLimiterRejectsInvalidConcurrency(t *testing.T) {
	if _, err := newLimiter(0); err != ErrInvalidConcurrency {
		t.Errorf("并发数为0时应返回 ErrInvalidConcurrency, 实际得到 %v", err)
	}

	if _, err := newLimiter(-1); err != ErrInvalidConcurrency {
		t.Errorf("并发数为负时应返回 ErrInvalidConcurrency, 实际得到 %v", err)
	}
}

func TestNewLimiterAcceptsPositiveConcurrency(t *testing.T) {
	lim, err := newLimiter(3)
	if err != nil {
		t.Fatalf("创建limiter失败: %v", err)
	}
	if cap(lim.slots) != 3 {
		t.Errorf("期望槽位容量为3, 实际得到 %d", cap(lim.slots))
	}
}

func TestLimiterBlocksWhenFull(t *testing.T) {
	lim, err := newLimiter(2)
	if err != nil {
		t.Fatalf("创建limiter失败: %v", err)
	}

	// 占满全部槽位
	lim.acquire()
	lim.acquire()

	acquired := make(chan struct{})
	go func() {
		lim.acquire()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("槽位已满时 acquire 不应立即返回")
	case <-time.After(50 * time.Millisecond):
	}

	// 释放一个槽位后，阻塞的 acquire 应当完成
	lim.release()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("释放槽位后 acquire 仍未返回")
	}
}
