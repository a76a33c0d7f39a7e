package scanner

import "errors"

// ErrInvalidConcurrency 并发数配置错误
var ErrInvalidConcurrency = errors.New("并发数必须为正整数")

// limiter 有界信号量，限制同时处于连接尝试阶段的探测数量
// 每次扫描调用持有独立实例，并发的扫描之间不共享槽位
type limiter struct {
	slots chan struct{}
}

func newLimiter(concurrency int) (*limiter, error) {
	if concurrency <= 0 {
		return nil, ErrInvalidConcurrency
	}
	return &limiter{slots: make(chan struct{}, concurrency)}, nil
}

// acquire 阻塞直到获得一个槽位
func (l *limiter) acquire() {
	l.slots <- struct{}{}
}

// release 归还槽位
func (l *limiter) release() {
	<-l.slots
}
