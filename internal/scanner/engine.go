package scanner

import (
	"context"
	"errors"
	"time"

	"HunTianLing/internal/model"
	"HunTianLing/internal/utils"
)

// ErrRuntimeUnavailable 执行上下文不可用（致命错误，不产生任何结果）
var ErrRuntimeUnavailable = errors.New("执行上下文不可用")

// Engine 端口可达性扫描引擎
// 引擎本身不持有任何跨调用状态，执行上下文由调用方注入
type Engine struct {
	dial   DialFunc
	logger *utils.Logger
}

// NewEngine 创建扫描引擎
func NewEngine() *Engine {
	return &Engine{
		dial:   defaultDial,
		logger: utils.NewLogger("scanner"),
	}
}

// Scan 对请求中的每个端口执行一次受限并发的TCP连接探测
// 返回的结果数量恒等于请求端口数（重复端口各占一条），顺序为完成顺序；
// 单个端口的失败永远不会作为错误上抛
func (e *Engine) Scan(ctx context.Context, req model.ScanRequest) ([]model.ProbeResult, error) {
	if ctx == nil || ctx.Err() != nil {
		return nil, ErrRuntimeUnavailable
	}

	lim, err := newLimiter(req.Concurrency)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("开始扫描 %s，端口数 %d，并发 %d，超时 %v",
		req.Host, len(req.Ports), req.Concurrency, req.Timeout)

	results := make(chan model.ProbeResult, len(req.Ports))

	// 每个端口一个任务：取槽 -> 探测 -> 还槽 -> 上报
	for _, port := range req.Ports {
		go func(p uint16) {
			reachable := e.probeWithSlot(ctx, lim, req.Host, p, req.Timeout)
			results <- model.ProbeResult{Port: p, Reachable: reachable}
		}(port)
	}

	// 收集全部结果后一次性返回，不暴露中间状态
	out := make([]model.ProbeResult, 0, len(req.Ports))
	for i := 0; i < len(req.Ports); i++ {
		out = append(out, <-results)
	}

	return out, nil
}

// probeWithSlot 槽位只覆盖连接尝试本身，探测一结束立即释放
func (e *Engine) probeWithSlot(ctx context.Context, lim *limiter, host string, port uint16, timeout time.Duration) bool {
	lim.acquire()
	defer lim.release()
	return e.probe(ctx, host, port, timeout)
}

// Scan 包级入口，使用默认拨号器
func Scan(ctx context.Context, host string, ports []uint16, timeout time.Duration, concurrency int) ([]model.ProbeResult, error) {
	return NewEngine().Scan(ctx, model.ScanRequest{
		Host:        host,
		Ports:       ports,
		Timeout:     timeout,
		Concurrency: concurrency,
	})
}
