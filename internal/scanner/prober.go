package scanner

import (
	"context"
	"net"
	"strconv"
	"time"
)

// DialFunc 连接建立函数，测试时可注入替身
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

func defaultDial(ctx context.Context, network, address string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, network, address)
}

// probe 对单个端口执行一次限时TCP连接尝试
// 握手在截止时间前完成返回true；超时、拒绝、解析失败等一律返回false，
// 不保留任何错误细节
func (e *Engine) probe(ctx context.Context, host string, port uint16, timeout time.Duration) bool {
	address := net.JoinHostPort(host, strconv.Itoa(int(port)))

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := e.dial(dialCtx, "tcp", address)
	if err != nil {
		return false
	}

	// 连接成功即认为可达，不交换任何数据
	_ = conn.Close()
	return true
}
