package nets

import (
	"context"
	"net"

	"github.com/reusee/tedn/logs"
)

type Dialer interface {
	Dial(network, addr string) (net.Conn, error)
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

// Dialer connects to local addresses directly and to others through the configured proxy.
func (Module) Dialer(
	getProxyDialer GetProxyDialer,
	isLocalAddr IsLocalAddr,
	logger logs.Logger,
) Dialer {
	direct := &net.Dialer{
		Timeout: dialTimeout,
	}
	return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
		isLocal, err := isLocalAddr(addr)
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "dial", "addr", addr, "local", isLocal)
		if isLocal {
			return direct.DialContext(ctx, network, addr)
		}
		proxyDialer, err := getProxyDialer()
		if err != nil {
			return nil, err
		}
		return proxyDialer.DialContext(ctx, network, addr)
	})
}

type DialerFunc func(context.Context, string, string) (net.Conn, error)

var _ Dialer = DialerFunc(nil)

func (d DialerFunc) DialContext(ctx context.Context, network string, addr string) (net.Conn, error) {
	return d(ctx, network, addr)
}

func (d DialerFunc) Dial(network string, addr string) (net.Conn, error) {
	return d(context.Background(), network, addr)
}
