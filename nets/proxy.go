package nets

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/tedn/configs"
	"github.com/reusee/tedn/logs"
	"github.com/reusee/tedn/modes"
	"github.com/reusee/tedn/vars"
	"golang.org/x/net/proxy"
)

// ProxyAddr is a proxy URL such as socks5://127.0.0.1:1080. Empty means direct.
type ProxyAddr string

func (ProxyAddr) ConfigKeys() []string {
	return []string{
		"proxy_addr",
		"proxy_address",
		"http_proxy",
		"socks_proxy",
	}
}

var _ configs.Configurable = ProxyAddr("")

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) (ret ProxyAddr) {
	defer func() {
		if ret != "" {
			logger.Info("proxy", "addr", ret)
		}
	}()

	if mode == modes.ModeDevelopment {
		return ""
	}

	return vars.FirstNonZero(
		configs.Lookup[ProxyAddr](loader),
		ProxyAddr(os.Getenv("ALL_PROXY")),
		ProxyAddr(os.Getenv("all_proxy")),
		ProxyAddr(os.Getenv("HTTP_PROXY")),
		ProxyAddr(os.Getenv("http_proxy")),
		ProxyAddr(os.Getenv("SOCKS_PROXY")),
		ProxyAddr(os.Getenv("socks_proxy")),
	)
}

type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	proxyAddr ProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if proxyAddr == "" {
			return nil, nil
		}
		u, err := url.Parse(string(proxyAddr))
		if err != nil {
			return nil, fmt.Errorf("proxy address %q: %w", proxyAddr, err)
		}
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		return u, nil
	})
}

type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	getURL GetProxyURL,
) GetProxyDialer {
	direct := &net.Dialer{
		Timeout: dialTimeout,
	}
	return sync.OnceValues(func() (Dialer, error) {
		u, err := getURL()
		if err != nil {
			return nil, err
		}
		if u == nil || isHTTPProxy(u) {
			// http proxies are applied by the transport, see HTTPClient
			return direct, nil
		}
		proxyDialer, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, fmt.Errorf("proxy %s: %w", u.Redacted(), err)
		}
		dialer, ok := proxyDialer.(Dialer)
		if !ok {
			return nil, fmt.Errorf("proxy %s: no context dialing", u.Redacted())
		}
		return dialer, nil
	})
}

func isHTTPProxy(u *url.URL) bool {
	return u.Scheme == "http" || u.Scheme == "https"
}
