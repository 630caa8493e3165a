package nets

import (
	"net/http"
	"net/url"
	"time"
)

const (
	dialTimeout     = 10 * time.Second
	responseTimeout = 30 * time.Second
)

type HTTPClient = *http.Client

// HTTPClient sends requests through an http(s) proxy via the transport,
// or through the socks dialer for other proxy schemes.
func (Module) HTTPClient(
	dialer Dialer,
	getURL GetProxyURL,
	isLocalAddr IsLocalAddr,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext:           dialer.DialContext,
			ResponseHeaderTimeout: responseTimeout,
			Proxy: func(req *http.Request) (*url.URL, error) {
				u, err := getURL()
				if err != nil {
					return nil, err
				}
				if u == nil || !isHTTPProxy(u) {
					return nil, nil
				}
				if isLocal, err := isLocalAddr(req.URL.Host); err != nil {
					return nil, err
				} else if isLocal {
					return nil, nil
				}
				return u, nil
			},
		},
	}
}
