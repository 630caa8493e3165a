package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/reusee/tedn/logs"
	"github.com/reusee/tedn/nets"
)

// Stdin is read for the "-" location.
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

// Load returns the content of a file path, an http(s) URL, or standard input.
type Load func(ctx context.Context, location string) ([]byte, error)

func (Module) Load(
	client nets.HTTPClient,
	stdin Stdin,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, location string) (ret []byte, err error) {
		defer func() {
			if err == nil {
				logger.DebugContext(ctx, "loaded",
					"location", location,
					"bytes", len(ret),
				)
			}
		}()

		switch KindOf(location) {

		case KindStdin:
			ret, err = io.ReadAll(stdin)
			if err != nil {
				return nil, wrap(fmt.Errorf("read stdin: %w", err))
			}
			return ret, nil

		case KindHTTP:
			return fetch(ctx, client, location)

		}

		ret, err = os.ReadFile(location)
		if err != nil {
			return nil, wrap(err)
		}
		return ret, nil
	}
}

func fetch(ctx context.Context, client nets.HTTPClient, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, wrap(err)
	}
	req.Header.Set("Accept", "application/edn, text/plain;q=0.9, */*;q=0.1")
	resp, err := client.Do(req)
	if err != nil {
		return nil, wrap(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, wrap(fmt.Errorf("%w: %s: %s", ErrBadStatus, location, resp.Status))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrap(fmt.Errorf("read %s: %w", location, err))
	}
	return body, nil
}
