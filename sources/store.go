package sources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reusee/tedn/logs"
)

// Store replaces the content of a local file. Other locations are not writable.
type Store func(ctx context.Context, location string, content []byte) error

func (Module) Store(
	logger logs.Logger,
) Store {
	return func(ctx context.Context, location string, content []byte) error {
		if KindOf(location) != KindFile {
			return wrap(fmt.Errorf("%w: %s", ErrNotWritable, location))
		}

		mode := os.FileMode(0644)
		if info, err := os.Stat(location); err == nil {
			mode = info.Mode().Perm()
		}

		// write then rename, so readers never see a partial file
		tmp, err := os.CreateTemp(filepath.Dir(location), "."+filepath.Base(location)+".*")
		if err != nil {
			return wrap(err)
		}
		defer os.Remove(tmp.Name())
		if _, err := tmp.Write(content); err != nil {
			tmp.Close()
			return wrap(err)
		}
		if err := tmp.Chmod(mode); err != nil {
			tmp.Close()
			return wrap(err)
		}
		if err := tmp.Close(); err != nil {
			return wrap(err)
		}
		if err := os.Rename(tmp.Name(), location); err != nil {
			return wrap(err)
		}

		logger.DebugContext(ctx, "stored",
			"location", location,
			"bytes", len(content),
		)
		return nil
	}
}
