package logs

import (
	"io"
	"os"
)

// Writer receives terminal log output. Stdout is reserved for formatted documents.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
