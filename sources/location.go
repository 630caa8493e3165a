package sources

import (
	"errors"
	"strings"
)

// StdinLocation names standard input.
const StdinLocation = "-"

var (
	ErrBadStatus   = errors.New("bad http status")
	ErrNotWritable = errors.New("location not writable")
)

type Kind uint8

const (
	KindFile Kind = iota + 1
	KindStdin
	KindHTTP
)

func KindOf(location string) Kind {
	switch {
	case location == StdinLocation:
		return KindStdin
	case strings.HasPrefix(location, "http://"),
		strings.HasPrefix(location, "https://"):
		return KindHTTP
	}
	return KindFile
}
