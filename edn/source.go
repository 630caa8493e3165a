package edn

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"
)

type source struct {
	name  string
	input []byte
}

func newSource(name string, input []byte) *source {
	return &source{
		name:  name,
		input: input,
	}
}

func (s *source) position(offset int) (Pos, string) {
	offset = min(max(offset, 0), len(s.input))
	line := 1
	lineStart := 0
	for i := range offset {
		if s.input[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := len(s.input)
	if i := bytes.IndexByte(s.input[lineStart:], '\n'); i >= 0 {
		lineEnd = lineStart + i
	}
	return Pos{
			Source: s.name,
			Offset: offset,
			Line:   line,
			Column: utf8.RuneCount(s.input[lineStart:offset]) + 1,
		},
		strings.TrimRight(string(s.input[lineStart:lineEnd]), "\r")
}

func (s *source) errorAt(err error, offset int) error {
	if err == nil {
		return nil
	}
	var posErr *PosError
	if errors.As(err, &posErr) {
		return err
	}
	pos, line := s.position(offset)
	return &PosError{
		Err:  err,
		Pos:  pos,
		Line: line,
	}
}
