package edn

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput    = errors.New("empty input")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrMalformed     = errors.New("malformed")
	ErrTooDeep       = errors.New("nesting too deep")
)

// MalformedError reports text that matches no grammar rule.
type MalformedError struct {
	Text   string
	Reason string
}

func (m *MalformedError) Error() string {
	if m.Reason != "" {
		return fmt.Sprintf("malformed %q: %s", m.Text, m.Reason)
	}
	return fmt.Sprintf("malformed %q", m.Text)
}

func (m *MalformedError) Unwrap() error {
	return ErrMalformed
}

type Pos struct {
	Source string
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	if p.Source == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Source, p.Line, p.Column)
}

type PosError struct {
	Err  error
	Pos  Pos
	Line string
}

func (p *PosError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s", p.Err.Error(), p.Pos))
	if p.Line == "" {
		return sb.String()
	}
	sb.WriteString("\n")
	sb.WriteString(p.Line)
	sb.WriteString("\n")

	// caret
	col := p.Pos.Column - 1
	for i, r := range []rune(p.Line) {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(strings.Repeat(" ", runeWidth(r)))
		}
	}
	sb.WriteString("^")

	return sb.String()
}

func (p *PosError) Unwrap() error {
	return p.Err
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
