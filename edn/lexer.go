package edn

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

type lexKind uint8

const (
	lexString lexKind = iota + 1
	lexAtom
	lexList
	lexVector
	lexMap
)

func (k lexKind) String() string {
	switch k {
	case lexString:
		return "string"
	case lexAtom:
		return "atom"
	case lexList:
		return "list delimiter"
	case lexVector:
		return "vector delimiter"
	case lexMap:
		return "map delimiter"
	}
	return "invalid"
}

// lexeme is a view into the input: [start, end).
// For delimiters the span is the bracket byte itself.
type lexeme struct {
	kind  lexKind
	start int
	end   int
}

func (l lexeme) text(input []byte) []byte {
	return input[l.start:l.end]
}

func (l lexeme) isDelimiter() bool {
	return l.kind == lexList || l.kind == lexVector || l.kind == lexMap
}

const (
	escapeChar      = '\\'
	structuralBytes = "()[]{}"
)

var discardMarker = []byte("#_")

var namedChars = []string{
	"newline",
	"return",
	"space",
	"tab",
	"formfeed",
	"backspace",
}

func lex(src *source) ([]lexeme, error) {
	input := src.input
	var (
		units       []lexeme
		escaping    bool
		inString    bool
		inComment   bool
		token       int
		stringStart int
	)

	flush := func(pos int) {
		if token != pos {
			units = append(units, lexeme{
				kind:  lexAtom,
				start: token,
				end:   pos,
			})
		}
		token = pos
	}

	for pos := 0; pos < len(input); pos++ {
		c := input[pos]

		if inComment {
			if c == '\n' {
				inComment = false
				token = pos + 1
			}
			continue
		}
		if !inString && c == ';' && !escaping {
			flush(pos)
			inComment = true
			continue
		}

		if c == '"' && !escaping {
			if inString {
				units = append(units, lexeme{
					kind:  lexString,
					start: token,
					end:   pos,
				})
				inString = false
			} else {
				flush(pos)
				inString = true
				stringStart = pos
			}
			token = pos + 1
			continue
		}

		if inString {
			if escaping {
				escaping = false
			} else if c == escapeChar {
				escaping = true
			}
			continue
		}

		structural := strings.IndexByte(structuralBytes, c) >= 0 && !escaping
		if structural || isSeparator(c) {
			flush(pos)
			if structural {
				kind, ok := bracketFamily(c)
				if !ok {
					return nil, src.errorAt(&MalformedError{Text: string(c)}, pos)
				}
				units = append(units, lexeme{
					kind:  kind,
					start: pos,
					end:   pos + 1,
				})
			}
			token = pos + 1
			escaping = false
			continue
		}

		if escaping {
			escaping = false
		} else if c == escapeChar {
			escaping = true
		}

		if pos > token && (bytes.Equal(input[token:pos], discardMarker) ||
			endsCharPrefix(input, token, pos)) {
			flush(pos)
		}
	}

	if inString {
		return nil, src.errorAt(ErrUnexpectedEOF, stringStart)
	}
	if !inComment {
		flush(len(input))
	}

	return units, nil
}

// endsCharPrefix reports whether input[start:pos] is a backslash followed by one
// character that should stand alone as a character literal.
func endsCharPrefix(input []byte, start, pos int) bool {
	pending := input[start:pos]
	if len(pending) < 2 || pending[0] != escapeChar {
		return false
	}
	r, size := utf8.DecodeRune(pending[1:])
	if r == utf8.RuneError && size <= 1 || size != len(pending)-1 {
		return false
	}
	return !longCharPrefix(input[start+1:])
}

// longCharPrefix reports whether rest starts with a named character or a
// unicode escape body. Such an atom runs to the next delimiter, so trailing
// bytes make it malformed instead of splitting off a one-character literal.
func longCharPrefix(rest []byte) bool {
	for _, name := range namedChars {
		if bytes.HasPrefix(rest, []byte(name)) {
			return true
		}
	}
	return len(rest) >= 5 && rest[0] == 'u' &&
		isHexDigit(rest[1]) && isHexDigit(rest[2]) &&
		isHexDigit(rest[3]) && isHexDigit(rest[4])
}
