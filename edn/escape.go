package edn

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// unescape decodes the backslash escapes of a string literal's content.
func unescape(raw []byte) (string, error) {
	if bytes.IndexByte(raw, escapeChar) < 0 {
		return string(raw), nil
	}

	buf := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != escapeChar {
			buf = append(buf, c)
			continue
		}
		i++
		if i >= len(raw) {
			return "", &MalformedError{
				Text:   string(raw),
				Reason: "dangling escape",
			}
		}
		switch raw[i] {
		case 't':
			buf = append(buf, '\t')
		case 'r':
			buf = append(buf, '\r')
		case 'n':
			buf = append(buf, '\n')
		case 'b':
			buf = append(buf, '\b')
		case 'f':
			buf = append(buf, '\f')
		case '\\':
			buf = append(buf, '\\')
		case '"':
			buf = append(buf, '"')
		case 'u':
			if i+5 > len(raw) {
				return "", &MalformedError{
					Text:   string(raw),
					Reason: "short unicode escape",
				}
			}
			v, err := strconv.ParseUint(string(raw[i+1:i+5]), 16, 32)
			if err != nil {
				return "", &MalformedError{
					Text:   string(raw),
					Reason: "bad unicode escape",
				}
			}
			buf = utf8.AppendRune(buf, rune(v))
			i += 4
		default:
			return "", &MalformedError{
				Text:   string(raw),
				Reason: fmt.Sprintf("unknown escape \\%c", raw[i]),
			}
		}
	}
	return string(buf), nil
}

// appendQuoted writes s as a string literal. Bytes outside the escape set pass through.
func appendQuoted(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for i := range len(s) {
		c := s[i]
		switch c {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\t':
			buf = append(buf, '\\', 't')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		default:
			if c < 0x20 || c == 0x7f {
				buf = append(buf, '\\')
				buf = appendUnicodeEscape(buf, rune(c))
			} else {
				buf = append(buf, c)
			}
		}
	}
	return append(buf, '"')
}
