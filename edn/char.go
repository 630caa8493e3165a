package edn

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

var charNames = map[string]rune{
	"newline":   '\n',
	"return":    '\r',
	"space":     ' ',
	"tab":       '\t',
	"formfeed":  '\f',
	"backspace": '\b',
}

var charLiterals = map[rune]string{
	'\n': "newline",
	'\r': "return",
	' ':  "space",
	'\t': "tab",
	'\f': "formfeed",
	'\b': "backspace",
}

func parseChar(s string) (rune, bool) {
	if len(s) < 2 || s[0] != escapeChar {
		return 0, false
	}
	body := s[1:]
	if r, ok := charNames[body]; ok {
		return r, true
	}
	if len(body) == 5 && body[0] == 'u' {
		if v, err := strconv.ParseUint(body[1:], 16, 32); err == nil {
			return rune(v), true
		}
	}
	r, size := utf8.DecodeRuneInString(body)
	if r == utf8.RuneError || size != len(body) {
		return 0, false
	}
	return r, true
}

func appendChar(buf []byte, r rune) []byte {
	buf = append(buf, escapeChar)
	if name, ok := charLiterals[r]; ok {
		return append(buf, name...)
	}
	// a bare comma would be lexed as a separator
	if r == ',' || r <= 0xffff && !unicode.IsGraphic(r) || unicode.IsSpace(r) {
		return appendUnicodeEscape(buf, r)
	}
	return utf8.AppendRune(buf, r)
}

func appendUnicodeEscape(buf []byte, r rune) []byte {
	const hex = "0123456789abcdef"
	return append(buf, 'u',
		hex[r>>12&0xf],
		hex[r>>8&0xf],
		hex[r>>4&0xf],
		hex[r&0xf],
	)
}
