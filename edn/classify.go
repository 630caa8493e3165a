package edn

import "unicode"

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ',':
		return true
	}
	return false
}

// bracketFamily maps both directions of a bracket pair to the same kind.
func bracketFamily(c byte) (lexKind, bool) {
	switch c {
	case '(', ')':
		return lexList, true
	case '[', ']':
		return lexVector, true
	case '{', '}':
		return lexMap, true
	}
	return 0, false
}

func isBracket(c byte) bool {
	_, ok := bracketFamily(c)
	return ok
}

func isOpening(c byte) bool {
	return c == '(' || c == '[' || c == '{'
}

func isSymbolChar(r rune) bool {
	if r < 0x80 {
		c := byte(r)
		if c >= 'a' && c <= 'z' ||
			c >= 'A' && c <= 'Z' ||
			isDigit(c) {
			return true
		}
		switch c {
		case '.', '*', '+', '!', '-', '_', '?', '$', '%', '&', '=', ':', '#', '/', '<', '>':
			return true
		}
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isHexDigit(c byte) bool {
	return isDigit(c) ||
		c >= 'a' && c <= 'f' ||
		c >= 'A' && c <= 'F'
}
