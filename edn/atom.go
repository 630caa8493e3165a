package edn

import (
	"strings"
)

// classifyAtom resolves an atom's text to a literal node.
// The first grammar that accepts the text wins.
func classifyAtom(text string) (Node, error) {
	if text == "nil" {
		return Nil{}, nil
	}
	if r, ok := parseChar(text); ok {
		return Char{Value: r}, nil
	}
	if ns, name, ok := parseKeyword(text); ok {
		return Keyword{Namespace: ns, Name: name}, nil
	}
	// true and false are also valid symbol bodies
	switch text {
	case "true":
		return Bool{Value: true}, nil
	case "false":
		return Bool{Value: false}, nil
	}
	if ns, name, ok := parseSymbol(text); ok {
		return Symbol{Namespace: ns, Name: name}, nil
	}
	if digits, big, ok := parseInteger(text, true); ok {
		return Int{Digits: digits, BigInt: big}, nil
	}
	if f, ok := parseFloat(text); ok {
		return f, nil
	}
	return nil, &MalformedError{
		Text:   text,
		Reason: "not a literal",
	}
}

func validSymbolStart(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	if isDigit(c) || c == ':' || c == '#' {
		return false
	}
	if c == '/' && len(s) != 1 {
		return false
	}
	// reserved for numbers
	if len(s) > 1 && (c == '-' || c == '+' || c == '.') && isDigit(s[1]) {
		return false
	}
	return true
}

func parseSymbol(s string) (namespace string, name string, ok bool) {
	if !validSymbolStart(s) {
		return
	}
	if s == "/" {
		return "", s, true
	}
	slash := -1
	for i, r := range s {
		if !isSymbolChar(r) {
			return "", "", false
		}
		if r == '/' {
			if slash >= 0 {
				return "", "", false
			}
			slash = i
		}
	}
	if slash < 0 {
		return "", s, true
	}
	namespace, name = s[:slash], s[slash+1:]
	if !validSymbolStart(namespace) || !validSymbolStart(name) {
		return "", "", false
	}
	return namespace, name, true
}

func parseKeyword(s string) (namespace string, name string, ok bool) {
	if len(s) == 0 || s[0] != ':' {
		return
	}
	return parseSymbol(s[1:])
}

// parseInteger accepts an optional sign followed by digits.
// With allowBig, a trailing N is stripped and reported.
func parseInteger(s string, allowBig bool) (digits string, big bool, ok bool) {
	if allowBig && strings.HasSuffix(s, "N") {
		s = s[:len(s)-1]
		big = true
	}
	body := s
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	if !isUnsignedInteger(body) {
		return "", false, false
	}
	return s, big, true
}

func isUnsignedInteger(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func parseFloat(s string) (ret Float, ok bool) {
	if strings.HasSuffix(s, "M") {
		s = s[:len(s)-1]
		ret.Exact = true
	}
	if strings.Count(s, ".") != 1 {
		return ret, false
	}

	integral, rest, _ := strings.Cut(s, ".")
	if integral != "" {
		if _, _, ok := parseInteger(integral, false); !ok {
			return ret, false
		}
	}

	fraction := rest
	exponent := ""
	hasExponent := false
	if i := strings.IndexAny(rest, "eE"); i >= 0 {
		fraction, exponent = rest[:i], rest[i+1:]
		hasExponent = true
	}
	if !isUnsignedInteger(fraction) {
		return ret, false
	}
	if hasExponent {
		if _, _, ok := parseInteger(exponent, false); !ok {
			return ret, false
		}
	}

	ret.Integral = integral
	ret.Fraction = fraction
	ret.Exponent = exponent
	return ret, true
}
