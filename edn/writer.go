package edn

import "strconv"

// Write renders node as canonical text.
func Write(node Node) string {
	return string(AppendNode(nil, node))
}

// AppendNode appends the canonical text of node to buf.
func AppendNode(buf []byte, node Node) []byte {
	switch node := node.(type) {

	case nil, Nil:
		return append(buf, "nil"...)

	case Bool:
		return strconv.AppendBool(buf, node.Value)

	case Int:
		buf = append(buf, node.Digits...)
		if node.BigInt {
			buf = append(buf, 'N')
		}
		return buf

	case Float:
		buf = append(buf, node.Integral...)
		buf = append(buf, '.')
		buf = append(buf, node.Fraction...)
		if node.Exponent != "" {
			buf = append(buf, 'E')
			buf = append(buf, node.Exponent...)
		}
		if node.Exact {
			buf = append(buf, 'M')
		}
		return buf

	case Char:
		return appendChar(buf, node.Value)

	case String:
		return appendQuoted(buf, node.Value)

	case Symbol:
		return appendName(buf, node.Namespace, node.Name)

	case Keyword:
		buf = append(buf, ':')
		return appendName(buf, node.Namespace, node.Name)

	case List:
		return appendItems(buf, '(', node.Items, ')')

	case Vector:
		return appendItems(buf, '[', node.Items, ']')

	case Set:
		buf = append(buf, '#')
		return appendItems(buf, '{', node.Items, '}')

	case Map:
		buf = append(buf, '{')
		for i, pair := range node.Pairs {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = AppendNode(buf, pair.Key)
			buf = append(buf, ' ')
			buf = AppendNode(buf, pair.Value)
		}
		return append(buf, '}')

	case Tagged:
		buf = append(buf, '#')
		buf = append(buf, node.Tag...)
		buf = append(buf, ' ')
		return AppendNode(buf, node.Value)

	case Discard:
		return buf

	}

	return buf
}

func appendName(buf []byte, namespace, name string) []byte {
	if namespace != "" {
		buf = append(buf, namespace...)
		buf = append(buf, '/')
	}
	return append(buf, name...)
}

func appendItems(buf []byte, open byte, items []Node, end byte) []byte {
	buf = append(buf, open)
	first := true
	for _, item := range items {
		if _, ok := item.(Discard); ok {
			continue
		}
		if !first {
			buf = append(buf, ' ')
		}
		first = false
		buf = AppendNode(buf, item)
	}
	return append(buf, end)
}
