package debugs

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/reusee/tedn/edn"
	"go.starlark.net/starlark"
)

// nodeToStarlark maps a tree to plain starlark values.
// Symbols, keywords and characters become strings in their written form,
// tagged elements become {"tag": ..., "value": ...}.
func nodeToStarlark(node edn.Node) starlark.Value {
	switch node := node.(type) {

	case nil, edn.Nil, edn.Discard:
		return starlark.None

	case edn.Bool:
		return starlark.Bool(node.Value)

	case edn.Int:
		i, ok := new(big.Int).SetString(strings.TrimPrefix(node.Digits, "+"), 10)
		if !ok {
			return starlark.String(edn.Write(node))
		}
		return starlark.MakeBigInt(i)

	case edn.Float:
		return starlark.Float(floatValue(node))

	case edn.Char:
		return starlark.String(string(node.Value))

	case edn.String:
		return starlark.String(node.Value)

	case edn.Symbol, edn.Keyword:
		return starlark.String(edn.Write(node))

	case edn.List:
		return nodesToList(node.Items)

	case edn.Vector:
		return nodesToList(node.Items)

	case edn.Set:
		set := starlark.NewSet(len(node.Items))
		for _, item := range node.Items {
			if err := set.Insert(nodeToStarlark(item)); err != nil {
				// unhashable
				_ = set.Insert(starlark.String(edn.Write(item)))
			}
		}
		return set

	case edn.Map:
		dict := starlark.NewDict(len(node.Pairs))
		for _, pair := range node.Pairs {
			value := nodeToStarlark(pair.Value)
			if err := dict.SetKey(hashableKey(pair.Key), value); err != nil {
				_ = dict.SetKey(starlark.String(edn.Write(pair.Key)), value)
			}
		}
		return dict

	case edn.Tagged:
		dict := starlark.NewDict(2)
		_ = dict.SetKey(starlark.String("tag"), starlark.String(node.Tag))
		_ = dict.SetKey(starlark.String("value"), nodeToStarlark(node.Value))
		return dict

	}

	return starlark.String(edn.Write(node))
}

func nodesToList(nodes []edn.Node) *starlark.List {
	elems := make([]starlark.Value, 0, len(nodes))
	for _, node := range nodes {
		if _, ok := node.(edn.Discard); ok {
			continue
		}
		elems = append(elems, nodeToStarlark(node))
	}
	return starlark.NewList(elems)
}

// hashableKey converts sequence keys to tuples so they can index a dict.
func hashableKey(node edn.Node) starlark.Value {
	var items []edn.Node
	switch node := node.(type) {
	case edn.List:
		items = node.Items
	case edn.Vector:
		items = node.Items
	default:
		return nodeToStarlark(node)
	}
	tuple := make(starlark.Tuple, 0, len(items))
	for _, item := range items {
		tuple = append(tuple, hashableKey(item))
	}
	return tuple
}

func floatValue(f edn.Float) float64 {
	var b strings.Builder
	switch f.Integral {
	case "", "+", "-":
		b.WriteString(f.Integral)
		b.WriteString("0")
	default:
		b.WriteString(f.Integral)
	}
	b.WriteString(".")
	b.WriteString(f.Fraction)
	if f.Exponent != "" {
		b.WriteString("e")
		b.WriteString(f.Exponent)
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil && !math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
