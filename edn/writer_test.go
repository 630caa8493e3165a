package edn

import (
	"testing"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		node Node
		text string
	}{
		{Nil{}, "nil"},
		{nil, "nil"},
		{Bool{Value: true}, "true"},
		{Bool{}, "false"},
		{Int{Digits: "4", BigInt: true}, "4N"},
		{Int{Digits: "-12"}, "-12"},
		{Float{Integral: "1", Fraction: "23", Exact: true}, "1.23M"},
		{Float{Fraction: "23", Exponent: "+1"}, ".23E+1"},
		{Float{Integral: "-0", Fraction: "5", Exponent: "3"}, "-0.5E3"},
		{Char{Value: 'a'}, `\a`},
		{Char{Value: '\n'}, `\newline`},
		{Char{Value: ' '}, `\space`},
		{Char{Value: '\t'}, `\tab`},
		{Char{Value: ','}, `\u002c`},
		{Char{Value: 0}, `\u0000`},
		{Char{Value: 'é'}, `\é`},
		{String{}, `""`},
		{String{Value: "a\"b\\c\nd\te\x01"}, `"a\"b\\c\nd\te\u0001"`},
		{String{Value: "日本"}, `"日本"`},
		{Symbol{Name: "a"}, "a"},
		{Symbol{Namespace: "ns", Name: "a"}, "ns/a"},
		{Keyword{Name: "k"}, ":k"},
		{Keyword{Namespace: "ns", Name: "k"}, ":ns/k"},
		{List{}, "()"},
		{Vector{}, "[]"},
		{Set{}, "#{}"},
		{Map{}, "{}"},
		{
			List{Items: []Node{Int{Digits: "1"}, Int{Digits: "2"}, Int{Digits: "3"}}},
			"(1 2 3)",
		},
		{
			Vector{Items: []Node{
				Keyword{Namespace: "ns", Name: "kw"},
				String{Value: "LONG STRING"},
				Keyword{Name: "a"},
				String{},
				List{Items: []Node{Int{Digits: "1"}, Int{Digits: "2"}, Int{Digits: "3"}}},
			}},
			`[:ns/kw "LONG STRING" :a "" (1 2 3)]`,
		},
		{
			Set{Items: []Node{Symbol{Name: "a"}, Symbol{Name: "b"}}},
			"#{a b}",
		},
		{
			Map{Pairs: []Pair{
				{Keyword{Name: "a"}, Int{Digits: "1"}},
				{String{Value: "b"}, Vector{}},
			}},
			`{:a 1 "b" []}`,
		},
		{
			Tagged{Tag: "inst", Value: String{Value: "2020"}},
			`#inst "2020"`,
		},
		{Discard{Value: Int{Digits: "1"}}, ""},
		{
			Vector{Items: []Node{
				Discard{Value: Int{Digits: "0"}},
				Int{Digits: "1"},
				Discard{Value: Int{Digits: "2"}},
				Int{Digits: "3"},
			}},
			"[1 3]",
		},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			if got := Write(test.node); got != test.text {
				t.Fatalf("got %s", got)
			}
		})
	}
}

func TestNodeString(t *testing.T) {
	var node Node = Vector{Items: []Node{Keyword{Name: "a"}}}
	if s := node.(Vector).String(); s != "[:a]" {
		t.Fatalf("got %s", s)
	}
}

func TestAppendNode(t *testing.T) {
	buf := []byte("x=")
	buf = AppendNode(buf, Int{Digits: "1"})
	if string(buf) != "x=1" {
		t.Fatalf("got %s", buf)
	}
}
