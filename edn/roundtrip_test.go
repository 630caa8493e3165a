package edn

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"
)

func TestRoundTripCanonical(t *testing.T) {
	for _, text := range []string{
		`[:ns/kw "LONG STRING" :a "" (1 2 3)]`,
		"4N",
		"1.23M",
		".23E+1",
		".23E-1",
		"-7.5E10M",
		"nil",
		"true",
		"false",
		"(a/b c :d/e)",
		"#{1 2}",
		`{:a [1 2] "b" #inst "x"}`,
		`\newline`,
		`\u0000`,
		`[\a \( \\ \"]`,
		`"a\nb\"c\\"`,
		"#my/tag #{[] () {}}",
		"(((())))",
	} {
		node, err := Read([]byte(text))
		if err != nil {
			t.Fatalf("%s: %v", text, err)
		}
		if got := Write(node); got != text {
			t.Fatalf("got %s, expected %s", got, text)
		}
	}
}

type randomNode struct {
	Node Node
}

func (randomNode) Generate(r *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(randomNode{
		Node: genNode(r, 3),
	})
}

func pick(r *rand.Rand, s string) byte {
	return s[r.Intn(len(s))]
}

func genDigits(r *rand.Rand) string {
	n := 1 + r.Intn(20)
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = pick(r, "0123456789")
	}
	return string(buf)
}

func genSign(r *rand.Rand) string {
	switch r.Intn(3) {
	case 0:
		return "-"
	case 1:
		return "+"
	}
	return ""
}

func genName(r *rand.Rand) string {
	n := r.Intn(8)
	buf := []byte{pick(r, "abcdxyzABC")}
	for range n {
		buf = append(buf, pick(r, "abcxyz0123-_?!*<>"))
	}
	return string(buf)
}

func genNamespace(r *rand.Rand) string {
	if r.Intn(2) == 0 {
		return ""
	}
	return genName(r)
}

var genChars = []rune{'a', 'Z', ' ', '\n', '\t', ',', '(', ']', '\\', '"', ';', '#', 'é', '日', 0, 1, 0x7f, 0x1f600}

func genItems(r *rand.Rand, depth int) []Node {
	n := r.Intn(5)
	if n == 0 {
		return nil
	}
	items := make([]Node, n)
	for i := range items {
		items[i] = genNode(r, depth-1)
	}
	return items
}

func genNode(r *rand.Rand, depth int) Node {
	kinds := 10
	if depth > 0 {
		kinds = 15
	}
	switch r.Intn(kinds) {
	case 0:
		return Nil{}
	case 1:
		return Bool{Value: r.Intn(2) == 0}
	case 2:
		return Int{
			Digits: genSign(r) + genDigits(r),
			BigInt: r.Intn(2) == 0,
		}
	case 3:
		f := Float{
			Fraction: genDigits(r),
			Exact:    r.Intn(2) == 0,
		}
		if r.Intn(2) == 0 {
			f.Integral = genSign(r) + genDigits(r)
		}
		if r.Intn(2) == 0 {
			f.Exponent = genSign(r) + genDigits(r)
		}
		return f
	case 4:
		return Char{Value: genChars[r.Intn(len(genChars))]}
	case 5:
		buf := make([]byte, r.Intn(10))
		for i := range buf {
			buf[i] = byte(r.Intn(256))
		}
		return String{Value: string(buf)}
	case 6:
		return Symbol{Namespace: genNamespace(r), Name: genName(r)}
	case 7:
		return Keyword{Namespace: genNamespace(r), Name: genName(r)}
	case 8:
		return Symbol{Name: "/"}
	case 9:
		return Keyword{Name: genName(r)}
	case 10:
		return List{Items: genItems(r, depth)}
	case 11:
		return Vector{Items: genItems(r, depth)}
	case 12:
		return Set{Items: genItems(r, depth)}
	case 13:
		items := genItems(r, depth)
		var pairs []Pair
		for _, item := range items {
			pairs = append(pairs, Pair{
				Key:   item,
				Value: genNode(r, depth-1),
			})
		}
		return Map{Pairs: pairs}
	default:
		return Tagged{
			Tag:   genName(r),
			Value: genNode(r, depth-1),
		}
	}
}

func TestRoundTripProperty(t *testing.T) {
	law := func(n randomNode) bool {
		text := Write(n.Node)
		node, err := Read([]byte(text))
		if err != nil {
			t.Logf("%s: %v", text, err)
			return false
		}
		if !reflect.DeepEqual(node, n.Node) {
			t.Logf("%s: got %#v", text, node)
			return false
		}
		return Write(node) == text
	}
	if err := quick.Check(law, &quick.Config{
		MaxCount: 2000,
	}); err != nil {
		t.Fatal(err)
	}
}
