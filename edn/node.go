package edn

// Node is one parsed value. The set of implementations is closed.
type Node interface {
	node()
}

type Nil struct{}

type Bool struct {
	Value bool
}

// Int keeps the literal digits, sign included. BigInt records the N suffix.
type Int struct {
	Digits string
	BigInt bool
}

// Float keeps the literal parts. Integral may be empty (".5") and carries the sign;
// Exponent is empty when absent and carries its own sign when present.
// Exact records the M suffix.
type Float struct {
	Integral string
	Fraction string
	Exponent string
	Exact    bool
}

type Char struct {
	Value rune
}

type String struct {
	Value string
}

// Symbol with an empty Namespace is unqualified.
type Symbol struct {
	Namespace string
	Name      string
}

type Keyword struct {
	Namespace string
	Name      string
}

type List struct {
	Items []Node
}

type Vector struct {
	Items []Node
}

// Set keeps items in source order. Duplicates are not rejected.
type Set struct {
	Items []Node
}

type Pair struct {
	Key   Node
	Value Node
}

// Map keeps pairs in source order. Duplicate keys are not rejected.
type Map struct {
	Pairs []Pair
}

type Tagged struct {
	Tag   string
	Value Node
}

// Discard is dropped by the collection that contains it.
type Discard struct {
	Value Node
}

func (Nil) node()     {}
func (Bool) node()    {}
func (Int) node()     {}
func (Float) node()   {}
func (Char) node()    {}
func (String) node()  {}
func (Symbol) node()  {}
func (Keyword) node() {}
func (List) node()    {}
func (Vector) node()  {}
func (Set) node()     {}
func (Map) node()     {}
func (Tagged) node()  {}
func (Discard) node() {}

func (n Nil) String() string     { return Write(n) }
func (n Bool) String() string    { return Write(n) }
func (n Int) String() string     { return Write(n) }
func (n Float) String() string   { return Write(n) }
func (n Char) String() string    { return Write(n) }
func (n String) String() string  { return Write(n) }
func (n Symbol) String() string  { return Write(n) }
func (n Keyword) String() string { return Write(n) }
func (n List) String() string    { return Write(n) }
func (n Vector) String() string  { return Write(n) }
func (n Set) String() string     { return Write(n) }
func (n Map) String() string     { return Write(n) }
func (n Tagged) String() string  { return Write(n) }
func (n Discard) String() string { return Write(n) }
