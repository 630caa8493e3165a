package edn

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type reader struct {
	src      *source
	units    []lexeme
	idx      int
	depth    int
	maxDepth int
}

func newReader(input []byte, options []ReadOption) (*reader, error) {
	config := readConfig{
		maxDepth: DefaultMaxDepth,
	}
	for _, option := range options {
		option(&config)
	}
	src := newSource(config.sourceName, input)
	units, err := lex(src)
	if err != nil {
		return nil, err
	}
	return &reader{
		src:      src,
		units:    units,
		maxDepth: config.maxDepth,
	}, nil
}

// Read parses the first value of input. Discarded forms before it are skipped
// and anything after it is ignored.
func Read(input []byte, options ...ReadOption) (Node, error) {
	r, err := newReader(input, options)
	if err != nil {
		return nil, err
	}
	node, ok, err := r.readTop()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEmptyInput
	}
	return node, nil
}

// ReadAll parses every top-level value of input in order.
func ReadAll(input []byte, options ...ReadOption) ([]Node, error) {
	r, err := newReader(input, options)
	if err != nil {
		return nil, err
	}
	var nodes []Node
	for {
		node, ok, err := r.readTop()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		nodes = append(nodes, node)
	}
	if len(nodes) == 0 {
		return nil, ErrEmptyInput
	}
	return nodes, nil
}

func (r *reader) next() (lexeme, bool) {
	unit, ok := r.peek()
	if ok {
		r.idx++
	}
	return unit, ok
}

func (r *reader) peek() (lexeme, bool) {
	if r.idx >= len(r.units) {
		return lexeme{}, false
	}
	return r.units[r.idx], true
}

func (r *reader) isOpening(unit lexeme) bool {
	return unit.isDelimiter() && isOpening(r.src.input[unit.start])
}

func (r *reader) readTop() (Node, bool, error) {
	for {
		unit, ok := r.next()
		if !ok {
			return nil, false, nil
		}
		node, err := r.readForm(unit)
		if err != nil {
			return nil, false, err
		}
		if _, ok := node.(Discard); ok {
			continue
		}
		return node, true, nil
	}
}

func (r *reader) readForm(unit lexeme) (Node, error) {
	text := unit.text(r.src.input)

	switch unit.kind {

	case lexString:
		value, err := unescape(text)
		if err != nil {
			return nil, r.src.errorAt(err, unit.start)
		}
		return String{Value: value}, nil

	case lexList, lexVector, lexMap:
		if !r.isOpening(unit) {
			return nil, r.src.errorAt(&MalformedError{
				Text:   string(text),
				Reason: "unexpected closing delimiter",
			}, unit.start)
		}
		items, err := r.readItems(unit)
		if err != nil {
			return nil, err
		}
		switch unit.kind {
		case lexList:
			return List{Items: items}, nil
		case lexVector:
			return Vector{Items: items}, nil
		default:
			return r.pairs(unit, items)
		}

	case lexAtom:
		if text[0] == '#' {
			return r.readDispatch(unit)
		}
		node, err := classifyAtom(string(text))
		if err != nil {
			return nil, r.src.errorAt(err, unit.start)
		}
		return node, nil

	}

	return nil, r.src.errorAt(&MalformedError{
		Text:   string(text),
		Reason: "unknown unit " + unit.kind.String(),
	}, unit.start)
}

func (r *reader) enter(at int) error {
	r.depth++
	if r.depth > r.maxDepth {
		return r.src.errorAt(ErrTooDeep, at)
	}
	return nil
}

func (r *reader) leave() {
	r.depth--
}

// readItems reads values up to the closing delimiter matching open.
func (r *reader) readItems(open lexeme) ([]Node, error) {
	if err := r.enter(open.start); err != nil {
		return nil, err
	}
	defer r.leave()

	var items []Node
	for {
		unit, ok := r.next()
		if !ok {
			return nil, r.src.errorAt(
				fmt.Errorf("%w: unclosed %q", ErrUnexpectedEOF, open.text(r.src.input)),
				open.start,
			)
		}
		if unit.kind == open.kind && !r.isOpening(unit) {
			return items, nil
		}
		node, err := r.readForm(unit)
		if err != nil {
			return nil, err
		}
		if _, ok := node.(Discard); ok {
			continue
		}
		items = append(items, node)
	}
}

func (r *reader) pairs(open lexeme, items []Node) (Node, error) {
	if len(items)%2 != 0 {
		return nil, r.src.errorAt(&MalformedError{
			Text:   "{",
			Reason: "map with odd number of forms",
		}, open.start)
	}
	var pairs []Pair
	for i := 0; i < len(items); i += 2 {
		pairs = append(pairs, Pair{
			Key:   items[i],
			Value: items[i+1],
		})
	}
	return Map{Pairs: pairs}, nil
}

// readDispatch handles atoms starting with '#': sets, discards and tags.
func (r *reader) readDispatch(unit lexeme) (Node, error) {
	text := string(unit.text(r.src.input))

	switch text {

	case "#":
		next, ok := r.peek()
		if ok && next.kind == lexMap && next.start == unit.end && r.isOpening(next) {
			r.idx++
			items, err := r.readItems(next)
			if err != nil {
				return nil, err
			}
			return Set{Items: items}, nil
		}
		return nil, r.src.errorAt(&MalformedError{
			Text:   text,
			Reason: "dispatch without set or tag",
		}, unit.start)

	case "#_":
		value, err := r.readOperand(unit)
		if err != nil {
			return nil, err
		}
		return Discard{Value: value}, nil

	}

	tag := text[1:]
	if !validTag(tag) {
		return nil, r.src.errorAt(&MalformedError{
			Text:   text,
			Reason: "invalid tag",
		}, unit.start)
	}
	value, err := r.readOperand(unit)
	if err != nil {
		return nil, err
	}
	return Tagged{
		Tag:   tag,
		Value: value,
	}, nil
}

// readOperand reads the value a prefix applies to, skipping discarded forms.
func (r *reader) readOperand(prefix lexeme) (Node, error) {
	if err := r.enter(prefix.start); err != nil {
		return nil, err
	}
	defer r.leave()

	for {
		unit, ok := r.next()
		if !ok {
			return nil, r.src.errorAt(
				fmt.Errorf("%w: nothing after %q", ErrUnexpectedEOF, prefix.text(r.src.input)),
				prefix.start,
			)
		}
		node, err := r.readForm(unit)
		if err != nil {
			return nil, err
		}
		if _, ok := node.(Discard); ok {
			continue
		}
		return node, nil
	}
}

func validTag(tag string) bool {
	first, _ := utf8.DecodeRuneInString(tag)
	if !unicode.IsLetter(first) {
		return false
	}
	_, _, ok := parseSymbol(tag)
	return ok
}
