package documents

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/reusee/tedn/edn"
	"github.com/reusee/tedn/ednconfigs"
	"github.com/reusee/tedn/logs"
	"github.com/reusee/tedn/sources"
)

var ErrNotStable = errors.New("canonical text not stable")

// Format returns the canonical text of a location.
type Format func(ctx context.Context, location string) (string, error)

func (Module) Format(
	parse Parse,
) Format {
	return func(ctx context.Context, location string) (string, error) {
		doc, err := parse(ctx, location)
		if err != nil {
			return "", err
		}
		return doc.Canonical(), nil
	}
}

// Rewrite replaces a local file with its canonical text, reporting whether it changed.
type Rewrite func(ctx context.Context, location string) (changed bool, err error)

func (Module) Rewrite(
	load sources.Load,
	store sources.Store,
	maxDepth ednconfigs.MaxDepth,
	logger logs.Logger,
) Rewrite {
	return func(ctx context.Context, location string) (bool, error) {
		ctx = logs.WithDocument(ctx, location)
		content, err := load(ctx, location)
		if err != nil {
			return false, logs.WrapSpan(ctx, err)
		}
		nodes, err := edn.ReadAll(content, maxDepth.ReadOptions(location)...)
		if err != nil {
			return false, logs.WrapSpan(ctx, wrap(err))
		}
		text := canonical(nodes)
		if text == string(content) {
			return false, nil
		}
		if err := store(ctx, location, []byte(text)); err != nil {
			return false, logs.WrapSpan(ctx, err)
		}
		logger.InfoContext(ctx, "rewritten")
		return true, nil
	}
}

// Check verifies that the canonical text reads back to the same values
// and that writing those values again yields the same text.
type Check func(ctx context.Context, location string) error

func (Module) Check(
	parse Parse,
	maxDepth ednconfigs.MaxDepth,
) Check {
	return func(ctx context.Context, location string) error {
		doc, err := parse(ctx, location)
		if err != nil {
			return err
		}
		return checkStable(doc, maxDepth)
	}
}

func checkStable(doc Document, maxDepth ednconfigs.MaxDepth) error {
	text := doc.Canonical()
	again, err := edn.ReadAll([]byte(text), maxDepth.ReadOptions(doc.Location)...)
	if err != nil {
		return wrap(fmt.Errorf("%w: %s: reread: %w", ErrNotStable, doc.Location, err))
	}
	for i, node := range doc.Nodes {
		if i >= len(again) || !reflect.DeepEqual(node, again[i]) {
			return wrap(fmt.Errorf("%w: %s: value %d differs", ErrNotStable, doc.Location, i))
		}
	}
	if len(again) != len(doc.Nodes) {
		return wrap(fmt.Errorf("%w: %s: %d values, reread %d", ErrNotStable, doc.Location, len(doc.Nodes), len(again)))
	}
	if canonical(again) != text {
		return wrap(fmt.Errorf("%w: %s: not idempotent", ErrNotStable, doc.Location))
	}
	return nil
}
