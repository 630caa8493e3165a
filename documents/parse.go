package documents

import (
	"context"

	"github.com/reusee/tedn/edn"
	"github.com/reusee/tedn/ednconfigs"
	"github.com/reusee/tedn/logs"
	"github.com/reusee/tedn/sources"
)

// Document is the sequence of top-level values read from one location.
type Document struct {
	Location string
	Nodes    []edn.Node
}

// Canonical renders every top-level value on its own line.
func (d Document) Canonical() string {
	return canonical(d.Nodes)
}

func canonical(nodes []edn.Node) string {
	var buf []byte
	for _, node := range nodes {
		buf = edn.AppendNode(buf, node)
		buf = append(buf, '\n')
	}
	return string(buf)
}

type Parse func(ctx context.Context, location string) (Document, error)

func (Module) Parse(
	load sources.Load,
	maxDepth ednconfigs.MaxDepth,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Parse {
	return func(ctx context.Context, location string) (doc Document, err error) {
		ctx = logs.WithDocument(ctx, location)
		ctx, _ = newSpan(ctx, "parse")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		content, err := load(ctx, location)
		if err != nil {
			return doc, err
		}

		nodes, err := edn.ReadAll(content, maxDepth.ReadOptions(location)...)
		if err != nil {
			return doc, wrap(err)
		}
		logger.DebugContext(ctx, "parsed",
			"bytes", len(content),
			"values", len(nodes),
		)

		return Document{
			Location: location,
			Nodes:    nodes,
		}, nil
	}
}
