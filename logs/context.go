package logs

import "context"

type Span string

type ctxKey uint8

const (
	SpanKey ctxKey = iota + 1
	DocumentKey
)

// WithDocument records the location of the document being processed.
// Records logged with the returned context carry it as the "document" attribute.
func WithDocument(ctx context.Context, location string) context.Context {
	return context.WithValue(ctx, DocumentKey, location)
}

func spanOf(ctx context.Context) Span {
	if v := ctx.Value(SpanKey); v != nil {
		return v.(Span)
	}
	return ""
}

func documentOf(ctx context.Context) string {
	if v := ctx.Value(DocumentKey); v != nil {
		return v.(string)
	}
	return ""
}
