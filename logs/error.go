package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan attaches the span and document of ctx to err.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if span := spanOf(ctx); span != "" {
		err = errors.Join(err, fmt.Errorf("span: %s", span))
	}
	if document := documentOf(ctx); document != "" {
		err = errors.Join(err, fmt.Errorf("document: %s", document))
	}
	return err
}
