package debugs

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/reusee/tedn/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

func globalsToStarlark(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}

// Tap opens an interactive starlark session with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		thread.SetLocal("context", ctx)
		repl.REPLOptions(fileOptions, thread, globalsToStarlark(globals))
	}
}

// Eval runs a starlark script with globals bound. print output goes to out.
type Eval func(ctx context.Context, what string, globals map[string]any, script string, out io.Writer) error

func (Module) Eval(
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, what string, globals map[string]any, script string, out io.Writer) error {
		logger.DebugContext(ctx, "eval: "+what)
		thread := &starlark.Thread{
			Name: what,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(out, msg)
			},
		}
		thread.SetLocal("context", ctx)
		if _, err := starlark.ExecFileOptions(
			fileOptions,
			thread,
			what,
			script,
			globalsToStarlark(globals),
		); err != nil {
			return fmt.Errorf("eval %s: %w", what, err)
		}
		return nil
	}
}
