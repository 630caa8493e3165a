package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tedn/cmds"
	"github.com/reusee/tedn/configs"
	"github.com/reusee/tedn/debugs"
	"github.com/reusee/tedn/documents"
	"github.com/reusee/tedn/edn"
	"github.com/reusee/tedn/ednconfigs"
	"github.com/reusee/tedn/logs"
	"github.com/reusee/tedn/modes"
	"github.com/reusee/tedn/sources"
	"golang.org/x/term"
)

func main() {
	if err := cmds.GlobalExecutor.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	if err := checkUsage(term.IsTerminal(int(os.Stdin.Fd()))); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	os.Exit(run(context.Background(), scope, os.Stdout, os.Stderr))
}

// checkUsage rejects flag combinations that cannot take effect.
// With no command and piped stdin, it selects "fmt -".
func checkUsage(stdinIsTerminal bool) error {
	if *tapScript != "" && *tapLocation == "" {
		return fmt.Errorf("-e requires tap <location>")
	}
	if len(*fmtLocations) == 0 &&
		len(*checkLocations) == 0 &&
		*tapLocation == "" {
		if *writeBack {
			return fmt.Errorf("-w requires fmt <file>")
		}
		if stdinIsTerminal {
			return fmt.Errorf("no command")
		}
		*fmtLocations = []string{sources.StdinLocation}
	}
	if *writeBack {
		if len(*fmtLocations) == 0 {
			return fmt.Errorf("-w requires fmt <file>")
		}
		for _, location := range *fmtLocations {
			if sources.KindOf(location) != sources.KindFile {
				return fmt.Errorf("-w cannot write to %s", location)
			}
		}
	}
	return nil
}

func run(ctx context.Context, scope dscope.Scope, stdout, stderr io.Writer) (code int) {
	scope.Call(func(
		loader configs.Loader,
		logger logs.Logger,
	) {
		if err := loader.Err(); err != nil {
			fmt.Fprintf(stderr, "config: %v\n", err)
			code = 1
			return
		}
		logger.DebugContext(ctx, "start",
			"fmt", len(*fmtLocations),
			"check", len(*checkLocations),
			"tap", *tapLocation,
		)
	})
	if code != 0 {
		return
	}

	if len(*fmtLocations) > 0 {
		if *writeBack {
			code = max(code, rewriteAll(ctx, scope, stdout, stderr))
		} else {
			code = max(code, formatAll(ctx, scope, stdout, stderr))
		}
	}
	if len(*checkLocations) > 0 {
		code = max(code, checkAll(ctx, scope, stdout, stderr))
	}
	if *tapLocation != "" {
		code = max(code, tap(ctx, scope, stdout, stderr))
	}
	return
}

func formatAll(ctx context.Context, scope dscope.Scope, stdout, stderr io.Writer) (code int) {
	scope.Call(func(
		formatAll documents.FormatAll,
	) {
		for _, result := range formatAll(ctx, *fmtLocations) {
			if result.Err != nil {
				fmt.Fprintln(stderr, result.Err)
				code = 1
				continue
			}
			io.WriteString(stdout, result.Text)
		}
	})
	return
}

func rewriteAll(ctx context.Context, scope dscope.Scope, stdout, stderr io.Writer) (code int) {
	scope.Call(func(
		rewriteAll documents.RewriteAll,
	) {
		for _, result := range rewriteAll(ctx, *fmtLocations) {
			if result.Err != nil {
				fmt.Fprintln(stderr, result.Err)
				code = 1
				continue
			}
			if result.Text != "" {
				fmt.Fprintln(stdout, result.Text)
			}
		}
	})
	return
}

func checkAll(ctx context.Context, scope dscope.Scope, stdout, stderr io.Writer) (code int) {
	scope.Call(func(
		checkAll documents.CheckAll,
	) {
		for _, result := range checkAll(ctx, *checkLocations) {
			if result.Err != nil {
				fmt.Fprintf(stderr, "%s: FAIL\n%v\n", result.Location, result.Err)
				code = 1
				continue
			}
			fmt.Fprintf(stdout, "%s: ok\n", result.Location)
		}
	})
	return
}

func tap(ctx context.Context, scope dscope.Scope, stdout, stderr io.Writer) (code int) {
	scope.Call(func(
		parse documents.Parse,
		maxDepth ednconfigs.MaxDepth,
		tap debugs.Tap,
		eval debugs.Eval,
	) {
		doc, err := parse(ctx, *tapLocation)
		if err != nil {
			fmt.Fprintln(stderr, err)
			code = 1
			return
		}

		globals := map[string]any{
			"location": doc.Location,
			"doc":      doc.Nodes[0],
			"docs":     doc.Nodes,
			"format": func(text string) (string, error) {
				nodes, err := edn.ReadAll([]byte(text), maxDepth.ReadOptions("format")...)
				if err != nil {
					return "", err
				}
				return documents.Document{Nodes: nodes}.Canonical(), nil
			},
		}

		if *tapScript != "" {
			if err := eval(ctx, doc.Location, globals, *tapScript, stdout); err != nil {
				fmt.Fprintln(stderr, err)
				code = 1
			}
			return
		}
		tap(ctx, doc.Location, globals)
	})
	return
}
