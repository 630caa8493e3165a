package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fmt", Func(func(path string) {
	}).Desc("print canonical text"))
	executor.Define("-max-depth", Func(func(n *int) {
	}).Desc("nesting limit"))
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))

	buf := new(bytes.Buffer)
	executor.Output = buf
	executor.PrintUsage()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	expected := []string{
		"-h, help, -help, --help\tprint this usage",
		"-max-depth [int]\tnesting limit",
		"fmt <string>\tprint canonical text",
		"foo\tFOO",
		"  bar\tBAR",
		"  baz\tBAZ",
		"    qux\tQUX",
	}
	if len(lines) != len(expected) {
		t.Fatalf("got %q", lines)
	}
	for i, line := range lines {
		if line != expected[i] {
			t.Fatalf("got %q, expected %q", line, expected[i])
		}
	}
}

func TestDescribe(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-j", Func(func(n int) {}))
	executor.Describe("-j", "concurrency")

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	if !strings.Contains(buf.String(), "-j <int>\tconcurrency\n") {
		t.Fatalf("got %q", buf.String())
	}

	func() {
		defer func() {
			if p := recover(); p == nil {
				t.Fatal("should panic")
			}
		}()
		executor.Describe("-none", "")
	}()
}
