package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tedn/ednconfigs"
	"github.com/reusee/tedn/modes"
	"github.com/reusee/tedn/sources"
)

func testRun(t *testing.T, stdin string) (code int, stdout, stderr string) {
	t.Helper()
	scope := dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() ednconfigs.ConfigDirs {
			return func() []string {
				return nil
			}
		},
		func() sources.Stdin {
			return strings.NewReader(stdin)
		},
	)
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	code = run(context.Background(), scope, outBuf, errBuf)
	return code, outBuf.String(), errBuf.String()
}

func resetFlags(t *testing.T) {
	t.Cleanup(func() {
		*fmtLocations = nil
		*checkLocations = nil
		*tapLocation = ""
		*tapScript = ""
		*writeBack = false
	})
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.edn")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFmt(t *testing.T) {
	resetFlags(t)
	path := writeFile(t, "{:a  1,:b\n[2 3]}")
	*fmtLocations = []string{path, sources.StdinLocation}
	code, stdout, stderr := testRun(t, "#{ x }")
	if code != 0 {
		t.Fatalf("got %d: %s", code, stderr)
	}
	if stdout != "{:a 1 :b [2 3]}\n#{x}\n" {
		t.Fatalf("got %q", stdout)
	}
}

func TestFmtError(t *testing.T) {
	resetFlags(t)
	*fmtLocations = []string{writeFile(t, "(1 2")}
	code, _, stderr := testRun(t, "")
	if code != 1 {
		t.Fatalf("got %d", code)
	}
	if !strings.Contains(stderr, "unexpected end of input") {
		t.Fatalf("got %s", stderr)
	}
}

func TestFmtWrite(t *testing.T) {
	resetFlags(t)
	path := writeFile(t, "[1,2]")
	*fmtLocations = []string{path}
	*writeBack = true
	code, stdout, stderr := testRun(t, "")
	if code != 0 {
		t.Fatalf("got %d: %s", code, stderr)
	}
	if stdout != path+"\n" {
		t.Fatalf("got %q", stdout)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "[1 2]\n" {
		t.Fatalf("got %q", content)
	}
}

func TestCheck(t *testing.T) {
	resetFlags(t)
	good := writeFile(t, `(:a "b" \c 1.0M)`)
	bad := writeFile(t, "{:a}")
	*checkLocations = []string{good, bad}
	code, stdout, stderr := testRun(t, "")
	if code != 1 {
		t.Fatalf("got %d", code)
	}
	if stdout != good+": ok\n" {
		t.Fatalf("got %q", stdout)
	}
	if !strings.HasPrefix(stderr, bad+": FAIL\n") {
		t.Fatalf("got %q", stderr)
	}
}

func TestTapScript(t *testing.T) {
	resetFlags(t)
	*tapLocation = writeFile(t, `{:name "tedn" :tags [:a :b]} 2`)
	*tapScript = `
print(doc[":name"])
print(len(docs))
print(doc[":tags"][1])
`
	code, stdout, stderr := testRun(t, "")
	if code != 0 {
		t.Fatalf("got %d: %s", code, stderr)
	}
	if stdout != "tedn\n2\n:b\n" {
		t.Fatalf("got %q", stdout)
	}
}

func TestTapMissing(t *testing.T) {
	resetFlags(t)
	*tapLocation = filepath.Join(t.TempDir(), "none.edn")
	*tapScript = "print(1)"
	code, _, _ := testRun(t, "")
	if code != 1 {
		t.Fatalf("got %d", code)
	}
}

func TestCheckUsage(t *testing.T) {
	resetFlags(t)

	// piped stdin selects fmt -
	if err := checkUsage(false); err != nil {
		t.Fatal(err)
	}
	if len(*fmtLocations) != 1 || (*fmtLocations)[0] != sources.StdinLocation {
		t.Fatalf("got %v", *fmtLocations)
	}
	*fmtLocations = nil

	if err := checkUsage(true); err == nil {
		t.Fatal("should error")
	}

	*tapScript = "print(doc)"
	if err := checkUsage(false); err == nil || !strings.Contains(err.Error(), "-e requires tap") {
		t.Fatalf("got %v", err)
	}
	*tapLocation = "a.edn"
	if err := checkUsage(false); err != nil {
		t.Fatal(err)
	}
	*tapLocation = ""
	*tapScript = ""

	*writeBack = true
	if err := checkUsage(false); err == nil || !strings.Contains(err.Error(), "-w requires fmt") {
		t.Fatalf("got %v", err)
	}
	if len(*fmtLocations) != 0 {
		t.Fatalf("got %v", *fmtLocations)
	}

	*checkLocations = []string{"a.edn"}
	if err := checkUsage(false); err == nil || !strings.Contains(err.Error(), "-w requires fmt") {
		t.Fatalf("got %v", err)
	}
	*checkLocations = nil

	*fmtLocations = []string{"a.edn", sources.StdinLocation}
	if err := checkUsage(false); err == nil || !strings.Contains(err.Error(), "-w cannot write to -") {
		t.Fatalf("got %v", err)
	}
	*fmtLocations = []string{"a.edn", "https://example.com/b.edn"}
	if err := checkUsage(false); err == nil || !strings.Contains(err.Error(), "-w cannot write to https://") {
		t.Fatalf("got %v", err)
	}
	*fmtLocations = []string{"a.edn"}
	if err := checkUsage(false); err != nil {
		t.Fatal(err)
	}
}
