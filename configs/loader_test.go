package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
str?: string
name?: string
num?: int
list?: [...int]
`

const testConfig = `
str: "bar"
list: [1, 2, 3]
`

func writeConfig(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "test.cue", testConfig),
	}, testSchema)

	var str string
	err := loader.AssignFirst("str", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	err = loader.AssignFirst("list", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "test.cue", testConfig),
		writeConfig(t, "test2.cue", `str: "foo"`),
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("str") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

	if len(loader.Paths()) != 2 {
		t.Fatalf("got %v", loader.Paths())
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "bad.cue", `unknown_field: "foo"`),
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	if loader.Err() == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		filepath.Join(t.TempDir(), "none.cue"),
	}, "")
	if err := loader.Err(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}

func TestZeroLoader(t *testing.T) {
	var loader Loader
	if err := loader.AssignFirst("str", new(string)); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
	if First[string](loader, "str") != "" {
		t.Fatal()
	}
}
