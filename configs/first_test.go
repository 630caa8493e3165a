package configs

import (
	"strings"
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "test.cue", testConfig),
	}, testSchema)

	str := First[string](loader, "str")
	if str != "bar" {
		t.Fatalf("got %v", str)
	}

	if n := First[int](loader, "num"); n != 0 {
		t.Fatalf("got %v", n)
	}
}

type testName string

func (testName) ConfigKeys() []string {
	return []string{"name", "str"}
}

func TestLookup(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "test.cue", testConfig),
	}, testSchema)
	if name := Lookup[testName](loader); name != "bar" {
		t.Fatalf("got %v", name)
	}

	loader = NewLoader([]string{
		writeConfig(t, "test.cue", testConfig+"\nname: \"baz\"\n"),
	}, testSchema)
	if name := Lookup[testName](loader); name != "baz" {
		t.Fatalf("got %v", name)
	}

	loader = NewLoader(nil, testSchema)
	if name := Lookup[testName](loader); name != "" {
		t.Fatalf("got %v", name)
	}
}

func TestFirstDecodeError(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "test.cue", testConfig),
	}, testSchema)
	defer func() {
		p := recover()
		if p == nil {
			t.Fatal("should panic")
		}
		if err, ok := p.(error); !ok || !strings.Contains(err.Error(), "config str") {
			t.Fatalf("got %v", p)
		}
	}()
	First[int](loader, "str")
}
