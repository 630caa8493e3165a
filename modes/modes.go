package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

// ModuleForTest switches providers to local, side-effect free behavior.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
