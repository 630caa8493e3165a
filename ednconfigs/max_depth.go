package ednconfigs

import (
	"github.com/reusee/tedn/cmds"
	"github.com/reusee/tedn/configs"
	"github.com/reusee/tedn/edn"
)

// MaxDepth bounds nesting when reading documents.
type MaxDepth int

var _ configs.Configurable = MaxDepth(0)

func (MaxDepth) ConfigKeys() []string {
	return []string{"max_depth"}
}

var maxDepthFlag = cmds.Var[int]("-max-depth")

func init() {
	cmds.Describe("-max-depth", "nesting limit")
}

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	// flag
	if *maxDepthFlag > 0 {
		return MaxDepth(*maxDepthFlag)
	}
	// config
	if n := configs.Lookup[MaxDepth](loader); n > 0 {
		return n
	}
	return edn.DefaultMaxDepth
}

// ReadOptions returns the core read options for a named document.
func (m MaxDepth) ReadOptions(name string) []edn.ReadOption {
	return []edn.ReadOption{
		edn.MaxDepth(int(m)),
		edn.SourceName(name),
	}
}
