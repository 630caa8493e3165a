package ednconfigs

import (
	"runtime"

	"github.com/reusee/tedn/cmds"
	"github.com/reusee/tedn/configs"
)

// Concurrency bounds the number of documents processed at the same time.
type Concurrency int

var _ configs.Configurable = Concurrency(0)

func (Concurrency) ConfigKeys() []string {
	return []string{"concurrency"}
}

var concurrencyFlag = cmds.Var[int]("-j")

func init() {
	cmds.Describe("-j", "documents processed concurrently")
}

func (Module) Concurrency(
	loader configs.Loader,
) Concurrency {
	// flag
	if *concurrencyFlag > 0 {
		return Concurrency(*concurrencyFlag)
	}
	// config
	if n := configs.Lookup[Concurrency](loader); n > 0 {
		return n
	}
	return Concurrency(runtime.NumCPU())
}
