package sources

import (
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/tedn/logs"
	"github.com/reusee/tedn/nets"
)

type Module struct {
	dscope.Module
	Logs logs.Module
	Nets nets.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)
