package documents

import (
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/tedn/ednconfigs"
	"github.com/reusee/tedn/logs"
	"github.com/reusee/tedn/sources"
)

type Module struct {
	dscope.Module
	Configs ednconfigs.Module
	Logs    logs.Module
	Sources sources.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)
