package ednconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tedn/configs"
	"github.com/reusee/tedn/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
