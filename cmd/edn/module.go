package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tedn/debugs"
	"github.com/reusee/tedn/documents"
)

type Module struct {
	dscope.Module
	Documents documents.Module
	Debugs    debugs.Module
}
