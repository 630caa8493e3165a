package main

import "github.com/reusee/tedn/cmds"

var (
	fmtLocations   = cmds.Collect[string]("fmt")
	checkLocations = cmds.Collect[string]("check")
	tapLocation    = cmds.Var[string]("tap")
	tapScript      = cmds.Var[string]("-e")
	writeBack      = cmds.Switch("-w")
)

func init() {
	cmds.Describe("fmt", "print canonical text of a file, URL or - for stdin")
	cmds.Describe("check", "verify canonical text reads back to the same values")
	cmds.Describe("tap", "read a document and open a starlark session")
	cmds.Describe("-e", "with tap, run the script instead of the session")
	cmds.Describe("-w", "with fmt, write canonical text back to files")
}
