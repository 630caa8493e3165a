package cmds

// GlobalExecutor holds the commands and flags defined at package init time.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Describe(name string, desc string) {
	GlobalExecutor.Describe(name, desc)
}
