package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"strings"
)

// Executor maps command-line words to commands. A command consumes the words
// following it as its arguments, then execution continues with the next word.
type Executor struct {
	commands map[string]*Command
	Output   io.Writer
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
		Output:   os.Stderr,
	}

	ret.Define("-h", Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))

	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

// Describe sets the description of an already defined command.
func (p *Executor) Describe(name string, desc string) {
	command, ok := p.commands[name]
	if !ok {
		panic(fmt.Errorf("no such command %s", name))
	}
	command.Desc(desc)
}

// Execute runs args in order. "name=value" is accepted for commands taking one argument.
func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for len(args) > 0 {
		word := strings.TrimSpace(args[0])
		args = args[1:]

		name := word
		command, ok := commands[name]
		if !ok {
			if n, value, found := strings.Cut(word, "="); found {
				if c, ok := commands[n]; ok && c.numArgs() == 1 {
					name, command = n, c
					args = append([]string{value}, args...)
				}
			}
		}
		if command == nil {
			return fmt.Errorf("unknown command: %s", word)
		}

		var err error
		args, err = command.call(name, args)
		if err != nil {
			return err
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, sub := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = sub
			}
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

// call invokes the command's function with arguments taken from args and returns the rest.
func (c *Command) call(name string, args []string) ([]string, error) {
	if !c.Func.IsValid() {
		return args, nil
	}
	fnType := c.Func.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := parseArg(fnType.In(i), args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	if rets := c.Func.Call(callArgs); len(rets) > 0 && !rets[0].IsNil() {
		return nil, rets[0].Interface().(error)
	}
	return args, nil
}
