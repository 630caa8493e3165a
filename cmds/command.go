package cmds

import (
	"fmt"
	"reflect"
)

// Command is a function taking its arguments from the command line, a set of
// sub commands enabled after it, or both.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	// Hidden commands are accepted but not listed in usage.
	Hidden bool
}

func (c *Command) Hide() *Command {
	c.Hidden = true
	return c
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func (c *Command) numArgs() int {
	if !c.Func.IsValid() {
		return 0
	}
	return c.Func.Type().NumIn()
}

// Func wraps fn, which may return nothing or an error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if err := checkFunc(fnValue); err != nil {
		panic(fmt.Errorf("%T: %w", fn, err))
	}
	return &Command{
		Func: fnValue,
	}
}

func checkFunc(fn reflect.Value) error {
	if fn.Kind() != reflect.Func {
		return fmt.Errorf("must be function")
	}
	switch t := fn.Type(); t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) != errorType {
			return fmt.Errorf("must return error")
		}
	default:
		return fmt.Errorf("must return 0 or 1 value")
	}
	return nil
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
