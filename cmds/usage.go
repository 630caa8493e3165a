package cmds

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(p.Output)
}

// WriteUsage lists commands sorted by name, aliases after the primary name.
func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	primary := make(map[*Command]string)
	for name, command := range commands {
		if command == nil || command.Hidden || slices.Contains(command.Aliases, name) {
			continue
		}
		primary[command] = name
	}

	var order []*Command
	for command := range primary {
		order = append(order, command)
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(primary[a], primary[b])
	})

	indent := strings.Repeat("  ", depth)
	for _, command := range order {
		names := append([]string{primary[command]}, command.Aliases...)
		line := indent + strings.Join(names, ", ")
		if args := command.argsUsage(); args != "" {
			line += " " + args
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
		if len(command.Subs) > 0 {
			writeCommands(w, command.Subs, depth+1)
		}
	}
}

func (c *Command) argsUsage() string {
	if !c.Func.IsValid() {
		return ""
	}
	var parts []string
	fnType := c.Func.Type()
	for i := range fnType.NumIn() {
		t := fnType.In(i)
		if t.Kind() == reflect.Pointer {
			parts = append(parts, "["+t.Elem().Kind().String()+"]")
		} else {
			parts = append(parts, "<"+t.Kind().String()+">")
		}
	}
	return strings.Join(parts, " ")
}
