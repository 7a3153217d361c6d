package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeUsage(w, p.commands, 0)
}

func writeUsage(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command value, print each command once under its first sorted name
	names := make(map[*Command][]string)
	var order []*Command
	keys := make([]string, 0, len(commands))
	for name := range commands {
		keys = append(keys, name)
	}
	slices.Sort(keys)
	for _, name := range keys {
		cmd := commands[name]
		if cmd == nil {
			continue
		}
		if _, ok := names[cmd]; !ok {
			order = append(order, cmd)
		}
		names[cmd] = append(names[cmd], name)
	}

	indent := strings.Repeat("  ", depth)
	for _, cmd := range order {
		line := indent + strings.Join(names[cmd], ", ")
		if cmd.Func.IsValid() {
			for i, max := 0, cmd.Func.Type().NumIn(); i < max; i++ {
				line += " <" + argName(cmd.Func.Type().In(i).String()) + ">"
			}
		}
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
		if len(cmd.Subs) > 0 {
			writeUsage(w, cmd.Subs, depth+1)
		}
	}
}

func argName(typ string) string {
	if strings.HasPrefix(typ, "*") {
		return strings.TrimPrefix(typ, "*") + "?"
	}
	return typ
}
