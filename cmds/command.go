package cmds

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotFunc     = errors.New("command must be a function")
	ErrBadReturn   = errors.New("command must return nothing or an error")
	ErrUnknownWord = errors.New("unknown command")
	ErrMissingArg  = errors.New("missing argument")
)

// Command is a word on the command line.
// A Func command consumes one following word per parameter; a Sub command switches to its own words.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("%w, got %T", ErrNotFunc, fn))
	}
	fnType := fnValue.Type()
	switch {
	case fnType.NumOut() > 1,
		fnType.NumOut() == 1 && fnType.Out(0) != errorType:
		panic(fmt.Errorf("%w, got %v", ErrBadReturn, fnType))
	}
	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
