package cmds

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var systemID int64
	executor.Define("+air", Func(func() {
		systemID = 1
	}))
	executor.Define("system", Func(func(i int64) {
		systemID = i
	}))

	if err := executor.Execute([]string{
		"+air",
	}); err != nil {
		t.Fatal(err)
	}
	if systemID != 1 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"system", "5",
	}); err != nil {
		t.Fatal(err)
	}
	if systemID != 5 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"thermal",
	})
	if !errors.Is(err, ErrUnknownWord) || !strings.Contains(err.Error(), "thermal") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"system",
	})
	if !errors.Is(err, ErrMissingArg) {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var feedback bool
	var target int64
	executor.Define("amplify", Sub(map[string]*Command{
		"feedback": Func(func() {
			feedback = true
		}),
		"target": Func(func(i int64) {
			target = i
		}),
	}))

	if err := executor.Execute([]string{
		"amplify",
		"feedback",
		"target", "19690720",
	}); err != nil {
		t.Fatal(err)
	}

	if !feedback {
		t.Fatal()
	}
	if target != 19690720 {
		t.Fatal()
	}

}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("chain", Sub(map[string]*Command{
		"phases": nil,
	}))
	executor.Define("ring", Sub(map[string]*Command{
		"phases": nil,
	}))
	err := executor.Execute([]string{"chain", "ring"})
	if !strings.Contains(err.Error(), "duplicated sub command: ring phases") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var noun int64
	var path string
	executor.Define("gravity", Func(func(arg *int64, arg2 *string) {
		noun = *arg
		path = *arg2
	}))

	err := executor.Execute([]string{"gravity", "12", "gravity"})
	if err != nil {
		t.Fatal(err)
	}
	if noun != 12 {
		t.Fatal()
	}
	if path != "gravity" {
		t.Fatal()
	}

	err = executor.Execute([]string{"gravity", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if noun != 99 {
		t.Fatal()
	}
	if path != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"gravity"})
	if err != nil {
		t.Fatal(err)
	}
	if noun != 0 {
		t.Fatal()
	}
	if path != "" {
		t.Fatal()
	}

}

func TestSliceArgument(t *testing.T) {
	executor := NewExecutor()
	var phases []int64
	executor.Define("phases", Func(func(v []int64) {
		phases = v
	}))
	if err := executor.Execute([]string{"phases", "9, 8,7,6,5"}); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprint(phases); str != "[9 8 7 6 5]" {
		t.Fatalf("got %s", str)
	}

	err := executor.Execute([]string{"phases", "1,x"})
	if err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}
}

func TestFuncChecks(t *testing.T) {
	for _, fn := range []any{
		42,
		func() (int, error) { return 0, nil },
		func() int { return 0 },
	} {
		func() {
			defer func() {
				p := recover()
				err, ok := p.(error)
				if !ok {
					t.Fatalf("got %v", p)
				}
				if !errors.Is(err, ErrNotFunc) && !errors.Is(err, ErrBadReturn) {
					t.Fatalf("got %v", err)
				}
			}()
			Func(fn)
		}()
	}
}
