package debugs

import (
	"testing"

	"github.com/reusee/intcode/intvm"
	"go.starlark.net/starlark"
)

func TestMachineGlobals(t *testing.T) {
	vm := intvm.MustParse("1002,4,3,4,33")
	state, outputs, err := vm.Run()
	if err != nil {
		t.Fatal(err)
	}
	globals := Globals(MachineGlobals(vm, state, outputs))

	thread := &starlark.Thread{
		Name: "test",
	}
	for expr, expected := range map[string]string{
		"pc":          "4",
		"state":       `"halted"`,
		"memory[4]":   "99",
		"len(memory)": "5",
		"program":     `"1002,4,3,4,99"`,
		"decode(0)":   `"mul[position immediate position]"`,
		"decode(9)":   `"memory access out of bounds: 9"`,
	} {
		value, err := starlark.Eval(thread, "<test>", expr, globals)
		if err != nil {
			t.Fatalf("%s: %v", expr, err)
		}
		if str := value.String(); str != expected {
			t.Fatalf("%s: got %s", expr, str)
		}
	}
}
