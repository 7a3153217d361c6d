package cmds

import (
	"fmt"
	"strings"
	"testing"
)

func TestVar(t *testing.T) {
	program := Var[string]("TestVarProgram", "program path")
	target := Var[int64]("TestVarTarget", "gravity target")
	GlobalExecutor.MustExecute([]string{
		"TestVarProgram", "day2.txt",
		"TestVarTarget", "19690720",
	})
	if *program != "day2.txt" {
		t.Fatal()
	}
	if *target != 19690720 {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"TestVarTarget.",
	})
	if *target != 0 {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	feedback := Switch("TestSwitch", "feedback mode")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if *feedback != true {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *feedback != false {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	inputs := Collect[int64]("TestCollect", "program input")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "1",
		"TestCollect", "-5",
	})
	if str := fmt.Sprintf("%v", *inputs); str != "[1 -5]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Path string
	v := Var[Path]("TestTypedVar", "typed path")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "day7.txt",
	})
	if *v != "day7.txt" {
		t.Fatal()
	}
}

func TestHelperUsage(t *testing.T) {
	Switch("TestHelperUsage", "tap the machine")
	buf := new(strings.Builder)
	GlobalExecutor.WriteUsage(buf)
	for _, expected := range []string{
		"TestHelperUsage\ttap the machine",
		"!TestHelperUsage\tdisable TestHelperUsage",
	} {
		if !strings.Contains(buf.String(), expected) {
			t.Fatalf("%q not in %s", expected, buf.String())
		}
	}
}
