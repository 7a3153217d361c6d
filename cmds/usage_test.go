package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("amplify", Sub(map[string]*Command{
		"phases": Func(func(phases []int64) {
		}).Desc("PHASES"),
		"search": Sub(map[string]*Command{
			"feedback": Func(func() {}).Desc("FEEDBACK"),
		}).Desc("SEARCH"),
	}).Desc("AMPLIFY"))
	executor.Define("diagnose", Func(func(id *int64) {}).Desc("DIAGNOSE"))

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	out := buf.String()
	for _, expected := range []string{
		"--help, -h, -help, help\tprint this usage",
		"amplify\tAMPLIFY",
		"  phases <[]int64>\tPHASES",
		"    feedback\tFEEDBACK",
		"diagnose <int64?>\tDIAGNOSE",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("%q not in %s", expected, out)
		}
	}
}
