package debugs

import (
	"bytes"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/modes"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	).Call(func(
		tap Tap,
	) {
		vm := intvm.MustParse("3,0,4,0,99")
		state, outputs, err := vm.Run()
		if err != nil {
			t.Fatal(err)
		}
		tap(t.Context(), "test", MachineGlobals(vm, state, outputs))
	})
}
