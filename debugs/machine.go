package debugs

import (
	"github.com/reusee/intcode/intvm"
)

// MachineGlobals exposes a machine to a tap session.
// decode(addr) describes the instruction at addr without moving the program counter.
func MachineGlobals(vm *intvm.VM, state intvm.State, outputs []int64) map[string]any {
	return map[string]any{
		"memory":  vm.Memory,
		"pc":      vm.PC,
		"state":   state,
		"outputs": outputs,
		"program": vm.String(),
		"decode": func(addr int) string {
			word, err := vm.Read(int64(addr))
			if err != nil {
				return err.Error()
			}
			inst, err := intvm.DecodeWord(word)
			if err != nil {
				return err.Error()
			}
			return inst.String()
		},
	}
}
