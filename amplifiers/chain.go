package amplifiers

import (
	"fmt"

	"github.com/reusee/intcode/intvm"
)

// Chain runs one fresh copy of program per phase in series.
// Each copy gets its phase and the previous signal as inputs; its first output is the next signal.
func Chain(program *intvm.VM, phases []int64, signal int64) (int64, error) {
	if len(phases) == 0 {
		return 0, ErrNoAmplifiers
	}
	for i, phase := range phases {
		outputs, err := program.Clone().Execute(phase, signal)
		if err != nil {
			return 0, fmt.Errorf("amplifier %d: %w", i, err)
		}
		if len(outputs) == 0 {
			return 0, fmt.Errorf("amplifier %d: %w", i, ErrMissingOutput)
		}
		signal = outputs[0]
	}
	return signal, nil
}
