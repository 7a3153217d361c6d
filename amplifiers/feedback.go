package amplifiers

import (
	"fmt"

	"github.com/reusee/intcode/intvm"
)

// Feedback wires one copy of program per phase into a ring and returns the last output of
// the last amplifier once it halts. The signal entering the first amplifier starts at 0.
func Feedback(program *intvm.VM, phases []int64) (int64, error) {
	if len(phases) == 0 {
		return 0, ErrNoAmplifiers
	}

	amps := make([]*intvm.VM, len(phases))
	for i, phase := range phases {
		amp := program.Clone()
		state, _, err := amp.Run(phase)
		if err != nil {
			return 0, fmt.Errorf("prime amplifier %d: %w", i, err)
		}
		if state == intvm.Halted {
			return 0, fmt.Errorf("prime amplifier %d: %w", i, ErrUnexpectedHalt)
		}
		amps[i] = amp
	}

	last := len(amps) - 1
	halted := make([]bool, len(amps))
	var signal int64
	for i := 0; ; i = (i + 1) % len(amps) {
		if halted[i] {
			return 0, fmt.Errorf("amplifier %d: %w", i, ErrUnexpectedHalt)
		}
		state, outputs, err := amps[i].Run(signal)
		if err != nil {
			return 0, fmt.Errorf("amplifier %d: %w", i, err)
		}
		if len(outputs) == 0 {
			return 0, fmt.Errorf("amplifier %d: %w", i, ErrMissingOutput)
		}
		signal = outputs[len(outputs)-1]
		if state == intvm.Halted {
			if i == last {
				return signal, nil
			}
			halted[i] = true
		}
	}
}

func FeedbackText(text string, phases []int64) (int64, error) {
	program, err := intvm.Parse(text)
	if err != nil {
		return 0, err
	}
	return Feedback(program, phases)
}
