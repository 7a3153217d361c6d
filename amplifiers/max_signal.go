package amplifiers

import (
	"fmt"
	"slices"

	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/permutations"
)

type Trial struct {
	Phases []int64
	Signal int64
}

type Result struct {
	Signal int64
	Phases []int64
	Trials []Trial
}

// MaxSignal tries every ordering of phases and keeps the highest final signal.
// The first ordering in lexicographic order wins ties.
func MaxSignal(program *intvm.VM, phases []int64, feedback bool) (result Result, err error) {
	if len(phases) == 0 {
		return result, ErrNoAmplifiers
	}
	s := slices.Clone(phases)
	slices.Sort(s)
	for {
		var signal int64
		if feedback {
			signal, err = Feedback(program, s)
		} else {
			signal, err = Chain(program, s, 0)
		}
		if err != nil {
			return result, fmt.Errorf("phases %v: %w", s, err)
		}

		trial := Trial{
			Phases: slices.Clone(s),
			Signal: signal,
		}
		if len(result.Trials) == 0 || signal > result.Signal {
			result.Signal = signal
			result.Phases = trial.Phases
		}
		result.Trials = append(result.Trials, trial)

		if !permutations.Next(s) {
			break
		}
	}
	return result, nil
}
