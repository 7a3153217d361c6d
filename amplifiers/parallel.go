package amplifiers

import (
	"fmt"
	"sync"

	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/permutations"
	"github.com/reusee/intcode/syncs"
)

// MaxSignalParallel is MaxSignal with up to parallel orderings evaluated at once.
// Trials and tie-breaking are identical to MaxSignal.
func MaxSignalParallel(program *intvm.VM, phases []int64, feedback bool, parallel int) (result Result, err error) {
	if len(phases) == 0 {
		return result, ErrNoAmplifiers
	}

	var orderings [][]int64
	for s := range permutations.All(phases) {
		orderings = append(orderings, s)
	}

	trials := make([]Trial, len(orderings))
	errs := make([]error, len(orderings))
	sem := syncs.NewSemaphore(parallel)
	var wg sync.WaitGroup
	for i, s := range orderings {
		sem.Go(&wg, func() {
			var signal int64
			var err error
			if feedback {
				signal, err = Feedback(program, s)
			} else {
				signal, err = Chain(program, s, 0)
			}
			trials[i] = Trial{
				Phases: s,
				Signal: signal,
			}
			errs[i] = err
		})
	}
	wg.Wait()

	for i, trial := range trials {
		if errs[i] != nil {
			return Result{}, fmt.Errorf("phases %v: %w", trial.Phases, errs[i])
		}
		if i == 0 || trial.Signal > result.Signal {
			result.Signal = trial.Signal
			result.Phases = trial.Phases
		}
	}
	result.Trials = trials
	return result, nil
}
