package amplifiers

import (
	"context"
	"runtime"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/storages"
)

type Module struct {
	dscope.Module
	Logs     logs.Module
	Storages storages.Module
}

// Parallel is the number of phase orderings a search evaluates at once.
type Parallel int

func (Module) Parallel() Parallel {
	return Parallel(runtime.NumCPU())
}

type Search func(ctx context.Context, program *intvm.VM, phases []int64, feedback bool) (Result, error)

func (Module) Search(
	logger logs.Logger,
	newSpan logs.NewSpan,
	saveSignals storages.SaveSignals,
	parallel Parallel,
) Search {
	return func(ctx context.Context, program *intvm.VM, phases []int64, feedback bool) (Result, error) {
		ctx, _ = newSpan(ctx, "")
		logger.InfoContext(ctx, "search",
			"phases", phases,
			"feedback", feedback,
			"words", len(program.Memory),
			"parallel", parallel,
		)

		result, err := MaxSignalParallel(program, phases, feedback, int(parallel))
		if err != nil {
			return result, logs.WrapSpan(ctx, err)
		}
		logger.InfoContext(ctx, "max signal",
			"signal", result.Signal,
			"phases", result.Phases,
			"trials", len(result.Trials),
		)

		key := storages.ProgramKey(program.String())
		signals := make([]storages.Signal, 0, len(result.Trials))
		for _, trial := range result.Trials {
			signals = append(signals, storages.Signal{
				Program:  key,
				Phases:   trial.Phases,
				Feedback: feedback,
				Value:    trial.Signal,
			})
		}
		if err := saveSignals(ctx, signals); err != nil {
			return result, logs.WrapSpan(ctx, err)
		}

		return result, nil
	}
}
