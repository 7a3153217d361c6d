package main

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/amplifiers"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/diagnostics"
	"github.com/reusee/intcode/gravity"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/vars"
)

func init() {
	cmds.Define("run", cmds.Func(func() {
		setAction(runProgram)
	}).Desc("run the program with the inputs and print its outputs"))

	cmds.Define("amplify", cmds.Func(func() {
		setAction(amplify)
	}).Desc("run the amplifiers once with the phases and print the final signal"))

	cmds.Define("search", cmds.Func(func() {
		setAction(search)
	}).Desc("try every ordering of the phases and print the highest signal"))

	cmds.Define("diagnose", cmds.Func(func(systemID int64) {
		setAction(func(ctx context.Context, scope dscope.Scope, program *intvm.VM, _ configs.Settings) error {
			return diagnose(ctx, scope, program, systemID)
		})
	}).Desc("run the diagnostic program for a system id and print the diagnostic code"))

	cmds.Define("alarm", cmds.Func(func() {
		setAction(alarm)
	}).Desc("restore the 1202 program alarm state and print memory[0]"))

	cmds.Define("gravity", cmds.Func(func(target int64) {
		setAction(func(ctx context.Context, scope dscope.Scope, program *intvm.VM, _ configs.Settings) error {
			return findNounVerb(ctx, scope, program, target)
		})
	}).Desc("find the noun and verb producing target and print 100*noun+verb"))
}

func feedback(settings configs.Settings) bool {
	return vars.FirstNonZero(*feedbackFlag, settings.Feedback)
}

func phases(settings configs.Settings) []int64 {
	defaults := []int64{0, 1, 2, 3, 4}
	if feedback(settings) {
		defaults = []int64{5, 6, 7, 8, 9}
	}
	return vars.FirstNonEmpty(*phasesFlag, settings.Phases, defaults)
}

func runProgram(ctx context.Context, scope dscope.Scope, program *intvm.VM, settings configs.Settings) error {
	logger := dscope.Get[logs.Logger](scope)
	inputs := vars.FirstNonEmpty(*inputFlags, settings.Inputs)

	vm := program.Clone()
	state, outputs, err := vm.Run(inputs...)
	for _, output := range outputs {
		pt("%d\n", output)
	}
	if *tapFlag {
		tap := dscope.Get[debugs.Tap](scope)
		tap(ctx, "run", debugs.MachineGlobals(vm, state, outputs))
	}
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "run",
		"state", state,
		"pc", vm.PC,
		"inputs", len(inputs),
		"outputs", len(outputs),
	)
	return nil
}

func amplify(ctx context.Context, scope dscope.Scope, program *intvm.VM, settings configs.Settings) error {
	logger := dscope.Get[logs.Logger](scope)
	ps := phases(settings)
	var signal int64
	var err error
	if feedback(settings) {
		signal, err = amplifiers.Feedback(program, ps)
	} else {
		signal, err = amplifiers.Chain(program, ps, 0)
	}
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "amplify",
		"phases", ps,
		"feedback", feedback(settings),
		"signal", signal,
	)
	pt("%d\n", signal)
	return nil
}

func search(ctx context.Context, scope dscope.Scope, program *intvm.VM, settings configs.Settings) error {
	search := dscope.Get[amplifiers.Search](scope)
	result, err := search(ctx, program, phases(settings), feedback(settings))
	if err != nil {
		return err
	}
	pt("%d\n", result.Signal)
	return nil
}

func diagnose(ctx context.Context, scope dscope.Scope, program *intvm.VM, systemID int64) error {
	logger := dscope.Get[logs.Logger](scope)
	code, err := diagnostics.Run(program, systemID)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "diagnose",
		"system", systemID,
		"code", code,
	)
	pt("%d\n", code)
	return nil
}

func alarm(ctx context.Context, scope dscope.Scope, program *intvm.VM, _ configs.Settings) error {
	res, err := gravity.Run(program, 12, 2)
	if err != nil {
		return err
	}
	pt("%d\n", res)
	return nil
}

func findNounVerb(ctx context.Context, scope dscope.Scope, program *intvm.VM, target int64) error {
	logger := dscope.Get[logs.Logger](scope)
	noun, verb, err := gravity.FindNounVerb(program, target, 99)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "gravity",
		"target", target,
		"noun", noun,
		"verb", verb,
	)
	pt("%d\n", gravity.Answer(noun, verb))
	return nil
}
