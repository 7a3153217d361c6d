package main

import (
	"context"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/modes"
	"github.com/reusee/intcode/storages"
	"github.com/reusee/intcode/vars"
)

var (
	programFlag  = cmds.Var[string]("program", "program file, - for stdin")
	configFlags  = cmds.Collect[string]("config", "cue settings file, earlier files take precedence")
	inputFlags   = cmds.Collect[int64]("input", "append one program input")
	phasesFlag   = cmds.Var[[]int64]("phases", "comma separated phase settings")
	dbFlag       = cmds.Var[string]("db", "sqlite file recording searched signals")
	feedbackFlag = cmds.Switch("-feedback", "connect the last amplifier back to the first")
	tapFlag      = cmds.Switch("-tap", "open a starlark shell on the machine after run")
)

type Action func(ctx context.Context, scope dscope.Scope, program *intvm.VM, settings configs.Settings) error

var action Action

func setAction(a Action) {
	action = a
}

func main() {
	cmds.Execute(os.Args[1:])
	if action == nil {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
	ctx := context.Background()

	settings, err := configs.LoadSettings(*configFlags)
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		func() storages.DBPath {
			return storages.DBPath(vars.FirstNonZero(*dbFlag, settings.DB))
		},
	)

	scope.Call(func(
		logger logs.Logger,
	) {
		path := vars.FirstNonZero(*programFlag, settings.Program, "-")
		program, err := loadProgram(path)
		if err != nil {
			logger.ErrorContext(ctx, "load program", "path", path, "error", wrap(err))
			os.Exit(-1)
		}
		logger.DebugContext(ctx, "program loaded", "path", path, "words", len(program.Memory))

		if err := action(ctx, scope, program, settings); err != nil {
			logger.ErrorContext(ctx, "failed", "error", wrap(err))
			os.Exit(-1)
		}
	})
}

func loadProgram(path string) (*intvm.VM, error) {
	var content []byte
	var err error
	if path == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return intvm.Parse(string(content))
}
