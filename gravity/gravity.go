package gravity

import (
	"errors"
	"fmt"

	"github.com/reusee/intcode/intvm"
)

var ErrNotFound = errors.New("no noun and verb produce the target")

const (
	nounAddr = 1
	verbAddr = 2
)

// Run patches noun and verb into a copy of program, runs it without input, and returns memory[0].
func Run(program *intvm.VM, noun, verb int64) (int64, error) {
	vm := program.Clone()
	if err := vm.Write(nounAddr, noun); err != nil {
		return 0, err
	}
	if err := vm.Write(verbAddr, verb); err != nil {
		return 0, err
	}
	if _, err := vm.Execute(); err != nil {
		return 0, err
	}
	return vm.Read(0)
}

// FindNounVerb tries every noun, then every verb, in [0, limit]. Trials that fail are skipped.
func FindNounVerb(program *intvm.VM, target int64, limit int64) (noun, verb int64, err error) {
	for noun = 0; noun <= limit; noun++ {
		for verb = 0; verb <= limit; verb++ {
			res, err := Run(program, noun, verb)
			if err != nil {
				continue
			}
			if res == target {
				return noun, verb, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("%w: %d", ErrNotFound, target)
}

func Answer(noun, verb int64) int64 {
	return 100*noun + verb
}
