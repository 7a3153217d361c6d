package diagnostics

import (
	"errors"
	"fmt"

	"github.com/reusee/intcode/intvm"
)

var ErrNoOutput = errors.New("no diagnostic output")

// Run feeds systemID to a copy of program and returns the diagnostic code, the last value it outputs.
// Earlier outputs are test results; Failed reports the ones that are not zero.
func Run(program *intvm.VM, systemID int64) (code int64, err error) {
	outputs, err := program.Clone().Execute(systemID)
	if err != nil {
		return 0, err
	}
	if len(outputs) == 0 {
		return 0, ErrNoOutput
	}
	if failed := Failed(outputs); len(failed) > 0 {
		return outputs[len(outputs)-1], fmt.Errorf("%d failed tests before diagnostic code: %v", len(failed), failed)
	}
	return outputs[len(outputs)-1], nil
}

func RunText(text string, systemID int64) (int64, error) {
	program, err := intvm.Parse(text)
	if err != nil {
		return 0, err
	}
	return Run(program, systemID)
}

// Failed returns the indexes of non-zero test results, every output but the last.
func Failed(outputs []int64) (ret []int) {
	if len(outputs) == 0 {
		return nil
	}
	for i, output := range outputs[:len(outputs)-1] {
		if output != 0 {
			ret = append(ret, i)
		}
	}
	return
}
