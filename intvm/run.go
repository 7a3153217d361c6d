package intvm

import "fmt"

// Run executes until the machine halts or needs an input that inputs does not hold.
// On Suspended the program counter stays at the input instruction, so a later call
// with more inputs re-decodes it. Outputs hold only the values emitted during this call.
func (v *VM) Run(inputs ...int64) (State, []int64, error) {
	var outputs []int64
	for {
		pc := v.PC
		inst, err := v.Decode()
		if err != nil {
			return 0, outputs, v.fail(pc, err)
		}

		switch inst.Op {

		case OpAdd, OpMul, OpLessThan, OpEquals:
			a, err := v.load(pc, inst, 0)
			if err != nil {
				return 0, outputs, v.fail(pc, err)
			}
			b, err := v.load(pc, inst, 1)
			if err != nil {
				return 0, outputs, v.fail(pc, err)
			}
			dst, err := v.target(pc, inst, 2)
			if err != nil {
				return 0, outputs, v.fail(pc, err)
			}
			var res int64
			switch inst.Op {
			case OpAdd:
				res = a + b
			case OpMul:
				res = a * b
			case OpLessThan:
				if a < b {
					res = 1
				}
			case OpEquals:
				if a == b {
					res = 1
				}
			}
			v.Memory[dst] = res
			v.PC = pc + 4

		case OpInput:
			dst, err := v.target(pc, inst, 0)
			if err != nil {
				return 0, outputs, v.fail(pc, err)
			}
			if len(inputs) == 0 {
				return Suspended, outputs, nil
			}
			v.Memory[dst] = inputs[0]
			inputs = inputs[1:]
			v.PC = pc + 2

		case OpOutput:
			a, err := v.load(pc, inst, 0)
			if err != nil {
				return 0, outputs, v.fail(pc, err)
			}
			outputs = append(outputs, a)
			v.PC = pc + 2

		case OpJumpIfTrue, OpJumpIfFalse:
			a, err := v.load(pc, inst, 0)
			if err != nil {
				return 0, outputs, v.fail(pc, err)
			}
			b, err := v.load(pc, inst, 1)
			if err != nil {
				return 0, outputs, v.fail(pc, err)
			}
			if (a != 0) == (inst.Op == OpJumpIfTrue) {
				if b < 0 {
					return 0, outputs, v.fail(pc, addressError(ErrInvalidAddress, b))
				}
				v.PC = int(b)
			} else {
				v.PC = pc + 3
			}

		case OpHalt:
			return Halted, outputs, nil

		}
	}
}

// Execute runs a machine that is not expected to wait for input.
func (v *VM) Execute(inputs ...int64) ([]int64, error) {
	state, outputs, err := v.Run(inputs...)
	if err != nil {
		return outputs, err
	}
	if state == Suspended {
		return outputs, fmt.Errorf("pc %d: %w", v.PC, ErrInputExhausted)
	}
	return outputs, nil
}

func (v *VM) param(pc int, i int) (int64, error) {
	return v.Read(int64(pc + 1 + i))
}

// load fetches the value of parameter i.
func (v *VM) load(pc int, inst Instruction, i int) (int64, error) {
	raw, err := v.param(pc, i)
	if err != nil {
		return 0, err
	}
	if inst.Modes[i] == ModeImmediate {
		return raw, nil
	}
	return v.Read(raw)
}

// target resolves parameter i as a write address.
func (v *VM) target(pc int, inst Instruction, i int) (int, error) {
	if inst.Modes[i] == ModeImmediate {
		return 0, fmt.Errorf("%w: parameter %d", ErrInvalidImmediateParameter, i+1)
	}
	raw, err := v.param(pc, i)
	if err != nil {
		return 0, err
	}
	return v.index(raw)
}

func (v *VM) fail(pc int, err error) error {
	word, _ := v.Read(int64(pc))
	return &ExecError{
		PC:   pc,
		Word: word,
		Err:  err,
	}
}
