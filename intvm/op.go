package intvm

import (
	"fmt"
)

type OpCode int64

const (
	OpAdd         OpCode = 1
	OpMul         OpCode = 2
	OpInput       OpCode = 3
	OpOutput      OpCode = 4
	OpJumpIfTrue  OpCode = 5
	OpJumpIfFalse OpCode = 6
	OpLessThan    OpCode = 7
	OpEquals      OpCode = 8
	OpHalt        OpCode = 99
)

var opArity = map[OpCode]int{
	OpAdd:         3,
	OpMul:         3,
	OpInput:       1,
	OpOutput:      1,
	OpJumpIfTrue:  2,
	OpJumpIfFalse: 2,
	OpLessThan:    3,
	OpEquals:      3,
	OpHalt:        0,
}

var opNames = map[OpCode]string{
	OpAdd:         "add",
	OpMul:         "mul",
	OpInput:       "input",
	OpOutput:      "output",
	OpJumpIfTrue:  "jump-if-true",
	OpJumpIfFalse: "jump-if-false",
	OpLessThan:    "less-than",
	OpEquals:      "equals",
	OpHalt:        "halt",
}

func (o OpCode) Arity() int {
	return opArity[o]
}

func (o OpCode) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", int64(o))
}

// With encodes an instruction word with the given parameter modes, first parameter first.
func (o OpCode) With(modes ...Mode) int64 {
	word := int64(o)
	scale := int64(100)
	for _, mode := range modes {
		word += int64(mode) * scale
		scale *= 10
	}
	return word
}

type Mode uint8

const (
	ModePosition  Mode = 0
	ModeImmediate Mode = 1
)

func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "position"
	case ModeImmediate:
		return "immediate"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

type Instruction struct {
	Op    OpCode
	Modes []Mode
}

func (i Instruction) String() string {
	return fmt.Sprintf("%v%v", i.Op, i.Modes)
}

// Decode reads the instruction word at the program counter. It has no side effects.
func (v *VM) Decode() (inst Instruction, err error) {
	word, err := v.Read(int64(v.PC))
	if err != nil {
		return inst, err
	}
	return DecodeWord(word)
}

func DecodeWord(word int64) (inst Instruction, err error) {
	inst.Op = OpCode(word % 100)
	arity, ok := opArity[inst.Op]
	if !ok {
		return inst, fmt.Errorf("%w: %d", ErrUnknownOpcode, int64(inst.Op))
	}
	flag := word / 100
	inst.Modes = make([]Mode, arity)
	for i := range arity {
		digit := flag % 10
		flag /= 10
		switch Mode(digit) {
		case ModePosition, ModeImmediate:
			inst.Modes[i] = Mode(digit)
		default:
			return inst, fmt.Errorf("%w: %d in parameter %d", ErrUnknownParameterMode, digit, i+1)
		}
	}
	return inst, nil
}
