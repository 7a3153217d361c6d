package intvm

import (
	"errors"
	"fmt"
)

var (
	ErrParse                     = errors.New("parse program")
	ErrUnknownOpcode             = errors.New("unknown opcode")
	ErrUnknownParameterMode      = errors.New("unknown parameter mode")
	ErrOutOfBounds               = errors.New("memory access out of bounds")
	ErrInvalidImmediateParameter = errors.New("immediate mode for write parameter")
	ErrInvalidAddress            = errors.New("invalid address")
	ErrInputExhausted            = errors.New("input exhausted")
)

func addressError(err error, addr int64) error {
	return fmt.Errorf("%w: %d", err, addr)
}

// ExecError records where a fatal error happened. The machine is unusable afterwards.
type ExecError struct {
	PC   int
	Word int64
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("pc %d (word %d): %v", e.PC, e.Word, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
