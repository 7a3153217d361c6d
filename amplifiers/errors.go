package amplifiers

import "errors"

var (
	ErrUnexpectedHalt = errors.New("unexpected halt")
	ErrMissingOutput  = errors.New("missing output")
	ErrNoAmplifiers   = errors.New("no amplifiers")
)
