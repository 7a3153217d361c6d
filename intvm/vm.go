package intvm

import (
	"slices"
	"strconv"
	"strings"
)

type VM struct {
	Memory []int64
	PC     int
}

func NewVM(memory []int64) *VM {
	return &VM{
		Memory: memory,
	}
}

// Clone returns a machine that shares nothing with v.
func (v *VM) Clone() *VM {
	return &VM{
		Memory: slices.Clone(v.Memory),
		PC:     v.PC,
	}
}

func (v *VM) Read(addr int64) (int64, error) {
	i, err := v.index(addr)
	if err != nil {
		return 0, err
	}
	return v.Memory[i], nil
}

func (v *VM) Write(addr int64, value int64) error {
	i, err := v.index(addr)
	if err != nil {
		return err
	}
	v.Memory[i] = value
	return nil
}

func (v *VM) index(addr int64) (int, error) {
	if addr < 0 {
		return 0, addressError(ErrInvalidAddress, addr)
	}
	if addr >= int64(len(v.Memory)) {
		return 0, addressError(ErrOutOfBounds, addr)
	}
	return int(addr), nil
}

func (v *VM) String() string {
	var b strings.Builder
	for i, word := range v.Memory {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(word, 10))
	}
	return b.String()
}
