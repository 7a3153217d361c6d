package intvm

import (
	"fmt"
	"strconv"
	"strings"
)

func Parse(text string) (*VM, error) {
	tokens := strings.Split(strings.TrimSpace(text), ",")
	memory := make([]int64, 0, len(tokens))
	for i, token := range tokens {
		word, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d: %w", ErrParse, i, err)
		}
		memory = append(memory, word)
	}
	return NewVM(memory), nil
}

func MustParse(text string) *VM {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}
