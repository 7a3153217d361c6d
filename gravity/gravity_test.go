package gravity

import (
	"errors"
	"testing"

	"github.com/reusee/intcode/intvm"
)

func TestRun(t *testing.T) {
	program := intvm.MustParse("1,9,10,3,2,3,11,0,99,30,40,50")
	res, err := Run(program, 9, 10)
	if err != nil {
		t.Fatal(err)
	}
	if res != 3500 {
		t.Fatalf("got %v", res)
	}
	if program.Memory[0] != 1 {
		t.Fatal("program mutated")
	}

	if _, err := Run(program, 100, 0); !errors.Is(err, intvm.ErrOutOfBounds) {
		t.Fatalf("got %v", err)
	}
	if _, err := Run(intvm.MustParse("99"), 0, 0); !errors.Is(err, intvm.ErrOutOfBounds) {
		t.Fatalf("got %v", err)
	}
}

func TestFindNounVerb(t *testing.T) {
	program := intvm.MustParse("1,0,0,0,99,10,20,30,40")
	noun, verb, err := FindNounVerb(program, 70, 99)
	if err != nil {
		t.Fatal(err)
	}
	if noun != 7 || verb != 8 {
		t.Fatalf("got %v %v", noun, verb)
	}
	if answer := Answer(noun, verb); answer != 708 {
		t.Fatalf("got %v", answer)
	}

	_, _, err = FindNounVerb(program, -1, 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v", err)
	}
}
