package configs

import (
	"errors"
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"override.cue", "intcode.cue"}, SettingsSchema)

	program, err := First[string](loader, "program")
	if err != nil {
		t.Fatal(err)
	}
	if program != "day5.txt" {
		t.Fatalf("got %v", program)
	}

	feedback, err := First[bool](loader, "feedback")
	if err != nil {
		t.Fatal(err)
	}
	if !feedback {
		t.Fatal()
	}

	inputs, err := First[[]int64](loader, "inputs")
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) != 1 || inputs[0] != 5 {
		t.Fatalf("got %v", inputs)
	}
}

func TestFirstMissing(t *testing.T) {
	loader := NewLoader([]string{"intcode.cue"}, SettingsSchema)
	db, err := First[string](loader, "db")
	if err != nil {
		t.Fatal(err)
	}
	if db != "" {
		t.Fatalf("got %v", db)
	}

	loader = NewLoader([]string{"bad.cue"}, SettingsSchema)
	_, err = First[string](loader, "program")
	if err == nil {
		t.Fatal("should error")
	}
	if errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}
