package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/modes"
)

func TestNewSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
		logger Logger,
	) {
		ctx := context.Background()

		ctx1, span1 := newSpan(ctx, "")

		ctx11, span11 := newSpan(ctx1, "")

		ctx12, span12 := newSpan(ctx11, span1)

		logger.With("amplifier", 0).InfoContext(ctx12, "halted")

		lines := strings.Split(string(buf.Bytes()), "\n")
		if !strings.Contains(lines[0], "logs.span="+string(span1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.span="+string(span11)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "logs.span="+string(span12)) {
			t.Fatalf("got %v", lines[2])
		}
		if !strings.Contains(lines[1], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[2])
		}
		if !strings.Contains(lines[2], "creator="+string(span11)) {
			t.Fatalf("got %v", lines[2])
		}
		if !strings.Contains(lines[3], "logs.span="+string(span12)) {
			t.Fatalf("got %v", lines[3])
		}

		err := WrapSpan(ctx12, errors.New("halt"))
		if !strings.Contains(err.Error(), string(span12)) {
			t.Fatalf("got %v", err)
		}
		if WrapSpan(ctx12, nil) != nil {
			t.Fatal()
		}
	})
}

func TestSpanOf(t *testing.T) {
	ctx := context.Background()
	if span := SpanOf(ctx); span != "" {
		t.Fatalf("got %v", span)
	}
	ctx = context.WithValue(ctx, SpanKey, Span("amplify"))
	if span := SpanOf(ctx); span != "amplify" {
		t.Fatalf("got %v", span)
	}
	err := WrapSpan(ctx, errors.New("halted"))
	if !strings.Contains(err.Error(), "span: amplify") {
		t.Fatalf("got %v", err)
	}
}
