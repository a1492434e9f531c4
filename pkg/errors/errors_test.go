package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestCollectionErrorString(t *testing.T) {
	err := &CollectionError{
		Op:   "section.RemoveItem",
		Kind: KindLookup,
		Err:  ErrItemNotFound,
	}
	got := err.Error()
	want := "section.RemoveItem [lookup]: item not found in section"
	if got != want {
		t.Errorf("CollectionError.Error() = %q, want %q", got, want)
	}
}

func TestCollectionErrorWithSection(t *testing.T) {
	err := &CollectionError{
		Op:      "section.RemoveItem",
		Kind:    KindLookup,
		Section: "feed",
		Err:     ErrItemNotFound,
	}
	want := "section=feed"
	if got := err.Error(); !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestCollectionErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &CollectionError{Op: "op", Kind: KindLookup, Err: ErrItemNotFound})
	if !Is(err, ErrItemNotFound) {
		t.Error("expected errors.Is to find ErrItemNotFound through CollectionError")
	}
	var ce *CollectionError
	if !As(err, &ce) {
		t.Fatal("expected errors.As to find CollectionError")
	}
	if ce.Kind != KindLookup {
		t.Errorf("Kind = %v, want %v", ce.Kind, KindLookup)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindLookup, "lookup"},
		{KindBounds, "bounds"},
		{KindConfig, "config"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestBoundsError(t *testing.T) {
	err := &BoundsError{Op: "section.Item", Index: 3, Count: 3}
	want := "section.Item: index 3 out of range [0, 3)"
	if got := err.Error(); got != want {
		t.Errorf("BoundsError.Error() = %q, want %q", got, want)
	}
	if !Is(fmt.Errorf("ctx: %w", err), &BoundsError{}) {
		t.Error("expected errors.Is to match any BoundsError")
	}
}

func TestReport(t *testing.T) {
	c := &Collector{}
	oldHandler := DefaultHandler
	SetHandler(c)
	defer SetHandler(oldHandler)

	Report(&CollectionError{Op: "test.op", Kind: KindLookup, Err: ErrItemNotFound})
	Report(nil)

	errs := c.Errors()
	if len(errs) != 1 {
		t.Fatalf("captured %d errors, want 1", len(errs))
	}
	if errs[0].Op != "test.op" {
		t.Errorf("Op = %q, want %q", errs[0].Op, "test.op")
	}
	if errs[0].Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportToPrefersLocalHandler(t *testing.T) {
	global := &Collector{}
	oldHandler := DefaultHandler
	SetHandler(global)
	defer SetHandler(oldHandler)

	var local []*CollectionError
	ReportTo(HandlerFunc(func(err *CollectionError) {
		local = append(local, err)
	}), &CollectionError{Op: "local"})

	if len(local) != 1 {
		t.Errorf("local handler got %d errors, want 1", len(local))
	}
	if global.Len() != 0 {
		t.Errorf("global handler got %d errors, want 0", global.Len())
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestCollectorReset(t *testing.T) {
	c := &Collector{}
	c.HandleError(&CollectionError{Op: "a"})
	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", c.Len())
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil))}
	h.HandleError(&CollectionError{
		Op:      "section.RemoveItem",
		Kind:    KindLookup,
		Section: "s1",
		Item:    "i1",
		Err:     ErrItemNotFound,
	})
	h.HandleError(nil)

	out := buf.String()
	for _, want := range []string{"level=ERROR", "op=section.RemoveItem", "kind=lookup", "section=s1", "item=i1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
	if strings.Contains(out, "stack=") {
		t.Error("non-verbose handler should not log a stack")
	}
}

func TestLogHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil)), Verbose: true}
	h.HandleError(&CollectionError{Op: "op", Err: ErrItemNotFound})
	if !strings.Contains(buf.String(), "stack=") {
		t.Error("verbose handler should log a stack")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}
