package errors

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// testHandler captures reports for assertions.
type testHandler struct {
	errs   []*ObserveError
	panics []*PanicError
}

func (h *testHandler) HandleError(err *ObserveError) { h.errs = append(h.errs, err) }
func (h *testHandler) HandlePanic(err *PanicError)   { h.panics = append(h.panics, err) }

func TestObserveErrorMessage(t *testing.T) {
	err := &ObserveError{
		Op:   "model.Notify",
		Kind: KindDispatch,
		Prop: "counter",
		Err:  errors.New("queue closed"),
	}
	got := err.Error()
	for _, want := range []string{"model.Notify", "dispatch", "counter", "queue closed"} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, missing %q", got, want)
		}
	}

	bare := &ObserveError{Op: "observer.Observe", Kind: KindRegister, Err: errors.New("bad pattern")}
	if strings.Contains(bare.Error(), "prop=") {
		t.Errorf("Error() = %q, should omit empty prop", bare.Error())
	}
}

func TestObserveErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &ObserveError{Op: "x", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should reach the wrapped error")
	}
}

func TestSchemaErrorMessage(t *testing.T) {
	err := &SchemaError{File: "models.yaml", Model: "document", Field: "title", Reason: "duplicate property name"}
	got := err.Error()
	for _, want := range []string{"models.yaml", "document", "title", "duplicate property name"} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, missing %q", got, want)
		}
	}
}

func TestPanicErrorMessage(t *testing.T) {
	err := &PanicError{Op: "dispatch.Loop", Value: "boom"}
	if got := err.Error(); !strings.Contains(got, "dispatch.Loop") || !strings.Contains(got, "boom") {
		t.Errorf("Error() = %q", got)
	}
	anon := &PanicError{Value: 42}
	if got := anon.Error(); !strings.Contains(got, "42") {
		t.Errorf("Error() = %q", got)
	}
}

func TestKindStrings(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindRegister, "register"},
		{KindNotify, "notify"},
		{KindDispatch, "dispatch"},
		{KindSchema, "schema"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestReportSetsTimestamp(t *testing.T) {
	h := &testHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&ObserveError{Op: "x", Err: errors.New("e")})

	if len(h.errs) != 1 {
		t.Fatalf("reported %d errors, want 1", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("Report should stamp the error")
	}

	Report(nil) // ignored
	if len(h.errs) != 1 {
		t.Error("Report(nil) should be a no-op")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	h := &testHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("boom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("reported %d panics, want 1", len(h.panics))
	}
	p := h.panics[0]
	if p.Op != "test.op" || p.Value != "boom" {
		t.Errorf("panic = %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("panic should carry a stack trace")
	}
}

func TestRecoverWithoutPanic(t *testing.T) {
	h := &testHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
	}()

	if len(h.panics) != 0 {
		t.Error("Recover reported without a panic")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&testHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("DefaultHandler = %T, want *LogHandler", DefaultHandler)
	}
}

func TestLogHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleError(&ObserveError{Op: "model.Notify", Err: errors.New("queue closed")})
	if got := buf.String(); !strings.HasPrefix(got, "[observe error]") || !strings.Contains(got, "queue closed") {
		t.Errorf("output = %q", got)
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "dispatch.Loop", Value: "boom"})
	if got := buf.String(); !strings.HasPrefix(got, "[observe panic]") || !strings.Contains(got, "boom") {
		t.Errorf("output = %q", got)
	}
}

func TestLogHandlerVerboseIncludesStack(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Verbose: true, Out: &buf}

	h.HandleError(&ObserveError{
		Op:         "model.Notify",
		Kind:       KindNotify,
		Prop:       "counter",
		Err:        errors.New("e"),
		StackTrace: "fake stack",
	})
	got := buf.String()
	if !strings.Contains(got, "prop=counter") || !strings.Contains(got, "fake stack") {
		t.Errorf("verbose output = %q", got)
	}
}

func TestCaptureStack(t *testing.T) {
	// CaptureStack skips its direct caller's frame; mirror the Recover
	// call shape with one intermediate function.
	var stack string
	func() { stack = CaptureStack() }()
	if !strings.Contains(stack, "TestCaptureStack") {
		t.Errorf("stack should name the caller:\n%s", stack)
	}
}
