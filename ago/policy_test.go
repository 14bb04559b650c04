package ago

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

// withErrorOutput captures the diagnostic stream for the duration of a test
func withErrorOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetErrorOutput(&buf)
	t.Cleanup(func() { SetErrorOutput(prev) })
	return &buf
}

// withExitRecorder replaces process termination with a recorder
func withExitRecorder(t *testing.T) *[]int {
	t.Helper()
	var codes []int
	exitProcess = func(code int) {
		codes = append(codes, code)
	}
	t.Cleanup(func() { exitProcess = os.Exit })
	return &codes
}

func TestCatchReturnsNilWithoutFault(t *testing.T) {
	ran := false
	if f := Catch(func() { ran = true }); f != nil {
		t.Errorf("Expected no fault, got %v", f)
	}
	if !ran {
		t.Error("Expected Catch to run the function")
	}
}

func TestCatchStopsAtFault(t *testing.T) {
	reached := false
	f := Catch(func() {
		Fail(BoundsFault, "index %d", 9)
		reached = true
	})
	if f == nil {
		t.Fatal("Expected a fault")
	}
	if reached {
		t.Error("Fail returned to its caller")
	}
	if f.Kind != BoundsFault || f.Message != "index 9" {
		t.Errorf("Expected BoundsFault 'index 9', got %s %q", f.Kind, f.Message)
	}
}

func TestCatchPassesOtherPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("Expected the original panic, got %v", r)
		}
	}()
	Catch(func() { panic("boom") })
	t.Error("Expected panic to propagate")
}

func TestCatchRestoresHandler(t *testing.T) {
	Catch(func() { Divide(1, 0) })
	codes := withExitRecorder(t)
	withErrorOutput(t)
	func() {
		defer func() { recover() }()
		Divide(1, 0)
	}()
	if len(*codes) == 0 {
		t.Error("Expected the default policy to be back in place after Catch")
	}
}

func TestDefaultPolicyExits(t *testing.T) {
	codes := withExitRecorder(t)
	errOut := withErrorOutput(t)

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		Modulo(3, 0)
	}()

	if len(*codes) == 0 || (*codes)[0] != DefaultFaultStatus {
		t.Fatalf("Expected exit status %d, got %v", DefaultFaultStatus, *codes)
	}
	if !strings.Contains(errOut.String(), "fatal error: modulo by zero") {
		t.Errorf("Expected diagnostic on the error stream, got %q", errOut.String())
	}
	if strings.Contains(errOut.String(), "\033[") {
		t.Errorf("Expected no color when the error stream is not a terminal, got %q", errOut.String())
	}
	var f *Fault
	if err, ok := recovered.(error); !ok || !errors.As(err, &f) || f.Kind != ArithmeticFault {
		t.Errorf("Expected Fail to end in a fault panic once exit was stubbed, got %v", recovered)
	}
}

func TestReturningHandlerStillTerminates(t *testing.T) {
	codes := withExitRecorder(t)
	withErrorOutput(t)
	calls := 0
	prev := SetFaultHandler(func(*Fault) { calls++ })
	defer SetFaultHandler(prev)

	func() {
		defer func() { recover() }()
		Fail(NullAccess, "x")
	}()

	if calls != 1 {
		t.Errorf("Expected handler to run once, ran %d times", calls)
	}
	if len(*codes) != 1 {
		t.Errorf("Expected exactly one exit, got %v", *codes)
	}
}

func TestConfiguredFaultStatus(t *testing.T) {
	prev := Configure(Config{FaultStatus: 42})
	defer Configure(prev)
	codes := withExitRecorder(t)
	withErrorOutput(t)

	func() {
		defer func() { recover() }()
		CharAt(nil, 0)
	}()
	if len(*codes) == 0 || (*codes)[0] != 42 {
		t.Errorf("Expected exit status 42, got %v", *codes)
	}
}

func TestConfigureSanitizesStatus(t *testing.T) {
	for _, status := range []int{0, -3, 126, 255} {
		prev := Configure(Config{FaultStatus: status})
		if got := CurrentConfig().FaultStatus; got != DefaultFaultStatus {
			t.Errorf("Status %d: expected fallback to %d, got %d", status, DefaultFaultStatus, got)
		}
		Configure(prev)
	}
}

func TestVerboseTrace(t *testing.T) {
	prev := Configure(Config{Verbose: true})
	defer Configure(prev)
	errOut := withErrorOutput(t)

	l := NewIntList(0)
	l.Append(1)
	l.Destroy()

	out := errOut.String()
	for _, want := range []string{"ago: new int list", "ago: grow int list 0 -> 4", "ago: destroy int list"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected trace %q in %q", want, out)
		}
	}
}

func TestFaultFormat(t *testing.T) {
	f := &Fault{Kind: BoundsFault, Message: "list index out of bounds: 3 (length: 3)"}

	plain := f.Format(false)
	if !strings.HasPrefix(plain, "fatal error: list index out of bounds") {
		t.Errorf("Unexpected diagnostic: %q", plain)
	}
	if !strings.Contains(plain, "--> BoundsFault") || !strings.Contains(plain, "note: ") {
		t.Errorf("Expected kind and note lines, got %q", plain)
	}
	if colored := f.Format(true); !strings.Contains(colored, "\033[1;31m") {
		t.Errorf("Expected ANSI color, got %q", colored)
	}
	if f.Error() != "BoundsFault: list index out of bounds: 3 (length: 3)" {
		t.Errorf("Unexpected Error(): %q", f.Error())
	}
}

func TestFaultKindString(t *testing.T) {
	tests := map[FaultKind]string{
		ArithmeticFault: "ArithmeticFault",
		NullAccess:      "NullAccess",
		BoundsFault:     "BoundsFault",
		AllocationFault: "AllocationFault",
		FaultKind(99):   "unknown",
	}
	for k, want := range tests {
		if k.String() != want {
			t.Errorf("Expected %q, got %q", want, k.String())
		}
	}
}
