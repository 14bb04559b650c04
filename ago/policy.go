package ago

import (
	"fmt"
	"os"
)

// FaultHandler is invoked with every fault. A handler must not return
// normally: it either terminates the process or aborts by panicking.
type FaultHandler func(*Fault)

var (
	handler FaultHandler = exitHandler

	// exitProcess is swapped by tests that need to observe termination
	exitProcess = os.Exit
)

// exitHandler is the default policy: diagnostic on stderr, then exit
func exitHandler(f *Fault) {
	fmt.Fprint(stderr, f.Format(useColor()))
	exitProcess(config.FaultStatus)
}

// SetFaultHandler installs h as the fault policy and returns the previous one.
// A nil h restores the default policy.
func SetFaultHandler(h FaultHandler) FaultHandler {
	prev := handler
	if h == nil {
		h = exitHandler
	}
	handler = h
	return prev
}

// Fail reports a fault of the given kind and never returns. Every
// precondition violation in the runtime ends up here.
func Fail(kind FaultKind, format string, args ...any) {
	f := &Fault{Kind: kind, Message: fmt.Sprintf(format, args...)}
	if VerboseMode {
		fmt.Fprintf(stderr, "ago: fault %s\n", f)
	}
	handler(f)
	// The handler returned, which it must not do
	exitProcess(config.FaultStatus)
	panic(f)
}

// Catch runs fn with a policy that aborts by panicking, and returns the fault
// that stopped fn, or nil if fn completed. Panics that are not faults are
// passed through.
func Catch(fn func()) (fault *Fault) {
	prev := SetFaultHandler(func(f *Fault) {
		panic(f)
	})
	defer SetFaultHandler(prev)
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*Fault)
			if !ok {
				panic(r)
			}
			fault = f
		}
	}()
	fn()
	return nil
}
