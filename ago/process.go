package ago

// Exit terminates the process immediately with the given status. Nothing
// else runs: no deferred calls, no flushing beyond what the streams do on
// their own.
func Exit(code int64) {
	tracef("exit %d", code)
	exitProcess(int(code))
}
