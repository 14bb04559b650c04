package ago

import "fmt"

// tracef writes a verbose-mode trace line to the error stream
func tracef(format string, args ...any) {
	if !VerboseMode {
		return
	}
	fmt.Fprintf(stderr, "ago: "+format+"\n", args...)
}
