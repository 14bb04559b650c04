package ago

import (
	"os"

	"github.com/xyproto/env/v2"
)

// Config holds process-wide runtime settings
type Config struct {
	Verbose     bool // Trace allocations and faults to the error stream
	NoColor     bool // Never color diagnostics
	FaultStatus int  // Exit status used when a fault terminates the process
}

// DefaultFaultStatus is the exit status of a faulted process
const DefaultFaultStatus = 1

var (
	config = LoadConfig()

	// VerboseMode mirrors config.Verbose for quick checks on hot paths
	VerboseMode = config.Verbose
)

// LoadConfig reads the runtime settings from the environment:
//
//	AGO_VERBOSE       trace allocations and faults
//	NO_COLOR          disable colored diagnostics (any value)
//	AGO_NO_COLOR      same as NO_COLOR
//	AGO_FAULT_STATUS  exit status on a fault (1..125, default 1)
func LoadConfig() Config {
	return Config{
		Verbose:     env.Bool("AGO_VERBOSE"),
		NoColor:     env.Has("NO_COLOR") || env.Bool("AGO_NO_COLOR"),
		FaultStatus: sanitizeStatus(env.Int("AGO_FAULT_STATUS", DefaultFaultStatus)),
	}
}

// Configure replaces the runtime settings and returns the previous ones
func Configure(c Config) Config {
	prev := config
	c.FaultStatus = sanitizeStatus(c.FaultStatus)
	config = c
	VerboseMode = c.Verbose
	return prev
}

// CurrentConfig returns the settings in effect
func CurrentConfig() Config {
	return config
}

// sanitizeStatus keeps the fault status non-zero and clear of the
// shell-reserved range
func sanitizeStatus(status int) int {
	if status < 1 || status > 125 {
		return DefaultFaultStatus
	}
	return status
}

// useColor reports whether diagnostics on the error stream get ANSI color
func useColor() bool {
	if config.NoColor {
		return false
	}
	f, ok := stderr.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(int(f.Fd()))
}
