package ago

import (
	"fmt"
	"strings"
)

// FaultKind classifies a fatal runtime fault
type FaultKind int

const (
	ArithmeticFault FaultKind = iota
	NullAccess
	BoundsFault
	AllocationFault
)

func (k FaultKind) String() string {
	switch k {
	case ArithmeticFault:
		return "ArithmeticFault"
	case NullAccess:
		return "NullAccess"
	case BoundsFault:
		return "BoundsFault"
	case AllocationFault:
		return "AllocationFault"
	default:
		return "unknown"
	}
}

// note returns the help line printed under a diagnostic of this kind
func (k FaultKind) note() string {
	switch k {
	case ArithmeticFault:
		return "the divisor of / and % must not be zero"
	case NullAccess:
		return "the value is inanis (absent) where a present value is required"
	case BoundsFault:
		return "valid indices run from 0 to length-1"
	case AllocationFault:
		return "the runtime could not allocate the requested storage"
	default:
		return ""
	}
}

// Fault is a single fatal runtime fault. There is no recoverable tier: a
// Fault is always the last thing the runtime reports before termination.
type Fault struct {
	Kind    FaultKind
	Message string
}

// Error implements the error interface
func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Format returns the diagnostic written to the error stream
func (f *Fault) Format(useColor bool) string {
	var sb strings.Builder

	if useColor {
		sb.WriteString("\033[1;31m") // Bold red
	}
	sb.WriteString("fatal error")
	if useColor {
		sb.WriteString("\033[0m")
	}
	sb.WriteString(": ")
	sb.WriteString(f.Message)
	sb.WriteString("\n")

	if useColor {
		sb.WriteString("\033[1;34m") // Bold blue
	}
	sb.WriteString("  --> ")
	sb.WriteString(f.Kind.String())
	if useColor {
		sb.WriteString("\033[0m")
	}
	sb.WriteString("\n")

	if note := f.Kind.note(); note != "" {
		if useColor {
			sb.WriteString("\033[1;36m") // Bold cyan
		}
		sb.WriteString("   note: ")
		if useColor {
			sb.WriteString("\033[0m")
		}
		sb.WriteString(note)
		sb.WriteString("\n")
	}

	return sb.String()
}
