// Completion: 100% - Platform module complete
package engine

import (
	"fmt"
	"runtime"
	"strings"
)

// Arch is a target CPU architecture for the shared runtime library
type Arch int

const (
	ArchUnknown Arch = iota
	ArchX86_64
	ArchARM64
	ArchRiscv64
)

func (a Arch) String() string {
	switch a {
	case ArchX86_64:
		return "amd64"
	case ArchARM64:
		return "arm64"
	case ArchRiscv64:
		return "riscv64"
	default:
		return "unknown"
	}
}

// ParseArch parses an architecture string (like GOARCH values)
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(s) {
	case "x86_64", "amd64", "x86-64":
		return ArchX86_64, nil
	case "aarch64", "arm64":
		return ArchARM64, nil
	case "riscv64", "riscv", "rv64":
		return ArchRiscv64, nil
	default:
		return 0, fmt.Errorf("unsupported architecture: %s (supported: amd64, arm64, riscv64)", s)
	}
}

// OS is a target operating system
type OS int

const (
	OSLinux OS = iota
	OSDarwin
	OSFreeBSD
	OSWindows
)

func (o OS) String() string {
	switch o {
	case OSLinux:
		return "linux"
	case OSDarwin:
		return "darwin"
	case OSFreeBSD:
		return "freebsd"
	case OSWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// ParseOS parses an OS string (like GOOS values)
func ParseOS(s string) (OS, error) {
	switch strings.ToLower(s) {
	case "linux":
		return OSLinux, nil
	case "darwin", "macos":
		return OSDarwin, nil
	case "freebsd":
		return OSFreeBSD, nil
	case "windows", "win":
		return OSWindows, nil
	default:
		return 0, fmt.Errorf("unsupported OS: %s (supported: linux, darwin, freebsd, windows)", s)
	}
}

// Platform is a target platform (architecture + OS)
type Platform struct {
	Arch Arch
	OS   OS
}

// String returns the platform as "arch-os", like "arm64-darwin"
func (p Platform) String() string {
	return p.Arch.String() + "-" + p.OS.String()
}

// SharedLibraryName returns the file name the platform's dynamic linker
// expects for a library called base
func (p Platform) SharedLibraryName(base string) string {
	switch p.OS {
	case OSDarwin:
		return "lib" + base + ".dylib"
	case OSWindows:
		return base + ".dll"
	default:
		return "lib" + base + ".so"
	}
}

// DefaultPlatform returns the platform this process runs on
func DefaultPlatform() Platform {
	arch, err := ParseArch(runtime.GOARCH)
	if err != nil {
		arch = ArchX86_64 // fallback
	}
	os, err := ParseOS(runtime.GOOS)
	if err != nil {
		os = OSLinux // fallback
	}
	return Platform{Arch: arch, OS: os}
}

// ParsePlatform parses "arch" or "arch-os". A missing OS means the host OS.
func ParsePlatform(s string) (Platform, error) {
	archPart, osPart, hasOS := strings.Cut(s, "-")
	// "x86-64" is an architecture spelling, not arch "x86" on OS "64"
	if strings.EqualFold(s, "x86-64") {
		archPart, hasOS = s, false
	}
	arch, err := ParseArch(archPart)
	if err != nil {
		return Platform{}, err
	}
	os := DefaultPlatform().OS
	if hasOS {
		os, err = ParseOS(osPart)
		if err != nil {
			return Platform{}, err
		}
	}
	return Platform{Arch: arch, OS: os}, nil
}
