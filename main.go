// Completion: 100% - CLI entry point complete
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xyproto/agort/ago"
)

// agort inspects and exercises the Ago runtime support library

const versionString = "agort 0.1.0"

func main() {
	// NOTE: flag stops at the first non-flag argument, so global flags
	// go before the command: agort -v call ago_divide 7 2
	var versionShort = flag.Bool("V", false, "print version information and exit")
	var version = flag.Bool("version", false, "print version information and exit")
	var verbose = flag.Bool("v", false, "verbose mode (trace runtime allocations and faults)")
	var verboseLong = flag.Bool("verbose", false, "verbose mode (trace runtime allocations and faults)")
	var noColor = flag.Bool("no-color", false, "disable colored fault diagnostics")
	flag.Usage = func() {
		printUsage(os.Stderr)
	}
	flag.Parse()

	if *version || *versionShort {
		fmt.Println(versionString)
		os.Exit(0)
	}

	// Flags only ever switch settings on; the environment still applies
	cfg := ago.CurrentConfig()
	cfg.Verbose = cfg.Verbose || *verbose || *verboseLong
	cfg.NoColor = cfg.NoColor || *noColor
	ago.Configure(cfg)

	if ago.VerboseMode {
		fmt.Fprintf(os.Stderr, "agort: verbose mode enabled (fault status %d)\n", cfg.FaultStatus)
	}

	ctx := &CommandContext{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Verbose: ago.VerboseMode,
	}
	if err := RunCLI(ctx, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
