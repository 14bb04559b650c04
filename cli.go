// Completion: 100% - Utility module complete
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/xyproto/agort/ago"
	"github.com/xyproto/agort/internal/abi"
	"github.com/xyproto/agort/internal/engine"
)

// cli.go - command-line interface for agort
//
// Subcommands:
// - agort call <symbol> [args...] (invoke a runtime function)
// - agort symbols (list the exported C symbols)
// - agort header [-target arch-os] (print the C header)
// - agort manifest [-target arch-os] (print the YAML ABI manifest)

// CommandContext holds the execution context for a CLI command
type CommandContext struct {
	Out     io.Writer
	Err     io.Writer
	Verbose bool
}

var commands = []string{"call", "symbols", "header", "manifest", "version", "help"}

// RunCLI dispatches args[0] to its subcommand
func RunCLI(ctx *CommandContext, args []string) error {
	// No arguments - show help
	if len(args) == 0 {
		return cmdHelp(ctx)
	}

	subcmd := args[0]

	switch subcmd {
	case "call":
		if len(args) < 2 {
			return fmt.Errorf("usage: agort call <symbol> [args...]")
		}
		return cmdCall(ctx, args[1], args[2:])

	case "symbols":
		return cmdSymbols(ctx)

	case "header":
		return cmdHeader(ctx, args[1:])

	case "manifest":
		return cmdManifest(ctx, args[1:])

	case "help", "--help", "-h":
		return cmdHelp(ctx)

	case "version", "--version", "-V":
		fmt.Fprintln(ctx.Out, versionString)
		return nil

	default:
		// A bare symbol name is shorthand for call
		if _, ok := abi.Lookup(subcmd); ok && strings.HasPrefix(subcmd, "ago_") {
			return cmdCall(ctx, subcmd, args[1:])
		}
		msg := fmt.Sprintf("unknown command: %s", subcmd)
		if similar := engine.FindSimilar(subcmd, commands, 1); len(similar) > 0 {
			msg += fmt.Sprintf(" (did you mean %s?)", similar[0])
		}
		return fmt.Errorf("%s\n\nRun 'agort help' for usage information", msg)
	}
}

// cmdCall invokes one runtime symbol and prints its result. Output written
// by the symbol itself (ago_print_*) goes to the same stream.
func cmdCall(ctx *CommandContext, name string, args []string) error {
	prev := ago.SetOutput(ctx.Out)
	defer ago.SetOutput(prev)

	if ctx.Verbose {
		fmt.Fprintf(ctx.Err, "Calling %s(%s)\n", name, strings.Join(args, ", "))
	}

	v, err := abi.Call(name, args)
	if err != nil {
		var unknown *abi.UnknownSymbolError
		if errors.As(err, &unknown) {
			return fmt.Errorf("%w\n\nRun 'agort symbols' to list the available symbols", err)
		}
		return err
	}
	if v.Kind != abi.Void {
		fmt.Fprintln(ctx.Out, v)
	}
	return nil
}

// cmdSymbols lists every symbol by section
func cmdSymbols(ctx *CommandContext) error {
	for _, section := range abi.Sections() {
		fmt.Fprintf(ctx.Out, "%s:\n", section)
		for _, s := range abi.Symbols() {
			if s.Section != section {
				continue
			}
			marker := " "
			if !s.Callable() {
				marker = "*"
			}
			fmt.Fprintf(ctx.Out, "  %s %s\n", marker, s.Signature())
		}
	}
	fmt.Fprintln(ctx.Out, "\n* takes or returns list handles; not available to 'agort call'")
	return nil
}

// parseTarget handles the -target flag shared by header and manifest
func parseTarget(name string, args []string) (engine.Platform, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	target := fs.String("target", "", "target platform (e.g., arm64-darwin, amd64-linux)")
	if err := fs.Parse(args); err != nil {
		return engine.Platform{}, fmt.Errorf("usage: agort %s [-target arch-os]: %v", name, err)
	}
	if fs.NArg() > 0 {
		return engine.Platform{}, fmt.Errorf("usage: agort %s [-target arch-os]", name)
	}
	if *target == "" {
		return engine.DefaultPlatform(), nil
	}
	return engine.ParsePlatform(*target)
}

// cmdHeader prints the C header generated code includes
func cmdHeader(ctx *CommandContext, args []string) error {
	p, err := parseTarget("header", args)
	if err != nil {
		return err
	}
	if ctx.Verbose {
		fmt.Fprintf(ctx.Err, "Writing header for %s\n", p)
	}
	return abi.WriteHeader(ctx.Out, p)
}

// cmdManifest prints the ABI manifest as YAML
func cmdManifest(ctx *CommandContext, args []string) error {
	p, err := parseTarget("manifest", args)
	if err != nil {
		return err
	}
	data, err := abi.Manifest(p)
	if err != nil {
		return err
	}
	_, err = ctx.Out.Write(data)
	return err
}

// cmdHelp shows usage information
func cmdHelp(ctx *CommandContext) error {
	printUsage(ctx.Out)
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `%s - The Ago runtime support library

USAGE:
    agort [flags] <command> [arguments]

COMMANDS:
    call <symbol> [args...]   Invoke a runtime function with text arguments
    symbols                   List the exported C symbols
    header [-target T]        Print the C header for generated code
    manifest [-target T]      Print the ABI manifest as YAML
    help                      Show this help message
    version                   Show version information

SHORTHAND:
    agort ago_add 2 3         Same as 'agort call ago_add 2 3'

FLAGS:
    -v, --verbose             Trace runtime allocations and faults
    -V, --version             Print version information and exit
    --no-color                Disable colored fault diagnostics

VALUES:
    Booleans are %s and %s, the absent string is %s.

ENVIRONMENT:
    AGO_VERBOSE               Same as --verbose
    NO_COLOR, AGO_NO_COLOR    Same as --no-color
    AGO_FAULT_STATUS          Exit status on a runtime fault (1..125, default %d)

EXAMPLES:
    agort call ago_divide 7 2
    agort call ago_string_concat foo bar
    agort header -target arm64-darwin > ago_stdlib.h
`, versionString, ago.TrueToken, ago.FalseToken, abi.NullToken, ago.DefaultFaultStatus)
}
