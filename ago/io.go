package ago

import (
	"bufio"
	"io"
	"os"
	"strings"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin            = bufio.NewReader(os.Stdin)
)

// SetOutput replaces the standard output stream and returns the previous one
func SetOutput(w io.Writer) io.Writer {
	prev := stdout
	stdout = w
	return prev
}

// SetErrorOutput replaces the diagnostic stream and returns the previous one
func SetErrorOutput(w io.Writer) io.Writer {
	prev := stderr
	stderr = w
	return prev
}

// SetInput replaces the stream ReadLine reads from. Input already buffered
// from the previous stream is discarded.
func SetInput(r io.Reader) {
	stdin = bufio.NewReader(r)
}

// printLine writes s and a single newline in one write
func printLine(s string) {
	io.WriteString(stdout, s+"\n")
}

func PrintInt(v int64) {
	printLine(FormatInt(v))
}

func PrintFloat(v float64) {
	printLine(FormatFloat(v))
}

func PrintBool(v bool) {
	printLine(FormatBool(v))
}

// PrintString writes s and a newline. An absent string writes nothing at all.
func PrintString(s *Str) {
	if s == nil {
		return
	}
	printLine(s.String())
}

// ReadLine reads one line from standard input and strips one trailing line
// terminator ("\n" or "\r\n"). A last line without a terminator is still a
// line. End of input, or a read error, returns nil.
func ReadLine() *Str {
	line, err := stdin.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return nil
	}
	if strings.HasSuffix(line, "\n") {
		line = strings.TrimSuffix(line[:len(line)-1], "\r")
	}
	return NewStr(line)
}
