// Package ago is the runtime support library for compiled Ago programs.
//
// Generated code calls into it for the operations the compiler does not
// inline: checked integer division, owned strings, dynamic lists and
// line-oriented I/O. Every precondition violation goes through Fail, which
// reports a Fault and never returns. The default policy prints a diagnostic
// and exits; Catch intercepts the abort instead, for embedding and tests.
//
// The runtime is single-threaded. The stream and policy setters are meant to
// be called before generated code runs, not concurrently with it.
package ago
