package abi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSymbol is wrapped by the error Call returns for a name that is
// not in the table
var ErrUnknownSymbol = errors.New("unknown symbol")

// UnknownSymbolError names a missing symbol and its closest matches
type UnknownSymbolError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownSymbolError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrUnknownSymbol, e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *UnknownSymbolError) Unwrap() error {
	return ErrUnknownSymbol
}

// Call invokes the named symbol with arguments in their text form. Runtime
// faults raised by the symbol go through the ago fault policy as usual;
// only lookup and argument errors come back as errors.
func Call(name string, args []string) (Value, error) {
	sym, ok := Lookup(name)
	if !ok {
		return Value{}, &UnknownSymbolError{Name: name, Suggestions: Suggest(name)}
	}
	if !sym.Callable() {
		return Value{}, fmt.Errorf("%s passes list handles and cannot be called from the command line", sym.Name)
	}
	if len(args) != len(sym.Params) {
		return Value{}, fmt.Errorf("%s expects %d argument(s), got %d", sym.Name, len(sym.Params), len(args))
	}

	vals := make([]Value, len(args))
	for i, param := range sym.Params {
		v, err := ParseValue(param.Kind, args[i])
		if err != nil {
			return Value{}, fmt.Errorf("%s argument %s: %w", sym.Name, param.Name, err)
		}
		vals[i] = v
	}
	return sym.call(vals), nil
}
