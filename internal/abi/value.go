package abi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xyproto/agort/ago"
)

// NullToken is the text form of the absent value (Ago's inanis)
const NullToken = "inanis"

// Value is one argument or result of a symbol called through the table
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Bool  bool
	Str   *ago.Str
	Any   any
}

func intV(v int64) Value     { return Value{Kind: Int, Int: v} }
func floatV(v float64) Value { return Value{Kind: Float, Float: v} }
func boolV(v bool) Value     { return Value{Kind: Bool, Bool: v} }
func strV(s *ago.Str) Value  { return Value{Kind: String, Str: s} }

var void = Value{Kind: Void}

// String renders the value the way the runtime prints it
func (v Value) String() string {
	switch v.Kind {
	case Int:
		return ago.FormatInt(v.Int)
	case Float:
		return ago.FormatFloat(v.Float)
	case Bool:
		return ago.FormatBool(v.Bool)
	case String:
		if v.Str == nil {
			return NullToken
		}
		return v.Str.String()
	case Any:
		return fmt.Sprint(v.Any)
	default:
		return ""
	}
}

// ParseValue parses the text form of a value of kind k. For strings the
// text is taken literally, except NullToken, which is the absent string.
func ParseValue(k Kind, s string) (Value, error) {
	switch k {
	case Int:
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid int %q: %w", s, err)
		}
		return intV(n), nil
	case Float:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid float %q: %w", s, err)
		}
		return floatV(f), nil
	case Bool:
		b, err := parseBool(s)
		if err != nil {
			return Value{}, err
		}
		return boolV(b), nil
	case String:
		if s == NullToken {
			return strV(nil), nil
		}
		return strV(ago.NewStr(s)), nil
	case Any:
		return Value{Kind: Any, Any: guess(s)}, nil
	default:
		return Value{}, fmt.Errorf("%s values have no text form", k)
	}
}

// parseBool accepts the Ago vocabulary and the usual English spelling
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case ago.TrueToken, "true":
		return true, nil
	case ago.FalseToken, "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool %q (expected %s or %s)", s, ago.TrueToken, ago.FalseToken)
	}
}

// guess turns text into the runtime value it most plausibly denotes
func guess(s string) any {
	if s == NullToken {
		return nil
	}
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := parseBool(s); err == nil {
		return b
	}
	return ago.NewStr(s)
}
