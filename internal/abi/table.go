// Completion: 100% - Symbol table complete
package abi

import (
	"sort"
	"strings"

	"github.com/xyproto/agort/ago"
	"github.com/xyproto/agort/internal/engine"
)

// Param is one parameter of a runtime symbol
type Param struct {
	Name      string
	Kind      Kind
	Ownership Ownership
}

// Symbol is one entry point of the runtime as generated code sees it
type Symbol struct {
	Name            string
	Section         string
	Params          []Param
	Result          Kind
	ResultOwnership Ownership
	Doc             string

	call func(args []Value) Value
}

// Signature returns the C prototype of the symbol
func (s Symbol) Signature() string {
	var sb strings.Builder
	sb.WriteString(s.Result.CType(s.ResultOwnership))
	sb.WriteString(" ")
	sb.WriteString(s.Name)
	sb.WriteString("(")
	if len(s.Params) == 0 {
		sb.WriteString("void")
	}
	for i, p := range s.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Kind.CType(p.Ownership))
		sb.WriteString(" ")
		sb.WriteString(p.Name)
	}
	sb.WriteString(")")
	return sb.String()
}

// Callable reports whether the symbol can be invoked with text arguments.
// List handles only live inside one process, so symbols that take or
// return them cannot.
func (s Symbol) Callable() bool {
	if s.call == nil || s.Result.isHandle() {
		return false
	}
	for _, p := range s.Params {
		if p.Kind.isHandle() {
			return false
		}
	}
	return true
}

// Section names, in header order
const (
	SectionArithmetic = "Arithmetic Operations"
	SectionBitwise    = "Bitwise Operations"
	SectionComparison = "Comparison Operations"
	SectionLogical    = "Logical Operations"
	SectionIO         = "I/O Operations"
	SectionString     = "String Operations"
	SectionIntList    = "List Operations"
	SectionFloatList  = "Float List Operations"
	SectionUtility    = "Utility Functions"
)

var sections = []string{
	SectionArithmetic, SectionBitwise, SectionComparison, SectionLogical,
	SectionIO, SectionString, SectionIntList, SectionFloatList, SectionUtility,
}

func arg(name string, k Kind) Param {
	return Param{Name: name, Kind: k}
}

func consumed(name string, k Kind) Param {
	return Param{Name: name, Kind: k, Ownership: Consumed}
}

// binaryInt builds an int64 x int64 -> int64 entry
func binaryInt(name, doc string, fn func(a, b int64) int64) Symbol {
	return Symbol{
		Name: name, Section: SectionArithmetic, Doc: doc,
		Params: []Param{arg("a", Int), arg("b", Int)}, Result: Int,
		call: func(a []Value) Value { return intV(fn(a[0].Int, a[1].Int)) },
	}
}

// compareInt builds an int64 x int64 -> bool entry
func compareInt(name string, fn func(a, b int64) bool) Symbol {
	return Symbol{
		Name: name, Section: SectionComparison,
		Params: []Param{arg("a", Int), arg("b", Int)}, Result: Bool,
		call: func(a []Value) Value { return boolV(fn(a[0].Int, a[1].Int)) },
	}
}

var symbols = buildTable()

func buildTable() []Symbol {
	bitwise := func(s Symbol) Symbol {
		s.Section = SectionBitwise
		return s
	}
	return []Symbol{
		binaryInt("ago_add", "", ago.Add),
		binaryInt("ago_subtract", "", ago.Subtract),
		binaryInt("ago_multiply", "", ago.Multiply),
		binaryInt("ago_divide", "Truncating division. A zero divisor is fatal.", ago.Divide),
		binaryInt("ago_modulo", "Remainder with the sign of a. A zero divisor is fatal.", ago.Modulo),
		{
			Name: "ago_negate", Section: SectionArithmetic,
			Params: []Param{arg("a", Int)}, Result: Int,
			call: func(a []Value) Value { return intV(ago.Negate(a[0].Int)) },
		},

		bitwise(binaryInt("ago_bit_and", "", ago.BitAnd)),
		bitwise(binaryInt("ago_bit_or", "", ago.BitOr)),
		bitwise(binaryInt("ago_bit_xor", "", ago.BitXor)),

		compareInt("ago_equal", ago.Equal),
		compareInt("ago_not_equal", ago.NotEqual),
		compareInt("ago_less_than", ago.LessThan),
		compareInt("ago_greater_than", ago.GreaterThan),
		compareInt("ago_less_equal", ago.LessEqual),
		compareInt("ago_greater_equal", ago.GreaterEqual),

		{
			Name: "ago_logical_and", Section: SectionLogical,
			Params: []Param{arg("a", Bool), arg("b", Bool)}, Result: Bool,
			call: func(a []Value) Value { return boolV(ago.And(a[0].Bool, a[1].Bool)) },
		},
		{
			Name: "ago_logical_or", Section: SectionLogical,
			Params: []Param{arg("a", Bool), arg("b", Bool)}, Result: Bool,
			call: func(a []Value) Value { return boolV(ago.Or(a[0].Bool, a[1].Bool)) },
		},
		{
			Name: "ago_logical_not", Section: SectionLogical,
			Params: []Param{arg("a", Bool)}, Result: Bool,
			call: func(a []Value) Value { return boolV(ago.Not(a[0].Bool)) },
		},

		{
			Name: "ago_print_int", Section: SectionIO,
			Params: []Param{arg("value", Int)}, Result: Void,
			call: func(a []Value) Value { ago.PrintInt(a[0].Int); return void },
		},
		{
			Name: "ago_print_float", Section: SectionIO,
			Params: []Param{arg("value", Float)}, Result: Void,
			call: func(a []Value) Value { ago.PrintFloat(a[0].Float); return void },
		},
		{
			Name: "ago_print_bool", Section: SectionIO, Doc: "Prints verum or falsus.",
			Params: []Param{arg("value", Bool)}, Result: Void,
			call: func(a []Value) Value { ago.PrintBool(a[0].Bool); return void },
		},
		{
			Name: "ago_print_string", Section: SectionIO, Doc: "NULL prints nothing, not even a newline.",
			Params: []Param{arg("str", String)}, Result: Void,
			call: func(a []Value) Value { ago.PrintString(a[0].Str); return void },
		},

		{
			Name: "ago_string_concat", Section: SectionString,
			Doc:    "NULL counts as empty. The caller frees the result.",
			Params: []Param{arg("a", String), arg("b", String)}, Result: String, ResultOwnership: Transferred,
			call: func(a []Value) Value { return strV(ago.Concat(a[0].Str, a[1].Str)) },
		},
		{
			Name: "ago_string_length", Section: SectionString, Doc: "NULL has length 0.",
			Params: []Param{arg("str", String)}, Result: Int,
			call: func(a []Value) Value { return intV(ago.Length(a[0].Str)) },
		},
		{
			Name: "ago_string_get", Section: SectionString,
			Doc:    "One-character string at index. NULL or an out-of-range index is fatal. The caller frees the result.",
			Params: []Param{arg("str", String), arg("index", Int)}, Result: String, ResultOwnership: Transferred,
			call: func(a []Value) Value { return strV(ago.CharAt(a[0].Str, a[1].Int)) },
		},
		{
			Name: "ago_string_free", Section: SectionString, Doc: "Releases a string returned by the library. NULL is a no-op.",
			Params: []Param{consumed("str", String)}, Result: Void,
			call: func(a []Value) Value { a[0].Str.Release(); return void },
		},
		{
			Name: "ago_int_to_string", Section: SectionString,
			Params: []Param{arg("value", Int)}, Result: String, ResultOwnership: Transferred,
			call: func(a []Value) Value { return strV(ago.IntToStr(a[0].Int)) },
		},
		{
			Name: "ago_float_to_string", Section: SectionString,
			Params: []Param{arg("value", Float)}, Result: String, ResultOwnership: Transferred,
			call: func(a []Value) Value { return strV(ago.FloatToStr(a[0].Float)) },
		},
		{
			Name: "ago_bool_to_string", Section: SectionString,
			Params: []Param{arg("value", Bool)}, Result: String, ResultOwnership: Transferred,
			call: func(a []Value) Value { return strV(ago.BoolToStr(a[0].Bool)) },
		},

		{
			Name: "ago_list_int_new", Section: SectionIntList,
			Doc:    "Length starts at 0 whatever the capacity. The caller frees the list.",
			Params: []Param{arg("capacity", Int)}, Result: IntList, ResultOwnership: Transferred,
		},
		{Name: "ago_list_int_length", Section: SectionIntList, Params: []Param{arg("list", IntList)}, Result: Int},
		{Name: "ago_list_int_get", Section: SectionIntList, Params: []Param{arg("list", IntList), arg("index", Int)}, Result: Int},
		{Name: "ago_list_int_set", Section: SectionIntList, Params: []Param{arg("list", IntList), arg("index", Int), arg("value", Int)}, Result: Void},
		{Name: "ago_list_int_append", Section: SectionIntList, Params: []Param{arg("list", IntList), arg("value", Int)}, Result: Void},
		{
			Name: "ago_list_int_insert", Section: SectionIntList, Doc: "index may equal the length.",
			Params: []Param{arg("list", IntList), arg("index", Int), arg("value", Int)}, Result: Void,
		},
		{Name: "ago_list_int_remove", Section: SectionIntList, Params: []Param{arg("list", IntList), arg("index", Int)}, Result: Int},
		{Name: "ago_list_int_contains", Section: SectionIntList, Params: []Param{arg("list", IntList), arg("value", Int)}, Result: Bool},
		{Name: "ago_list_int_free", Section: SectionIntList, Doc: "NULL is a no-op.", Params: []Param{consumed("list", IntList)}, Result: Void},

		{Name: "ago_list_float_new", Section: SectionFloatList, Params: []Param{arg("capacity", Int)}, Result: FloatList, ResultOwnership: Transferred},
		{Name: "ago_list_float_length", Section: SectionFloatList, Params: []Param{arg("list", FloatList)}, Result: Int},
		{Name: "ago_list_float_get", Section: SectionFloatList, Params: []Param{arg("list", FloatList), arg("index", Int)}, Result: Float},
		{Name: "ago_list_float_set", Section: SectionFloatList, Params: []Param{arg("list", FloatList), arg("index", Int), arg("value", Float)}, Result: Void},
		{Name: "ago_list_float_append", Section: SectionFloatList, Params: []Param{arg("list", FloatList), arg("value", Float)}, Result: Void},
		{Name: "ago_list_float_free", Section: SectionFloatList, Doc: "NULL is a no-op.", Params: []Param{consumed("list", FloatList)}, Result: Void},

		{
			Name: "ago_read_line", Section: SectionUtility,
			Doc:    "One line from stdin without its terminator, or NULL at end of input. The caller frees the result.",
			Result: String, ResultOwnership: Transferred,
			call: func([]Value) Value { return strV(ago.ReadLine()) },
		},
		{
			Name: "ago_exit", Section: SectionUtility, Doc: "Terminates the process immediately.",
			Params: []Param{arg("code", Int)}, Result: Void,
			call: func(a []Value) Value { ago.Exit(a[0].Int); return void },
		},
		{
			Name: "ago_type_name", Section: SectionUtility,
			Params: []Param{arg("value", Any)}, Result: String, ResultOwnership: Static,
			call: func(a []Value) Value { return strV(ago.NewStr(ago.TypeName(a[0].Any))) },
		},
	}
}

// Symbols returns every runtime symbol in header order
func Symbols() []Symbol {
	out := make([]Symbol, len(symbols))
	copy(out, symbols)
	return out
}

// Sections returns the section names in header order
func Sections() []string {
	out := make([]string, len(sections))
	copy(out, sections)
	return out
}

// Lookup finds a symbol by name. The "ago_" prefix may be left out.
func Lookup(name string) (Symbol, bool) {
	if !strings.HasPrefix(name, "ago_") {
		name = "ago_" + name
	}
	for _, s := range symbols {
		if s.Name == name {
			return s, true
		}
	}
	return Symbol{}, false
}

// Suggest returns the symbol names closest to a misspelled name
func Suggest(name string) []string {
	if !strings.HasPrefix(name, "ago_") {
		name = "ago_" + name
	}
	names := make([]string, len(symbols))
	for i, s := range symbols {
		names[i] = s.Name
	}
	sort.Strings(names)
	return engine.FindSimilar(name, names, 3)
}
