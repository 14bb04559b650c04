package abi

// Kind is the type of a parameter or result at the C boundary
type Kind int

const (
	Void Kind = iota
	Int
	Float
	Bool
	String
	IntList
	FloatList
	Any
)

func (k Kind) String() string {
	switch k {
	case Void:
		return "void"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	case IntList:
		return "int_list"
	case FloatList:
		return "float_list"
	case Any:
		return "any"
	default:
		return "unknown"
	}
}

// CType returns the C spelling of the kind. Strings the library only reads
// are const; strings it hands out are not.
func (k Kind) CType(own Ownership) string {
	switch k {
	case Void:
		return "void"
	case Int:
		return "int64_t"
	case Float:
		return "double"
	case Bool:
		return "bool"
	case String:
		if own == Borrowed || own == Static {
			return "const char*"
		}
		return "char*"
	case IntList:
		return "AgoIntList*"
	case FloatList:
		return "AgoFloatList*"
	case Any:
		return "void*"
	default:
		return "void*"
	}
}

// isHandle reports whether values of the kind are list handles
func (k Kind) isHandle() bool {
	return k == IntList || k == FloatList
}

// Ownership says who must release a pointer-shaped value after a call
type Ownership int

const (
	// Borrowed values stay owned by whoever passed them in
	Borrowed Ownership = iota
	// Transferred values belong to the caller, who must release them
	Transferred
	// Consumed values are released by the callee; the caller must not use them again
	Consumed
	// Static values are owned by the library for the life of the process
	Static
)

func (o Ownership) String() string {
	switch o {
	case Borrowed:
		return "borrowed"
	case Transferred:
		return "transferred"
	case Consumed:
		return "consumed"
	case Static:
		return "static"
	default:
		return "unknown"
	}
}
