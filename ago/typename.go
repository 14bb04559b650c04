package ago

// TypeName returns the Ago type name of a runtime value
func TypeName(v any) string {
	switch x := v.(type) {
	case nil:
		return "Null"
	case int64, int:
		return "Int"
	case float64:
		return "Float"
	case bool:
		return "Bool"
	case *Str:
		if x == nil {
			return "Null"
		}
		return "String"
	case *IntList:
		if x == nil {
			return "Null"
		}
		return "IntList"
	case *FloatList:
		if x == nil {
			return "Null"
		}
		return "FloatList"
	default:
		return "unknown"
	}
}
