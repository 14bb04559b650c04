package ago

import (
	"math"
	"strconv"
)

// The Ago boolean vocabulary
const (
	TrueToken  = "verum"
	FalseToken = "falsus"
)

// FloatPrecision is the number of fractional digits in a rendered float
const FloatPrecision = 6

// FormatInt renders v in decimal
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatFloat renders v in fixed point with FloatPrecision digits, the way
// C's %f does, including its spelling of the non-finite values
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', FloatPrecision, 64)
}

// FormatBool renders v as TrueToken or FalseToken
func FormatBool(v bool) string {
	if v {
		return TrueToken
	}
	return FalseToken
}

// IntToStr returns the decimal rendering of v as an owned string
func IntToStr(v int64) *Str {
	return NewStr(FormatInt(v))
}

// FloatToStr returns the rendering of v used by PrintFloat as an owned string
func FloatToStr(v float64) *Str {
	return NewStr(FormatFloat(v))
}

// BoolToStr returns TrueToken or FalseToken as an owned string
func BoolToStr(v bool) *Str {
	return NewStr(FormatBool(v))
}
