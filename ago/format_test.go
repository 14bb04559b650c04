package ago

import (
	"math"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0.000000"},
		{1.5, "1.500000"},
		{-2.25, "-2.250000"},
		{1.0 / 3.0, "0.333333"},
		{1e10, "10000000000.000000"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.v); got != tt.want {
			t.Errorf("FormatFloat(%v): expected %q, got %q", tt.v, tt.want, got)
		}
	}
}

func TestBoolTokens(t *testing.T) {
	if FormatBool(true) != "verum" || FormatBool(false) != "falsus" {
		t.Errorf("Unexpected boolean vocabulary: %q, %q", FormatBool(true), FormatBool(false))
	}
	if BoolToStr(true).String() != TrueToken {
		t.Errorf("Expected %q, got %q", TrueToken, BoolToStr(true).String())
	}
}

func TestToStr(t *testing.T) {
	if s := IntToStr(-1234); s.String() != "-1234" {
		t.Errorf("Expected '-1234', got %q", s.String())
	}
	if s := FloatToStr(2); s.String() != "2.000000" {
		t.Errorf("Expected '2.000000', got %q", s.String())
	}
}

func TestTypeName(t *testing.T) {
	var nilList *IntList
	tests := []struct {
		v    any
		want string
	}{
		{nil, "Null"},
		{int64(1), "Int"},
		{2.5, "Float"},
		{true, "Bool"},
		{NewStr("s"), "String"},
		{(*Str)(nil), "Null"},
		{NewIntList(0), "IntList"},
		{nilList, "Null"},
		{NewFloatList(0), "FloatList"},
		{struct{}{}, "unknown"},
	}
	for _, tt := range tests {
		if got := TypeName(tt.v); got != tt.want {
			t.Errorf("TypeName(%T): expected %q, got %q", tt.v, tt.want, got)
		}
	}
}
