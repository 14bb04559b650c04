// Command libago is the Ago runtime as a C shared library:
//
//	go build -buildmode=c-shared -o libago.so ./cmd/libago
//
// Generated code links against it and includes the header printed by
// "agort header". Strings returned to C are malloc'ed copies the caller
// frees with ago_string_free (or free). List handles are runtime/cgo handles
// released with ago_list_int_free / ago_list_float_free.
package main

/*
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/xyproto/agort/ago"
)

func main() {}

// goStr converts a borrowed C string; NULL is the absent string
func goStr(s *C.char) *ago.Str {
	if s == nil {
		return nil
	}
	return ago.NewStr(C.GoString(s))
}

// cStr hands an owned string to C; the absent string becomes NULL
func cStr(s *ago.Str) *C.char {
	if s == nil {
		return nil
	}
	return C.CString(s.String())
}

// intList resolves a handle; 0 is the absent list
func intList(h C.uintptr_t) *ago.IntList {
	if h == 0 {
		return nil
	}
	return cgo.Handle(h).Value().(*ago.IntList)
}

func floatList(h C.uintptr_t) *ago.FloatList {
	if h == 0 {
		return nil
	}
	return cgo.Handle(h).Value().(*ago.FloatList)
}

// Arithmetic

//export ago_add
func ago_add(a, b C.int64_t) C.int64_t {
	return C.int64_t(ago.Add(int64(a), int64(b)))
}

//export ago_subtract
func ago_subtract(a, b C.int64_t) C.int64_t {
	return C.int64_t(ago.Subtract(int64(a), int64(b)))
}

//export ago_multiply
func ago_multiply(a, b C.int64_t) C.int64_t {
	return C.int64_t(ago.Multiply(int64(a), int64(b)))
}

//export ago_divide
func ago_divide(a, b C.int64_t) C.int64_t {
	return C.int64_t(ago.Divide(int64(a), int64(b)))
}

//export ago_modulo
func ago_modulo(a, b C.int64_t) C.int64_t {
	return C.int64_t(ago.Modulo(int64(a), int64(b)))
}

//export ago_negate
func ago_negate(a C.int64_t) C.int64_t {
	return C.int64_t(ago.Negate(int64(a)))
}

//export ago_bit_and
func ago_bit_and(a, b C.int64_t) C.int64_t {
	return C.int64_t(ago.BitAnd(int64(a), int64(b)))
}

//export ago_bit_or
func ago_bit_or(a, b C.int64_t) C.int64_t {
	return C.int64_t(ago.BitOr(int64(a), int64(b)))
}

//export ago_bit_xor
func ago_bit_xor(a, b C.int64_t) C.int64_t {
	return C.int64_t(ago.BitXor(int64(a), int64(b)))
}

// Comparison

//export ago_equal
func ago_equal(a, b C.int64_t) C.bool {
	return C.bool(ago.Equal(int64(a), int64(b)))
}

//export ago_not_equal
func ago_not_equal(a, b C.int64_t) C.bool {
	return C.bool(ago.NotEqual(int64(a), int64(b)))
}

//export ago_less_than
func ago_less_than(a, b C.int64_t) C.bool {
	return C.bool(ago.LessThan(int64(a), int64(b)))
}

//export ago_greater_than
func ago_greater_than(a, b C.int64_t) C.bool {
	return C.bool(ago.GreaterThan(int64(a), int64(b)))
}

//export ago_less_equal
func ago_less_equal(a, b C.int64_t) C.bool {
	return C.bool(ago.LessEqual(int64(a), int64(b)))
}

//export ago_greater_equal
func ago_greater_equal(a, b C.int64_t) C.bool {
	return C.bool(ago.GreaterEqual(int64(a), int64(b)))
}

// Logical

//export ago_logical_and
func ago_logical_and(a, b C.bool) C.bool {
	return C.bool(ago.And(bool(a), bool(b)))
}

//export ago_logical_or
func ago_logical_or(a, b C.bool) C.bool {
	return C.bool(ago.Or(bool(a), bool(b)))
}

//export ago_logical_not
func ago_logical_not(a C.bool) C.bool {
	return C.bool(ago.Not(bool(a)))
}

// I/O

//export ago_print_int
func ago_print_int(v C.int64_t) {
	ago.PrintInt(int64(v))
}

//export ago_print_float
func ago_print_float(v C.double) {
	ago.PrintFloat(float64(v))
}

//export ago_print_bool
func ago_print_bool(v C.bool) {
	ago.PrintBool(bool(v))
}

//export ago_print_string
func ago_print_string(s *C.char) {
	ago.PrintString(goStr(s))
}

// Strings

//export ago_string_concat
func ago_string_concat(a, b *C.char) *C.char {
	return cStr(ago.Concat(goStr(a), goStr(b)))
}

//export ago_string_length
func ago_string_length(s *C.char) C.int64_t {
	return C.int64_t(ago.Length(goStr(s)))
}

//export ago_string_get
func ago_string_get(s *C.char, index C.int64_t) *C.char {
	return cStr(ago.CharAt(goStr(s), int64(index)))
}

//export ago_string_free
func ago_string_free(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

//export ago_int_to_string
func ago_int_to_string(v C.int64_t) *C.char {
	return cStr(ago.IntToStr(int64(v)))
}

//export ago_float_to_string
func ago_float_to_string(v C.double) *C.char {
	return cStr(ago.FloatToStr(float64(v)))
}

//export ago_bool_to_string
func ago_bool_to_string(v C.bool) *C.char {
	return cStr(ago.BoolToStr(bool(v)))
}

// Integer lists

//export ago_list_int_new
func ago_list_int_new(capacity C.int64_t) C.uintptr_t {
	return C.uintptr_t(cgo.NewHandle(ago.NewIntList(int64(capacity))))
}

//export ago_list_int_length
func ago_list_int_length(h C.uintptr_t) C.int64_t {
	return C.int64_t(intList(h).Len())
}

//export ago_list_int_get
func ago_list_int_get(h C.uintptr_t, index C.int64_t) C.int64_t {
	return C.int64_t(intList(h).Get(int64(index)))
}

//export ago_list_int_set
func ago_list_int_set(h C.uintptr_t, index, value C.int64_t) {
	intList(h).Set(int64(index), int64(value))
}

//export ago_list_int_append
func ago_list_int_append(h C.uintptr_t, value C.int64_t) {
	intList(h).Append(int64(value))
}

//export ago_list_int_insert
func ago_list_int_insert(h C.uintptr_t, index, value C.int64_t) {
	intList(h).Insert(int64(index), int64(value))
}

//export ago_list_int_remove
func ago_list_int_remove(h C.uintptr_t, index C.int64_t) C.int64_t {
	return C.int64_t(intList(h).Remove(int64(index)))
}

//export ago_list_int_contains
func ago_list_int_contains(h C.uintptr_t, value C.int64_t) C.bool {
	return C.bool(intList(h).Contains(int64(value)))
}

//export ago_list_int_free
func ago_list_int_free(h C.uintptr_t) {
	if h == 0 {
		return
	}
	intList(h).Destroy()
	cgo.Handle(h).Delete()
}

// Float lists

//export ago_list_float_new
func ago_list_float_new(capacity C.int64_t) C.uintptr_t {
	return C.uintptr_t(cgo.NewHandle(ago.NewFloatList(int64(capacity))))
}

//export ago_list_float_length
func ago_list_float_length(h C.uintptr_t) C.int64_t {
	return C.int64_t(floatList(h).Len())
}

//export ago_list_float_get
func ago_list_float_get(h C.uintptr_t, index C.int64_t) C.double {
	return C.double(floatList(h).Get(int64(index)))
}

//export ago_list_float_set
func ago_list_float_set(h C.uintptr_t, index C.int64_t, value C.double) {
	floatList(h).Set(int64(index), float64(value))
}

//export ago_list_float_append
func ago_list_float_append(h C.uintptr_t, value C.double) {
	floatList(h).Append(float64(value))
}

//export ago_list_float_free
func ago_list_float_free(h C.uintptr_t) {
	if h == 0 {
		return
	}
	floatList(h).Destroy()
	cgo.Handle(h).Delete()
}

// Utility

//export ago_read_line
func ago_read_line() *C.char {
	return cStr(ago.ReadLine())
}

//export ago_exit
func ago_exit(code C.int64_t) {
	ago.Exit(int64(code))
}

// typeNames holds the static strings ago_type_name hands out
var typeNames = map[string]*C.char{}

//export ago_type_name
func ago_type_name(value unsafe.Pointer) *C.char {
	// A bare pointer carries no runtime type, so only absence is knowable
	name := "unknown"
	if value == nil {
		name = ago.TypeName(nil)
	}
	s, ok := typeNames[name]
	if !ok {
		s = C.CString(name)
		typeNames[name] = s
	}
	return s
}
