// Package cstr moves strings across the C boundary.
//
// Inputs are borrowed NUL terminated byte strings owned by the caller.
// Outputs are allocated on the C heap with malloc; ownership moves to the
// caller, which must release every non-nil result exactly once with Free.
// Releasing twice is undefined behaviour and is not guarded against.
package cstr

/*
#include <stdlib.h>
*/
import "C"

import (
	"unicode/utf8"
	"unsafe"

	"github.com/pkg/errors"
)

var (
	ErrNullInput       = errors.New("null input")
	ErrInvalidEncoding = errors.New("invalid utf-8 input")
)

// GoString copies the NUL terminated string at p into Go memory.
func GoString(p unsafe.Pointer) (string, error) {
	if p == nil {
		return "", ErrNullInput
	}

	s := C.GoString((*C.char)(p))

	if !utf8.ValidString(s) {
		return "", errors.Wrapf(ErrInvalidEncoding, "at byte %d", invalidAt(s))
	}

	return s, nil
}

func invalidAt(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(s)
}

// CString copies s to the C heap. The result is never nil.
// A NUL byte inside s ends the string for C readers.
func CString(s string) unsafe.Pointer {
	return unsafe.Pointer(C.CString(s))
}

// Free releases a string returned by CString. Nil is a no-op.
func Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	C.free(p)
}

// Transform applies fn to the string at p and returns a newly allocated result.
// A nil or invalid input gives a nil result and the reason.
func Transform(p unsafe.Pointer, fn func(s string) string) (unsafe.Pointer, error) {
	s, err := GoString(p)
	if err != nil {
		return nil, err
	}
	return CString(fn(s)), nil
}

// Predicate applies fn to the string at p. A nil or invalid input is false.
// Nothing is allocated.
func Predicate(p unsafe.Pointer, fn func(s string) bool) (bool, error) {
	s, err := GoString(p)
	if err != nil {
		return false, err
	}
	return fn(s), nil
}
