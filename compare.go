package bstree

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// CompareFunc orders two keys. It returns a negative number if a < b, zero if
// a == b and a positive number if a > b.
//
// If a and b cannot be ordered against each other, a CompareFunc returns an
// error wrapping ErrTypeComparison.
type CompareFunc[K any] func(a, b K) (int, error)

// Ordered returns the comparison function for Go's ordered types.
// It never fails.
func Ordered[K cmp.Ordered]() CompareFunc[K] {
	return func(a, b K) (int, error) {
		return cmp.Compare(a, b), nil
	}
}

// Comparable is implemented by key types which know how to order themselves
// with respect to other keys. Compare has to follow the conventions of
// CompareFunc.
type Comparable interface {
	Compare(other any) (int, error)
}

// CompareDynamic orders keys of heterogeneous types:
//
//   - values implementing Comparable are ordered by their Compare method
//   - numbers of any of Go's integer and floating point kinds compare to
//     each other numerically
//   - strings compare to strings lexicographically
//
// All other combinations, including nil keys, fail with ErrTypeComparison.
func CompareDynamic(a, b any) (int, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("%w: cannot order nil key", ErrTypeComparison)
	}
	if c, ok := a.(Comparable); ok {
		return c.Compare(b)
	}
	if c, ok := b.(Comparable); ok {
		r, err := c.Compare(a)
		return -r, err
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	ka, kb := kindOf(va), kindOf(vb)
	switch {
	case ka == stringKind && kb == stringKind:
		return strings.Compare(va.String(), vb.String()), nil
	case ka.isNumeric() && kb.isNumeric():
		return compareNumbers(va, ka, vb, kb), nil
	}
	return 0, fmt.Errorf("%w: %T vs. %T", ErrTypeComparison, a, b)
}

type keyKind int8

const (
	otherKind keyKind = iota
	signedKind
	unsignedKind
	floatKind
	stringKind
)

func (k keyKind) isNumeric() bool {
	return k == signedKind || k == unsignedKind || k == floatKind
}

func kindOf(v reflect.Value) keyKind {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedKind
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedKind
	case reflect.Float32, reflect.Float64:
		return floatKind
	case reflect.String:
		return stringKind
	}
	return otherKind
}

func compareNumbers(va reflect.Value, ka keyKind, vb reflect.Value, kb keyKind) int {
	switch {
	case ka == signedKind && kb == signedKind:
		return cmp.Compare(va.Int(), vb.Int())
	case ka == unsignedKind && kb == unsignedKind:
		return cmp.Compare(va.Uint(), vb.Uint())
	case ka == signedKind && kb == unsignedKind:
		if va.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(va.Int()), vb.Uint())
	case ka == unsignedKind && kb == signedKind:
		if vb.Int() < 0 {
			return 1
		}
		return cmp.Compare(va.Uint(), uint64(vb.Int()))
	case ka == floatKind && kb == floatKind:
		return cmp.Compare(va.Float(), vb.Float())
	case ka == floatKind && kb == signedKind:
		return compareFloatInt(va.Float(), vb.Int())
	case ka == floatKind && kb == unsignedKind:
		return compareFloatUint(va.Float(), vb.Uint())
	case ka == signedKind:
		return -compareFloatInt(vb.Float(), va.Int())
	}
	return -compareFloatUint(vb.Float(), va.Uint())
}

// Integers of 64 bit are not exactly representable as float64, so floats are
// split into integral and fractional part instead of converting the integer.
// NaN orders before every number, as with cmp.Compare.

const (
	twoTo63 = float64(1 << 63)
	twoTo64 = 2 * twoTo63
)

func compareFloatInt(f float64, i int64) int {
	switch {
	case math.IsNaN(f):
		return -1
	case f < -twoTo63:
		return -1
	case f >= twoTo63:
		return 1
	}
	t := math.Trunc(f)
	if c := cmp.Compare(int64(t), i); c != 0 {
		return c
	}
	return cmp.Compare(f-t, 0)
}

func compareFloatUint(f float64, u uint64) int {
	switch {
	case math.IsNaN(f):
		return -1
	case f < 0:
		return -1
	case f >= twoTo64:
		return 1
	}
	t := math.Trunc(f)
	if c := cmp.Compare(uint64(t), u); c != 0 {
		return c
	}
	return cmp.Compare(f-t, 0)
}
