// Package alike provides generalized deep-equality over arbitrary runtime
// values and a recursive renderer that turns any value into a display
// string with semantic highlight spans.
//
// Both entry points are pure, synchronous and total: they never panic for
// any input, and recursion is bounded by an explicit depth budget so that
// cyclic or very deep structures terminate.
package alike

import (
	"math/big"
	"reflect"
	"regexp"
	"sync/atomic"
)

// Kind classifies a runtime value into one of the categories the
// comparator and renderer dispatch on. The classification happens once
// per value at entry and the dispatch is exhaustive.
type Kind int

// Value kinds, in dispatch order.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindBigInt
	KindString
	KindSymbol
	KindUndefined
	KindFunc
	KindArray
	KindRegexp
	KindError
	KindObject
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindBigInt:
		return "bigint"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindUndefined:
		return "undefined"
	case KindFunc:
		return "func"
	case KindArray:
		return "array"
	case KindRegexp:
		return "regexp"
	case KindError:
		return "error"
	default:
		return "object"
	}
}

// undefinedMarker is the type of the Undefined sentinel.
type undefinedMarker struct{}

// Undefined models an absent value, distinct from a null value. Two
// Undefined values always compare alike; Undefined never compares alike
// with nil.
var Undefined undefinedMarker

// Symbol is an identity-bearing marker with a human-readable description.
// Two symbols compare alike only when they are the same *Symbol instance,
// regardless of description.
type Symbol struct {
	description string
	id          uint64
}

var symbolCounter atomic.Uint64

// NewSymbol creates a fresh symbol with the given description.
func NewSymbol(description string) *Symbol {
	return &Symbol{description: description, id: symbolCounter.Add(1)}
}

// Description returns the description the symbol was created with.
func (s *Symbol) Description() string { return s.description }

// String renders the symbol in its canonical Symbol(<description>) form.
func (s *Symbol) String() string { return "Symbol(" + s.description + ")" }

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// KindOf classifies a value. Pointers are dereferenced: a nil pointer is
// null, a non-nil pointer classifies as its pointee. Nil slices classify
// as (empty) arrays and nil maps as (empty) objects.
func KindOf(v any) Kind {
	k, _ := classify(v)
	return k
}

// classify returns the kind of v together with the reflect.Value the
// comparator and renderer should operate on (pointers dereferenced,
// except for the special wrapper types which keep their identity).
func classify(v any) (Kind, reflect.Value) {
	if v == nil {
		return KindNull, reflect.Value{}
	}
	switch t := v.(type) {
	case undefinedMarker:
		return KindUndefined, reflect.ValueOf(v)
	case *Symbol:
		if t == nil {
			return KindNull, reflect.Value{}
		}
		return KindSymbol, reflect.ValueOf(v)
	case *big.Int:
		if t == nil {
			return KindNull, reflect.Value{}
		}
		return KindBigInt, reflect.ValueOf(v)
	case *regexp.Regexp:
		if t == nil {
			return KindNull, reflect.Value{}
		}
		return KindRegexp, reflect.ValueOf(v)
	}

	rv := reflect.ValueOf(v)
	return classifyValue(rv)
}

func classifyValue(rv reflect.Value) (Kind, reflect.Value) {
	switch rv.Kind() {
	case reflect.Bool:
		return KindBool, rv
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber, rv
	case reflect.String:
		return KindString, rv
	case reflect.Func:
		if rv.IsNil() {
			return KindNull, reflect.Value{}
		}
		return KindFunc, rv
	case reflect.Slice, reflect.Array:
		return KindArray, rv
	case reflect.Map:
		if isError(rv) {
			return KindError, rv
		}
		return KindObject, rv
	case reflect.Pointer:
		if rv.IsNil() {
			return KindNull, reflect.Value{}
		}
		if isError(rv) {
			return KindError, rv
		}
		return classifyValue(rv.Elem())
	case reflect.Interface:
		if rv.IsNil() {
			return KindNull, reflect.Value{}
		}
		return classifyValue(rv.Elem())
	case reflect.Struct:
		if isError(rv) {
			return KindError, rv
		}
		return KindObject, rv
	default:
		// Chan, complex and unsafe pointers have no natural rendering;
		// they fall through to the object rules.
		return KindObject, rv
	}
}

// isError reports whether the value itself implements the error
// interface. The error kind only affects rendering; the comparator
// treats errors as plain objects.
func isError(rv reflect.Value) bool {
	return rv.IsValid() && rv.Type().Implements(errorType)
}
