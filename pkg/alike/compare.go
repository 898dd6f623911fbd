package alike

import (
	"math"
	"math/big"
	"reflect"
	"regexp"
)

// DefaultMaxDepth is the recursion budget used by Alike. The budget
// doubles as a termination guarantee for cyclic structures: recursion
// that reaches the cap treats the unexplored remainder as a match.
const DefaultMaxDepth = 99

// Alike reports whether two values are equivalent under a generalized,
// type-aware, cycle-tolerant deep-equality. It is total: any two values
// of any kind can be compared and the function never panics.
//
// The rules, first match wins:
//
//  1. Two nulls are alike; a null and anything else are not.
//  2. Two NaNs are alike; a NaN and anything else are not.
//  3. Values of differing kinds are never alike.
//  4. Scalars (bool, number, bigint, string, symbol, undefined) compare
//     by strict value equality; symbols by identity; 0 and -0 are alike.
//  5. The same reference (slice, map, func, pointer) is alike to itself.
//  6. Two distinct funcs are never alike, even if behaviorally identical.
//  7. Arrays are alike when their lengths match and every element pair is
//     alike; element recursion spends one unit of the depth budget.
//  8. An array and a non-array are never alike.
//  9. Objects are alike when they share the same concrete type, the same
//     key count, and every keyed value pair is alike. Unexported struct
//     fields are ignored entirely.
//
// Deeply nested structures beyond the depth budget short-circuit to true;
// this is a documented approximation, not exact cycle detection.
func Alike(actually, expected any) bool {
	return AlikeDepth(actually, expected, DefaultMaxDepth)
}

// AlikeDepth is Alike with an explicit recursion budget.
func AlikeDepth(actually, expected any, maxDepth int) bool {
	ak, av := classify(actually)
	ek, ev := classify(expected)

	// Null handling.
	if ak == KindNull || ek == KindNull {
		return ak == ek
	}

	// NaN handling: reflexively true, unlike raw float equality.
	aNaN := ak == KindNumber && isFloatNaN(av)
	eNaN := ek == KindNumber && isFloatNaN(ev)
	if aNaN || eNaN {
		return aNaN && eNaN
	}

	// Kind mismatch. Errors compare under the plain object rules.
	if normalizeKind(ak) != normalizeKind(ek) {
		return false
	}

	switch normalizeKind(ak) {
	case KindBool:
		return av.Bool() == ev.Bool()
	case KindNumber:
		return numbersEqual(av, ev)
	case KindString:
		return av.String() == ev.String()
	case KindBigInt:
		return actually.(*big.Int).Cmp(expected.(*big.Int)) == 0
	case KindSymbol:
		return actually.(*Symbol) == expected.(*Symbol)
	case KindUndefined:
		return true
	case KindRegexp:
		return actually.(*regexp.Regexp).String() == expected.(*regexp.Regexp).String()
	case KindFunc:
		// Identity shortcut is the only way two funcs are alike.
		return av.UnsafePointer() == ev.UnsafePointer()
	case KindArray:
		return arraysAlike(av, ev, maxDepth)
	default:
		return objectsAlike(av, ev, maxDepth)
	}
}

// normalizeKind folds the render-only error kind into the object kind.
func normalizeKind(k Kind) Kind {
	if k == KindError {
		return KindObject
	}
	return k
}

func isFloatNaN(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(v.Float())
	}
	return false
}

// numbersEqual compares two numeric values. Integer pairs compare
// exactly; once a float is involved both sides compare as float64, which
// makes 0 and -0 alike.
func numbersEqual(a, e reflect.Value) bool {
	aInt, aSigned := intValue(a)
	eInt, eSigned := intValue(e)
	switch {
	case aSigned && eSigned:
		return aInt == eInt
	case isUintKind(a) && isUintKind(e):
		return a.Uint() == e.Uint()
	case aSigned && isUintKind(e):
		return aInt >= 0 && uint64(aInt) == e.Uint()
	case isUintKind(a) && eSigned:
		return eInt >= 0 && uint64(eInt) == a.Uint()
	default:
		return floatValue(a) == floatValue(e)
	}
}

func intValue(v reflect.Value) (int64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	}
	return 0, false
}

func isUintKind(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func floatValue(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint())
	default:
		return float64(v.Int())
	}
}

func arraysAlike(a, e reflect.Value, maxDepth int) bool {
	if a.Kind() == reflect.Slice && e.Kind() == reflect.Slice &&
		a.Len() == e.Len() && a.UnsafePointer() == e.UnsafePointer() {
		return true
	}
	// Depth safety valve: treat unexplored depth as a pass.
	if maxDepth <= 0 {
		return true
	}
	if a.Len() != e.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !AlikeDepth(a.Index(i).Interface(), e.Index(i).Interface(), maxDepth-1) {
			return false
		}
	}
	return true
}

func objectsAlike(a, e reflect.Value, maxDepth int) bool {
	a = derefValue(a)
	e = derefValue(e)

	// The constructor check: instances of unrelated types never compare
	// alike, even when their shapes match.
	if a.Type() != e.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Map:
		if a.UnsafePointer() == e.UnsafePointer() {
			return true
		}
		if a.Len() != e.Len() {
			return false
		}
		if maxDepth <= 0 {
			return true
		}
		iter := a.MapRange()
		for iter.Next() {
			other := e.MapIndex(iter.Key())
			if !other.IsValid() {
				return false
			}
			if !AlikeDepth(iter.Value().Interface(), other.Interface(), maxDepth-1) {
				return false
			}
		}
		return true
	case reflect.Struct:
		if maxDepth <= 0 {
			return true
		}
		t := a.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			if !AlikeDepth(a.Field(i).Interface(), e.Field(i).Interface(), maxDepth-1) {
				return false
			}
		}
		return true
	default:
		// Remaining kinds (chan, complex, ...) compare by strict equality
		// where the type supports it.
		if a.Comparable() {
			return a.Equal(e)
		}
		return false
	}
}

func derefValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	return v
}
