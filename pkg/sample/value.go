package sample

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the type held by a Value.
type Kind int

const (
	KindNone Kind = iota
	KindInt
	KindUint
	KindFloat
	KindList
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a sampling argument or result: nothing, a scalar, or a list.
type Value struct {
	kind  Kind
	i     int64
	u     uint64
	f     float64
	items []Value
}

// None is the result of operations that only mutate state, like seed.
var None = Value{}

// Int returns an integer value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Uint returns an unsigned integer value.
func Uint(v uint64) Value { return Value{kind: KindUint, u: v} }

// Float returns a floating point value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// List returns a list value. The slice is not copied.
func List(items []Value) Value { return Value{kind: KindList, items: items} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer and whether the value holds a signed integer, or
// an unsigned one that fits.
func (v Value) Int() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindUint:
		if v.u <= 1<<63-1 {
			return int64(v.u), true
		}
	}
	return 0, false
}

// Float returns the value as a float. Integers are converted.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	case KindUint:
		return float64(v.u), true
	}
	return 0, false
}

// Items returns the elements of a list value.
func (v Value) Items() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.items, true
}

// Interface returns the value as a plain Go value: nil, int64, uint64,
// float64 or []any.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindUint:
		return v.u
	case KindFloat:
		return v.f
	case KindList:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// String renders the value the way the scripting language prints it.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindList:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "None"
	}
}

// MarshalJSON encodes the value as a JSON null, number or array. Infinite
// and NaN floats have no JSON number form and encode as the strings "inf",
// "-inf" and "nan".
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindFloat:
		if math.IsInf(v.f, 0) || math.IsNaN(v.f) {
			return json.Marshal(formatFloat(v.f))
		}
	case KindList:
		if v.items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.items)
	}
	return json.Marshal(v.Interface())
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}
