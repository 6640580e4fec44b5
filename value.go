package gql

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// EnumIdent marks a host string as a GraphQL enum identifier (the closest Go
// analogue of a symbolic atom) rather than a GraphQL string literal, so that
// Encode lifts it to an EnumValue instead of a StringValue.
type EnumIdent string

// nullSentinel is the type of Null, the explicit "encode this as a GraphQL
// null literal" marker (as opposed to Go's nil, which means "no value at
// all" — see Encode).
type nullSentinel struct{}

// Null is the explicit null sentinel from spec §4.1: passing Null to an
// operation that accepts a value encodes a GraphQL `null` literal, which is
// distinct from omitting the value entirely (Go nil).
var Null = nullSentinel{}

// KV is an ordered key/value pair, used by M to build an Object Value whose
// field order is significant (Go maps have no iteration order).
type KV struct {
	Key   string
	Value any
}

// M is an ordered mapping accepted by Encode wherever spec §4.1 calls for a
// "keyed mapping". Plain map[string]any is also accepted, but its keys are
// sorted for determinism since Go map iteration order is unspecified.
type M []KV

// Encode lifts a host Go value into a GraphQL Value, per the table in spec
// §4.1. It returns the inferred GraphQL type name (used only by add-variable
// to supply a default type when the caller omits one; "" when no type can be
// inferred) and whether a value was present at all — Encode(nil) returns
// present=false, representing "no value", distinct from Encode(Null) which
// encodes an explicit null literal.
func Encode(v any) (inferredType string, val Value, present bool) {
	if v == nil {
		return "", Value{}, false
	}

	switch x := v.(type) {
	case nullSentinel:
		return "NullValue", Value{Kind: NullValue}, true

	case EnumIdent:
		return "", Value{Kind: EnumValue, Str: string(x)}, true

	case bool:
		return "Boolean", Value{Kind: BooleanValue, Bool: x}, true

	case string:
		if strings.HasPrefix(x, "$") {
			return "", Value{Kind: VariableValue, Str: strings.TrimPrefix(x, "$")}, true
		}
		return "String", Value{Kind: StringValue, Str: x}, true

	case float32:
		return "Float", Value{Kind: FloatValue, Float: float64(x)}, true
	case float64:
		return "Float", Value{Kind: FloatValue, Float: x}, true

	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "Integer", Value{Kind: IntValue, Int: toInt64(x)}, true

	case Value:
		return "", x, true

	case M:
		fields := make([]ObjectField, 0, len(x))
		for _, kv := range x {
			_, fv, ok := Encode(kv.Value)
			if !ok {
				continue
			}
			fields = append(fields, ObjectField{Name: kv.Key, Value: fv})
		}
		return "", Value{Kind: ObjectValue, Object: fields}, true

	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]ObjectField, 0, len(keys))
		for _, k := range keys {
			_, fv, ok := Encode(x[k])
			if !ok {
				continue
			}
			fields = append(fields, ObjectField{Name: k, Value: fv})
		}
		return "", Value{Kind: ObjectValue, Object: fields}, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		elems := make([]Value, 0, n)
		elemTypes := map[string]bool{}
		for i := 0; i < n; i++ {
			t, ev, ok := Encode(rv.Index(i).Interface())
			if !ok {
				continue
			}
			elems = append(elems, ev)
			elemTypes[t] = true
		}
		elemType := "String"
		if len(elemTypes) == 1 {
			for t := range elemTypes {
				if t != "" {
					elemType = t
				}
			}
		}
		return fmt.Sprintf("[%s!]", elemType), Value{Kind: ListValue, List: elems}, true
	}

	return "", Value{}, false
}

func toInt64(v any) int64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	}
	return 0
}
