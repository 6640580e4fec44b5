package gql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		name         string
		in           any
		wantType     string
		wantKind     ValueKind
		wantPresent  bool
	}{
		{"nil is absent", nil, "", 0, false},
		{"explicit null", Null, "NullValue", NullValue, true},
		{"int", 7, "Integer", IntValue, true},
		{"float", 1.5, "Float", FloatValue, true},
		{"bool", true, "Boolean", BooleanValue, true},
		{"enum ident", EnumIdent("ACTIVE"), "", EnumValue, true},
		{"variable string", "$id", "", VariableValue, true},
		{"plain string", "hello", "String", StringValue, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			typ, v, present := Encode(tc.in)
			assert.Equal(t, tc.wantPresent, present)
			if !tc.wantPresent {
				return
			}
			assert.Equal(t, tc.wantType, typ)
			assert.Equal(t, tc.wantKind, v.Kind)
		})
	}
}

func TestEncodeList(t *testing.T) {
	typ, v, ok := Encode([]any{1, 2, 3})
	require.True(t, ok)
	assert.Equal(t, "[Integer!]", typ)
	require.Equal(t, ListValue, v.Kind)
	require.Len(t, v.List, 3)
	assert.Equal(t, int64(2), v.List[1].Int)
}

func TestEncodeOrderedMap(t *testing.T) {
	_, v, ok := Encode(M{{Key: "b", Value: 2}, {Key: "a", Value: 1}})
	require.True(t, ok)
	require.Equal(t, ObjectValue, v.Kind)
	require.Len(t, v.Object, 2)
	assert.Equal(t, "b", v.Object[0].Name)
	assert.Equal(t, "a", v.Object[1].Name)
}

func TestEncodePlainMapSortsKeys(t *testing.T) {
	_, v, ok := Encode(map[string]any{"z": 1, "a": 2})
	require.True(t, ok)
	require.Len(t, v.Object, 2)
	assert.Equal(t, "a", v.Object[0].Name)
	assert.Equal(t, "z", v.Object[1].Name)
}
