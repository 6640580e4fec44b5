package gql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddDirectiveOnOperationWhenPathEmpty(t *testing.T) {
	doc := mustParse(t, `query { user { id } }`)
	out, err := AddDirective(doc, "cached", nil, []Arg{{Name: "ttl", Value: 60}})
	require.NoError(t, err)
	op := out.Definitions[0].(*OperationDefinition)
	require.Len(t, op.Directives, 1)
	require.Equal(t, "cached", op.Directives[0].Name)
	require.Equal(t, int64(60), op.Directives[0].Arguments[0].Value.Int)
}

func TestAddDirectiveOnFieldWhenPathGiven(t *testing.T) {
	doc := mustParse(t, `query { user { id } }`)
	out, err := AddDirective(doc, "skip", Path{F("user")}, []Arg{{Name: "if", Value: true}})
	require.NoError(t, err)
	op := out.Definitions[0].(*OperationDefinition)
	require.Empty(t, op.Directives)
	user := op.SelectionSet.Selections[0].(*Field)
	require.Len(t, user.Directives, 1)
	require.Equal(t, "skip", user.Directives[0].Name)
}
