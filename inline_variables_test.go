package gql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 8 (spec §8): inlining drops the VariableDefinition and replaces
// every reference with the encoded literal.
func TestInlineVariablesReplacesReferencesAndDropsDefinition(t *testing.T) {
	doc := mustParse(t, `query Q($id: ID!) { get(id: $id) { name } }`)
	out, err := InlineVariables(doc, map[string]any{"id": 42})
	require.NoError(t, err)

	op := out.Definitions[0].(*OperationDefinition)
	require.Empty(t, op.VariableDefinitions)
	get := op.SelectionSet.Selections[0].(*Field)
	require.Len(t, get.Arguments, 1)
	require.Equal(t, int64(42), get.Arguments[0].Value.Int)
}

func TestInlineVariablesIsIdempotentWhenValuesHaveNoVariableRefs(t *testing.T) {
	doc := mustParse(t, `query Q($id: ID!) { get(id: $id) { name } }`)
	once, err := InlineVariables(doc, map[string]any{"id": 42})
	require.NoError(t, err)
	twice, err := InlineVariables(once, map[string]any{"id": 42})
	require.NoError(t, err)

	opOnce := once.Definitions[0].(*OperationDefinition)
	opTwice := twice.Definitions[0].(*OperationDefinition)
	require.Equal(t, opOnce.SelectionSet, opTwice.SelectionSet)
}

func TestInlineVariablesDescendsIntoListValues(t *testing.T) {
	doc := mustParse(t, `query Q($id: ID!) { get(ids: [$id, 2]) { name } }`)
	out, err := InlineVariables(doc, map[string]any{"id": 1})
	require.NoError(t, err)
	get := out.Definitions[0].(*OperationDefinition).SelectionSet.Selections[0].(*Field)
	require.Equal(t, ListValue, get.Arguments[0].Value.Kind)
	require.Len(t, get.Arguments[0].Value.List, 2)
	require.Equal(t, IntValue, get.Arguments[0].Value.List[0].Kind)
	require.Equal(t, int64(1), get.Arguments[0].Value.List[0].Int)
}
