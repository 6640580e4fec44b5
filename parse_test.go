package gql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBuildsDocumentModel(t *testing.T) {
	doc, err := Parse(`
		query GetUser($id: ID!) @cached {
			user(id: $id, active: true) {
				id
				alias: name
				...Common
				... on Admin {
					permissions
				}
			}
		}
		fragment Common on User {
			email
		}
	`)
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 2)

	op := doc.Definitions[0].(*OperationDefinition)
	require.Equal(t, Query, op.Operation)
	require.Equal(t, "GetUser", op.Name)
	require.Len(t, op.VariableDefinitions, 1)
	require.Equal(t, "ID!", op.VariableDefinitions[0].Type.String())
	require.Len(t, op.Directives, 1)
	require.Equal(t, "cached", op.Directives[0].Name)

	user := op.SelectionSet.Selections[0].(*Field)
	require.Len(t, user.Arguments, 2)
	require.Equal(t, VariableValue, user.Arguments[0].Value.Kind)
	require.Equal(t, true, user.Arguments[1].Value.Bool)

	require.Len(t, user.SelectionSet.Selections, 4)
	require.Equal(t, "alias", user.SelectionSet.Selections[1].(*Field).Alias)
	require.IsType(t, &FragmentSpread{}, user.SelectionSet.Selections[2])
	inline := user.SelectionSet.Selections[3].(*InlineFragment)
	require.Equal(t, "Admin", inline.TypeCondition.Name)

	frag := doc.Definitions[1].(*FragmentDefinition)
	require.Equal(t, "Common", frag.Name)
	require.Equal(t, "User", frag.TypeCondition.Name)
}

func TestParseInvalidSourceReturnsInvalidInputError(t *testing.T) {
	_, err := Parse(`query { user(`)
	require.Error(t, err)
	var gqlErr *Error
	require.ErrorAs(t, err, &gqlErr)
	require.Equal(t, InvalidInput, gqlErr.Kind)
}

func TestAsDocumentAcceptsStringOrDocument(t *testing.T) {
	doc, err := asDocument(`query { ping }`)
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 1)

	same, err := asDocument(doc)
	require.NoError(t, err)
	require.Same(t, doc, same)

	_, err = asDocument(42)
	require.Error(t, err)
}
