package gql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 2 (spec §8): parse a query, add a field under an existing one,
// then change the operation kind.
func TestAddFieldThenSetOperationType(t *testing.T) {
	doc := mustParse(t, `query { user(id: 19) { id } }`)

	doc, err := AddField(doc, "mailbox_size", AddFieldOpts{Path: Path{F("user")}})
	require.NoError(t, err)
	doc, err = SetOperationType(doc, Subscription)
	require.NoError(t, err)

	op := doc.Definitions[0].(*OperationDefinition)
	require.Equal(t, Subscription, op.Operation)
	user := op.SelectionSet.Selections[0].(*Field)
	require.Len(t, user.SelectionSet.Selections, 2)
	require.Equal(t, "id", user.SelectionSet.Selections[0].(*Field).Name)
	require.Equal(t, "mailbox_size", user.SelectionSet.Selections[1].(*Field).Name)
}

// Scenario 3 (spec §8): remove a top-level field, then a nested one.
func TestRemoveFieldAtRootAndNested(t *testing.T) {
	doc := mustParse(t, `query { apple { foo bar baz } banana }`)

	doc, err := RemoveField(doc, "banana", nil)
	require.NoError(t, err)
	doc, err = RemoveField(doc, "baz", Path{F("apple")})
	require.NoError(t, err)

	op := doc.Definitions[0].(*OperationDefinition)
	require.Len(t, op.SelectionSet.Selections, 1)
	apple := op.SelectionSet.Selections[0].(*Field)
	require.Len(t, apple.SelectionSet.Selections, 2)
	require.Equal(t, "foo", apple.SelectionSet.Selections[0].(*Field).Name)
	require.Equal(t, "bar", apple.SelectionSet.Selections[1].(*Field).Name)
}

func TestRemoveFieldOnMissingNameIsNoOp(t *testing.T) {
	doc := mustParse(t, `query { apple }`)
	out, err := RemoveField(doc, "does_not_exist", nil)
	require.NoError(t, err)
	require.Equal(t, doc.Definitions[0].(*OperationDefinition).SelectionSet, out.Definitions[0].(*OperationDefinition).SelectionSet)
}

func TestRemoveFieldIsIdempotent(t *testing.T) {
	doc := mustParse(t, `query { apple banana }`)
	once, err := RemoveField(doc, "banana", nil)
	require.NoError(t, err)
	twice, err := RemoveField(once, "banana", nil)
	require.NoError(t, err)
	require.Equal(t, once.Definitions[0].(*OperationDefinition).SelectionSet, twice.Definitions[0].(*OperationDefinition).SelectionSet)
}

func TestReplaceFieldPreservesSelectionSet(t *testing.T) {
	doc := mustParse(t, `query { user(id: 1) { id name } }`)
	out, err := ReplaceField(doc, "user", ReplaceFieldOpts{Alias: "u", Args: []Arg{{Name: "id", Value: 2}}})
	require.NoError(t, err)

	op := out.Definitions[0].(*OperationDefinition)
	user := op.SelectionSet.Selections[0].(*Field)
	require.Equal(t, "u", user.Alias)
	require.Len(t, user.Arguments, 1)
	require.Equal(t, int64(2), user.Arguments[0].Value.Int)
	require.Len(t, user.SelectionSet.Selections, 2)
}

func TestAddFieldWithSubfieldsSpreadAndSpreadOn(t *testing.T) {
	doc := &Document{Definitions: []Definition{&OperationDefinition{Operation: Query}}}
	out, err := AddField(doc, "node", AddFieldOpts{
		Fields: []FieldSpec{{Name: "id"}},
		Spread: []string{"CommonFields"},
		SpreadOn: []InlineFieldSpec{
			{Type: "Admin", Fields: []FieldSpec{{Name: "permissions"}}},
		},
	})
	require.NoError(t, err)

	node := out.Definitions[0].(*OperationDefinition).SelectionSet.Selections[0].(*Field)
	require.Len(t, node.SelectionSet.Selections, 3)
	require.Equal(t, "id", node.SelectionSet.Selections[0].(*Field).Name)
	require.IsType(t, &FragmentSpread{}, node.SelectionSet.Selections[1])
	inline := node.SelectionSet.Selections[2].(*InlineFragment)
	require.Equal(t, "Admin", inline.TypeCondition.Name)
	require.Equal(t, "permissions", inline.SelectionSet.Selections[0].(*Field).Name)
}
