package gql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefineFragmentAndSpreadFragment(t *testing.T) {
	doc := &Document{Definitions: []Definition{&OperationDefinition{Operation: Query}}}
	doc, err := DefineFragment(doc, "UserFields", "User", DefineFragmentOpts{
		Fields: []FieldSpec{{Name: "id"}, {Name: "name"}},
	})
	require.NoError(t, err)

	doc, err = AddField(doc, "user", AddFieldOpts{})
	require.NoError(t, err)
	doc, err = SpreadFragment(doc, "UserFields", Path{F("user")})
	require.NoError(t, err)

	var frag *FragmentDefinition
	for _, def := range doc.Definitions {
		if f, ok := def.(*FragmentDefinition); ok {
			frag = f
		}
	}
	require.NotNil(t, frag)
	require.Len(t, frag.SelectionSet.Selections, 2)

	op := doc.Definitions[0].(*OperationDefinition)
	user := op.SelectionSet.Selections[0].(*Field)
	require.IsType(t, &FragmentSpread{}, user.SelectionSet.Selections[0])
	require.Equal(t, "UserFields", user.SelectionSet.Selections[0].(*FragmentSpread).Name)
}

func TestRemoveFragment(t *testing.T) {
	doc := mustParse(t, `fragment F on T { id } query { user { ...F } }`)
	out, err := RemoveFragment(doc, "F")
	require.NoError(t, err)
	require.Len(t, out.Definitions, 1)
	require.IsType(t, &OperationDefinition{}, out.Definitions[0])
}

func TestAddInlineFragmentAndAddressViaOn(t *testing.T) {
	doc := mustParse(t, `query { node { id } }`)
	doc, err := AddInlineFragment(doc, "Admin", Path{F("node")}, InlineFragmentOpts{})
	require.NoError(t, err)
	doc, err = AddField(doc, "permissions", AddFieldOpts{Path: Path{F("node"), On("Admin")}})
	require.NoError(t, err)

	node := doc.Definitions[0].(*OperationDefinition).SelectionSet.Selections[0].(*Field)
	inline := node.SelectionSet.Selections[1].(*InlineFragment)
	require.Equal(t, "Admin", inline.TypeCondition.Name)
	require.Equal(t, "permissions", inline.SelectionSet.Selections[0].(*Field).Name)
}

// spec §8 invariant 8: after inlining, no FragmentDefinition or resolvable
// spread remains; chained fragments flatten fully.
func TestInlineAllSpreadsFlattensChainedFragments(t *testing.T) {
	doc := mustParse(t, `
		fragment Base on User { id }
		fragment Full on User { ...Base name }
		query { user { ...Full } }
	`)
	out, err := InlineAllSpreads(doc)
	require.NoError(t, err)

	require.Len(t, out.Definitions, 1)
	op := out.Definitions[0].(*OperationDefinition)
	user := op.SelectionSet.Selections[0].(*Field)
	require.Len(t, user.SelectionSet.Selections, 2)
	require.Equal(t, "id", user.SelectionSet.Selections[0].(*Field).Name)
	require.Equal(t, "name", user.SelectionSet.Selections[1].(*Field).Name)
}

func TestInlineAllSpreadsLeavesUnresolvedSpreadUntouched(t *testing.T) {
	doc := mustParse(t, `query { user { ...Missing } }`)
	out, err := InlineAllSpreads(doc)
	require.NoError(t, err)
	user := out.Definitions[0].(*OperationDefinition).SelectionSet.Selections[0].(*Field)
	require.IsType(t, &FragmentSpread{}, user.SelectionSet.Selections[0])
}
