package gql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddArgumentEncodesValue(t *testing.T) {
	doc := mustParse(t, `query { user { id } }`)
	out, err := AddArgument(doc, "id", Path{F("user")}, 19)
	require.NoError(t, err)
	user := out.Definitions[0].(*OperationDefinition).SelectionSet.Selections[0].(*Field)
	require.Len(t, user.Arguments, 1)
	require.Equal(t, "id", user.Arguments[0].Name)
	require.Equal(t, int64(19), user.Arguments[0].Value.Int)
}

func TestRemoveArgumentDropsAllMatchingName(t *testing.T) {
	doc := mustParse(t, `query { user(id: 1, id: 2, name: "a") { id } }`)
	out, err := RemoveArgument(doc, "id", Path{F("user")})
	require.NoError(t, err)
	user := out.Definitions[0].(*OperationDefinition).SelectionSet.Selections[0].(*Field)
	require.Len(t, user.Arguments, 1)
	require.Equal(t, "name", user.Arguments[0].Name)
}

// spec §9 open question 3: replace_argument appends at the tail rather than
// replacing positionally.
func TestReplaceArgumentAppendsAtTail(t *testing.T) {
	doc := mustParse(t, `query { user(id: 1, name: "a") { id } }`)
	out, err := ReplaceArgument(doc, "id", Path{F("user")}, 2)
	require.NoError(t, err)
	user := out.Definitions[0].(*OperationDefinition).SelectionSet.Selections[0].(*Field)
	require.Len(t, user.Arguments, 2)
	require.Equal(t, "name", user.Arguments[0].Name)
	require.Equal(t, "id", user.Arguments[1].Name)
	require.Equal(t, int64(2), user.Arguments[1].Value.Int)
}
