// Package gql is a composable, schemaless GraphQL document builder and
// transformer. Callers construct, compose, mutate, and serialize GraphQL
// documents as structured data instead of manipulating query strings: build
// queries, mutations and subscriptions out of small reusable fragments, parse
// existing documents, and apply targeted edits through a path-addressed API.
//
// The package does not parse GraphQL text itself (that is delegated to
// github.com/graphql-go/graphql/language/parser, see Parse) and does not
// serialize documents back to GraphQL syntax or execute queries against a
// schema; it only builds and transforms the document tree.
package gql

// OperationKind is the kind of a GraphQL operation.
type OperationKind string

const (
	Query        OperationKind = "query"
	Mutation     OperationKind = "mutation"
	Subscription OperationKind = "subscription"
)

// Document is the root of a GraphQL document: an ordered list of definitions.
// Documents are immutable from the caller's perspective — every operation in
// this package returns a new Document rather than mutating one in place.
type Document struct {
	Definitions []Definition
}

// Definition is a top-level member of a Document: an OperationDefinition or
// a FragmentDefinition.
type Definition interface {
	isDefinition()
}

// OperationDefinition is a query, mutation or subscription.
type OperationDefinition struct {
	Operation           OperationKind
	Name                string // "" if the operation is anonymous
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        SelectionSet
}

func (*OperationDefinition) isDefinition() {}

// FragmentDefinition is a named fragment: `fragment Name on Type { ... }`.
type FragmentDefinition struct {
	Name          string
	TypeCondition NamedType
	Directives    []*Directive
	SelectionSet  SelectionSet
}

func (*FragmentDefinition) isDefinition() {}

// SelectionSet is an ordered list of selections. It may be empty (a field
// with no SelectionSet at all is represented by a nil *SelectionSet on the
// owning Field, not an empty one — see Field.SelectionSet).
type SelectionSet struct {
	Selections []Selection
}

// Selection is a member of a SelectionSet: a Field, FragmentSpread or
// InlineFragment.
type Selection interface {
	isSelection()
}

// Field is a selected field, with an optional alias, arguments, directives
// and (for non-leaf fields) a nested SelectionSet.
type Field struct {
	Alias        string // "" if unaliased
	Name         string
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet // nil for leaf fields
}

func (*Field) isSelection() {}

// Identity is the field's identity within its selection set: the alias if
// present, otherwise the name. Two fields with the same identity but
// different arguments are distinct selections (spec invariant 2).
func (f *Field) Identity() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// Argument is a single `name: value` pair attached to a Field or Directive.
type Argument struct {
	Name  string
	Value Value
}

// FragmentSpread is a `...Name` selection.
type FragmentSpread struct {
	Name       string
	Directives []*Directive
}

func (*FragmentSpread) isSelection() {}

// InlineFragment is a `... on Type { ... }` (or untyped `... { ... }`)
// selection. TypeCondition is nil when the inline fragment carries no type
// condition.
type InlineFragment struct {
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  SelectionSet
}

func (*InlineFragment) isSelection() {}

// VariableDefinition declares a variable accepted by an operation.
type VariableDefinition struct {
	Variable     string // name, without the leading '$'
	Type         Type
	DefaultValue *Value // nil if no default
}

// Directive is a `@name(args)` annotation on an operation, fragment,
// field or fragment spread/inline fragment.
type Directive struct {
	Name      string
	Arguments []*Argument
}

// Type is a GraphQL type reference: NamedType, ListType, or NonNullType.
type Type interface {
	isType()
	String() string
}

// NamedType is a plain named type reference, e.g. `ID` or `String`.
type NamedType struct {
	Name string
}

func (NamedType) isType()        {}
func (n NamedType) String() string { return n.Name }

// ListType is `[T]` for some inner Type T.
type ListType struct {
	OfType Type
}

func (ListType) isType() {}
func (l ListType) String() string {
	return "[" + l.OfType.String() + "]"
}

// NonNullType is `T!` for some inner Type T. Per spec invariant 5, OfType is
// never itself a NonNullType.
type NonNullType struct {
	OfType Type
}

func (NonNullType) isType() {}
func (n NonNullType) String() string {
	return n.OfType.String() + "!"
}

// ValueKind discriminates the tagged union of Value.
type ValueKind int

const (
	IntValue ValueKind = iota
	FloatValue
	StringValue
	BooleanValue
	NullValue
	EnumValue
	VariableValue
	ListValue
	ObjectValue
)

// Value is a GraphQL value: a closed tagged union over the kinds in
// ValueKind. Only the fields relevant to Kind are populated; see Encode for
// how host values are lifted into a Value.
type Value struct {
	Kind ValueKind

	Int     int64
	Float   float64
	Str     string // StringValue text, EnumValue identifier, or VariableValue name (no '$')
	Bool    bool
	List    []Value
	Object  []ObjectField
}

// ObjectField is a single `name: value` member of an ObjectValue.
type ObjectField struct {
	Name  string
	Value Value
}
