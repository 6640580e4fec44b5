package gql

// Path is an ordered sequence of PathElement, addressing a location inside a
// Document for the navigator (§4.2) to read or mutate.
type Path []PathElement

// Arg is a literal argument value supplied on a PathElement, encoded via
// Encode when the navigator auto-vivifies a Field.
type Arg struct {
	Name  string
	Value any
}

// PathElement is one step of a Path. A bare field step is built with
// F(name); an aliased/argumented step with FieldOpts; an inline-fragment
// step with On(typeCondition) or OnAny().
type PathElement struct {
	// Name is the field's real GraphQL name. Ignored for inline-fragment
	// steps.
	Name string
	// Alias, if non-empty, is both the alias assigned to an auto-vivified
	// Field and the identity used to match an existing one (spec §4.2
	// field matching rule applies to alias-if-present).
	Alias string
	// Args are used only when auto-vivifying a new Field for this step.
	Args []Arg

	// Inline marks this step as targeting an InlineFragment rather than a
	// Field. On is the type condition to match ("" matches an inline
	// fragment with no type condition).
	Inline bool
	On     string
}

// F builds a bare field path element matched/created by name.
func F(name string) PathElement {
	return PathElement{Name: name}
}

// FieldOpts builds a field path element with an alias and/or literal
// arguments, used both to match an existing aliased field and to supply the
// alias/arguments when the navigator must auto-vivify it.
func FieldOpts(name, alias string, args ...Arg) PathElement {
	return PathElement{Name: name, Alias: alias, Args: args}
}

// On builds a path element that targets an InlineFragment with the given
// type condition.
func On(typeCondition string) PathElement {
	return PathElement{Inline: true, On: typeCondition}
}

// OnAny builds a path element that targets an InlineFragment with no type
// condition.
func OnAny() PathElement {
	return PathElement{Inline: true}
}

// matchKey is the identity a PathElement is matched/created against: the
// alias if given, otherwise the name. Mirrors Field.Identity.
func (e PathElement) matchKey() string {
	if e.Alias != "" {
		return e.Alias
	}
	return e.Name
}
