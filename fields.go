package gql

// FieldSpec recursively describes a field and its subfields, used both for
// the top-level field passed to AddField and for opts.Fields therein (spec
// §4.3). Path is intentionally not a member of FieldSpec: "path is not
// permitted inside a subfield spec" is enforced by the type itself rather
// than by a runtime check, since the typed API gives callers no way to set
// one. The builder façade (builder.go), which accepts untyped maps instead
// of FieldSpec values, is the one call path where a stray "path" key is
// actually reachable, and it rejects it explicitly there.
type FieldSpec struct {
	Name     string
	Alias    string
	Args     []Arg
	Fields   []FieldSpec
	Spread   []string
	SpreadOn []InlineFieldSpec
}

// InlineFieldSpec describes an inline fragment nested under a field or
// fragment definition via opts.spread_on.
type InlineFieldSpec struct {
	Type     string
	Fields   []FieldSpec
	Spread   []string
	SpreadOn []InlineFieldSpec
}

// AddFieldOpts configures AddField.
type AddFieldOpts struct {
	Alias    string
	Args     []Arg
	Path     Path
	Fields   []FieldSpec
	Spread   []string
	SpreadOn []InlineFieldSpec
}

// AddField appends a Field named name to the selection set at opts.Path
// (auto-vivifying any missing ancestor Fields), per spec §4.3. input is a
// GraphQL source string or a *Document.
func AddField(input any, name string, opts AddFieldOpts) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}

	newField := buildFieldFromSpec(FieldSpec{
		Name: name, Alias: opts.Alias, Args: opts.Args,
		Fields: opts.Fields, Spread: opts.Spread, SpreadOn: opts.SpreadOn,
	})

	return navigateSelectionSet(doc, opts.Path, func(ss SelectionSet) SelectionSet {
		return SelectionSet{Selections: append(cloneSelections(ss.Selections), newField)}
	}), nil
}

// RemoveField deletes the first selection in the selection set at path whose
// identity matches name. A non-existent name is a silent no-op.
func RemoveField(input any, name string, path Path) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}
	return navigateSelectionSet(doc, path, func(ss SelectionSet) SelectionSet {
		idx, ok := findField(ss.Selections, name)
		if !ok {
			return ss
		}
		out := make([]Selection, 0, len(ss.Selections)-1)
		out = append(out, ss.Selections[:idx]...)
		out = append(out, ss.Selections[idx+1:]...)
		return SelectionSet{Selections: out}
	}), nil
}

// ReplaceFieldOpts configures ReplaceField.
type ReplaceFieldOpts struct {
	Alias string
	Args  []Arg
	Path  Path
}

// ReplaceField locates the Field identified by name in the selection set at
// opts.Path and substitutes its alias and arguments, preserving its existing
// SelectionSet and Directives. A non-existent name is a silent no-op.
func ReplaceField(input any, name string, opts ReplaceFieldOpts) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}
	return navigateSelectionSet(doc, opts.Path, func(ss SelectionSet) SelectionSet {
		idx, ok := findField(ss.Selections, name)
		if !ok {
			return ss
		}
		old := ss.Selections[idx].(*Field)
		replaced := &Field{
			Alias:        opts.Alias,
			Name:         old.Name,
			Arguments:    argsToArguments(opts.Args),
			Directives:   old.Directives,
			SelectionSet: old.SelectionSet,
		}
		out := cloneSelections(ss.Selections)
		out[idx] = replaced
		return SelectionSet{Selections: out}
	}), nil
}

func buildFieldFromSpec(spec FieldSpec) *Field {
	f := &Field{Name: spec.Name, Alias: spec.Alias, Arguments: argsToArguments(spec.Args)}
	subs := buildSubSelections(spec.Fields, spec.Spread, spec.SpreadOn)
	if len(subs) > 0 {
		f.SelectionSet = &SelectionSet{Selections: subs}
	}
	return f
}

func buildInlineFromSpec(spec InlineFieldSpec) *InlineFragment {
	var typeCondition *NamedType
	if spec.Type != "" {
		typeCondition = &NamedType{Name: spec.Type}
	}
	return &InlineFragment{
		TypeCondition: typeCondition,
		SelectionSet:  SelectionSet{Selections: buildSubSelections(spec.Fields, spec.Spread, spec.SpreadOn)},
	}
}

func buildSubSelections(fields []FieldSpec, spread []string, spreadOn []InlineFieldSpec) []Selection {
	subs := make([]Selection, 0, len(fields)+len(spread)+len(spreadOn))
	for _, sub := range fields {
		subs = append(subs, buildFieldFromSpec(sub))
	}
	for _, name := range spread {
		subs = append(subs, &FragmentSpread{Name: name})
	}
	for _, inline := range spreadOn {
		subs = append(subs, buildInlineFromSpec(inline))
	}
	return subs
}
