package gql

// DefineFragmentOpts configures DefineFragment.
type DefineFragmentOpts struct {
	Fields   []FieldSpec
	Spread   []string
	SpreadOn []InlineFieldSpec
}

// DefineFragment appends a FragmentDefinition named name on typeCondition,
// populated with opts.Fields/Spread/SpreadOn using the same subfield rules
// as AddField, per spec §4.4.
func DefineFragment(input any, name, typeCondition string, opts DefineFragmentOpts) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}
	frag := &FragmentDefinition{
		Name:          name,
		TypeCondition: NamedType{Name: typeCondition},
		SelectionSet:  SelectionSet{Selections: buildSubSelections(opts.Fields, opts.Spread, opts.SpreadOn)},
	}
	newDefs := append(copyDefinitions(doc.Definitions), frag)
	return &Document{Definitions: newDefs}, nil
}

// RemoveFragment drops the FragmentDefinition named name.
func RemoveFragment(input any, name string) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}
	kept := make([]Definition, 0, len(doc.Definitions))
	for _, def := range doc.Definitions {
		if frag, ok := def.(*FragmentDefinition); ok && frag.Name == name {
			continue
		}
		kept = append(kept, def)
	}
	return &Document{Definitions: kept}, nil
}

// InlineFragmentOpts configures AddInlineFragment.
type InlineFragmentOpts struct {
	Fields   []FieldSpec
	Spread   []string
	SpreadOn []InlineFieldSpec
}

// AddInlineFragment appends an InlineFragment with the given type condition
// ("" for none) to the selection set at path, per spec §4.4. Subsequent
// field adds must address it via a path ending in On(typeCondition).
func AddInlineFragment(input any, typeCondition string, path Path, opts InlineFragmentOpts) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}
	newInline := buildInlineFromSpec(InlineFieldSpec{
		Type: typeCondition, Fields: opts.Fields, Spread: opts.Spread, SpreadOn: opts.SpreadOn,
	})
	return navigateSelectionSet(doc, path, func(ss SelectionSet) SelectionSet {
		return SelectionSet{Selections: append(cloneSelections(ss.Selections), newInline)}
	}), nil
}

// SpreadFragment appends a FragmentSpread named name to the selection set at
// path, honoring the fragment-first rule (spec §4.4).
func SpreadFragment(input any, name string, path Path) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}
	spread := &FragmentSpread{Name: name}
	return navigateSelectionSet(doc, path, func(ss SelectionSet) SelectionSet {
		return SelectionSet{Selections: append(cloneSelections(ss.Selections), spread)}
	}), nil
}

// InlineAllSpreads recursively replaces every FragmentSpread whose name
// resolves to a known FragmentDefinition with that fragment's selections
// (chained fragments are inlined first, so they flatten fully), leaves
// unresolved spreads untouched, and drops every FragmentDefinition from the
// resulting document, per spec §4.4.
func InlineAllSpreads(input any) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}

	fragments := map[string]*FragmentDefinition{}
	for _, def := range doc.Definitions {
		if frag, ok := def.(*FragmentDefinition); ok {
			fragments[frag.Name] = frag
		}
	}

	cache := map[string][]Selection{}
	visiting := map[string]bool{}

	newDefs := make([]Definition, 0, len(doc.Definitions))
	for _, def := range doc.Definitions {
		op, ok := def.(*OperationDefinition)
		if !ok {
			continue // FragmentDefinitions are dropped unconditionally.
		}
		newOp := *op
		newOp.SelectionSet = SelectionSet{
			Selections: inlineSpreadsInSelections(op.SelectionSet.Selections, fragments, cache, visiting),
		}
		newDefs = append(newDefs, &newOp)
	}
	return &Document{Definitions: newDefs}, nil
}

func inlineSpreadsInSelections(selections []Selection, fragments map[string]*FragmentDefinition, cache map[string][]Selection, visiting map[string]bool) []Selection {
	out := make([]Selection, 0, len(selections))
	for _, sel := range selections {
		switch s := sel.(type) {
		case *FragmentSpread:
			if resolved, ok := resolveFragmentSelections(s.Name, fragments, cache, visiting); ok {
				out = append(out, resolved...)
			} else {
				out = append(out, s)
			}

		case *Field:
			newField := *s
			if s.SelectionSet != nil {
				newInner := SelectionSet{Selections: inlineSpreadsInSelections(s.SelectionSet.Selections, fragments, cache, visiting)}
				newField.SelectionSet = &newInner
			}
			out = append(out, &newField)

		case *InlineFragment:
			newInline := *s
			newInline.SelectionSet = SelectionSet{Selections: inlineSpreadsInSelections(s.SelectionSet.Selections, fragments, cache, visiting)}
			out = append(out, &newInline)

		default:
			out = append(out, sel)
		}
	}
	return out
}

// resolveFragmentSelections returns the fully-inlined selections of the
// named fragment, memoized across the whole InlineAllSpreads call so a
// fragment spread more than once is only expanded once. visiting guards
// against a (schema-invalid) cycle of fragments spreading each other by
// treating the cyclic spread as unresolved rather than recursing forever.
func resolveFragmentSelections(name string, fragments map[string]*FragmentDefinition, cache map[string][]Selection, visiting map[string]bool) ([]Selection, bool) {
	if cached, ok := cache[name]; ok {
		return cached, true
	}
	frag, ok := fragments[name]
	if !ok {
		return nil, false
	}
	if visiting[name] {
		return nil, false
	}

	visiting[name] = true
	inlined := inlineSpreadsInSelections(frag.SelectionSet.Selections, fragments, cache, visiting)
	delete(visiting, name)

	cache[name] = inlined
	return inlined, true
}

func copyDefinitions(defs []Definition) []Definition {
	out := make([]Definition, len(defs))
	copy(out, defs)
	return out
}
