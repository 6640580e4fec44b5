package gql

// This file is the path navigator: the lens engine from spec §4.2. A single
// pair of recursive descent functions expresses every mutation (field,
// argument, directive or subtree) by threading a pure "edit the thing I find
// here" callback down through the document's structural sharing, rebuilding
// only the spine that was touched (spec §9 "Immutability & sharing").

// navigateSelectionSet applies edit to the SelectionSet reached by
// descending path inside doc, honoring the fragment-first rule (§4.2): if
// path's first element names an existing FragmentDefinition, the edit
// applies only inside that fragment; otherwise it applies, independently,
// inside every OperationDefinition. Missing Field steps are auto-vivified;
// missing InlineFragment steps make the whole edit a no-op for that root.
func navigateSelectionSet(doc *Document, path Path, edit func(SelectionSet) SelectionSet) *Document {
	return navigateRoots(doc, path, func(ss SelectionSet, rest Path) SelectionSet {
		newSS, _ := withSelectionSetAt(ss, rest, edit)
		return newSS
	})
}

// navigateField applies edit to the Field reached by descending path inside
// doc (the last path element must name the field itself), honoring the
// fragment-first rule. Used by operations that target a field's own
// Arguments or Directives list. path must be non-empty.
func navigateField(doc *Document, path Path, edit func(Field) Field) *Document {
	if len(path) == 0 {
		return doc
	}
	return navigateRoots(doc, path, func(ss SelectionSet, rest Path) SelectionSet {
		parent, last := rest[:len(rest)-1], rest[len(rest)-1]
		newSS, _ := withSelectionSetAt(ss, parent, func(inner SelectionSet) SelectionSet {
			return withFieldAt(inner, last, edit)
		})
		return newSS
	})
}

// navigateRoots resolves the fragment-first rule and applies apply to the
// resulting selection set(s), rebuilding the document around them.
func navigateRoots(doc *Document, path Path, apply func(ss SelectionSet, remaining Path) SelectionSet) *Document {
	newDefs := make([]Definition, len(doc.Definitions))
	copy(newDefs, doc.Definitions)

	if len(path) > 0 && !path[0].Inline {
		if idx, ok := findFragmentDefinition(doc, path[0].matchKey()); ok {
			frag := doc.Definitions[idx].(*FragmentDefinition)
			newSS := apply(frag.SelectionSet, path[1:])
			newDefs[idx] = &FragmentDefinition{
				Name:          frag.Name,
				TypeCondition: frag.TypeCondition,
				Directives:    frag.Directives,
				SelectionSet:  newSS,
			}
			return &Document{Definitions: newDefs}
		}
	}

	for i, def := range doc.Definitions {
		op, ok := def.(*OperationDefinition)
		if !ok {
			continue
		}
		newSS := apply(op.SelectionSet, path)
		newDefs[i] = &OperationDefinition{
			Operation:           op.Operation,
			Name:                op.Name,
			VariableDefinitions: op.VariableDefinitions,
			Directives:          op.Directives,
			SelectionSet:        newSS,
		}
	}
	return &Document{Definitions: newDefs}
}

func findFragmentDefinition(doc *Document, name string) (int, bool) {
	for i, def := range doc.Definitions {
		if frag, ok := def.(*FragmentDefinition); ok && frag.Name == name {
			return i, true
		}
	}
	return 0, false
}

// withSelectionSetAt recursively descends path inside ss, auto-vivifying
// Field steps and matching (but never creating) InlineFragment steps, and
// applies edit once path is exhausted. The second return value is false iff
// an InlineFragment step failed to match, in which case ss is returned
// unchanged (spec §4.2: "matching fails silently if absent, resulting in a
// no-op").
func withSelectionSetAt(ss SelectionSet, path Path, edit func(SelectionSet) SelectionSet) (SelectionSet, bool) {
	if len(path) == 0 {
		return edit(ss), true
	}

	elem, rest := path[0], path[1:]

	if elem.Inline {
		idx, ok := findInlineFragment(ss.Selections, elem.On)
		if !ok {
			return ss, false
		}
		inline := ss.Selections[idx].(*InlineFragment)
		newInner, applied := withSelectionSetAt(inline.SelectionSet, rest, edit)
		if !applied {
			return ss, false
		}
		newSelections := cloneSelections(ss.Selections)
		newSelections[idx] = &InlineFragment{
			TypeCondition: inline.TypeCondition,
			Directives:    inline.Directives,
			SelectionSet:  newInner,
		}
		return SelectionSet{Selections: newSelections}, true
	}

	applied := true
	newSS := withFieldAt(ss, elem, func(f Field) Field {
		inner := SelectionSet{}
		if f.SelectionSet != nil {
			inner = *f.SelectionSet
		}
		newInner, ok := withSelectionSetAt(inner, rest, edit)
		if !ok {
			applied = false
			return f
		}
		f.SelectionSet = &newInner
		return f
	})
	if !applied {
		return ss, false
	}
	return newSS, true
}

// withFieldAt finds the Field matching elem within ss (by alias-if-present-
// else-name, per the field matching rule), auto-vivifying one with elem's
// name/alias/args if absent, applies edit to it, and returns ss with that
// field replaced (or appended, if it was created).
func withFieldAt(ss SelectionSet, elem PathElement, edit func(Field) Field) SelectionSet {
	key := elem.matchKey()
	idx, ok := findField(ss.Selections, key)

	var field Field
	if ok {
		field = *(ss.Selections[idx].(*Field))
	} else {
		field = Field{Name: elem.Name, Alias: elem.Alias, Arguments: argsToArguments(elem.Args)}
	}

	field = edit(field)

	newSelections := cloneSelections(ss.Selections)
	if ok {
		newSelections[idx] = &field
	} else {
		newSelections = append(newSelections, &field)
	}
	return SelectionSet{Selections: newSelections}
}

func findField(selections []Selection, key string) (int, bool) {
	for i, sel := range selections {
		if f, ok := sel.(*Field); ok && f.Identity() == key {
			return i, true
		}
	}
	return 0, false
}

func findInlineFragment(selections []Selection, typeCondition string) (int, bool) {
	for i, sel := range selections {
		inline, ok := sel.(*InlineFragment)
		if !ok {
			continue
		}
		tc := ""
		if inline.TypeCondition != nil {
			tc = inline.TypeCondition.Name
		}
		if tc == typeCondition {
			return i, true
		}
	}
	return 0, false
}

func cloneSelections(selections []Selection) []Selection {
	out := make([]Selection, len(selections))
	copy(out, selections)
	return out
}

func argsToArguments(args []Arg) []*Argument {
	if len(args) == 0 {
		return nil
	}
	out := make([]*Argument, 0, len(args))
	for _, a := range args {
		_, v, ok := Encode(a.Value)
		if !ok {
			continue
		}
		out = append(out, &Argument{Name: a.Name, Value: v})
	}
	return out
}
