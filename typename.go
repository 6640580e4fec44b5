package gql

// InjectTypenames appends a `__typename` Field (no arguments, no selection
// set) to every SelectionSet reachable in the document, including each
// operation's and fragment's top-level set, per spec §4.5.
//
// This is deliberately not idempotent: spec §9 open question 1 flags that
// the source this module ports may append a duplicate `__typename` on a
// second call, and instructs pinning the observed behavior rather than
// guessing a "fixed" one. This implementation always appends, so calling it
// twice yields two `__typename` selections per set.
func InjectTypenames(input any) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}

	newDefs := make([]Definition, len(doc.Definitions))
	for i, def := range doc.Definitions {
		switch d := def.(type) {
		case *OperationDefinition:
			newOp := *d
			newOp.SelectionSet = injectTypenameInto(d.SelectionSet)
			newDefs[i] = &newOp
		case *FragmentDefinition:
			newFrag := *d
			newFrag.SelectionSet = injectTypenameInto(d.SelectionSet)
			newDefs[i] = &newFrag
		default:
			newDefs[i] = def
		}
	}
	return &Document{Definitions: newDefs}, nil
}

func injectTypenameInto(ss SelectionSet) SelectionSet {
	out := make([]Selection, 0, len(ss.Selections)+1)
	for _, sel := range ss.Selections {
		switch s := sel.(type) {
		case *Field:
			newField := *s
			if s.SelectionSet != nil {
				newInner := injectTypenameInto(*s.SelectionSet)
				newField.SelectionSet = &newInner
			}
			out = append(out, &newField)
		case *InlineFragment:
			newInline := *s
			newInline.SelectionSet = injectTypenameInto(s.SelectionSet)
			out = append(out, &newInline)
		default:
			out = append(out, sel)
		}
	}
	out = append(out, &Field{Name: "__typename"})
	return SelectionSet{Selections: out}
}
