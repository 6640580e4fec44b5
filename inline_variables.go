package gql

// InlineVariables substitutes literals for variable references, per spec
// §4.5. For each (name, value) pair in mapping: the VariableDefinition named
// name is dropped from every OperationDefinition, and every
// VariableValue(name) appearing anywhere in the document's arguments
// (including nested inside List and Object values, and on directives) is
// replaced by Encode(value).
func InlineVariables(input any, mapping map[string]any) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}

	toRemove := make(map[string]bool, len(mapping))
	encoded := make(map[string]Value, len(mapping))
	for name, v := range mapping {
		toRemove[name] = true
		if _, ev, ok := Encode(v); ok {
			encoded[name] = ev
		}
	}

	doc = mapOperations(doc, func(op OperationDefinition) OperationDefinition {
		kept := make([]*VariableDefinition, 0, len(op.VariableDefinitions))
		for _, vd := range op.VariableDefinitions {
			if !toRemove[vd.Variable] {
				kept = append(kept, vd)
			}
		}
		op.VariableDefinitions = kept
		return op
	})

	newDefs := make([]Definition, len(doc.Definitions))
	for i, def := range doc.Definitions {
		switch d := def.(type) {
		case *OperationDefinition:
			newOp := *d
			newOp.Directives = inlineVariablesDirectives(d.Directives, encoded)
			newOp.SelectionSet = inlineVariablesInto(d.SelectionSet, encoded)
			newDefs[i] = &newOp
		case *FragmentDefinition:
			newFrag := *d
			newFrag.Directives = inlineVariablesDirectives(d.Directives, encoded)
			newFrag.SelectionSet = inlineVariablesInto(d.SelectionSet, encoded)
			newDefs[i] = &newFrag
		default:
			newDefs[i] = def
		}
	}
	return &Document{Definitions: newDefs}, nil
}

func inlineVariablesInto(ss SelectionSet, encoded map[string]Value) SelectionSet {
	out := make([]Selection, 0, len(ss.Selections))
	for _, sel := range ss.Selections {
		switch s := sel.(type) {
		case *Field:
			newField := *s
			newField.Arguments = inlineVariablesArgs(s.Arguments, encoded)
			newField.Directives = inlineVariablesDirectives(s.Directives, encoded)
			if s.SelectionSet != nil {
				newInner := inlineVariablesInto(*s.SelectionSet, encoded)
				newField.SelectionSet = &newInner
			}
			out = append(out, &newField)

		case *InlineFragment:
			newInline := *s
			newInline.Directives = inlineVariablesDirectives(s.Directives, encoded)
			newInline.SelectionSet = inlineVariablesInto(s.SelectionSet, encoded)
			out = append(out, &newInline)

		case *FragmentSpread:
			newSpread := *s
			newSpread.Directives = inlineVariablesDirectives(s.Directives, encoded)
			out = append(out, &newSpread)

		default:
			out = append(out, sel)
		}
	}
	return SelectionSet{Selections: out}
}

func inlineVariablesArgs(args []*Argument, encoded map[string]Value) []*Argument {
	if len(args) == 0 {
		return args
	}
	out := make([]*Argument, len(args))
	for i, a := range args {
		out[i] = &Argument{Name: a.Name, Value: inlineVariableValue(a.Value, encoded)}
	}
	return out
}

func inlineVariablesDirectives(dirs []*Directive, encoded map[string]Value) []*Directive {
	if len(dirs) == 0 {
		return dirs
	}
	out := make([]*Directive, len(dirs))
	for i, d := range dirs {
		out[i] = &Directive{Name: d.Name, Arguments: inlineVariablesArgs(d.Arguments, encoded)}
	}
	return out
}

func inlineVariableValue(v Value, encoded map[string]Value) Value {
	switch v.Kind {
	case VariableValue:
		if replacement, ok := encoded[v.Str]; ok {
			return replacement
		}
		return v
	case ListValue:
		out := make([]Value, len(v.List))
		for i, e := range v.List {
			out[i] = inlineVariableValue(e, encoded)
		}
		return Value{Kind: ListValue, List: out}
	case ObjectValue:
		out := make([]ObjectField, len(v.Object))
		for i, f := range v.Object {
			out[i] = ObjectField{Name: f.Name, Value: inlineVariableValue(f.Value, encoded)}
		}
		return Value{Kind: ObjectValue, Object: out}
	default:
		return v
	}
}
