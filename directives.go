package gql

// AddDirective appends a Directive to every OperationDefinition (when path
// is empty) or to the Field at path (otherwise), per spec §4.3.
func AddDirective(input any, name string, path Path, args []Arg) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}

	directive := &Directive{Name: name, Arguments: argsToArguments(args)}

	if len(path) == 0 {
		return mapOperations(doc, func(op OperationDefinition) OperationDefinition {
			op.Directives = append(copyDirectives(op.Directives), directive)
			return op
		}), nil
	}

	return navigateField(doc, path, func(f Field) Field {
		f.Directives = append(copyDirectives(f.Directives), directive)
		return f
	}), nil
}

// mapOperations rebuilds doc with edit applied to every OperationDefinition,
// leaving FragmentDefinitions untouched. Used by the operations in
// variables.go and directives.go that spec §4.3 says apply "to every
// OperationDefinition" rather than through a path.
func mapOperations(doc *Document, edit func(OperationDefinition) OperationDefinition) *Document {
	newDefs := make([]Definition, len(doc.Definitions))
	for i, def := range doc.Definitions {
		op, ok := def.(*OperationDefinition)
		if !ok {
			newDefs[i] = def
			continue
		}
		edited := edit(*op)
		newDefs[i] = &edited
	}
	return &Document{Definitions: newDefs}
}

func copyDirectives(dirs []*Directive) []*Directive {
	out := make([]*Directive, len(dirs))
	copy(out, dirs)
	return out
}
