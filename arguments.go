package gql

// AddArgument appends Argument(name, Encode(value)) to the arguments of the
// Field at path, per spec §4.3. A value that Encode cannot lift (e.g. Go
// nil) is silently skipped.
func AddArgument(input any, name string, path Path, value any) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}
	return navigateField(doc, path, func(f Field) Field {
		_, v, ok := Encode(value)
		if !ok {
			return f
		}
		f.Arguments = append(copyArguments(f.Arguments), &Argument{Name: name, Value: v})
		return f
	}), nil
}

// RemoveArgument removes all arguments named name from the Field at path.
func RemoveArgument(input any, name string, path Path) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}
	return navigateField(doc, path, func(f Field) Field {
		f.Arguments = filterArguments(f.Arguments, name)
		return f
	}), nil
}

// ReplaceArgument is the semantic equivalent of RemoveArgument followed by
// AddArgument: the new value is appended at the end of the arguments list,
// not at the removed argument's original position (spec §9 open question 3).
func ReplaceArgument(input any, name string, path Path, value any) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}
	return navigateField(doc, path, func(f Field) Field {
		kept := filterArguments(f.Arguments, name)
		if _, v, ok := Encode(value); ok {
			kept = append(kept, &Argument{Name: name, Value: v})
		}
		f.Arguments = kept
		return f
	}), nil
}

func filterArguments(args []*Argument, name string) []*Argument {
	kept := make([]*Argument, 0, len(args))
	for _, a := range args {
		if a.Name != name {
			kept = append(kept, a)
		}
	}
	return kept
}

func copyArguments(args []*Argument) []*Argument {
	out := make([]*Argument, len(args))
	copy(out, args)
	return out
}
