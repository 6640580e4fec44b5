package gql

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// AddVariableOpts configures AddVariable.
type AddVariableOpts struct {
	// Type is a GraphQL type string, e.g. "ID" or "[ID!]". If empty, the
	// type is inferred from Default; if that is also absent, "String" is
	// used.
	Type string
	// Default, if present, becomes the variable's default value and (when
	// Type is empty) supplies the inferred type.
	Default any
	// Optional suppresses the NonNullType wrapper spec §4.3 otherwise
	// always applies.
	Optional bool
}

// AddVariable appends a VariableDefinition named name to every
// OperationDefinition, per spec §4.3. Anonymous operations are named by
// capitalizing the operation kind (query -> Query, mutation -> Mutation).
func AddVariable(input any, name string, opts AddVariableOpts) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}

	typeStr := opts.Type
	var defaultValue *Value
	if opts.Default != nil {
		inferred, v, ok := Encode(opts.Default)
		if ok {
			defaultValue = &v
			if typeStr == "" {
				typeStr = inferred
			}
		}
	}
	if typeStr == "" {
		typeStr = "String"
	}

	t, err := parseTypeString(typeStr)
	if err != nil {
		return nil, err
	}
	if _, alreadyNonNull := t.(NonNullType); !alreadyNonNull && !opts.Optional {
		t = NonNullType{OfType: t}
	}

	varDef := &VariableDefinition{Variable: name, Type: t, DefaultValue: defaultValue}

	return mapOperations(doc, func(op OperationDefinition) OperationDefinition {
		op.VariableDefinitions = append(copyVariableDefinitions(op.VariableDefinitions), varDef)
		if op.Name == "" {
			op.Name = strcase.ToCamel(string(op.Operation))
		}
		return op
	}), nil
}

// RemoveVariable drops VariableDefinitions named name from every
// OperationDefinition.
func RemoveVariable(input any, name string) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}
	return mapOperations(doc, func(op OperationDefinition) OperationDefinition {
		kept := make([]*VariableDefinition, 0, len(op.VariableDefinitions))
		for _, vd := range op.VariableDefinitions {
			if vd.Variable != name {
				kept = append(kept, vd)
			}
		}
		op.VariableDefinitions = kept
		return op
	}), nil
}

// SetOperationType sets the OperationKind of every OperationDefinition.
func SetOperationType(input any, kind OperationKind) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}
	return mapOperations(doc, func(op OperationDefinition) OperationDefinition {
		op.Operation = kind
		return op
	}), nil
}

// SetOperationName sets the Name of every OperationDefinition.
func SetOperationName(input any, name string) (*Document, error) {
	doc, err := asDocument(input)
	if err != nil {
		return nil, err
	}
	return mapOperations(doc, func(op OperationDefinition) OperationDefinition {
		op.Name = name
		return op
	}), nil
}

func copyVariableDefinitions(defs []*VariableDefinition) []*VariableDefinition {
	out := make([]*VariableDefinition, len(defs))
	copy(out, defs)
	return out
}

// parseTypeString parses a GraphQL type reference written as text, e.g.
// "ID", "ID!", "[ID]" or "[ID!]!". There is no library in the retrieval pack
// dedicated to this handful of bracket/bang characters, and pulling one in
// for a three-rule grammar would be a worse fit than stdlib string slicing.
func parseTypeString(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, invalidArgument("empty graphql type")
	}
	if strings.HasSuffix(s, "!") {
		inner, err := parseTypeString(s[:len(s)-1])
		if err != nil {
			return nil, err
		}
		return NonNullType{OfType: inner}, nil
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner, err := parseTypeString(s[1 : len(s)-1])
		if err != nil {
			return nil, err
		}
		return ListType{OfType: inner}, nil
	}
	return NamedType{Name: s}, nil
}
