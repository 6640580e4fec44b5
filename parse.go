package gql

import (
	"strconv"

	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
)

// Parse is the §6 input-parser collaborator wiring: it hands source text to
// github.com/graphql-go/graphql/language/parser and converts the resulting
// parse tree into this package's own §3 Document model. Parse failures are
// propagated via the parser's error, wrapped as an InvalidInput Error (spec
// §7: "propagate the parser's error verbatim").
func Parse(source string) (*Document, error) {
	doc, err := parser.Parse(parser.ParseParams{
		Source: source,
		Options: parser.ParseOptions{
			NoLocation: true,
		},
	})
	if err != nil {
		return nil, invalidInput(err, "parse graphql document")
	}
	return convertDocument(doc)
}

// asDocument normalizes the "document input" every operation in §4.3–§4.5
// accepts: a GraphQL source string (parsed via Parse) or an already-built
// *Document (passed through unchanged).
func asDocument(input any) (*Document, error) {
	switch v := input.(type) {
	case *Document:
		return v, nil
	case Document:
		return &v, nil
	case string:
		return Parse(v)
	default:
		return nil, invalidArgument("unsupported document input type %T", input)
	}
}

func convertDocument(doc *ast.Document) (*Document, error) {
	defs := make([]Definition, 0, len(doc.Definitions))
	for _, node := range doc.Definitions {
		def, err := convertDefinition(node)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return &Document{Definitions: defs}, nil
}

func convertDefinition(node ast.Node) (Definition, error) {
	switch node.GetKind() {
	case kindOperationDefinition:
		return convertOperationDefinition(node.(*ast.OperationDefinition))
	case kindFragmentDefinition:
		return convertFragmentDefinition(node.(*ast.FragmentDefinition))
	default:
		return nil, invalidInput(nil, "unsupported top-level definition kind %q", node.GetKind())
	}
}

// These mirror the string kinds graphql-go/graphql's language/ast package
// reports from Node.GetKind() / Value.GetKind().
const (
	kindOperationDefinition = "OperationDefinition"
	kindFragmentDefinition  = "FragmentDefinition"

	kindIntValue      = "IntValue"
	kindFloatValue    = "FloatValue"
	kindStringValue   = "StringValue"
	kindBooleanValue  = "BooleanValue"
	kindNullValue     = "NullValue"
	kindEnumValue     = "EnumValue"
	kindVariableValue = "Variable"
	kindListValue     = "ListValue"
	kindObjectValue   = "ObjectValue"
)

func convertOperationDefinition(def *ast.OperationDefinition) (*OperationDefinition, error) {
	name := ""
	if def.Name != nil {
		name = def.Name.Value
	}

	varDefs, err := convertVariableDefinitions(def.VariableDefinitions)
	if err != nil {
		return nil, err
	}

	dirs, err := convertDirectives(def.Directives)
	if err != nil {
		return nil, err
	}

	ss, err := convertSelectionSet(def.SelectionSet)
	if err != nil {
		return nil, err
	}

	return &OperationDefinition{
		Operation:           OperationKind(def.Operation),
		Name:                name,
		VariableDefinitions: varDefs,
		Directives:          dirs,
		SelectionSet:        ss,
	}, nil
}

func convertFragmentDefinition(def *ast.FragmentDefinition) (*FragmentDefinition, error) {
	dirs, err := convertDirectives(def.Directives)
	if err != nil {
		return nil, err
	}
	ss, err := convertSelectionSet(def.SelectionSet)
	if err != nil {
		return nil, err
	}
	return &FragmentDefinition{
		Name:          def.Name.Value,
		TypeCondition: NamedType{Name: def.TypeCondition.Name.Value},
		Directives:    dirs,
		SelectionSet:  ss,
	}, nil
}

func convertSelectionSet(ss *ast.SelectionSet) (SelectionSet, error) {
	if ss == nil {
		return SelectionSet{}, nil
	}
	selections := make([]Selection, 0, len(ss.Selections))
	for _, sel := range ss.Selections {
		converted, err := convertSelection(sel)
		if err != nil {
			return SelectionSet{}, err
		}
		selections = append(selections, converted)
	}
	return SelectionSet{Selections: selections}, nil
}

func convertSelection(sel ast.Selection) (Selection, error) {
	switch s := sel.(type) {
	case *ast.Field:
		return convertField(s)
	case *ast.FragmentSpread:
		return convertFragmentSpread(s)
	case *ast.InlineFragment:
		return convertInlineFragment(s)
	default:
		return nil, invalidInput(nil, "unsupported selection kind %T", sel)
	}
}

func convertField(f *ast.Field) (*Field, error) {
	alias := ""
	if f.Alias != nil {
		alias = f.Alias.Value
	}

	args, err := convertArguments(f.Arguments)
	if err != nil {
		return nil, err
	}
	dirs, err := convertDirectives(f.Directives)
	if err != nil {
		return nil, err
	}

	var selSet *SelectionSet
	if f.SelectionSet != nil {
		ss, err := convertSelectionSet(f.SelectionSet)
		if err != nil {
			return nil, err
		}
		selSet = &ss
	}

	return &Field{
		Alias:        alias,
		Name:         f.Name.Value,
		Arguments:    args,
		Directives:   dirs,
		SelectionSet: selSet,
	}, nil
}

func convertFragmentSpread(fs *ast.FragmentSpread) (*FragmentSpread, error) {
	dirs, err := convertDirectives(fs.Directives)
	if err != nil {
		return nil, err
	}
	return &FragmentSpread{Name: fs.Name.Value, Directives: dirs}, nil
}

func convertInlineFragment(inf *ast.InlineFragment) (*InlineFragment, error) {
	var typeCondition *NamedType
	if inf.TypeCondition != nil {
		typeCondition = &NamedType{Name: inf.TypeCondition.Name.Value}
	}
	dirs, err := convertDirectives(inf.Directives)
	if err != nil {
		return nil, err
	}
	ss, err := convertSelectionSet(inf.SelectionSet)
	if err != nil {
		return nil, err
	}
	return &InlineFragment{TypeCondition: typeCondition, Directives: dirs, SelectionSet: ss}, nil
}

func convertArguments(args []*ast.Argument) ([]*Argument, error) {
	if len(args) == 0 {
		return nil, nil
	}
	out := make([]*Argument, 0, len(args))
	for _, arg := range args {
		v, err := convertValue(arg.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, &Argument{Name: arg.Name.Value, Value: v})
	}
	return out, nil
}

func convertDirectives(dirs []*ast.Directive) ([]*Directive, error) {
	if len(dirs) == 0 {
		return nil, nil
	}
	out := make([]*Directive, 0, len(dirs))
	for _, d := range dirs {
		args, err := convertArguments(d.Arguments)
		if err != nil {
			return nil, err
		}
		out = append(out, &Directive{Name: d.Name.Value, Arguments: args})
	}
	return out, nil
}

func convertVariableDefinitions(defs []*ast.VariableDefinition) ([]*VariableDefinition, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	out := make([]*VariableDefinition, 0, len(defs))
	for _, def := range defs {
		t, err := convertType(def.Type)
		if err != nil {
			return nil, err
		}
		var dv *Value
		if def.DefaultValue != nil {
			v, err := convertValue(def.DefaultValue)
			if err != nil {
				return nil, err
			}
			dv = &v
		}
		out = append(out, &VariableDefinition{
			Variable:     def.Variable.Name.Value,
			Type:         t,
			DefaultValue: dv,
		})
	}
	return out, nil
}

func convertType(t ast.Type) (Type, error) {
	switch v := t.(type) {
	case *ast.NonNull:
		inner, err := convertType(v.Type)
		if err != nil {
			return nil, err
		}
		return NonNullType{OfType: inner}, nil
	case *ast.List:
		inner, err := convertType(v.Type)
		if err != nil {
			return nil, err
		}
		return ListType{OfType: inner}, nil
	case *ast.Named:
		return NamedType{Name: v.Name.Value}, nil
	default:
		return nil, invalidInput(nil, "unsupported type kind %q", t.GetKind())
	}
}

func convertValue(v ast.Value) (Value, error) {
	if v == nil {
		return Value{}, nil
	}
	switch v.GetKind() {
	case kindIntValue:
		n, err := strconv.ParseInt(v.GetValue().(string), 10, 64)
		if err != nil {
			return Value{}, invalidInput(err, "parse int value")
		}
		return Value{Kind: IntValue, Int: n}, nil

	case kindFloatValue:
		f, err := strconv.ParseFloat(v.GetValue().(string), 64)
		if err != nil {
			return Value{}, invalidInput(err, "parse float value")
		}
		return Value{Kind: FloatValue, Float: f}, nil

	case kindStringValue:
		return Value{Kind: StringValue, Str: v.GetValue().(string)}, nil

	case kindBooleanValue:
		return Value{Kind: BooleanValue, Bool: v.GetValue().(bool)}, nil

	case kindNullValue:
		return Value{Kind: NullValue}, nil

	case kindEnumValue:
		return Value{Kind: EnumValue, Str: v.GetValue().(string)}, nil

	case kindVariableValue:
		name := v.GetValue().(*ast.Name)
		return Value{Kind: VariableValue, Str: name.Value}, nil

	case kindListValue:
		items := v.GetValue().([]ast.Value)
		out := make([]Value, 0, len(items))
		for _, item := range items {
			cv, err := convertValue(item)
			if err != nil {
				return Value{}, err
			}
			out = append(out, cv)
		}
		return Value{Kind: ListValue, List: out}, nil

	case kindObjectValue:
		fields := v.GetValue().([]*ast.ObjectField)
		out := make([]ObjectField, 0, len(fields))
		for _, f := range fields {
			fv, err := convertValue(f.Value)
			if err != nil {
				return Value{}, err
			}
			out = append(out, ObjectField{Name: f.Name.Value, Value: fv})
		}
		return Value{Kind: ObjectValue, Object: out}, nil

	default:
		return Value{}, invalidInput(nil, "unsupported value kind %q", v.GetKind())
	}
}
