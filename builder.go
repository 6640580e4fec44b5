package gql

import "sort"

// Step is one (operation, argument) pair fed to Build, per spec §4.6. Op
// names one of the operations in §4.3–§4.5 exactly; Arg is normalized
// per-operation (see the registry in this file) the way spec §4.6 describes:
// a []any is treated as positional arguments, anything else as a single
// positional argument, and a map[string]any nested inside those positions is
// treated as an options argument.
type Step struct {
	Op  string
	Arg any
}

// Build interprets steps in order against a fresh Document containing one
// anonymous query OperationDefinition, per spec §4.6. An Op not found in the
// registry below fails with an InvalidArgument Error.
func Build(steps ...Step) (*Document, error) {
	doc := &Document{
		Definitions: []Definition{
			&OperationDefinition{Operation: Query, SelectionSet: SelectionSet{}},
		},
	}

	for _, step := range steps {
		fn, ok := builderRegistry[step.Op]
		if !ok {
			return nil, invalidArgument("unknown builder operation %q", step.Op)
		}
		var err error
		doc, err = fn(doc, step.Arg)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

type builderFunc func(*Document, any) (*Document, error)

var builderRegistry = map[string]builderFunc{
	"name":             buildSetOperationName,
	"operation_type":   buildSetOperationType,
	"field":            buildAddField,
	"remove_field":     buildRemoveField,
	"replace_field":    buildReplaceField,
	"argument":         buildAddArgument,
	"remove_argument":  buildRemoveArgument,
	"replace_argument": buildReplaceArgument,
	"directive":        buildAddDirective,
	"variable":         buildAddVariable,
	"remove_variable":  buildRemoveVariable,
	"fragment":         buildDefineFragment,
	"remove_fragment":  buildRemoveFragment,
	"inline_fragment":  buildAddInlineFragment,
	"spread_fragment":  buildSpreadFragment,
	"inline_fragments": buildInlineAllSpreads,
	"merge":            buildMerge,
	"inject_typenames": buildInjectTypenames,
	"inline_variables": buildInlineVariables,
}

func positional(arg any) []any {
	switch v := arg.(type) {
	case []any:
		return v
	case nil:
		return nil
	default:
		return []any{v}
	}
}

func argAt(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func buildSetOperationName(doc *Document, arg any) (*Document, error) {
	return SetOperationName(doc, asString(arg))
}

func buildSetOperationType(doc *Document, arg any) (*Document, error) {
	switch v := arg.(type) {
	case OperationKind:
		return SetOperationType(doc, v)
	case string:
		return SetOperationType(doc, OperationKind(v))
	default:
		return nil, invalidArgument("operation_type expects a string or OperationKind, got %T", arg)
	}
}

func buildAddField(doc *Document, arg any) (*Document, error) {
	args := positional(arg)
	name := asString(argAt(args, 0))
	opts, err := toFieldOpts(asMap(argAt(args, 1)))
	if err != nil {
		return nil, err
	}
	return AddField(doc, name, opts)
}

func buildRemoveField(doc *Document, arg any) (*Document, error) {
	args := positional(arg)
	name := asString(argAt(args, 0))
	path := toPath(asMap(argAt(args, 1))["path"])
	return RemoveField(doc, name, path)
}

func buildReplaceField(doc *Document, arg any) (*Document, error) {
	args := positional(arg)
	name := asString(argAt(args, 0))
	opts := asMap(argAt(args, 1))
	return ReplaceField(doc, name, ReplaceFieldOpts{
		Alias: asString(opts["alias"]),
		Args:  toArgs(opts["args"]),
		Path:  toPath(opts["path"]),
	})
}

func buildAddArgument(doc *Document, arg any) (*Document, error) {
	args := positional(arg)
	return AddArgument(doc, asString(argAt(args, 0)), toPath(argAt(args, 1)), argAt(args, 2))
}

func buildRemoveArgument(doc *Document, arg any) (*Document, error) {
	args := positional(arg)
	return RemoveArgument(doc, asString(argAt(args, 0)), toPath(argAt(args, 1)))
}

func buildReplaceArgument(doc *Document, arg any) (*Document, error) {
	args := positional(arg)
	return ReplaceArgument(doc, asString(argAt(args, 0)), toPath(argAt(args, 1)), argAt(args, 2))
}

func buildAddDirective(doc *Document, arg any) (*Document, error) {
	args := positional(arg)
	return AddDirective(doc, asString(argAt(args, 0)), toPath(argAt(args, 1)), toArgs(argAt(args, 2)))
}

func buildAddVariable(doc *Document, arg any) (*Document, error) {
	args := positional(arg)
	name := asString(argAt(args, 0))
	opts := asMap(argAt(args, 1))
	return AddVariable(doc, name, AddVariableOpts{
		Type:     asString(opts["type"]),
		Default:  opts["default"],
		Optional: boolOpt(opts["optional"]),
	})
}

func buildRemoveVariable(doc *Document, arg any) (*Document, error) {
	return RemoveVariable(doc, asString(arg))
}

func buildDefineFragment(doc *Document, arg any) (*Document, error) {
	args := positional(arg)
	name := asString(argAt(args, 0))
	typeCondition := asString(argAt(args, 1))
	opts := asMap(argAt(args, 2))
	fields, spread, spreadOn, err := toSubSelectionSpecs(opts)
	if err != nil {
		return nil, err
	}
	return DefineFragment(doc, name, typeCondition, DefineFragmentOpts{Fields: fields, Spread: spread, SpreadOn: spreadOn})
}

func buildRemoveFragment(doc *Document, arg any) (*Document, error) {
	return RemoveFragment(doc, asString(arg))
}

func buildAddInlineFragment(doc *Document, arg any) (*Document, error) {
	args := positional(arg)
	typeCondition := asString(argAt(args, 0))
	path := toPath(argAt(args, 1))
	opts := asMap(argAt(args, 2))
	fields, spread, spreadOn, err := toSubSelectionSpecs(opts)
	if err != nil {
		return nil, err
	}
	return AddInlineFragment(doc, typeCondition, path, InlineFragmentOpts{Fields: fields, Spread: spread, SpreadOn: spreadOn})
}

func buildSpreadFragment(doc *Document, arg any) (*Document, error) {
	args := positional(arg)
	return SpreadFragment(doc, asString(argAt(args, 0)), toPath(argAt(args, 1)))
}

func buildInlineAllSpreads(doc *Document, _ any) (*Document, error) {
	return InlineAllSpreads(doc)
}

func buildMerge(doc *Document, arg any) (*Document, error) {
	return Merge(doc, arg)
}

func buildInjectTypenames(doc *Document, _ any) (*Document, error) {
	return InjectTypenames(doc)
}

func buildInlineVariables(doc *Document, arg any) (*Document, error) {
	mapping, _ := arg.(map[string]any)
	return InlineVariables(doc, mapping)
}

func boolOpt(v any) bool {
	b, _ := v.(bool)
	return b
}

func toFieldOpts(opts map[string]any) (AddFieldOpts, error) {
	fields, spread, spreadOn, err := toSubSelectionSpecs(opts)
	if err != nil {
		return AddFieldOpts{}, err
	}
	return AddFieldOpts{
		Alias:    asString(opts["alias"]),
		Args:     toArgs(opts["args"]),
		Path:     toPath(opts["path"]),
		Fields:   fields,
		Spread:   spread,
		SpreadOn: spreadOn,
	}, nil
}

// toSubSelectionSpecs extracts fields/spread/spread_on from opts, rejecting
// a "path" key nested anywhere inside them: spec §4.3 requires "path is not
// permitted inside a subfield spec" to be an error, and the untyped
// map[string]any shape accepted here (unlike the typed FieldSpec used by the
// Go API directly) is the one place that invalid shape is actually
// representable.
func toSubSelectionSpecs(opts map[string]any) (fields []FieldSpec, spread []string, spreadOn []InlineFieldSpec, err error) {
	if err := rejectNestedPath(opts["fields"]); err != nil {
		return nil, nil, nil, err
	}
	if err := rejectNestedPath(opts["spread_on"]); err != nil {
		return nil, nil, nil, err
	}
	return toFieldSpecs(opts["fields"]), toStringList(opts["spread"]), toInlineFieldSpecs(opts["spread_on"]), nil
}

func rejectNestedPath(v any) error {
	switch x := v.(type) {
	case map[string]any:
		if _, has := x["path"]; has {
			return invalidArgument("path is not permitted inside a subfield spec")
		}
		for _, val := range x {
			if err := rejectNestedPath(val); err != nil {
				return err
			}
		}
	case []any:
		for _, val := range x {
			if err := rejectNestedPath(val); err != nil {
				return err
			}
		}
	}
	return nil
}

func toFieldSpecs(v any) []FieldSpec {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	specs := make([]FieldSpec, 0, len(list))
	for _, item := range list {
		switch it := item.(type) {
		case string:
			specs = append(specs, FieldSpec{Name: it})
		case FieldSpec:
			specs = append(specs, it)
		case []any:
			if len(it) == 0 {
				continue
			}
			spec := FieldSpec{Name: asString(it[0])}
			if len(it) >= 2 {
				spec = applyFieldSpecOpts(spec, asMap(it[1]))
			}
			specs = append(specs, spec)
		case map[string]any:
			spec := applyFieldSpecOpts(FieldSpec{Name: asString(it["name"])}, it)
			specs = append(specs, spec)
		}
	}
	return specs
}

func applyFieldSpecOpts(spec FieldSpec, opts map[string]any) FieldSpec {
	spec.Alias = asString(opts["alias"])
	spec.Args = toArgs(opts["args"])
	spec.Fields = toFieldSpecs(opts["fields"])
	spec.Spread = toStringList(opts["spread"])
	spec.SpreadOn = toInlineFieldSpecs(opts["spread_on"])
	return spec
}

func toInlineFieldSpecs(v any) []InlineFieldSpec {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	specs := make([]InlineFieldSpec, 0, len(list))
	for _, item := range list {
		switch it := item.(type) {
		case InlineFieldSpec:
			specs = append(specs, it)
		case []any:
			if len(it) == 0 {
				continue
			}
			spec := InlineFieldSpec{Type: asString(it[0])}
			if len(it) >= 2 {
				opts := asMap(it[1])
				spec.Fields = toFieldSpecs(opts["fields"])
				spec.Spread = toStringList(opts["spread"])
				spec.SpreadOn = toInlineFieldSpecs(opts["spread_on"])
			}
			specs = append(specs, spec)
		case map[string]any:
			spec := InlineFieldSpec{Type: asString(it["type"])}
			spec.Fields = toFieldSpecs(it["fields"])
			spec.Spread = toStringList(it["spread"])
			spec.SpreadOn = toInlineFieldSpecs(it["spread_on"])
			specs = append(specs, spec)
		}
	}
	return specs
}

func toStringList(v any) []string {
	switch x := v.(type) {
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			out = append(out, asString(e))
		}
		return out
	default:
		return nil
	}
}

func toPath(v any) Path {
	switch x := v.(type) {
	case Path:
		return x
	case []PathElement:
		return Path(x)
	case []string:
		p := make(Path, len(x))
		for i, s := range x {
			p[i] = F(s)
		}
		return p
	case []any:
		p := make(Path, 0, len(x))
		for _, e := range x {
			switch el := e.(type) {
			case PathElement:
				p = append(p, el)
			case string:
				p = append(p, F(el))
			}
		}
		return p
	case string:
		return Path{F(x)}
	default:
		return nil
	}
}

func toArgs(v any) []Arg {
	switch x := v.(type) {
	case []Arg:
		return x
	case M:
		out := make([]Arg, len(x))
		for i, kv := range x {
			out[i] = Arg{Name: kv.Key, Value: kv.Value}
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]Arg, 0, len(keys))
		for _, k := range keys {
			out = append(out, Arg{Name: k, Value: x[k]})
		}
		return out
	default:
		return nil
	}
}
