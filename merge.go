package gql

import (
	"sort"
	"strconv"
	"strings"
)

// Merge concatenates a and b's definitions, folds OperationDefinitions that
// share an operation kind into a single definition (variable definitions
// unioned by name, first occurrence wins; selection sets concatenated and
// recursively deduplicated), and leaves FragmentDefinitions concatenated
// as-is, per spec §4.5.
func Merge(a, b any) (*Document, error) {
	docA, err := asDocument(a)
	if err != nil {
		return nil, err
	}
	docB, err := asDocument(b)
	if err != nil {
		return nil, err
	}

	all := append(copyDefinitions(docA.Definitions), docB.Definitions...)

	groups := map[OperationKind][]*OperationDefinition{}
	positions := map[OperationKind]int{}
	var order []OperationKind

	out := make([]Definition, 0, len(all))
	for _, def := range all {
		op, ok := def.(*OperationDefinition)
		if !ok {
			out = append(out, def)
			continue
		}
		groups[op.Operation] = append(groups[op.Operation], op)
		if _, placed := positions[op.Operation]; !placed {
			positions[op.Operation] = len(out)
			order = append(order, op.Operation)
			out = append(out, nil) // placeholder, filled in below
		}
	}

	for _, kind := range order {
		out[positions[kind]] = foldOperations(kind, groups[kind])
	}

	return &Document{Definitions: out}, nil
}

func foldOperations(kind OperationKind, ops []*OperationDefinition) *OperationDefinition {
	base := ops[0]

	seenVars := map[string]bool{}
	varDefs := make([]*VariableDefinition, 0, len(base.VariableDefinitions))
	for _, vd := range base.VariableDefinitions {
		varDefs = append(varDefs, vd)
		seenVars[vd.Variable] = true
	}

	selections := append([]Selection{}, base.SelectionSet.Selections...)
	for _, op := range ops[1:] {
		for _, vd := range op.VariableDefinitions {
			if !seenVars[vd.Variable] {
				varDefs = append(varDefs, vd)
				seenVars[vd.Variable] = true
			}
		}
		selections = append(selections, op.SelectionSet.Selections...)
	}

	return &OperationDefinition{
		Operation:           kind,
		Name:                base.Name,
		VariableDefinitions: varDefs,
		Directives:          base.Directives,
		SelectionSet:        SelectionSet{Selections: dedupeSelections(selections)},
	}
}

// dedupeSelections implements the §4.5 selection deduplication rule: two
// Fields merge when they share (identity, canonical argument signature); the
// earlier occurrence is kept at its position with its SelectionSet replaced
// by the recursive dedup of the union of both selection sets. FragmentSpread
// and InlineFragment selections pass through unchanged and are never merged
// with one another.
func dedupeSelections(selections []Selection) []Selection {
	index := map[string]int{}
	out := make([]Selection, 0, len(selections))

	for _, sel := range selections {
		field, ok := sel.(*Field)
		if !ok {
			out = append(out, sel)
			continue
		}

		key := field.Identity() + "\x00" + canonicalArgumentSignature(field.Arguments)
		if i, seen := index[key]; seen {
			existing := *out[i].(*Field)
			existing.SelectionSet = mergeSelectionSets(existing.SelectionSet, field.SelectionSet)
			out[i] = &existing
			continue
		}

		index[key] = len(out)
		out = append(out, field)
	}

	return out
}

func mergeSelectionSets(a, b *SelectionSet) *SelectionSet {
	if a == nil && b == nil {
		return nil
	}
	var combined []Selection
	if a != nil {
		combined = append(combined, a.Selections...)
	}
	if b != nil {
		combined = append(combined, b.Selections...)
	}
	deduped := dedupeSelections(combined)
	return &SelectionSet{Selections: deduped}
}

// canonicalArgumentSignature is the "canonical argument signature" from the
// GLOSSARY: arguments sorted by name, each value normalized via
// canonicalValue.
func canonicalArgumentSignature(args []*Argument) string {
	if len(args) == 0 {
		return ""
	}
	sorted := make([]*Argument, len(args))
	copy(sorted, args)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	parts := make([]string, len(sorted))
	for i, a := range sorted {
		parts[i] = a.Name + ":" + canonicalValue(a.Value)
	}
	return strings.Join(parts, ",")
}

// canonicalValue resolves spec §9 open question 2: Object field order does
// not affect the canonical form, since fields are sorted by name before
// rendering.
func canonicalValue(v Value) string {
	switch v.Kind {
	case IntValue:
		return strconv.FormatInt(v.Int, 10)
	case FloatValue:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case StringValue:
		return strconv.Quote(v.Str)
	case BooleanValue:
		return strconv.FormatBool(v.Bool)
	case NullValue:
		return "null"
	case EnumValue:
		return v.Str
	case VariableValue:
		return "$" + v.Str
	case ListValue:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = canonicalValue(e)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case ObjectValue:
		fields := make([]ObjectField, len(v.Object))
		copy(fields, v.Object)
		sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })
		parts := make([]string, len(fields))
		for i, f := range fields {
			parts[i] = f.Name + ":" + canonicalValue(f.Value)
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return ""
	}
}
