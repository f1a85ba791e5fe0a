package card

import (
	"context"
	"strings"

	"github.com/vk/hmlc/internal/diag"
	"github.com/zclconf/go-cty/cty"
)

// SourceKind classifies the asset a card literal was found in. It decides
// whether binding rewrites apply and which sections the result splits into.
type SourceKind int

const (
	// SourceJSON is script- or JSON-kind config text; it yields the
	// actions/data/apiVersion/props sections.
	SourceJSON SourceKind = iota
	// SourceStyle yields an opaque styles section.
	SourceStyle
	// SourceMarkup yields an opaque template section.
	SourceMarkup
)

// Section names, in the order sections are handed to the aggregation sink.
const (
	SectionActions    = "actions"
	SectionData       = "data"
	SectionAPIVersion = "apiVersion"
	SectionProps      = "props"
	SectionStyles     = "styles"
	SectionTemplate   = "template"
)

// SectionOrder fixes the emission order of populated sections.
var SectionOrder = []string{
	SectionActions,
	SectionData,
	SectionAPIVersion,
	SectionProps,
	SectionStyles,
	SectionTemplate,
}

// Sections is the strict structured form of a card literal, keyed by
// section name. Only sections present in the literal appear.
type Sections map[string]cty.Value

// Normalize turns relaxed literal text into strict structured sections. A
// *SyntaxError return means the literal did not parse; validation issues are
// reported as Warn diagnostics and normalization continues best-effort.
func Normalize(ctx context.Context, raw string, kind SourceKind, u *diag.UnitDiags) (Sections, error) {
	text := StripComments(raw)
	text = StripExportDefault(text)
	if kind != SourceStyle {
		text = RewriteBindings(text)
	}

	root, err := ParseLiteral(text)
	if err != nil {
		return nil, err
	}

	switch kind {
	case SourceStyle:
		return Sections{SectionStyles: root}, nil
	case SourceMarkup:
		return Sections{SectionTemplate: root}, nil
	default:
		return splitJSONSections(ctx, root, u), nil
	}
}

// splitJSONSections extracts and validates the four config sections from the
// parsed literal. Unknown top-level keys are dropped.
func splitJSONSections(ctx context.Context, root cty.Value, u *diag.UnitDiags) Sections {
	sections := make(Sections)
	ty := root.Type()

	if ty.HasAttribute(SectionActions) {
		sections[SectionActions] = normalizeActions(ctx, root.GetAttr(SectionActions), u)
	}
	if ty.HasAttribute(SectionData) {
		sections[SectionData] = checkData(ctx, root.GetAttr(SectionData), u)
	}
	if ty.HasAttribute(SectionAPIVersion) {
		sections[SectionAPIVersion] = root.GetAttr(SectionAPIVersion)
	}
	if ty.HasAttribute(SectionProps) {
		sections[SectionProps] = normalizeProps(ctx, root.GetAttr(SectionProps), u)
	}

	return sections
}

// normalizeActions lowercases every action's method. A non-string method or
// one that needed lowercasing produces a Warn.
func normalizeActions(ctx context.Context, v cty.Value, u *diag.UnitDiags) cty.Value {
	if !v.Type().IsObjectType() {
		u.Warnf(ctx, nil, "actions must be an object of action definitions")
		return v
	}

	attrs := make(map[string]cty.Value)
	for name, action := range v.AsValueMap() {
		if !action.Type().IsObjectType() || !action.Type().HasAttribute("method") {
			attrs[name] = action
			continue
		}

		method := action.GetAttr("method")
		if method.Type() != cty.String || method.IsNull() {
			u.Warnf(ctx, nil, "method of action %q is not a string", name)
			attrs[name] = action
			continue
		}

		text := method.AsString()
		if lower := strings.ToLower(text); lower != text {
			u.Warnf(ctx, nil, "method %q of action %q is not lowercase", text, name)
			fields := action.AsValueMap()
			fields["method"] = cty.StringVal(lower)
			action = objectVal(fields)
		}
		attrs[name] = action
	}
	return objectVal(attrs)
}

// defaultPropValue is what a property entry without a default normalizes to.
func defaultPropValue() cty.Value {
	return cty.ObjectVal(map[string]cty.Value{"default": cty.StringVal("")})
}

// normalizeProps accepts either a list of property names or an object of
// property definitions, and produces the object form with a default on every
// entry. The transformation is idempotent.
func normalizeProps(ctx context.Context, v cty.Value, u *diag.UnitDiags) cty.Value {
	switch {
	case v.Type().IsTupleType():
		attrs := make(map[string]cty.Value)
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			if elem.Type() != cty.String || elem.IsNull() {
				u.Warnf(ctx, nil, "props entries must be property name strings")
				continue
			}
			attrs[elem.AsString()] = defaultPropValue()
		}
		return objectVal(attrs)

	case v.Type().IsObjectType():
		attrs := make(map[string]cty.Value)
		for name, prop := range v.AsValueMap() {
			if !prop.Type().IsObjectType() {
				u.Warnf(ctx, nil, "prop %q must be an object definition", name)
				attrs[name] = defaultPropValue()
				continue
			}
			if !prop.Type().HasAttribute("default") {
				fields := prop.AsValueMap()
				fields["default"] = cty.StringVal("")
				prop = cty.ObjectVal(fields)
			}
			attrs[name] = prop
		}
		return objectVal(attrs)

	default:
		u.Warnf(ctx, nil, "props must be a list of names or an object of definitions")
		return v
	}
}

// checkData verifies data is a plain key/value object; anything else passes
// through with a Warn.
func checkData(ctx context.Context, v cty.Value, u *diag.UnitDiags) cty.Value {
	if !v.Type().IsObjectType() {
		u.Warnf(ctx, nil, "data must be a plain key/value object")
	}
	return v
}
