package compiler

import (
	"context"
	"errors"
	"strings"

	"github.com/vk/hmlc/internal/card"
	"github.com/vk/hmlc/internal/diag"
)

// compileConfigUnit normalizes a directly-compiled configuration asset. Its
// product is aggregated configuration, not module code.
func (c *Compiler) compileConfigUnit(ctx context.Context, in Input, u *diag.UnitDiags) string {
	var elem *ElementContext
	if in.IsElement {
		elem = &ElementContext{Name: strings.ToLower(in.ElementName), Path: in.Path}
	}
	c.normalizeConfig(ctx, in.Text, configSourceKind(in.Path), c.targetFor(in.Path), elem, u)
	return ""
}

// configSourceKind classifies a config asset by its inner extension:
// x.css.json carries style-kind text, x.hml.json markup-kind text, and
// everything else script/JSON-kind text.
func configSourceKind(path string) card.SourceKind {
	inner := strings.TrimSuffix(path, ExtConfig)
	switch {
	case strings.HasSuffix(inner, ExtStyle):
		return card.SourceStyle
	case strings.HasSuffix(inner, ExtMarkup):
		return card.SourceMarkup
	default:
		return card.SourceJSON
	}
}

// normalizeConfig runs the card literal normalizer and feeds every populated
// section to the aggregation sink. A literal that fails to parse degrades to
// an empty structured result with an Error diagnostic; it never aborts the
// build.
func (c *Compiler) normalizeConfig(ctx context.Context, text string, kind card.SourceKind, target string, elem *ElementContext, u *diag.UnitDiags) {
	sections, err := card.Normalize(ctx, text, kind, u)
	if err != nil {
		var syntaxErr *card.SyntaxError
		if errors.As(err, &syntaxErr) {
			u.Errorf(ctx, &syntaxErr.Pos, "invalid card literal: %s", syntaxErr.Detail)
		} else {
			u.Errorf(ctx, nil, "invalid card literal: %v", err)
		}
		return
	}

	for _, section := range card.SectionOrder {
		value, ok := sections[section]
		if !ok {
			continue
		}
		if err := c.sink.CompileJSON(target, section, value, elem); err != nil {
			u.Errorf(ctx, nil, "configuration aggregation failed for section %q: %v", section, err)
		}
	}
}
