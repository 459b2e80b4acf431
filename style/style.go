// Package style resolves the effective character formatting of a paragraph.
//
// A paragraph rarely defines its formatting in one place. Runs carry direct
// formatting, and whatever they leave unsaid comes from the paragraph style.
// [Resolve] merges the two layers per attribute: for each of font name, size,
// bold and italic, the first run with visible text that defines the attribute
// wins, and the paragraph style fills in only the attributes no run defined.
// An attribute defined nowhere stays undefined in the result, and the rules
// treat it as unknown rather than as a violation.
package style

import "github.com/tsawler/galley/model"

// Resolve returns the effective font facts for p. Runs with empty text are
// ignored, as is a run size of zero; bold and italic keep their tri-state,
// so an explicit false on a run is a definition and blocks the style
// fallback.
func Resolve(p *model.Paragraph) model.FontFacts {
	var facts model.FontFacts

	for _, r := range p.Runs {
		if r.Text == "" {
			continue
		}
		if facts.Name == "" && r.Font.Name != "" {
			facts.Name = r.Font.Name
		}
		if facts.Size == nil && r.Font.Size != nil && *r.Font.Size != 0 {
			facts.Size = r.Font.Size
		}
		if facts.Bold == nil && r.Font.Bold != nil {
			facts.Bold = r.Font.Bold
		}
		if facts.Italic == nil && r.Font.Italic != nil {
			facts.Italic = r.Font.Italic
		}
	}

	if facts.Name == "" {
		facts.Name = p.StyleFont.Name
	}
	if facts.Size == nil && p.StyleFont.Size != nil && *p.StyleFont.Size != 0 {
		facts.Size = p.StyleFont.Size
	}
	if facts.Bold == nil {
		facts.Bold = p.StyleFont.Bold
	}
	if facts.Italic == nil {
		facts.Italic = p.StyleFont.Italic
	}

	return facts.Clone()
}
