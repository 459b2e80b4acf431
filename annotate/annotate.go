// Package annotate derives a highlighted copy of a checked document.
//
// Every paragraph referenced by a non-OK issue has the text color of all its
// runs replaced, so a downstream writer can produce a reviewer copy where the
// problem spots stand out. The input document is never touched; annotation
// always works on a deep copy.
package annotate

import (
	"github.com/tsawler/galley/model"
	"github.com/tsawler/galley/report"
)

// DefaultColor is the highlight applied to flagged runs, an RRGGBB hex
// string without a leading #.
const DefaultColor = "FF0000"

// Apply returns a deep copy of doc in which every paragraph flagged by a
// non-OK issue in rep is recolored with [DefaultColor]. A flagged paragraph
// without runs gets a single run synthesized from its text so the color has
// somewhere to live. Issue indices outside the paragraph range are skipped.
func Apply(doc *model.Document, rep *report.Report) *model.Document {
	return ApplyColor(doc, rep, DefaultColor)
}

// ApplyColor is [Apply] with a caller-chosen highlight color.
func ApplyColor(doc *model.Document, rep *report.Report, color string) *model.Document {
	out := doc.Clone()

	for _, idx := range rep.Flagged() {
		if idx < 0 || idx >= len(out.Paragraphs) {
			continue
		}
		par := out.Paragraphs[idx]
		if len(par.Runs) == 0 {
			par.Runs = []*model.Run{{Text: par.Text}}
		}
		for _, run := range par.Runs {
			run.Color = color
		}
	}

	return out
}
