// Package model provides the intermediate representation (IR) for manuscript
// content and formatting.
//
// This package defines the data structures that represent a manuscript as the
// conformance rules see it: a flat sequence of paragraphs with their resolved
// formatting facts, plus the page geometry of each section. All document
// parsing ultimately produces these types, and every downstream check consumes
// them, making the package the pivot point of the library.
//
// # Document Structure
//
// The [Document] type represents a loaded manuscript:
//
//	doc := &model.Document{
//		Sections:   []model.Section{{PageWidth: 148 * model.Millimeter}},
//		Paragraphs: []*model.Paragraph{{Text: "Body text."}},
//	}
//
// Each [Section] carries page dimensions and margins as [Length] values. Each
// [Paragraph] carries its raw text, paragraph-level formatting, and the list
// of [Run] fragments it is composed of.
//
// # Formatting Facts
//
// Character formatting is tri-state: an attribute can be set to a value, set
// explicitly off, or not set at all. [FontFacts] models this with pointer
// fields, where nil means "not defined at this level":
//
//   - Name - font family, empty when not defined
//   - Size - size in points, nil when not defined
//   - Bold, Italic - nil when not defined, otherwise the explicit flag
//
// A paragraph's [FontFacts] come in two layers: per-run direct formatting and
// the paragraph style's formatting, carried in [Paragraph.StyleFont]. Merging
// the layers is the job of the style resolver, not of this package.
//
// # Measurement
//
// All physical dimensions use [Length], an integer count of English Metric
// Units (EMU). EMUs are the native unit of Office Open XML and divide evenly
// into centimeters, millimeters, points and twips, so conversions stay exact:
//
//	indent := model.FromCentimeters(0.5)
//	indent.Centimeters() // 0.5
//
// # Cloning
//
// [Document.Clone] produces a deep copy sharing no mutable state with the
// original. The annotator relies on this to mark paragraphs without touching
// the document it was given.
package model
