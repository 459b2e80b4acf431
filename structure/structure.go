// Package structure locates the landmark paragraphs of a manuscript.
//
// The house style fixes the front-matter order: the first non-blank
// paragraph is the author line, the next non-blank paragraph is the title,
// and the one after that starts the body text. [Locate] finds these anchors
// without judging their formatting; missing anchors stay nil.
//
// The reference list is found by its heading. [LiteratureIndex] requires the
// exact heading text, [LiteratureIndexFold] matches it under Unicode case
// folding; the conformance rules use one or the other depending on how
// forgiving the individual check is about the heading's casing.
package structure

import (
	"golang.org/x/text/cases"

	"github.com/tsawler/galley/model"
)

// Anchors holds the indices of the manuscript's landmark paragraphs. A nil
// field means the landmark was not found.
type Anchors struct {
	Authors *int
	Title   *int
	Body    *int
}

// Locate finds the author line, title and body start of doc.
func Locate(doc *model.Document) Anchors {
	var anchors Anchors

	next := func(from int) *int {
		for i := from; i < len(doc.Paragraphs); i++ {
			if !doc.Paragraphs[i].IsBlank() {
				idx := i
				return &idx
			}
		}
		return nil
	}

	anchors.Authors = next(0)
	if anchors.Authors == nil {
		return anchors
	}
	anchors.Title = next(*anchors.Authors + 1)
	if anchors.Title == nil {
		return anchors
	}
	anchors.Body = next(*anchors.Title + 1)
	return anchors
}

// LiteratureIndex returns the index of the first paragraph whose trimmed
// text equals heading exactly.
func LiteratureIndex(doc *model.Document, heading string) (int, bool) {
	for i, p := range doc.Paragraphs {
		if p.Trimmed() == heading {
			return i, true
		}
	}
	return 0, false
}

// LiteratureIndexFold returns the index of the first paragraph whose trimmed
// text equals heading under Unicode case folding, so "ЛИТЕРАТУРА" matches a
// "Литература" heading.
func LiteratureIndexFold(doc *model.Document, heading string) (int, bool) {
	want := fold(heading)
	for i, p := range doc.Paragraphs {
		if fold(p.Trimmed()) == want {
			return i, true
		}
	}
	return 0, false
}

func fold(s string) string {
	return cases.Fold().String(s)
}
