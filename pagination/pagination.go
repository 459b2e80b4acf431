// Package pagination estimates how many pages a manuscript occupies.
//
// The estimate deliberately ignores real layout. It models the page as a
// fixed grid of text lines and each paragraph as occupying the number of
// lines its character count requires, which is how the house style's page
// limit is defined. The estimate is monotonic: adding text never lowers the
// page count.
package pagination

import (
	"unicode/utf8"

	"github.com/tsawler/galley/model"
)

// Config holds the line grid the estimate is based on.
type Config struct {
	// LineLengthChars is the assumed number of characters per line.
	LineLengthChars int
	// LinesPerPage is the assumed number of lines per page.
	LinesPerPage int
}

// DefaultConfig returns the grid used by the built-in house style: 35 lines
// of 70 characters.
func DefaultConfig() Config {
	return Config{LineLengthChars: 70, LinesPerPage: 35}
}

// Result is the outcome of a page estimate.
type Result struct {
	// Pages is the estimated page count, at least 1.
	Pages int
	// LastPageParagraphs is the number of paragraphs whose text reaches
	// into the final page.
	LastPageParagraphs int
}

// withDefaults replaces non-positive grid values with the defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.LineLengthChars < 1 {
		c.LineLengthChars = d.LineLengthChars
	}
	if c.LinesPerPage < 1 {
		c.LinesPerPage = d.LinesPerPage
	}
	return c
}

// Estimate computes the page estimate for doc. Only non-blank paragraphs
// count; each occupies at least one line, and character counts are measured
// in runes so Cyrillic text is not penalized.
func Estimate(doc *model.Document, cfg Config) Result {
	cfg = cfg.withDefaults()

	totalLines := 0
	for _, p := range doc.Paragraphs {
		totalLines += paragraphLines(p, cfg.LineLengthChars)
	}

	pages := ceilDiv(totalLines, cfg.LinesPerPage)
	if pages < 1 {
		pages = 1
	}

	// Count the paragraphs whose lines fall past the start of the last page.
	threshold := (pages - 1) * cfg.LinesPerPage
	accumulated := 0
	lastPage := 0
	for _, p := range doc.Paragraphs {
		lines := paragraphLines(p, cfg.LineLengthChars)
		if lines == 0 {
			continue
		}
		accumulated += lines
		if accumulated > threshold {
			lastPage++
		}
	}

	return Result{Pages: pages, LastPageParagraphs: lastPage}
}

// paragraphLines returns the number of grid lines a paragraph occupies, zero
// for blank paragraphs.
func paragraphLines(p *model.Paragraph, lineLength int) int {
	text := p.Trimmed()
	if text == "" {
		return 0
	}
	lines := ceilDiv(utf8.RuneCountInString(text), lineLength)
	if lines < 1 {
		lines = 1
	}
	return lines
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
