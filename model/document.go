package model

import "strings"

// Alignment represents paragraph justification as set directly on the
// paragraph. Formatting inherited from a style is not folded in.
type Alignment int

const (
	AlignmentUnset Alignment = iota
	AlignmentLeft
	AlignmentCenter
	AlignmentRight
	AlignmentJustified
)

func (a Alignment) String() string {
	switch a {
	case AlignmentLeft:
		return "left"
	case AlignmentCenter:
		return "center"
	case AlignmentRight:
		return "right"
	case AlignmentJustified:
		return "justified"
	default:
		return "unset"
	}
}

// FontFacts captures character formatting at one definition level. Fields are
// tri-state: a nil pointer (or empty Name) means the attribute is not defined
// at this level, which is distinct from an explicit false or zero.
type FontFacts struct {
	Name   string
	Size   *float64 // points
	Bold   *bool
	Italic *bool
}

// Clone returns a copy with freshly allocated pointer fields.
func (f FontFacts) Clone() FontFacts {
	c := FontFacts{Name: f.Name}
	if f.Size != nil {
		v := *f.Size
		c.Size = &v
	}
	if f.Bold != nil {
		v := *f.Bold
		c.Bold = &v
	}
	if f.Italic != nil {
		v := *f.Italic
		c.Italic = &v
	}
	return c
}

// LineSpacing is the paragraph line spacing expressed as a multiple of single
// spacing. Set reports whether the paragraph defines spacing at all.
type LineSpacing struct {
	Set      bool
	Multiple float64
}

// Run is a contiguous fragment of paragraph text sharing one set of direct
// character formatting.
type Run struct {
	Text  string
	Font  FontFacts
	Color string // RGB hex such as "FF0000", empty when not set
}

// Clone returns a deep copy of the run.
func (r *Run) Clone() *Run {
	return &Run{Text: r.Text, Font: r.Font.Clone(), Color: r.Color}
}

// Paragraph is one body-level paragraph of the manuscript.
type Paragraph struct {
	// Text is the concatenated text of all runs. Tab characters and line
	// breaks inside runs are preserved as "\t" and "\n".
	Text string

	Alignment       Alignment
	LineSpacing     LineSpacing
	FirstLineIndent Length

	// Runs are the direct run children of the paragraph in document order.
	Runs []*Run

	// StyleFont is the character formatting defined directly on the
	// paragraph's style, used as the fallback layer when no run defines an
	// attribute.
	StyleFont FontFacts
}

// Trimmed returns the paragraph text with surrounding whitespace removed.
func (p *Paragraph) Trimmed() string {
	return strings.TrimSpace(p.Text)
}

// IsBlank reports whether the paragraph contains only whitespace.
func (p *Paragraph) IsBlank() bool {
	return p.Trimmed() == ""
}

// Clone returns a deep copy of the paragraph.
func (p *Paragraph) Clone() *Paragraph {
	c := &Paragraph{
		Text:            p.Text,
		Alignment:       p.Alignment,
		LineSpacing:     p.LineSpacing,
		FirstLineIndent: p.FirstLineIndent,
		StyleFont:       p.StyleFont.Clone(),
	}
	if p.Runs != nil {
		c.Runs = make([]*Run, len(p.Runs))
		for i, r := range p.Runs {
			c.Runs[i] = r.Clone()
		}
	}
	return c
}

// Section carries the page geometry of one document section. Dimensions of a
// section that does not define them are zero.
type Section struct {
	PageWidth    Length
	PageHeight   Length
	TopMargin    Length
	BottomMargin Length
	LeftMargin   Length
	RightMargin  Length
}

// Document is a loaded manuscript: its sections in document order and its
// body-level paragraphs. Paragraphs nested inside tables are not included.
type Document struct {
	Sections   []Section
	Paragraphs []*Paragraph
}

// Clone returns a deep copy sharing no mutable state with the original.
func (d *Document) Clone() *Document {
	c := &Document{}
	if d.Sections != nil {
		c.Sections = make([]Section, len(d.Sections))
		copy(c.Sections, d.Sections)
	}
	if d.Paragraphs != nil {
		c.Paragraphs = make([]*Paragraph, len(d.Paragraphs))
		for i, p := range d.Paragraphs {
			c.Paragraphs[i] = p.Clone()
		}
	}
	return c
}

// FloatPtr returns a pointer to v. Convenient for tri-state [FontFacts]
// literals.
func FloatPtr(v float64) *float64 {
	return &v
}

// BoolPtr returns a pointer to v. Convenient for tri-state [FontFacts]
// literals.
func BoolPtr(v bool) *bool {
	return &v
}
