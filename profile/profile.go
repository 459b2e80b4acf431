// Package profile defines the house style a manuscript is checked against.
//
// A [Profile] gathers every externally tunable constant of the conformance
// rules: page geometry and tolerances, font families and sizes, indent and
// spacing requirements, the reference-list heading, caption markers, and the
// measurement-unit abbreviations used by the typographic checks. [Default]
// returns the built-in style for A5 conference manuscripts; [Load] overlays a
// YAML file on top of the defaults so a profile file only needs to state what
// it changes.
package profile

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Page describes the required page geometry. Dimensions follow the units the
// style guides quote them in: page size in millimeters, margins in
// centimeters.
type Page struct {
	FormatName        string  `yaml:"format_name"`
	WidthMM           float64 `yaml:"width_mm"`
	HeightMM          float64 `yaml:"height_mm"`
	SizeToleranceMM   float64 `yaml:"size_tolerance_mm"`
	TopMarginCM       float64 `yaml:"top_margin_cm"`
	BottomMarginCM    float64 `yaml:"bottom_margin_cm"`
	LeftMarginCM      float64 `yaml:"left_margin_cm"`
	RightMarginCM     float64 `yaml:"right_margin_cm"`
	MarginToleranceCM float64 `yaml:"margin_tolerance_cm"`
}

// Fonts describes the required typefaces and sizes in points.
type Fonts struct {
	BodyName        string  `yaml:"body_name"`
	BodySizePt      float64 `yaml:"body_size_pt"`
	SmallSizePt     float64 `yaml:"small_size_pt"`
	TitleSizePt     float64 `yaml:"title_size_pt"`
	SizeTolerancePt float64 `yaml:"size_tolerance_pt"`
}

// Paragraph describes first-line indent and line-spacing requirements.
type Paragraph struct {
	IndentCM          float64 `yaml:"indent_cm"`
	IndentToleranceCM float64 `yaml:"indent_tolerance_cm"`
	SpacingTolerance  float64 `yaml:"spacing_tolerance"`
}

// Structure describes how the front matter and reference list are recognized.
type Structure struct {
	// LiteratureHeading is the exact text of the reference-list heading.
	LiteratureHeading string `yaml:"literature_heading"`
	// AuthorNamePattern is a regular expression a correctly written author
	// line must match.
	AuthorNamePattern string `yaml:"author_name_pattern"`
}

// Captions describes how figure captions are recognized.
type Captions struct {
	// Pattern is a regular expression matched against the start of each
	// trimmed paragraph.
	Pattern string `yaml:"pattern"`
}

// Text configures the typographic text checks.
type Text struct {
	// Units are the measurement abbreviations that must be separated from a
	// preceding number by a non-breaking space.
	Units []string `yaml:"units"`
}

// Layout configures the page-count estimate and report snippets.
type Layout struct {
	LineLengthChars       int `yaml:"line_length_chars"`
	LinesPerPage          int `yaml:"lines_per_page"`
	MaxPages              int `yaml:"max_pages"`
	MinLastPageParagraphs int `yaml:"min_last_page_paragraphs"`
	SnippetRunes          int `yaml:"snippet_runes"`
}

// Profile is a complete house style. Construct one with [Default] or [Load];
// a zero Profile has no compiled patterns and is not usable.
type Profile struct {
	Page      Page      `yaml:"page"`
	Fonts     Fonts     `yaml:"fonts"`
	Paragraph Paragraph `yaml:"paragraph"`
	Structure Structure `yaml:"structure"`
	Captions  Captions  `yaml:"captions"`
	Text      Text      `yaml:"text"`
	Layout    Layout    `yaml:"layout"`

	captionRe *regexp.Regexp
	authorRe  *regexp.Regexp
	unitRe    *regexp.Regexp
}

// Default returns the built-in house style: A5 pages with 1.6/1.4/1.5/1.5 cm
// margins, Times New Roman 10 pt body text with a 0.5 cm first-line indent,
// 9 pt captions and reference list under the "Литература" heading, and a
// five-page limit at 35 lines of 70 characters per page.
func Default() *Profile {
	p := &Profile{
		Page: Page{
			FormatName:        "A5",
			WidthMM:           148,
			HeightMM:          210,
			SizeToleranceMM:   1.0,
			TopMarginCM:       1.6,
			BottomMarginCM:    1.4,
			LeftMarginCM:      1.5,
			RightMarginCM:     1.5,
			MarginToleranceCM: 0.2,
		},
		Fonts: Fonts{
			BodyName:        "Times New Roman",
			BodySizePt:      10,
			SmallSizePt:     9,
			TitleSizePt:     13,
			SizeTolerancePt: 0.5,
		},
		Paragraph: Paragraph{
			IndentCM:          0.5,
			IndentToleranceCM: 0.05,
			SpacingTolerance:  0.05,
		},
		Structure: Structure{
			LiteratureHeading: "Литература",
			AuthorNamePattern: `[А-ЯЁ][а-яё]+`,
		},
		Captions: Captions{
			Pattern: `(?i)^(?:рис\.|рисунок)[\s\x{A0}]`,
		},
		Text: Text{
			Units: []string{"кг", "г", "мм", "см", "м", "км", "№", "§"},
		},
		Layout: Layout{
			LineLengthChars:       70,
			LinesPerPage:          35,
			MaxPages:              5,
			MinLastPageParagraphs: 3,
			SnippetRunes:          80,
		},
	}
	if err := p.compile(); err != nil {
		panic("profile: default patterns failed to compile: " + err.Error())
	}
	return p
}

// Load reads a YAML profile from path and overlays it on the defaults, so a
// file only needs to state the settings it changes.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing profile file: %w", err)
	}
	if err := p.compile(); err != nil {
		return nil, err
	}
	return p, nil
}

// compile builds the regular expressions derived from the profile settings.
func (p *Profile) compile() error {
	var err error

	p.captionRe, err = regexp.Compile(p.Captions.Pattern)
	if err != nil {
		return fmt.Errorf("compiling caption pattern: %w", err)
	}

	p.authorRe, err = regexp.Compile(p.Structure.AuthorNamePattern)
	if err != nil {
		return fmt.Errorf("compiling author name pattern: %w", err)
	}

	p.unitRe, err = regexp.Compile(unitPattern(p.Text.Units))
	if err != nil {
		return fmt.Errorf("compiling unit pattern: %w", err)
	}

	return nil
}

// unitPattern builds the number-before-unit pattern. Group 1 captures the
// separator between the number and the unit so callers can check it for a
// non-breaking space. The right-hand unit boundary is not part of the
// pattern; callers must verify the unit is not followed by a letter or
// digit.
func unitPattern(units []string) string {
	quoted := make([]string, len(units))
	for i, u := range units {
		quoted[i] = regexp.QuoteMeta(u)
	}
	return `(?i)(?:^|[^\p{L}\p{N}])\d+([\s\x{A0}]+)(?:` + strings.Join(quoted, "|") + `)`
}

// CaptionRegexp returns the compiled figure-caption pattern.
func (p *Profile) CaptionRegexp() *regexp.Regexp {
	return p.captionRe
}

// AuthorNameRegexp returns the compiled author-name pattern.
func (p *Profile) AuthorNameRegexp() *regexp.Regexp {
	return p.authorRe
}

// UnitRegexp returns the compiled number-before-unit pattern. Group 1
// captures the separator run between the number and the unit.
func (p *Profile) UnitRegexp() *regexp.Regexp {
	return p.unitRe
}
