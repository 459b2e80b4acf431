// Package report defines the findings produced by a conformance check and
// the ways they are presented.
//
// Every check emits [Issue] values: a stable rule identifier, a severity, a
// human-readable message and, when the finding concerns a specific
// paragraph, its zero-based index and a text snippet. OK-level issues record
// that a rule passed and carry no paragraph.
//
// A [Report] is the ordered issue list for one document. The order is the
// order the checks ran in and is preserved verbatim; nothing is de-duplicated
// or re-sorted, so the same paragraph may appear several times.
package report

import (
	"fmt"
	"sort"
	"strings"
)

// Level is the severity of an issue.
type Level string

const (
	LevelOK    Level = "OK"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// weight orders levels for dominance comparisons.
func (l Level) weight() int {
	switch l {
	case LevelError:
		return 2
	case LevelWarn:
		return 1
	default:
		return 0
	}
}

// Rule identifies a conformance rule. The identifiers are stable and safe to
// match on in consuming tools.
type Rule string

const (
	RulePageSize          Rule = "PAGE_SIZE"
	RuleMargins           Rule = "MARGINS"
	RulePageCount         Rule = "PAGE_COUNT"
	RuleLastPageFill      Rule = "LAST_PAGE_FILL"
	RuleFontBody          Rule = "FONT_BODY"
	RuleFont9pt           Rule = "FONT_9PT"
	RuleLineSpacing       Rule = "LINE_SPACING"
	RuleIndentByTabs      Rule = "INDENT_BY_TABS_OR_SPACES"
	RuleIndentSize        Rule = "INDENT_SIZE"
	RuleAuthorsLine       Rule = "AUTHORS_LINE"
	RuleTitleLayout       Rule = "TITLE_LAYOUT"
	RuleTitleFormat       Rule = "TITLE_FORMAT"
	RuleTitleSpacing      Rule = "TITLE_SPACING"
	RuleBodyStart         Rule = "BODY_START"
	RuleLiteratureHeader  Rule = "LITERATURE_HEADER"
	RuleLiteratureItems   Rule = "LITERATURE_ITEMS"
	RuleFigureCaptionFont Rule = "FIGURE_CAPTION_FONT"
	RuleFigureCaptionDot  Rule = "FIGURE_CAPTION_DOT"
	RuleTabsInText        Rule = "TABS_IN_TEXT"
	RuleLeadingSpaces     Rule = "LEADING_SPACES"
	RuleNonbreakingSpace  Rule = "NONBREAKING_SPACE"
	RuleHyphenDashMix     Rule = "HYPHEN_DASH_MIX"
	RuleLoad              Rule = "LOAD"
)

// Issue is a single finding.
type Issue struct {
	Rule    Rule
	Level   Level
	Message string
	// Paragraph is the zero-based index of the paragraph the finding
	// concerns, nil for document-level findings.
	Paragraph *int
	// Snippet is the start of the paragraph text, for locating the finding
	// without the document at hand.
	Snippet string
}

// Record is the JSON form of an issue. Optional fields are omitted rather
// than emitted as null, and the paragraph index stays zero-based.
type Record struct {
	File           string `json:"file,omitempty"`
	Rule           string `json:"rule"`
	Level          string `json:"level"`
	Message        string `json:"message"`
	ParagraphIndex *int   `json:"paragraph_index,omitempty"`
	ParagraphText  string `json:"paragraph_text,omitempty"`
}

// Record converts the issue to its JSON form, tagged with the source file.
func (i Issue) Record(file string) Record {
	return Record{
		File:           file,
		Rule:           string(i.Rule),
		Level:          string(i.Level),
		Message:        i.Message,
		ParagraphIndex: i.Paragraph,
		ParagraphText:  i.Snippet,
	}
}

// LoadFailure builds the synthetic issue reported when a document cannot be
// opened at all.
func LoadFailure(err error) Issue {
	return Issue{
		Rule:    RuleLoad,
		Level:   LevelError,
		Message: fmt.Sprintf("Could not open file: %v", err),
	}
}

// Totals counts issues by severity.
type Totals struct {
	Errors   int
	Warnings int
	OKs      int
}

// Report is the ordered list of findings for one document.
type Report struct {
	Issues []Issue
}

// Totals counts the report's issues by severity.
func (r *Report) Totals() Totals {
	var t Totals
	for _, issue := range r.Issues {
		switch issue.Level {
		case LevelError:
			t.Errors++
		case LevelWarn:
			t.Warnings++
		case LevelOK:
			t.OKs++
		}
	}
	return t
}

// Flagged returns the sorted, de-duplicated paragraph indices of all non-OK
// issues. This is the set of paragraphs the annotator marks.
func (r *Report) Flagged() []int {
	seen := make(map[int]bool)
	for _, issue := range r.Issues {
		if issue.Level == LevelOK || issue.Paragraph == nil {
			continue
		}
		seen[*issue.Paragraph] = true
	}

	flagged := make([]int, 0, len(seen))
	for idx := range seen {
		flagged = append(flagged, idx)
	}
	sort.Ints(flagged)
	return flagged
}

// LevelFor returns the strongest severity recorded against the paragraph at
// idx, with ERROR dominating WARN. The second result is false when no issue
// names the paragraph.
func (r *Report) LevelFor(idx int) (Level, bool) {
	var strongest Level
	found := false
	for _, issue := range r.Issues {
		if issue.Paragraph == nil || *issue.Paragraph != idx {
			continue
		}
		if !found || issue.Level.weight() > strongest.weight() {
			strongest = issue.Level
		}
		found = true
	}
	return strongest, found
}

// Records converts all issues to their JSON form, tagged with the source
// file.
func (r *Report) Records(file string) []Record {
	records := make([]Record, len(r.Issues))
	for i, issue := range r.Issues {
		records[i] = issue.Record(file)
	}
	return records
}

// FormatText renders the report as the plain-text block printed by the
// command-line tool: a file banner, a totals line and one line per issue.
func (r *Report) FormatText(file string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "==== %s ====\n", file)

	if len(r.Issues) == 0 {
		b.WriteString("No issues found.\n")
		return b.String()
	}

	t := r.Totals()
	fmt.Fprintf(&b, "Totals: errors = %d, warnings = %d, ok = %d\n", t.Errors, t.Warnings, t.OKs)

	for _, issue := range r.Issues {
		loc := ""
		if issue.Paragraph != nil {
			loc = fmt.Sprintf("(paragraph %d) ", *issue.Paragraph+1)
		}
		snip := ""
		if issue.Snippet != "" {
			snip = " | " + issue.Snippet
		}
		fmt.Fprintf(&b, "[%s] %s: %s%s%s\n", issue.Level, issue.Rule, loc, issue.Message, snip)
	}
	return b.String()
}
