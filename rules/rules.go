// Package rules implements the manuscript conformance checks.
//
// Each check is a function from shared [Facts] to a slice of findings. The
// facts are computed once per document: the parsed manuscript, the house
// style [profile.Profile] in force, the page estimate and the structural
// anchors. [Collect] runs every check in a fixed order and concatenates the
// findings verbatim, so a report is deterministic for a given document and
// profile.
//
// Checks that scan a sequence for offenders honor the [ScanPolicy]. The
// default [StopOnFirst] reports only the first offender, keeping reports
// short; [ScanAll] reports every one.
package rules

import (
	"math"
	"unicode/utf8"

	"github.com/tsawler/galley/model"
	"github.com/tsawler/galley/pagination"
	"github.com/tsawler/galley/profile"
	"github.com/tsawler/galley/report"
	"github.com/tsawler/galley/structure"
)

// ScanPolicy controls how many offenders a scanning check reports.
type ScanPolicy int

const (
	// StopOnFirst stops a scanning check at its first offender.
	StopOnFirst ScanPolicy = iota
	// ScanAll makes scanning checks report every offender they find.
	ScanAll
)

func (s ScanPolicy) String() string {
	if s == ScanAll {
		return "scan-all"
	}
	return "stop-on-first"
}

// Facts bundles everything the checks consume. Build one with [NewFacts] so
// the page estimate and anchors are derived consistently from the document
// and profile.
type Facts struct {
	Doc     *model.Document
	Profile *profile.Profile
	Pages   pagination.Result
	Anchors structure.Anchors
	Scan    ScanPolicy
}

// NewFacts derives the check inputs for doc under prof.
func NewFacts(doc *model.Document, prof *profile.Profile) *Facts {
	return &Facts{
		Doc:     doc,
		Profile: prof,
		Pages: pagination.Estimate(doc, pagination.Config{
			LineLengthChars: prof.Layout.LineLengthChars,
			LinesPerPage:    prof.Layout.LinesPerPage,
		}),
		Anchors: structure.Locate(doc),
		Scan:    StopOnFirst,
	}
}

// Collect runs every check in its fixed order: page setup, paragraph
// typography, document structure, reference list, figure captions, text
// patterns. The concatenated findings are returned in emission order with no
// de-duplication.
func Collect(f *Facts) []report.Issue {
	var issues []report.Issue
	issues = append(issues, CheckPageSetup(f)...)
	issues = append(issues, CheckTypography(f)...)
	issues = append(issues, CheckStructure(f)...)
	issues = append(issues, CheckLiterature(f)...)
	issues = append(issues, CheckFigures(f)...)
	issues = append(issues, CheckTextPatterns(f)...)
	return issues
}

// within reports whether value is inside the tolerance band around want.
func within(value, want, tol float64) bool {
	return math.Abs(value-want) <= tol
}

// clip truncates s to the profile's snippet length, counting runes.
func (f *Facts) clip(s string) string {
	limit := f.Profile.Layout.SnippetRunes
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}

func issue(rule report.Rule, level report.Level, msg string) report.Issue {
	return report.Issue{Rule: rule, Level: level, Message: msg}
}

func issueAt(rule report.Rule, level report.Level, msg string, idx int, snippet string) report.Issue {
	i := idx
	return report.Issue{Rule: rule, Level: level, Message: msg, Paragraph: &i, Snippet: snippet}
}
