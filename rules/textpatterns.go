package rules

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/galley/report"
)

// dashRe finds a hyphen standing alone between spaces, where typography
// calls for a dash. The class includes the non-breaking space explicitly
// because \s in RE2 covers ASCII whitespace only.
var dashRe = regexp.MustCompile(`[\s\x{A0}]-[\s\x{A0}]`)

// CheckTextPatterns scans the raw paragraph text for typographic slips: tab
// characters, paragraphs indented with runs of spaces, numbers separated
// from their measurement unit by a regular space instead of a non-breaking
// one, and hyphens doing a dash's job. The tab and leading-space scans honor
// the facts' [ScanPolicy]; the default reports only the first offending
// paragraph of each kind.
func CheckTextPatterns(f *Facts) []report.Issue {
	var issues []report.Issue

	tabsFound := false
	leadingFound := false
	nbspWarned := false
	dashWarned := false

	texts := make([]string, len(f.Doc.Paragraphs))
	for i, par := range f.Doc.Paragraphs {
		texts[i] = par.Text
	}
	combined := strings.Join(texts, "\n")

	for i, par := range f.Doc.Paragraphs {
		text := par.Text
		if strings.Contains(text, "\t") && (!tabsFound || f.Scan == ScanAll) {
			tabsFound = true
			issues = append(issues, issueAt(report.RuleTabsInText, report.LevelWarn,
				"Tab characters found in the text",
				i, f.clip(strings.TrimSpace(text))))
		}
		if leadingSpacesRe.MatchString(text) && (!leadingFound || f.Scan == ScanAll) {
			leadingFound = true
			issues = append(issues, issueAt(report.RuleLeadingSpaces, report.LevelWarn,
				"Paragraphs start with multiple spaces",
				i, f.clip(strings.TrimSpace(text))))
		}
	}

	for _, m := range f.Profile.UnitRegexp().FindAllStringSubmatchIndex(combined, -1) {
		// The unit must not continue into a word; the pattern leaves the
		// right-hand boundary to us.
		if r, _ := utf8.DecodeRuneInString(combined[m[1]:]); unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		separator := combined[m[2]:m[3]]
		if !strings.Contains(separator, "\u00a0") {
			nbspWarned = true
			issues = append(issues, issue(report.RuleNonbreakingSpace, report.LevelWarn,
				"Numbers with units are set with a regular space, a non-breaking space is required"))
			break
		}
	}

	if dashRe.MatchString(combined) {
		dashWarned = true
		issues = append(issues, issue(report.RuleHyphenDashMix, report.LevelWarn,
			"Possible hyphen used in place of a dash"))
	}

	if !tabsFound {
		issues = append(issues, issue(report.RuleTabsInText, report.LevelOK,
			"No tab characters found in the text"))
	}
	if !leadingFound {
		issues = append(issues, issue(report.RuleLeadingSpaces, report.LevelOK,
			"No stray spaces at paragraph starts"))
	}
	if !nbspWarned {
		issues = append(issues, issue(report.RuleNonbreakingSpace, report.LevelOK,
			"Non-breaking space usage raises no concerns"))
	}
	if !dashWarned {
		issues = append(issues, issue(report.RuleHyphenDashMix, report.LevelOK,
			"No suspicious dashes found"))
	}

	return issues
}
