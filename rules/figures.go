package rules

import (
	"fmt"
	"strings"

	"github.com/tsawler/galley/report"
	"github.com/tsawler/galley/style"
)

// CheckFigures verifies figure captions: every paragraph starting with a
// caption marker must use the small font size and must not end with a
// period. The passing summary is only emitted when the document actually
// contains captions.
func CheckFigures(f *Facts) []report.Issue {
	var issues []report.Issue
	p := f.Profile

	foundCaption := false
	flagged := 0

	for i, par := range f.Doc.Paragraphs {
		text := par.Trimmed()
		if text == "" {
			continue
		}
		if !p.CaptionRegexp().MatchString(text) {
			continue
		}
		foundCaption = true

		facts := style.Resolve(par)
		if facts.Size != nil && !within(*facts.Size, p.Fonts.SmallSizePt, p.Fonts.SizeTolerancePt) {
			flagged++
			issues = append(issues, issueAt(report.RuleFigureCaptionFont, report.LevelWarn,
				fmt.Sprintf("Figure caption (paragraph %d) must be %g pt", i+1, p.Fonts.SmallSizePt),
				i, f.clip(text)))
		}
		if strings.HasSuffix(text, ".") {
			flagged++
			issues = append(issues, issueAt(report.RuleFigureCaptionDot, report.LevelWarn,
				fmt.Sprintf("Figure caption (paragraph %d) ends with a period", i+1),
				i, f.clip(text)))
		}
	}

	if foundCaption && flagged == 0 {
		issues = append(issues, issue(report.RuleFigureCaptionFont, report.LevelOK,
			"Figure captions are formatted correctly"))
	}

	return issues
}
