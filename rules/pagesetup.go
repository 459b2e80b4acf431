package rules

import (
	"fmt"

	"github.com/tsawler/galley/report"
)

// CheckPageSetup verifies the page geometry of every section and the
// estimated length of the manuscript. Sections are numbered from 1 in
// messages. A section without geometry reports zero dimensions rather than
// being skipped.
func CheckPageSetup(f *Facts) []report.Issue {
	var issues []report.Issue
	p := f.Profile

	pageSizeOK := true
	marginsOK := true

	for idx, section := range f.Doc.Sections {
		widthMM := section.PageWidth.Millimeters()
		heightMM := section.PageHeight.Millimeters()
		if !(within(widthMM, p.Page.WidthMM, p.Page.SizeToleranceMM) &&
			within(heightMM, p.Page.HeightMM, p.Page.SizeToleranceMM)) {
			pageSizeOK = false
			issues = append(issues, issue(report.RulePageSize, report.LevelError,
				fmt.Sprintf("Section %d: page size %.1fx%.1f mm, expected %s %gx%g mm",
					idx+1, widthMM, heightMM, p.Page.FormatName, p.Page.WidthMM, p.Page.HeightMM)))
		}

		topCM := section.TopMargin.Centimeters()
		bottomCM := section.BottomMargin.Centimeters()
		leftCM := section.LeftMargin.Centimeters()
		rightCM := section.RightMargin.Centimeters()
		if !(within(topCM, p.Page.TopMarginCM, p.Page.MarginToleranceCM) &&
			within(bottomCM, p.Page.BottomMarginCM, p.Page.MarginToleranceCM) &&
			within(leftCM, p.Page.LeftMarginCM, p.Page.MarginToleranceCM) &&
			within(rightCM, p.Page.RightMarginCM, p.Page.MarginToleranceCM)) {
			marginsOK = false
			issues = append(issues, issue(report.RuleMargins, report.LevelError,
				fmt.Sprintf("Section %d: margins top/bottom/left/right = %.2f/%.2f/%.2f/%.2f cm, expected %g/%g/%g/%g cm",
					idx+1, topCM, bottomCM, leftCM, rightCM,
					p.Page.TopMarginCM, p.Page.BottomMarginCM, p.Page.LeftMarginCM, p.Page.RightMarginCM)))
		}
	}

	if pageSizeOK {
		issues = append(issues, issue(report.RulePageSize, report.LevelOK,
			fmt.Sprintf("Page size matches the %s format", p.Page.FormatName)))
	}
	if marginsOK {
		issues = append(issues, issue(report.RuleMargins, report.LevelOK,
			"Page margins match the requirements"))
	}

	if f.Pages.Pages > p.Layout.MaxPages {
		issues = append(issues, issue(report.RulePageCount, report.LevelError,
			fmt.Sprintf("Estimated page count: %d, no more than %d allowed",
				f.Pages.Pages, p.Layout.MaxPages)))
	} else {
		issues = append(issues, issue(report.RulePageCount, report.LevelOK,
			fmt.Sprintf("Estimated page count: %d", f.Pages.Pages)))
	}

	if f.Pages.Pages > 1 && f.Pages.LastPageParagraphs < p.Layout.MinLastPageParagraphs {
		issues = append(issues, issue(report.RuleLastPageFill, report.LevelWarn,
			fmt.Sprintf("Last page contains very little text (fewer than %d paragraphs)",
				p.Layout.MinLastPageParagraphs)))
	}

	return issues
}
