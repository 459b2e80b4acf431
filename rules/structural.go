package rules

import (
	"strings"

	"github.com/tsawler/galley/model"
	"github.com/tsawler/galley/report"
	"github.com/tsawler/galley/style"
)

// CheckStructure verifies the front matter: a right-aligned bold italic
// author line, a centered title in the title size with blank paragraphs
// around it, and a justified first body paragraph in the body font. Checks
// stop early when an anchor is missing, since the later requirements are
// defined relative to the earlier ones.
func CheckStructure(f *Facts) []report.Issue {
	var issues []report.Issue
	p := f.Profile
	paragraphs := f.Doc.Paragraphs

	if f.Anchors.Authors == nil {
		issues = append(issues, issue(report.RuleAuthorsLine, report.LevelWarn,
			"No non-empty paragraph with the author names found"))
		return issues
	}

	authorsIdx := *f.Anchors.Authors
	authors := paragraphs[authorsIdx]
	authorFacts := style.Resolve(authors)
	authorText := authors.Trimmed()

	authorOK := authors.Alignment == model.AlignmentRight &&
		(authorFacts.Size == nil || within(*authorFacts.Size, p.Fonts.BodySizePt, p.Fonts.SizeTolerancePt)) &&
		isTrue(authorFacts.Bold) && isTrue(authorFacts.Italic) &&
		p.AuthorNameRegexp().MatchString(authorText)

	if !authorOK {
		issues = append(issues, issueAt(report.RuleAuthorsLine, report.LevelWarn,
			"Author line does not meet the requirements (alignment/font/format)",
			authorsIdx, f.clip(authorText)))
	} else {
		issues = append(issues, issue(report.RuleAuthorsLine, report.LevelOK,
			"Author line is formatted correctly"))
	}

	if f.Anchors.Title == nil {
		issues = append(issues, issue(report.RuleTitleLayout, report.LevelError,
			"Could not find the article title"))
		return issues
	}

	titleIdx := *f.Anchors.Title
	hasBlankBetween := false
	for _, par := range paragraphs[authorsIdx+1 : titleIdx] {
		if par.IsBlank() {
			hasBlankBetween = true
			break
		}
	}
	if !hasBlankBetween {
		issues = append(issues, issue(report.RuleTitleLayout, report.LevelWarn,
			"No blank line after the author line"))
	}

	title := paragraphs[titleIdx]
	titleFacts := style.Resolve(title)
	titleText := title.Trimmed()

	titleOK := title.Alignment == model.AlignmentCenter &&
		(titleFacts.Size == nil || within(*titleFacts.Size, p.Fonts.TitleSizePt, p.Fonts.SizeTolerancePt)) &&
		!isTrue(titleFacts.Bold) && !isTrue(titleFacts.Italic)

	if strings.Contains(titleText, "-\n") {
		issues = append(issues, issue(report.RuleTitleLayout, report.LevelWarn,
			"Title contains manual line breaks"))
	}

	if !titleOK {
		issues = append(issues, issueAt(report.RuleTitleFormat, report.LevelError,
			"Title does not match the required font/alignment",
			titleIdx, f.clip(titleText)))
	} else {
		issues = append(issues, issue(report.RuleTitleFormat, report.LevelOK,
			"Title is formatted correctly"))
	}

	hasBlankAfterTitle := titleIdx+1 < len(paragraphs) && paragraphs[titleIdx+1].IsBlank()
	if !hasBlankAfterTitle {
		issues = append(issues, issue(report.RuleTitleSpacing, report.LevelWarn,
			"No blank line after the title"))
	} else {
		issues = append(issues, issue(report.RuleTitleSpacing, report.LevelOK,
			"Spacing after the title is present"))
	}

	if f.Anchors.Body != nil {
		bodyIdx := *f.Anchors.Body
		body := paragraphs[bodyIdx]
		bodyFacts := style.Resolve(body)

		bodyOK := body.Alignment == model.AlignmentJustified &&
			(bodyFacts.Size == nil || within(*bodyFacts.Size, p.Fonts.BodySizePt, p.Fonts.SizeTolerancePt)) &&
			(bodyFacts.Name == "" || strings.Contains(fold(bodyFacts.Name), fold(p.Fonts.BodyName)))

		if !bodyOK {
			issues = append(issues, issueAt(report.RuleBodyStart, report.LevelError,
				"First body paragraph does not meet the requirements",
				bodyIdx, f.clip(body.Trimmed())))
		} else {
			issues = append(issues, issue(report.RuleBodyStart, report.LevelOK,
				"Body text starts with correct formatting"))
		}
	} else {
		issues = append(issues, issue(report.RuleBodyStart, report.LevelError,
			"Could not determine the start of the body text"))
	}

	return issues
}

// isTrue reports whether the tri-state flag is explicitly set and true.
func isTrue(flag *bool) bool {
	return flag != nil && *flag
}
