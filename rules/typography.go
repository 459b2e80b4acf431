package rules

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/tsawler/galley/report"
	"github.com/tsawler/galley/structure"
	"github.com/tsawler/galley/style"
)

var leadingSpacesRe = regexp.MustCompile(`^ {3,}`)

// fold normalizes s for caseless comparison.
func fold(s string) string {
	return cases.Fold().String(s)
}

// CheckTypography verifies body font, line spacing and first-line indents
// paragraph by paragraph. Front matter, figure captions and the reference
// list are exempt from the body-font and indent requirements; captions and
// the reference list are instead held to the small font size. The reference
// list is recognized here by a case-folded heading match.
func CheckTypography(f *Facts) []report.Issue {
	var issues []report.Issue
	p := f.Profile

	litIdx, litFound := structure.LiteratureIndexFold(f.Doc, p.Structure.LiteratureHeading)

	fontBodyOK := true
	indentOK := true
	spacingOK := true
	font9Warned := false

	for i, par := range f.Doc.Paragraphs {
		text := par.Trimmed()
		if text == "" {
			continue
		}

		isCaption := p.CaptionRegexp().MatchString(text)
		inLiterature := litFound && i > litIdx
		isLiteratureHeader := litFound && i == litIdx
		isSpecial := anchorIs(f.Anchors.Authors, i) || anchorIs(f.Anchors.Title, i) ||
			isCaption || isLiteratureHeader || inLiterature

		facts := style.Resolve(par)

		if !isSpecial {
			if facts.Size != nil && !within(*facts.Size, p.Fonts.BodySizePt, p.Fonts.SizeTolerancePt) {
				fontBodyOK = false
				issues = append(issues, issueAt(report.RuleFontBody, report.LevelError,
					fmt.Sprintf("Paragraph %d: font size %.1f pt, expected %g pt",
						i+1, *facts.Size, p.Fonts.BodySizePt),
					i, f.clip(text)))
			}
			if facts.Name != "" && !strings.Contains(fold(facts.Name), fold(p.Fonts.BodyName)) {
				fontBodyOK = false
				issues = append(issues, issueAt(report.RuleFontBody, report.LevelError,
					fmt.Sprintf("Paragraph %d: font '%s', expected %s",
						i+1, facts.Name, p.Fonts.BodyName),
					i, f.clip(text)))
			}
		}

		if inLiterature || isLiteratureHeader || isCaption {
			if facts.Size != nil && !within(*facts.Size, p.Fonts.SmallSizePt, p.Fonts.SizeTolerancePt) {
				font9Warned = true
				issues = append(issues, issueAt(report.RuleFont9pt, report.LevelWarn,
					fmt.Sprintf("Paragraph %d: font size %.1f pt, expected %g pt",
						i+1, *facts.Size, p.Fonts.SmallSizePt),
					i, f.clip(text)))
			}
		}

		if ls := par.LineSpacing; ls.Set && ls.Multiple != 1 {
			if !within(ls.Multiple, 1.0, p.Paragraph.SpacingTolerance) {
				spacingOK = false
				issues = append(issues, issueAt(report.RuleLineSpacing, report.LevelWarn,
					fmt.Sprintf("Paragraph %d: line spacing is set to %g", i+1, ls.Multiple),
					i, f.clip(text)))
			}
		}

		if !isSpecial {
			indentCM := par.FirstLineIndent.Centimeters()
			if indentCM == 0 {
				if strings.HasPrefix(par.Text, "\t") || leadingSpacesRe.MatchString(par.Text) {
					indentOK = false
					issues = append(issues, issueAt(report.RuleIndentByTabs, report.LevelError,
						fmt.Sprintf("Paragraph %d: first-line indent faked with tabs or spaces", i+1),
						i, f.clip(text)))
				}
			} else if !within(indentCM, p.Paragraph.IndentCM, p.Paragraph.IndentToleranceCM) {
				indentOK = false
				issues = append(issues, issueAt(report.RuleIndentSize, report.LevelError,
					fmt.Sprintf("Paragraph %d: first-line indent %.2f cm, expected %.2f cm",
						i+1, indentCM, p.Paragraph.IndentCM),
					i, f.clip(text)))
			}
		}
	}

	if fontBodyOK {
		issues = append(issues, issue(report.RuleFontBody, report.LevelOK,
			fmt.Sprintf("Body text uses %s %g pt", p.Fonts.BodyName, p.Fonts.BodySizePt)))
	}
	if !font9Warned {
		issues = append(issues, issue(report.RuleFont9pt, report.LevelOK,
			fmt.Sprintf("Elements expected at %g pt show no deviations", p.Fonts.SmallSizePt)))
	}
	if spacingOK {
		issues = append(issues, issue(report.RuleLineSpacing, report.LevelOK,
			"Line spacing does not deviate from single"))
	}
	if indentOK {
		issues = append(issues, issue(report.RuleIndentSize, report.LevelOK,
			"First-line indent matches the requirement"))
	}

	return issues
}

// anchorIs reports whether the optional anchor points at index i.
func anchorIs(anchor *int, i int) bool {
	return anchor != nil && *anchor == i
}
