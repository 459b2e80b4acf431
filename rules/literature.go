package rules

import (
	"fmt"

	"github.com/tsawler/galley/model"
	"github.com/tsawler/galley/report"
	"github.com/tsawler/galley/structure"
	"github.com/tsawler/galley/style"
)

// CheckLiterature verifies the reference list: a bold small-size heading
// with the exact profile heading text, followed by items in the small size
// that are justified or leave their alignment unset. Item scanning honors
// the facts' [ScanPolicy]; the default reports only the first bad item.
//
// Unlike the typography pass, the heading match here is case-sensitive, so a
// reference list under a differently cased heading is reported as missing.
func CheckLiterature(f *Facts) []report.Issue {
	var issues []report.Issue
	p := f.Profile
	paragraphs := f.Doc.Paragraphs

	litIdx, found := structure.LiteratureIndex(f.Doc, p.Structure.LiteratureHeading)
	if found {
		header := paragraphs[litIdx]
		headerFacts := style.Resolve(header)

		headerOK := (headerFacts.Size == nil || within(*headerFacts.Size, p.Fonts.SmallSizePt, p.Fonts.SizeTolerancePt)) &&
			isTrue(headerFacts.Bold)

		if !headerOK {
			issues = append(issues, issueAt(report.RuleLiteratureHeader, report.LevelError,
				fmt.Sprintf("Heading '%s' is formatted incorrectly (%g pt bold required)",
					p.Structure.LiteratureHeading, p.Fonts.SmallSizePt),
				litIdx, f.clip(header.Trimmed())))
		} else {
			issues = append(issues, issue(report.RuleLiteratureHeader, report.LevelOK,
				fmt.Sprintf("Heading '%s' is formatted correctly", p.Structure.LiteratureHeading)))
		}
	} else {
		issues = append(issues, issue(report.RuleLiteratureHeader, report.LevelError,
			fmt.Sprintf("Heading '%s' not found", p.Structure.LiteratureHeading)))
		return issues
	}

	itemsOK := true
	for i := litIdx + 1; i < len(paragraphs); i++ {
		par := paragraphs[i]
		text := par.Trimmed()
		if text == "" {
			continue
		}

		facts := style.Resolve(par)
		bad := false
		if facts.Size != nil && !within(*facts.Size, p.Fonts.SmallSizePt, p.Fonts.SizeTolerancePt) {
			bad = true
		}
		if par.Alignment != model.AlignmentJustified && par.Alignment != model.AlignmentUnset {
			bad = true
		}

		if bad {
			itemsOK = false
			issues = append(issues, issueAt(report.RuleLiteratureItems, report.LevelWarn,
				fmt.Sprintf("Reference list items must be %g pt and justified", p.Fonts.SmallSizePt),
				i, f.clip(text)))
			if f.Scan == StopOnFirst {
				break
			}
		}
	}

	if itemsOK {
		issues = append(issues, issue(report.RuleLiteratureItems, report.LevelOK,
			"Reference list matches the requirements"))
	}

	return issues
}
