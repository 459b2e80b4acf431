package rules

import (
	"testing"

	"github.com/tsawler/galley/model"
	"github.com/tsawler/galley/report"
)

// ============================================================================
// Body Font Tests
// ============================================================================

func TestCheckTypographyWrongBodySize(t *testing.T) {
	doc := cleanDoc()
	doc.Paragraphs[4].Runs[0].Font.Size = model.FloatPtr(12)

	issues := CheckTypography(factsFor(doc))

	got := requireIssue(t, issues, report.RuleFontBody)
	if got.Level != report.LevelError {
		t.Errorf("FONT_BODY level = %s, want ERROR", got.Level)
	}
	if got.Message != "Paragraph 5: font size 12.0 pt, expected 10 pt" {
		t.Errorf("message = %q", got.Message)
	}
	if got.Paragraph == nil || *got.Paragraph != 4 {
		t.Errorf("paragraph = %v, want 4", got.Paragraph)
	}
	if got.Snippet != "Основной текст статьи о разных вещах." {
		t.Errorf("snippet = %q", got.Snippet)
	}
}

func TestCheckTypographyWrongFontName(t *testing.T) {
	doc := cleanDoc()
	doc.Paragraphs[4].Runs[0].Font.Name = "Arial"

	issues := CheckTypography(factsFor(doc))

	got := requireIssue(t, issues, report.RuleFontBody)
	if got.Message != "Paragraph 5: font 'Arial', expected Times New Roman" {
		t.Errorf("message = %q", got.Message)
	}
}

func TestCheckTypographyFontNameCaseInsensitive(t *testing.T) {
	doc := cleanDoc()
	doc.Paragraphs[4].Runs[0].Font.Name = "TIMES NEW ROMAN"

	issues := CheckTypography(factsFor(doc))

	if !hasIssue(issues, report.RuleFontBody, report.LevelOK) {
		t.Errorf("case variant of the body font was flagged: %+v", issues)
	}
}

func TestCheckTypographyUnresolvedFontPasses(t *testing.T) {
	// Nothing defines a size or name, so there is nothing to flag.
	doc := cleanDoc()
	doc.Paragraphs[4].Runs[0].Font = model.FontFacts{}

	issues := CheckTypography(factsFor(doc))

	if len(byRule(issues, report.RuleFontBody)) != 1 ||
		!hasIssue(issues, report.RuleFontBody, report.LevelOK) {
		t.Errorf("unresolved font was flagged: %+v", issues)
	}
}

func TestCheckTypographyStyleFontFallback(t *testing.T) {
	doc := cleanDoc()
	doc.Paragraphs[4].Runs[0].Font = model.FontFacts{}
	doc.Paragraphs[4].StyleFont = model.FontFacts{Name: "Arial", Size: model.FloatPtr(12)}

	issues := CheckTypography(factsFor(doc))

	if got := len(byRule(issues, report.RuleFontBody)); got != 2 {
		t.Errorf("got %d FONT_BODY issues, want size and name errors", got)
	}
}

func TestCheckTypographySpecialParagraphsExempt(t *testing.T) {
	// Author line, title, reference heading and reference items all run at
	// sizes other than the body size without tripping the body-font rule.
	doc := cleanDoc()
	doc.Paragraphs[2].Runs[0].Font.Size = model.FloatPtr(30)

	issues := CheckTypography(factsFor(doc))

	if !hasIssue(issues, report.RuleFontBody, report.LevelOK) {
		t.Errorf("special paragraphs were held to the body font: %+v", issues)
	}
}

func TestCheckTypographyFoldedHeadingExempts(t *testing.T) {
	doc := cleanDoc()
	doc.Paragraphs[5].Text = "ЛИТЕРАТУРА"
	doc.Paragraphs[5].Runs[0].Text = "ЛИТЕРАТУРА"

	issues := CheckTypography(factsFor(doc))

	if !hasIssue(issues, report.RuleFontBody, report.LevelOK) {
		t.Errorf("9 pt reference list flagged against the body font: %+v", issues)
	}
}

// ============================================================================
// Small Font Tests
// ============================================================================

func TestCheckTypographySmallFontDeviation(t *testing.T) {
	doc := cleanDoc()
	doc.Paragraphs[6].Runs[0].Font.Size = model.FloatPtr(10)

	issues := CheckTypography(factsFor(doc))

	got := requireIssue(t, issues, report.RuleFont9pt)
	if got.Level != report.LevelWarn {
		t.Errorf("FONT_9PT level = %s, want WARN", got.Level)
	}
	if got.Message != "Paragraph 7: font size 10.0 pt, expected 9 pt" {
		t.Errorf("message = %q", got.Message)
	}
}

func TestCheckTypographyCaptionFontSize(t *testing.T) {
	doc := cleanDoc()
	ps := doc.Paragraphs
	caption := par("Рис. 1. Схема установки", tnr(10))
	caption.Alignment = model.AlignmentCenter
	doc.Paragraphs = []*model.Paragraph{ps[0], ps[1], ps[2], ps[3], ps[4], caption, ps[5], ps[6]}

	issues := CheckTypography(factsFor(doc))

	got := requireIssue(t, issues, report.RuleFont9pt)
	if got.Paragraph == nil || *got.Paragraph != 5 {
		t.Errorf("paragraph = %v, want 5", got.Paragraph)
	}
	// The caption is exempt from the body-font rule even though it sits
	// before the reference list.
	if !hasIssue(issues, report.RuleFontBody, report.LevelOK) {
		t.Errorf("caption was held to the body font: %+v", issues)
	}
	if hasIssue(issues, report.RuleFont9pt, report.LevelOK) {
		t.Error("FONT_9PT OK issued alongside a deviation")
	}
}

// ============================================================================
// Line Spacing Tests
// ============================================================================

func TestCheckTypographyLineSpacing(t *testing.T) {
	tests := []struct {
		name     string
		spacing  model.LineSpacing
		wantWarn bool
	}{
		{"unset", model.LineSpacing{}, false},
		{"exactly single", model.LineSpacing{Set: true, Multiple: 1}, false},
		{"within tolerance", model.LineSpacing{Set: true, Multiple: 1.04}, false},
		{"one and a half", model.LineSpacing{Set: true, Multiple: 1.5}, true},
		{"double", model.LineSpacing{Set: true, Multiple: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := cleanDoc()
			doc.Paragraphs[4].LineSpacing = tt.spacing

			issues := CheckTypography(factsFor(doc))

			warned := hasIssue(issues, report.RuleLineSpacing, report.LevelWarn)
			if warned != tt.wantWarn {
				t.Errorf("warned = %v, want %v", warned, tt.wantWarn)
			}
			if ok := hasIssue(issues, report.RuleLineSpacing, report.LevelOK); ok == tt.wantWarn {
				t.Errorf("LINE_SPACING OK = %v with warn = %v", ok, warned)
			}
		})
	}
}

func TestCheckTypographyLineSpacingMessage(t *testing.T) {
	doc := cleanDoc()
	doc.Paragraphs[4].LineSpacing = model.LineSpacing{Set: true, Multiple: 1.5}

	issues := CheckTypography(factsFor(doc))

	got := requireIssue(t, issues, report.RuleLineSpacing)
	if got.Message != "Paragraph 5: line spacing is set to 1.5" {
		t.Errorf("message = %q", got.Message)
	}
}

func TestCheckTypographySkipsBlankParagraphs(t *testing.T) {
	doc := cleanDoc()
	doc.Paragraphs[1].LineSpacing = model.LineSpacing{Set: true, Multiple: 2}

	issues := CheckTypography(factsFor(doc))

	if !hasIssue(issues, report.RuleLineSpacing, report.LevelOK) {
		t.Errorf("blank paragraph tripped the spacing rule: %+v", issues)
	}
}

// ============================================================================
// Indent Tests
// ============================================================================

func TestCheckTypographyIndentByTabs(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantRule bool
	}{
		{"leading tab", "\tТекст абзаца.", true},
		{"three spaces", "   Текст абзаца.", true},
		{"two spaces", "  Текст абзаца.", false},
		{"plain text", "Текст абзаца.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := cleanDoc()
			doc.Paragraphs[4].Text = tt.text
			doc.Paragraphs[4].Runs[0].Text = tt.text
			doc.Paragraphs[4].FirstLineIndent = 0

			issues := CheckTypography(factsFor(doc))

			found := hasIssue(issues, report.RuleIndentByTabs, report.LevelError)
			if found != tt.wantRule {
				t.Errorf("INDENT_BY_TABS = %v, want %v", found, tt.wantRule)
			}
			if ok := hasIssue(issues, report.RuleIndentSize, report.LevelOK); ok == tt.wantRule {
				t.Errorf("INDENT_SIZE OK = %v with a faked indent", ok)
			}
		})
	}
}

func TestCheckTypographyIndentSize(t *testing.T) {
	doc := cleanDoc()
	doc.Paragraphs[4].FirstLineIndent = model.FromCentimeters(1.25)

	issues := CheckTypography(factsFor(doc))

	got := requireIssue(t, issues, report.RuleIndentSize)
	if got.Level != report.LevelError {
		t.Errorf("INDENT_SIZE level = %s, want ERROR", got.Level)
	}
	if got.Message != "Paragraph 5: first-line indent 1.25 cm, expected 0.50 cm" {
		t.Errorf("message = %q", got.Message)
	}
}

func TestCheckTypographyIndentWithinTolerance(t *testing.T) {
	doc := cleanDoc()
	doc.Paragraphs[4].FirstLineIndent = model.FromCentimeters(0.52)

	issues := CheckTypography(factsFor(doc))

	if !hasIssue(issues, report.RuleIndentSize, report.LevelOK) {
		t.Errorf("indent within tolerance was flagged: %+v", issues)
	}
}

func TestCheckTypographyIndentSpecialExempt(t *testing.T) {
	// Centered front matter legitimately has no indent.
	doc := cleanDoc()
	doc.Paragraphs[0].Text = "\tИ.И. Иванов"
	doc.Paragraphs[0].Runs[0].Text = "\tИ.И. Иванов"

	issues := CheckTypography(factsFor(doc))

	if hasIssue(issues, report.RuleIndentByTabs, report.LevelError) {
		t.Errorf("author line was held to the indent rule: %+v", issues)
	}
}
