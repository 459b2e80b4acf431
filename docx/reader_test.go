package docx

import (
	"archive/zip"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/galley/model"
)

// createTestDOCX creates a minimal DOCX file for testing.
func createTestDOCX(t *testing.T, content string) string {
	t.Helper()

	tmpDir := t.TempDir()
	docxPath := filepath.Join(tmpDir, "test.docx")

	f, err := os.Create(docxPath)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	zw := zip.NewWriter(f)

	// [Content_Types].xml
	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`
	w, _ := zw.Create("[Content_Types].xml")
	w.Write([]byte(contentTypes))

	// _rels/.rels
	rels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`
	w, _ = zw.Create("_rels/.rels")
	w.Write([]byte(rels))

	// word/document.xml
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>` + content + `</w:body>
</w:document>`
	w, _ = zw.Create("word/document.xml")
	w.Write([]byte(document))

	zw.Close()
	f.Close()

	return docxPath
}

// createTestDOCXWithStyles creates a DOCX with styles.xml for style fallback
// resolution.
func createTestDOCXWithStyles(t *testing.T, content, styles string) string {
	t.Helper()

	tmpDir := t.TempDir()
	docxPath := filepath.Join(tmpDir, "test.docx")

	f, err := os.Create(docxPath)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	zw := zip.NewWriter(f)

	// [Content_Types].xml
	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`
	w, _ := zw.Create("[Content_Types].xml")
	w.Write([]byte(contentTypes))

	// _rels/.rels
	rels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`
	w, _ = zw.Create("_rels/.rels")
	w.Write([]byte(rels))

	// word/document.xml
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>` + content + `</w:body>
</w:document>`
	w, _ = zw.Create("word/document.xml")
	w.Write([]byte(document))

	// word/styles.xml
	stylesDoc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + styles + `</w:styles>`
	w, _ = zw.Create("word/styles.xml")
	w.Write([]byte(stylesDoc))

	zw.Close()
	f.Close()

	return docxPath
}

// docFromXML opens a fixture built around the body content and converts it.
func docFromXML(t *testing.T, content string) *model.Document {
	t.Helper()

	r, err := Open(createTestDOCX(t, content))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	doc, err := r.Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	return doc
}

func TestOpen(t *testing.T) {
	content := `<w:p><w:r><w:t>Привет, мир</w:t></w:r></w:p>`
	docxPath := createTestDOCX(t, content)

	r, err := Open(docxPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	if r.document == nil {
		t.Error("document should not be nil")
	}
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open("/nonexistent/file.docx")
	if err == nil {
		t.Error("Open() should return error for nonexistent file")
	}
}

func TestOpen_InvalidZip(t *testing.T) {
	// Create a file that's not a valid ZIP
	tmpDir := t.TempDir()
	invalidPath := filepath.Join(tmpDir, "invalid.docx")
	os.WriteFile(invalidPath, []byte("not a zip file"), 0644)

	_, err := Open(invalidPath)
	if err == nil {
		t.Error("Open() should return error for invalid ZIP")
	}
}

func TestOpen_RejectsPDF(t *testing.T) {
	tmpDir := t.TempDir()
	pdfPath := filepath.Join(tmpDir, "paper.docx")
	os.WriteFile(pdfPath, []byte("%PDF-1.4\nnot a manuscript"), 0644)

	_, err := Open(pdfPath)
	if err == nil {
		t.Fatal("Open() should reject a PDF")
	}
	if !strings.Contains(err.Error(), "unsupported file format: PDF") {
		t.Errorf("error = %v, want a format mismatch", err)
	}
}

func TestOpen_RejectsSpreadsheet(t *testing.T) {
	tmpDir := t.TempDir()
	xlsxPath := filepath.Join(tmpDir, "paper.docx")

	f, _ := os.Create(xlsxPath)
	zw := zip.NewWriter(f)
	w, _ := zw.Create("xl/workbook.xml")
	w.Write([]byte("<workbook/>"))
	zw.Close()
	f.Close()

	_, err := Open(xlsxPath)
	if err == nil {
		t.Fatal("Open() should reject a spreadsheet")
	}
	if !strings.Contains(err.Error(), "unsupported file format: XLSX") {
		t.Errorf("error = %v, want a format mismatch", err)
	}
}

func TestOpen_MissingDocumentXML(t *testing.T) {
	// Create a ZIP without word/document.xml
	tmpDir := t.TempDir()
	docxPath := filepath.Join(tmpDir, "missing.docx")

	f, _ := os.Create(docxPath)
	zw := zip.NewWriter(f)

	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
</Types>`
	w, _ := zw.Create("[Content_Types].xml")
	w.Write([]byte(contentTypes))

	zw.Close()
	f.Close()

	_, err := Open(docxPath)
	if err == nil {
		t.Error("Open() should return error when document.xml is missing")
	}
}

func TestReader_DocumentText(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "simple paragraph",
			content:  `<w:p><w:r><w:t>Простой абзац</w:t></w:r></w:p>`,
			expected: []string{"Простой абзац"},
		},
		{
			name: "multiple paragraphs",
			content: `<w:p><w:r><w:t>Первый</w:t></w:r></w:p>
<w:p><w:r><w:t>Второй</w:t></w:r></w:p>`,
			expected: []string{"Первый", "Второй"},
		},
		{
			name:     "multiple runs concatenate",
			content:  `<w:p><w:r><w:t>Привет, </w:t></w:r><w:r><w:t>мир</w:t></w:r></w:p>`,
			expected: []string{"Привет, мир"},
		},
		{
			name:     "tabs and breaks keep their position",
			content:  `<w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/><w:t>c</w:t><w:cr/></w:r></w:p>`,
			expected: []string{"a\tb\nc\n"},
		},
		{
			name:     "preserved whitespace",
			content:  `<w:p><w:r><w:t xml:space="preserve">   три пробела</w:t></w:r></w:p>`,
			expected: []string{"   три пробела"},
		},
		{
			name:     "empty paragraph",
			content:  `<w:p></w:p>`,
			expected: []string{""},
		},
		{
			name:     "empty body",
			content:  ``,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docFromXML(t, tt.content)

			if len(doc.Paragraphs) != len(tt.expected) {
				t.Fatalf("got %d paragraphs, want %d", len(doc.Paragraphs), len(tt.expected))
			}
			for i, want := range tt.expected {
				if got := doc.Paragraphs[i].Text; got != want {
					t.Errorf("paragraph %d text = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestReader_DocumentSections(t *testing.T) {
	content := `<w:p><w:r><w:t>Текст</w:t></w:r></w:p>
<w:sectPr><w:pgSz w:w="8391" w:h="11906"/><w:pgMar w:top="907" w:bottom="794" w:left="850" w:right="850"/></w:sectPr>`

	doc := docFromXML(t, content)

	if len(doc.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(doc.Sections))
	}
	sec := doc.Sections[0]

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"width mm", sec.PageWidth.Millimeters(), 148},
		{"height mm", sec.PageHeight.Millimeters(), 210},
		{"top cm", sec.TopMargin.Centimeters(), 1.6},
		{"bottom cm", sec.BottomMargin.Centimeters(), 1.4},
		{"left cm", sec.LeftMargin.Centimeters(), 1.5},
		{"right cm", sec.RightMargin.Centimeters(), 1.5},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 0.05 {
			t.Errorf("%s = %v, want about %v", c.name, c.got, c.want)
		}
	}
}

func TestReader_DocumentSectionOrder(t *testing.T) {
	content := `<w:p><w:pPr><w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr></w:pPr><w:r><w:t>Первая секция</w:t></w:r></w:p>
<w:p><w:r><w:t>Вторая секция</w:t></w:r></w:p>
<w:sectPr><w:pgSz w:w="8391" w:h="11906"/></w:sectPr>`

	doc := docFromXML(t, content)

	if len(doc.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(doc.Sections))
	}
	if got := doc.Sections[0].PageWidth.Millimeters(); math.Abs(got-210) > 0.05 {
		t.Errorf("section 1 width = %v, want about 210", got)
	}
	if got := doc.Sections[1].PageWidth.Millimeters(); math.Abs(got-148) > 0.05 {
		t.Errorf("section 2 width = %v, want about 148", got)
	}
}

func TestReader_DocumentMissingGeometry(t *testing.T) {
	content := `<w:p><w:r><w:t>Текст</w:t></w:r></w:p>
<w:sectPr><w:pgSz w:w="8391"/></w:sectPr>`

	doc := docFromXML(t, content)

	if len(doc.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(doc.Sections))
	}
	if doc.Sections[0].PageHeight != 0 {
		t.Errorf("missing height = %v, want 0", doc.Sections[0].PageHeight)
	}
	if doc.Sections[0].TopMargin != 0 {
		t.Errorf("missing margin = %v, want 0", doc.Sections[0].TopMargin)
	}
}

func TestReader_DocumentAlignment(t *testing.T) {
	tests := []struct {
		name string
		jc   string
		want model.Alignment
	}{
		{"justified", "both", model.AlignmentJustified},
		{"center", "center", model.AlignmentCenter},
		{"right", "right", model.AlignmentRight},
		{"left", "left", model.AlignmentLeft},
		{"start maps to left", "start", model.AlignmentLeft},
		{"end maps to right", "end", model.AlignmentRight},
		{"distribute maps to justified", "distribute", model.AlignmentJustified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := `<w:p><w:pPr><w:jc w:val="` + tt.jc + `"/></w:pPr><w:r><w:t>x</w:t></w:r></w:p>`
			doc := docFromXML(t, content)

			if got := doc.Paragraphs[0].Alignment; got != tt.want {
				t.Errorf("alignment = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReader_DocumentAlignmentUnset(t *testing.T) {
	doc := docFromXML(t, `<w:p><w:r><w:t>x</w:t></w:r></w:p>`)

	if got := doc.Paragraphs[0].Alignment; got != model.AlignmentUnset {
		t.Errorf("alignment = %v, want unset", got)
	}
}

func TestReader_DocumentRunFormatting(t *testing.T) {
	content := `<w:p><w:r><w:rPr><w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman"/><w:sz w:val="20"/><w:b/><w:i w:val="false"/><w:color w:val="FF0000"/></w:rPr><w:t>x</w:t></w:r></w:p>`

	doc := docFromXML(t, content)

	run := doc.Paragraphs[0].Runs[0]
	if run.Font.Name != "Times New Roman" {
		t.Errorf("font name = %q", run.Font.Name)
	}
	if run.Font.Size == nil || *run.Font.Size != 10 {
		t.Errorf("font size = %v, want 10", run.Font.Size)
	}
	if run.Font.Bold == nil || !*run.Font.Bold {
		t.Errorf("bold = %v, want true", run.Font.Bold)
	}
	if run.Font.Italic == nil || *run.Font.Italic {
		t.Errorf("italic = %v, want false", run.Font.Italic)
	}
	if run.Color != "FF0000" {
		t.Errorf("color = %q, want FF0000", run.Color)
	}
}

func TestReader_DocumentRunTriState(t *testing.T) {
	content := `<w:p><w:r><w:t>без свойств</w:t></w:r></w:p>`

	doc := docFromXML(t, content)

	run := doc.Paragraphs[0].Runs[0]
	if run.Font.Name != "" || run.Font.Size != nil || run.Font.Bold != nil || run.Font.Italic != nil {
		t.Errorf("run without rPr resolved to %+v, want everything unset", run.Font)
	}
}

func TestReader_DocumentBoldToggleValues(t *testing.T) {
	tests := []struct {
		name string
		rPr  string
		want bool
	}{
		{"bare toggle", `<w:b/>`, true},
		{"explicit true", `<w:b w:val="true"/>`, true},
		{"explicit one", `<w:b w:val="1"/>`, true},
		{"explicit false", `<w:b w:val="false"/>`, false},
		{"explicit zero", `<w:b w:val="0"/>`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := `<w:p><w:r><w:rPr>` + tt.rPr + `</w:rPr><w:t>x</w:t></w:r></w:p>`
			doc := docFromXML(t, content)

			bold := doc.Paragraphs[0].Runs[0].Font.Bold
			if bold == nil || *bold != tt.want {
				t.Errorf("bold = %v, want %v", bold, tt.want)
			}
		})
	}
}

func TestReader_DocumentLineSpacing(t *testing.T) {
	tests := []struct {
		name    string
		spacing string
		want    model.LineSpacing
	}{
		{
			name:    "not set",
			spacing: ``,
			want:    model.LineSpacing{},
		},
		{
			name:    "auto single",
			spacing: `<w:spacing w:line="240" w:lineRule="auto"/>`,
			want:    model.LineSpacing{Set: true, Multiple: 1},
		},
		{
			name:    "auto one and a half",
			spacing: `<w:spacing w:line="360" w:lineRule="auto"/>`,
			want:    model.LineSpacing{Set: true, Multiple: 1.5},
		},
		{
			name:    "no rule counts as auto",
			spacing: `<w:spacing w:line="480"/>`,
			want:    model.LineSpacing{Set: true, Multiple: 2},
		},
		{
			name:    "exact comes back in points",
			spacing: `<w:spacing w:line="280" w:lineRule="exact"/>`,
			want:    model.LineSpacing{Set: true, Multiple: 14},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pPr := ""
			if tt.spacing != "" {
				pPr = `<w:pPr>` + tt.spacing + `</w:pPr>`
			}
			content := `<w:p>` + pPr + `<w:r><w:t>x</w:t></w:r></w:p>`
			doc := docFromXML(t, content)

			if got := doc.Paragraphs[0].LineSpacing; got != tt.want {
				t.Errorf("line spacing = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReader_DocumentIndent(t *testing.T) {
	tests := []struct {
		name   string
		indent string
		wantCM float64
	}{
		{"first line", `<w:ind w:firstLine="283"/>`, 0.5},
		{"hanging is negative", `<w:ind w:hanging="283"/>`, -0.5},
		{"hanging wins over first line", `<w:ind w:firstLine="283" w:hanging="283"/>`, -0.5},
		{"not set", ``, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pPr := ""
			if tt.indent != "" {
				pPr = `<w:pPr>` + tt.indent + `</w:pPr>`
			}
			content := `<w:p>` + pPr + `<w:r><w:t>x</w:t></w:r></w:p>`
			doc := docFromXML(t, content)

			got := doc.Paragraphs[0].FirstLineIndent.Centimeters()
			if math.Abs(got-tt.wantCM) > 0.01 {
				t.Errorf("indent = %v cm, want about %v", got, tt.wantCM)
			}
		})
	}
}

func TestReader_DocumentStyleFallback(t *testing.T) {
	styles := `<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:rPr><w:rFonts w:ascii="Times New Roman"/><w:sz w:val="20"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Head"><w:rPr><w:sz w:val="26"/><w:b/></w:rPr></w:style>
<w:style w:type="character" w:styleId="Emph"><w:rPr><w:sz w:val="48"/></w:rPr></w:style>`

	tests := []struct {
		name     string
		pPr      string
		wantName string
		wantSize float64
		wantBold bool
	}{
		{"named style", `<w:pPr><w:pStyle w:val="Head"/></w:pPr>`, "", 13, true},
		{"no style uses default", ``, "Times New Roman", 10, false},
		{"unknown style uses default", `<w:pPr><w:pStyle w:val="Missing"/></w:pPr>`, "Times New Roman", 10, false},
		{"character style ignored", `<w:pPr><w:pStyle w:val="Emph"/></w:pPr>`, "Times New Roman", 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := `<w:p>` + tt.pPr + `<w:r><w:t>x</w:t></w:r></w:p>`
			path := createTestDOCXWithStyles(t, content, styles)

			r, err := Open(path)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer r.Close()

			doc, err := r.Document()
			if err != nil {
				t.Fatalf("Document() error = %v", err)
			}

			sf := doc.Paragraphs[0].StyleFont
			if sf.Name != tt.wantName {
				t.Errorf("style font name = %q, want %q", sf.Name, tt.wantName)
			}
			if sf.Size == nil || *sf.Size != tt.wantSize {
				t.Errorf("style font size = %v, want %v", sf.Size, tt.wantSize)
			}
			if got := sf.Bold != nil && *sf.Bold; got != tt.wantBold {
				t.Errorf("style font bold = %v, want %v", got, tt.wantBold)
			}
		})
	}
}

func TestReader_DocumentNoStyles(t *testing.T) {
	doc := docFromXML(t, `<w:p><w:r><w:t>x</w:t></w:r></w:p>`)

	sf := doc.Paragraphs[0].StyleFont
	if sf.Name != "" || sf.Size != nil || sf.Bold != nil || sf.Italic != nil {
		t.Errorf("style font without styles.xml = %+v, want unset", sf)
	}
}

func TestReader_DocumentTableParagraphsExcluded(t *testing.T) {
	content := `<w:tbl><w:tr><w:tc><w:p><w:r><w:t>в ячейке</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
<w:p><w:r><w:t>после таблицы</w:t></w:r></w:p>`

	doc := docFromXML(t, content)

	if len(doc.Paragraphs) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(doc.Paragraphs))
	}
	if doc.Paragraphs[0].Text != "после таблицы" {
		t.Errorf("paragraph text = %q", doc.Paragraphs[0].Text)
	}
}

func TestReader_DocumentHyperlinkRunsExcluded(t *testing.T) {
	content := `<w:p><w:r><w:t>до </w:t></w:r><w:hyperlink><w:r><w:t>ссылка</w:t></w:r></w:hyperlink></w:p>`

	doc := docFromXML(t, content)

	par := doc.Paragraphs[0]
	if len(par.Runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(par.Runs))
	}
	if par.Text != "до " {
		t.Errorf("paragraph text = %q", par.Text)
	}
}
