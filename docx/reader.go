// Package docx loads DOCX (Office Open XML) manuscripts into the document
// model and writes annotated copies.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tsawler/galley/format"
	"github.com/tsawler/galley/model"
)

// Reader provides access to DOCX document content.
type Reader struct {
	zipReader *zip.ReadCloser
	document  *documentXML
	styles    *stylesXML
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, openError(filename, fmt.Errorf("opening ZIP archive: %w", err))
	}

	r := &Reader{zipReader: zr}

	// Validate required files exist
	if err := r.validate(); err != nil {
		zr.Close()
		return nil, openError(filename, err)
	}

	// Parse document.xml
	if err := r.parseDocument(); err != nil {
		zr.Close()
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	// Styles are optional; without them style fallbacks stay unresolved
	r.parseStyles()

	return r, nil
}

// openError upgrades a load failure to a format mismatch when the file is
// recognizably another document format, so a PDF or spreadsheet handed to
// the checker gets a clear message instead of a ZIP parsing error.
func openError(filename string, err error) error {
	if f, derr := format.DetectFile(filename); derr == nil && f != format.DOCX && f != format.Unknown {
		return fmt.Errorf("unsupported file format: %s", f)
	}
	return err
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.zipReader != nil {
		err := r.zipReader.Close()
		r.zipReader = nil
		return err
	}
	return nil
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"word/document.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseDocument parses the main document content.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return err
	}

	r.document = &documentXML{}
	if err := xml.Unmarshal(data, r.document); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}

	return nil
}

// parseStyles parses the styles definition file.
func (r *Reader) parseStyles() {
	data, err := r.getFileContent("word/styles.xml")
	if err != nil {
		return
	}

	styles := &stylesXML{}
	if err := xml.Unmarshal(data, styles); err != nil {
		return
	}
	r.styles = styles
}

// Document converts the parsed content into the checker's document model.
// Sections and paragraphs keep document order; formatting that neither a
// run nor its paragraph style defines stays unresolved in the result.
func (r *Reader) Document() (*model.Document, error) {
	if r.document == nil || r.document.Body == nil {
		return nil, fmt.Errorf("document not parsed")
	}
	body := r.document.Body

	doc := &model.Document{}
	for _, p := range body.Paragraphs {
		if sp := p.Properties.SectPr; sp != nil {
			doc.Sections = append(doc.Sections, convertSection(sp))
		}
		doc.Paragraphs = append(doc.Paragraphs, r.convertParagraph(p))
	}
	if body.SectPr != nil {
		doc.Sections = append(doc.Sections, convertSection(body.SectPr))
	}

	return doc, nil
}

// convertSection converts section properties into model geometry. Missing
// or malformed dimensions measure as zero and fail the page checks rather
// than being skipped.
func convertSection(sp *sectPrXML) model.Section {
	return model.Section{
		PageWidth:    twipLength(sp.PageSize.W),
		PageHeight:   twipLength(sp.PageSize.H),
		TopMargin:    twipLength(sp.Margins.Top),
		BottomMargin: twipLength(sp.Margins.Bottom),
		LeftMargin:   twipLength(sp.Margins.Left),
		RightMargin:  twipLength(sp.Margins.Right),
	}
}

// convertParagraph converts a paragraph element and its direct runs.
func (r *Reader) convertParagraph(p paragraphXML) *model.Paragraph {
	par := &model.Paragraph{
		Alignment:       alignmentFromJc(p.Properties.Justification.Val),
		LineSpacing:     spacingFromProps(p.Properties.Spacing),
		FirstLineIndent: indentFromProps(p.Properties.Indent),
		StyleFont:       r.styleFont(p.Properties.Style.Val),
	}

	var text strings.Builder
	for _, run := range p.Runs {
		mr := convertRun(run)
		text.WriteString(mr.Text)
		par.Runs = append(par.Runs, mr)
	}
	par.Text = text.String()

	return par
}

// convertRun flattens a run's ordered content into text and reads its
// direct formatting.
func convertRun(run runXML) *model.Run {
	mr := &model.Run{
		Font:  fontFromProps(run.Properties),
		Color: run.Properties.Color.Val,
	}

	var text strings.Builder
	for _, item := range run.Items {
		switch item.XMLName.Local {
		case "t":
			text.WriteString(item.Value)
		case "tab":
			text.WriteString("\t")
		case "br", "cr":
			text.WriteString("\n")
		}
	}
	mr.Text = text.String()

	return mr
}

// fontFromProps reads tri-state run formatting. A missing toggle element
// leaves the attribute unresolved; a toggle present without a value means
// on.
func fontFromProps(props runPropsXML) model.FontFacts {
	facts := model.FontFacts{Name: props.Font.ASCII}

	if props.FontSize.Val != "" {
		if half, err := strconv.ParseFloat(props.FontSize.Val, 64); err == nil {
			facts.Size = model.FloatPtr(half / 2)
		}
	}
	if props.Bold.XMLName.Local != "" {
		facts.Bold = model.BoolPtr(toggleOn(props.Bold.Val))
	}
	if props.Italic.XMLName.Local != "" {
		facts.Italic = model.BoolPtr(toggleOn(props.Italic.Val))
	}

	return facts
}

// toggleOn interprets an OOXML on/off value.
func toggleOn(val string) bool {
	return val != "false" && val != "0" && val != "off"
}

// styleFont returns the font facts of the named paragraph style, or of the
// default paragraph style when styleID is empty or unknown.
func (r *Reader) styleFont(styleID string) model.FontFacts {
	if r.styles == nil {
		return model.FontFacts{}
	}

	var def *styleDefXML
	for i := range r.styles.Styles {
		st := &r.styles.Styles[i]
		if st.Type != "paragraph" {
			continue
		}
		if styleID != "" && st.StyleID == styleID {
			return fontFromProps(st.RPr)
		}
		if def == nil && (st.Default == "1" || st.Default == "true") {
			def = st
		}
	}
	if def != nil {
		return fontFromProps(def.RPr)
	}
	return model.FontFacts{}
}

// alignmentFromJc maps a w:jc value onto the model alignment. Values the
// checks do not distinguish fold into the nearest bucket: start and end
// become left and right, distribute reads as justified.
func alignmentFromJc(val string) model.Alignment {
	switch val {
	case "left", "start":
		return model.AlignmentLeft
	case "center":
		return model.AlignmentCenter
	case "right", "end":
		return model.AlignmentRight
	case "both", "distribute":
		return model.AlignmentJustified
	default:
		return model.AlignmentUnset
	}
}

// spacingFromProps converts w:spacing. Auto-rule values are 240ths of a
// single line; exact and atLeast values are twentieths of a point and come
// back as points so a deviation reads sensibly in messages.
func spacingFromProps(sp spacingXML) model.LineSpacing {
	if sp.Line == "" {
		return model.LineSpacing{}
	}
	line, err := strconv.ParseFloat(sp.Line, 64)
	if err != nil {
		return model.LineSpacing{}
	}

	switch sp.LineRule {
	case "", "auto":
		return model.LineSpacing{Set: true, Multiple: line / 240}
	default:
		return model.LineSpacing{Set: true, Multiple: line / 20}
	}
}

// indentFromProps converts w:ind. A hanging indent reads as a negative
// first-line indent.
func indentFromProps(ind indentXML) model.Length {
	if ind.Hanging != "" {
		return -twipLength(ind.Hanging)
	}
	return twipLength(ind.FirstLine)
}

// twipLength parses a twip attribute value; missing or malformed values
// measure as zero.
func twipLength(s string) model.Length {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return model.FromTwips(v)
}
