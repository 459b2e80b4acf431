package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/tsawler/galley/model"
)

// edit is a byte-range replacement in document.xml; start == end inserts.
type edit struct {
	start, end int64
	text       string
}

// WriteAnnotated writes a copy of the DOCX at src to dst with the run
// colors of the flagged paragraphs spliced into word/document.xml. doc must
// be the annotated model of the same file so the body paragraph order lines
// up; flagged lists the paragraph indices to recolor, so colors the source
// document carried on its own stay untouched. Every other archive entry is
// copied through unchanged, so the result opens exactly like the original,
// highlights aside.
func WriteAnnotated(src, dst string, doc *model.Document, flagged []int) error {
	zr, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("opening ZIP archive: %w", err)
	}
	defer zr.Close()

	var docEntry *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docEntry = f
			break
		}
	}
	if docEntry == nil {
		return fmt.Errorf("missing required file: word/document.xml")
	}

	rc, err := docEntry.Open()
	if err != nil {
		return fmt.Errorf("opening document.xml: %w", err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return fmt.Errorf("reading document.xml: %w", err)
	}

	edited, err := spliceRunColors(data, doc, flagged)
	if err != nil {
		return fmt.Errorf("annotating document.xml: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating annotated copy: %w", err)
	}

	zw := zip.NewWriter(out)
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			w, werr := zw.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Deflate})
			if werr == nil {
				_, werr = w.Write(edited)
			}
			if werr != nil {
				zw.Close()
				out.Close()
				return fmt.Errorf("writing document.xml: %w", werr)
			}
			continue
		}
		if err := zw.Copy(f); err != nil {
			zw.Close()
			out.Close()
			return fmt.Errorf("copying %s: %w", f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		out.Close()
		return fmt.Errorf("finalizing annotated copy: %w", err)
	}
	return out.Close()
}

// runSplice tracks the byte positions needed to recolor one run while its
// tokens stream past.
type runSplice struct {
	afterStart  int64 // insertion point right after the <w:r> start tag
	rPrFound    bool
	rPrStart    int64
	rPrEnd      int64
	rPrEndStart int64 // start of </w:rPr>; equals rPrEnd for a self-closed rPr
	colorFound  bool
	colorStart  int64
	colorEnd    int64
}

// spliceRunColors rewrites run colors in raw document.xml bytes. The walk
// touches only the flagged paragraphs and leaves every other byte of the
// original markup alone, which keeps the output safe from re-encoding
// surprises. Paragraph ordinals count body-level <w:p> elements, matching
// [Reader.Document].
func spliceRunColors(data []byte, doc *model.Document, flagged []int) ([]byte, error) {
	marked := make(map[int]bool, len(flagged))
	for _, idx := range flagged {
		marked[idx] = true
	}

	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		edits  []edit
		stack  []string
		pCount int

		pFlagged bool
		pColor   string
		pText    string
		pSawRun  bool

		cur *runSplice
	)

	for {
		off := dec.InputOffset()
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("scanning document.xml: %w", err)
		}
		end := dec.InputOffset()

		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			depth := len(stack)

			switch {
			case t.Name.Local == "p" && depth == 3 && stack[1] == "body":
				pFlagged, pColor, pText = paragraphHighlight(doc, marked, pCount)
				pSawRun = false
				pCount++
			case t.Name.Local == "r" && depth == 4 && stack[2] == "p" && pFlagged:
				pSawRun = true
				cur = &runSplice{afterStart: end}
			case t.Name.Local == "rPr" && depth == 5 && cur != nil && stack[3] == "r":
				cur.rPrFound = true
				cur.rPrStart = off
			case t.Name.Local == "color" && depth == 6 && cur != nil && stack[4] == "rPr":
				cur.colorFound = true
				cur.colorStart = off
			}

		case xml.EndElement:
			depth := len(stack)

			switch {
			case t.Name.Local == "color" && depth == 6 && cur != nil && stack[4] == "rPr":
				cur.colorEnd = end
			case t.Name.Local == "rPr" && depth == 5 && cur != nil && stack[3] == "r":
				cur.rPrEndStart = off
				cur.rPrEnd = end
			case t.Name.Local == "r" && depth == 4 && cur != nil:
				// A self-closed <w:r/> has no content to color.
				if end > off {
					edits = append(edits, cur.colorEdit(pColor))
				}
				cur = nil
			case t.Name.Local == "p" && depth == 3 && stack[1] == "body":
				if pFlagged && !pSawRun && end > off && pText != "" {
					edits = append(edits, edit{off, off, coloredRun(pColor, pText)})
				}
				pFlagged = false
			}

			if depth > 0 {
				stack = stack[:depth-1]
			}
		}
	}

	return applyEdits(data, edits), nil
}

// colorEdit produces the edit that forces the run's color: replacing an
// existing w:color, inserting one into an existing w:rPr, or creating the
// w:rPr outright.
func (rs *runSplice) colorEdit(color string) edit {
	tag := `<w:color w:val="` + color + `"/>`
	switch {
	case rs.colorFound:
		return edit{rs.colorStart, rs.colorEnd, tag}
	case rs.rPrFound && rs.rPrEnd > rs.rPrEndStart:
		return edit{rs.rPrEndStart, rs.rPrEndStart, tag}
	case rs.rPrFound:
		// Self-closed <w:rPr/>; rebuild it with the color inside.
		return edit{rs.rPrStart, rs.rPrEnd, "<w:rPr>" + tag + "</w:rPr>"}
	default:
		return edit{rs.afterStart, rs.afterStart, "<w:rPr>" + tag + "</w:rPr>"}
	}
}

// paragraphHighlight reports whether the paragraph at idx is flagged and
// carries a highlight, along with its color and text for run synthesis.
func paragraphHighlight(doc *model.Document, marked map[int]bool, idx int) (bool, string, string) {
	if !marked[idx] || idx < 0 || idx >= len(doc.Paragraphs) {
		return false, "", ""
	}
	par := doc.Paragraphs[idx]
	for _, run := range par.Runs {
		if run.Color != "" {
			return true, run.Color, par.Text
		}
	}
	return false, "", ""
}

// coloredRun builds a replacement run carrying the paragraph text, for
// flagged paragraphs whose markup has no runs at all.
func coloredRun(color, text string) string {
	return `<w:r><w:rPr><w:color w:val="` + color + `"/></w:rPr>` +
		`<w:t xml:space="preserve">` + escapeXML(text) + `</w:t></w:r>`
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// applyEdits splices the edits into data in one pass.
func applyEdits(data []byte, edits []edit) []byte {
	if len(edits) == 0 {
		return data
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].start < edits[j].start })

	var out bytes.Buffer
	out.Grow(len(data) + 64*len(edits))
	var prev int64
	for _, e := range edits {
		out.Write(data[prev:e.start])
		out.WriteString(e.text)
		prev = e.end
	}
	out.Write(data[prev:])
	return out.Bytes()
}
