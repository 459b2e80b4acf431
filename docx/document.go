package docx

import "encoding/xml"

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body. Only body-level paragraphs are
// collected; paragraphs nested in tables do not take part in checking.
type bodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
	SectPr     *sectPrXML     `xml:"sectPr"`
}

// paragraphXML represents a paragraph element (<w:p>). Runs are the direct
// children only, matching how paragraph text is assembled.
type paragraphXML struct {
	XMLName    xml.Name          `xml:"p"`
	Properties paragraphPropsXML `xml:"pPr"`
	Runs       []runXML          `xml:"r"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>). A sectPr
// here closes the section that the preceding paragraphs belong to.
type paragraphPropsXML struct {
	Style         styleRefXML      `xml:"pStyle"`
	Justification justificationXML `xml:"jc"`
	Spacing       spacingXML       `xml:"spacing"`
	Indent        indentXML        `xml:"ind"`
	SectPr        *sectPrXML       `xml:"sectPr"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// justificationXML represents text justification.
type justificationXML struct {
	Val string `xml:"val,attr"` // left, center, right, both
}

// spacingXML represents paragraph spacing.
type spacingXML struct {
	Before   string `xml:"before,attr"`   // Space before in twips
	After    string `xml:"after,attr"`    // Space after in twips
	Line     string `xml:"line,attr"`     // Line spacing value
	LineRule string `xml:"lineRule,attr"` // auto, exact, atLeast
}

// indentXML represents paragraph indentation.
type indentXML struct {
	Left      string `xml:"left,attr"`
	Right     string `xml:"right,attr"`
	FirstLine string `xml:"firstLine,attr"`
	Hanging   string `xml:"hanging,attr"`
}

// sectPrXML represents section properties (<w:sectPr>).
type sectPrXML struct {
	PageSize pgSzXML  `xml:"pgSz"`
	Margins  pgMarXML `xml:"pgMar"`
}

// pgSzXML represents page dimensions in twips.
type pgSzXML struct {
	W string `xml:"w,attr"`
	H string `xml:"h,attr"`
}

// pgMarXML represents page margins in twips.
type pgMarXML struct {
	Top    string `xml:"top,attr"`
	Bottom string `xml:"bottom,attr"`
	Left   string `xml:"left,attr"`
	Right  string `xml:"right,attr"`
}

// runXML represents a text run (<w:r>). Content children are collected in
// document order so tabs and breaks land where they sit in the text.
type runXML struct {
	XMLName    xml.Name     `xml:"r"`
	Properties runPropsXML  `xml:"rPr"`
	Items      []runItemXML `xml:",any"`
}

// runItemXML is one ordered content child of a run, such as <w:t>, <w:tab>,
// <w:br> or <w:cr>.
type runItemXML struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold     boolXML  `xml:"b"`
	Italic   boolXML  `xml:"i"`
	FontSize sizeXML  `xml:"sz"`
	Font     fontXML  `xml:"rFonts"`
	Color    colorXML `xml:"color"`
}

// boolXML represents an on/off toggle element. XMLName distinguishes a
// missing element from one present without a value.
type boolXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"`
}

// sizeXML represents font size (in half-points).
type sizeXML struct {
	Val string `xml:"val,attr"`
}

// fontXML represents font settings.
type fontXML struct {
	ASCII    string `xml:"ascii,attr"`
	HAnsi    string `xml:"hAnsi,attr"`
	CS       string `xml:"cs,attr"`
	EastAsia string `xml:"eastAsia,attr"`
}

// colorXML represents text color.
type colorXML struct {
	Val string `xml:"val,attr"` // Hex color or "auto"
}
