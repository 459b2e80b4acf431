package docx

import "encoding/xml"

// stylesXML represents the structure of word/styles.xml
type stylesXML struct {
	XMLName xml.Name      `xml:"styles"`
	Styles  []styleDefXML `xml:"style"`
}

// styleDefXML represents a style definition. Only the style's own run
// properties matter here; basedOn chains and document defaults are not
// consulted when resolving a paragraph's fallback font.
type styleDefXML struct {
	XMLName xml.Name    `xml:"style"`
	Type    string      `xml:"type,attr"` // paragraph, character, table, numbering
	StyleID string      `xml:"styleId,attr"`
	Default string      `xml:"default,attr"` // "1" or "true" if default style
	RPr     runPropsXML `xml:"rPr"`
}
