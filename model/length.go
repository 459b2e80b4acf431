package model

import "math"

// Length is a physical dimension in English Metric Units. EMUs are the
// native unit of Office Open XML measurements: 914400 to the inch, 360000 to
// the centimeter, 635 to the twip. Keeping lengths integral avoids rounding
// drift when values pass between unit systems.
type Length int64

// Unit constants expressed in EMU.
const (
	EMU        Length = 1
	Twip       Length = 635
	Point      Length = 12700
	Millimeter Length = 36000
	Centimeter Length = 360000
	Inch       Length = 914400
)

// FromTwips creates a Length from a twip count (twentieths of a point).
// DOCX page geometry and indents are stored in twips.
func FromTwips(v int64) Length {
	return Length(v) * Twip
}

// FromPoints creates a Length from a point value.
func FromPoints(v float64) Length {
	return Length(math.Round(v * float64(Point)))
}

// FromMillimeters creates a Length from a millimeter value.
func FromMillimeters(v float64) Length {
	return Length(math.Round(v * float64(Millimeter)))
}

// FromCentimeters creates a Length from a centimeter value.
func FromCentimeters(v float64) Length {
	return Length(math.Round(v * float64(Centimeter)))
}

// Twips returns the length in twips.
func (l Length) Twips() float64 {
	return float64(l) / float64(Twip)
}

// Points returns the length in points.
func (l Length) Points() float64 {
	return float64(l) / float64(Point)
}

// Millimeters returns the length in millimeters.
func (l Length) Millimeters() float64 {
	return float64(l) / float64(Millimeter)
}

// Centimeters returns the length in centimeters.
func (l Length) Centimeters() float64 {
	return float64(l) / float64(Centimeter)
}

// Inches returns the length in inches.
func (l Length) Inches() float64 {
	return float64(l) / float64(Inch)
}
