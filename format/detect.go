// Package format identifies document file formats so the loader can tell a
// manuscript in the wrong format apart from a broken one.
package format

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"
)

// Format represents a recognized document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// PDF indicates a PDF document.
	PDF
	// ODT indicates an OpenDocument Text (.odt) document.
	ODT
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
	// PPTX indicates a Microsoft PowerPoint (.pptx) presentation.
	PPTX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case PDF:
		return "PDF"
	case ODT:
		return "ODT"
	case XLSX:
		return "XLSX"
	case PPTX:
		return "PPTX"
	default:
		return "unknown"
	}
}

// DetectFile inspects the content of the file at path and reports its
// format. Detection goes by magic bytes, and for ZIP containers by the
// archive layout, so a misleading file extension does not matter.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Unknown, fmt.Errorf("inspecting file: %w", err)
	}

	magic := make([]byte, 4)
	n, _ := f.ReadAt(magic, 0)
	if n < 4 {
		return Unknown, nil
	}

	// PDF magic: %PDF
	if magic[0] == '%' && magic[1] == 'P' && magic[2] == 'D' && magic[3] == 'F' {
		return PDF, nil
	}

	// ZIP magic: PK\x03\x04. All the remaining formats are ZIP containers
	// told apart by their layout.
	if magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04 {
		return detectZIP(f, info.Size())
	}

	return Unknown, nil
}

// detectZIP tells ZIP-based document formats apart by their archive layout.
func detectZIP(r *os.File, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		// A truncated container is not any recognizable format.
		return Unknown, nil
	}

	// OpenDocument archives declare themselves in a mimetype entry.
	for _, f := range zr.File {
		if f.Name != "mimetype" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			continue
		}
		data := make([]byte, 256)
		n, _ := rc.Read(data)
		rc.Close()
		if strings.Contains(string(data[:n]), "application/vnd.oasis.opendocument.text") {
			return ODT, nil
		}
	}

	// Office Open XML containers are told apart by their payload directory.
	for _, f := range zr.File {
		switch {
		case strings.HasPrefix(f.Name, "word/"):
			return DOCX, nil
		case strings.HasPrefix(f.Name, "xl/"):
			return XLSX, nil
		case strings.HasPrefix(f.Name, "ppt/"):
			return PPTX, nil
		}
	}

	return Unknown, nil
}
