// Package galley checks DOCX manuscripts against a publisher's formatting
// requirements and reports every deviation as an ordered list of issues.
//
// Basic usage:
//
//	rep, err := galley.Open("paper.docx").Check()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Print(rep.FormatText("paper.docx"))
//
// With options:
//
//	rep, err := galley.Open("paper.docx").
//	    WithProfilePath("house-style.yaml").
//	    ScanAll().
//	    Check()
//
// An annotated copy of the manuscript, with every offending paragraph
// colored, can be written next to the original:
//
//	path, err := galley.Open("paper.docx").Annotate()
//
// For advanced use cases the lower-level docx, rules and report packages are
// also available.
package galley

import (
	"path/filepath"
	"strings"

	"github.com/tsawler/galley/model"
)

// Open prepares a checker for the DOCX file at filename. The file is not
// read until a terminal operation such as Check runs.
//
// Example:
//
//	rep, err := galley.Open("paper.docx").Check()
func Open(filename string) *Checker {
	return &Checker{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates a checker for an already-loaded document model. This
// is useful when the document comes from somewhere other than a DOCX file on
// disk. Annotated copies cannot be written without a source file, so
// Annotate returns an error on such a checker.
//
// Example:
//
//	doc, err := loadSomehow()
//	if err != nil {
//	    // handle error
//	}
//	rep, err := galley.FromDocument(doc).Check()
func FromDocument(doc *model.Document) *Checker {
	return &Checker{
		doc:     doc,
		options: defaultOptions(),
	}
}

// AnnotatedPath returns the path the annotated copy of path is written to:
// the same directory and extension with "_annotated" appended to the stem.
func AnnotatedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_annotated" + ext
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	rep := galley.Must(galley.Open("paper.docx").Check())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
