package galley

import (
	"fmt"

	"github.com/tsawler/galley/annotate"
	"github.com/tsawler/galley/docx"
	"github.com/tsawler/galley/model"
	"github.com/tsawler/galley/profile"
	"github.com/tsawler/galley/report"
	"github.com/tsawler/galley/rules"
)

// Checker provides a fluent interface for checking one manuscript. Each
// configuration method returns a new Checker instance, so a configured
// checker can be shared and branched freely.
type Checker struct {
	// Source
	filename string
	doc      *model.Document

	// Configuration
	options checkOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Checker so configuration methods never mutate
// the receiver.
func (c *Checker) clone() *Checker {
	return &Checker{
		filename: c.filename,
		doc:      c.doc,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// load opens and converts the source file on first use. The converted model
// is cached on the instance, so repeated terminal operations read the file
// once.
func (c *Checker) load() (*model.Document, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.doc != nil {
		return c.doc, nil
	}
	if c.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}

	r, err := docx.Open(c.filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	doc, err := r.Document()
	if err != nil {
		return nil, err
	}
	c.doc = doc
	return doc, nil
}

// ============================================================================
// Configuration Methods (return new Checker instance)
// ============================================================================

// WithProfile checks against prof instead of the default style profile.
//
// Example:
//
//	rep, err := galley.Open("paper.docx").WithProfile(prof).Check()
func (c *Checker) WithProfile(prof *profile.Profile) *Checker {
	newChk := c.clone()
	newChk.options.profile = prof
	return newChk
}

// WithProfilePath loads a YAML style profile from path and checks against
// it. A load failure is carried to the next terminal operation.
//
// Example:
//
//	rep, err := galley.Open("paper.docx").WithProfilePath("style.yaml").Check()
func (c *Checker) WithProfilePath(path string) *Checker {
	newChk := c.clone()
	if newChk.err != nil {
		return newChk
	}
	prof, err := profile.Load(path)
	if err != nil {
		newChk.err = fmt.Errorf("loading profile: %w", err)
		return newChk
	}
	newChk.options.profile = prof
	return newChk
}

// ScanAll makes scanning checks report every offending paragraph instead of
// stopping at the first one per rule.
//
// Example:
//
//	rep, err := galley.Open("paper.docx").ScanAll().Check()
func (c *Checker) ScanAll() *Checker {
	newChk := c.clone()
	newChk.options.policy = rules.ScanAll
	return newChk
}

// HighlightColor sets the RGB hex color used for annotated copies. The
// default is red, annotate.DefaultColor.
//
// Example:
//
//	path, err := galley.Open("paper.docx").HighlightColor("FF9900").Annotate()
func (c *Checker) HighlightColor(color string) *Checker {
	newChk := c.clone()
	newChk.options.highlightColor = color
	return newChk
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Document loads and returns the manuscript's document model.
func (c *Checker) Document() (*model.Document, error) {
	return c.load()
}

// Check runs every check against the manuscript and returns the ordered
// report. The only errors are load failures; findings, however severe, are
// issues in the report.
//
// Example:
//
//	rep, err := galley.Open("paper.docx").Check()
//	if err != nil {
//	    // handle error
//	}
//	if rep.Totals().Errors > 0 {
//	    // manuscript does not conform
//	}
func (c *Checker) Check() (*report.Report, error) {
	doc, err := c.load()
	if err != nil {
		return nil, err
	}

	facts := rules.NewFacts(doc, c.options.profile)
	facts.Scan = c.options.policy
	return &report.Report{Issues: rules.Collect(facts)}, nil
}

// Annotated checks the manuscript and returns a derived copy of its model
// with every run of every flagged paragraph carrying the highlight color.
// The loaded model is left untouched.
func (c *Checker) Annotated() (*model.Document, error) {
	doc, err := c.load()
	if err != nil {
		return nil, err
	}
	rep, err := c.Check()
	if err != nil {
		return nil, err
	}
	return annotate.ApplyColor(doc, rep, c.options.highlightColor), nil
}

// Annotate checks the manuscript and writes an annotated copy next to the
// source file, named per [AnnotatedPath]. It returns the path written.
//
// Example:
//
//	path, err := galley.Open("paper.docx").Annotate()
//	// path == "paper_annotated.docx"
func (c *Checker) Annotate() (string, error) {
	if c.filename == "" {
		if c.err != nil {
			return "", c.err
		}
		return "", fmt.Errorf("no source file to annotate")
	}
	dst := AnnotatedPath(c.filename)
	if err := c.AnnotateTo(dst); err != nil {
		return "", err
	}
	return dst, nil
}

// AnnotateTo checks the manuscript and writes an annotated copy to dst.
func (c *Checker) AnnotateTo(dst string) error {
	if c.filename == "" {
		if c.err != nil {
			return c.err
		}
		return fmt.Errorf("no source file to annotate")
	}
	doc, err := c.load()
	if err != nil {
		return err
	}
	rep, err := c.Check()
	if err != nil {
		return err
	}
	annotated := annotate.ApplyColor(doc, rep, c.options.highlightColor)
	return docx.WriteAnnotated(c.filename, dst, annotated, rep.Flagged())
}
