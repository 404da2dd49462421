// Package goalfile loads goal and dependency collections from disk.
// Files are deserialized into plain collections here; nothing in this
// package interprets the graph they describe.
package goalfile

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"goalgraph/core/types"
	goalerrors "goalgraph/internal/errors"
)

// Document is the content of one or more goal files
type Document struct {
	// Files lists the files the document was read from
	Files []string

	Goals        []types.Goal
	Dependencies []types.Dependency
}

// Merge appends another document
func (d *Document) Merge(other *Document) {
	d.Files = append(d.Files, other.Files...)
	d.Goals = append(d.Goals, other.Goals...)
	d.Dependencies = append(d.Dependencies, other.Dependencies...)
}

// Parser turns the bytes of one file into a Document
type Parser interface {
	// Name returns the parser name
	Name() string

	// CanParse determines if this parser handles the file
	CanParse(path string) bool

	// Parse decodes a single file
	Parse(src []byte, filename string) (*Document, error)
}

var parsers []Parser

// Register adds a parser; later registrations are consulted last
func Register(p Parser) {
	parsers = append(parsers, p)
}

// ParserFor returns the first registered parser accepting path
func ParserFor(path string) (Parser, bool) {
	for _, p := range parsers {
		if p.CanParse(path) {
			return p, true
		}
	}
	return nil, false
}

// Load reads a goal file, or every goal file under a directory in
// lexical order. Files no parser accepts are skipped inside directories
// and rejected when named directly.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goalerrors.NotFound("goal file", path)
		}
		return nil, goalerrors.Wrapf(goalerrors.TypeInput, err, "failed to stat goal path %s", path)
	}

	if !info.IsDir() {
		p, ok := ParserFor(path)
		if !ok {
			return nil, goalerrors.NotSupported("parsing goal file " + filepath.Base(path)).WithContext("path", path)
		}
		return loadFile(p, path)
	}

	doc := &Document{}
	var errs error
	err = filepath.Walk(path, func(file string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return nil
		}
		p, ok := ParserFor(file)
		if !ok {
			return nil
		}
		fileDoc, err := loadFile(p, file)
		if err != nil {
			errs = multierr.Append(errs, err)
			return nil
		}
		doc.Merge(fileDoc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}
	if errs != nil {
		return nil, errs
	}
	if len(doc.Files) == 0 {
		return nil, goalerrors.Input("no goal files found in " + path).WithContext("path", path)
	}
	return doc, nil
}

func loadFile(p Parser, path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, goalerrors.Wrapf(goalerrors.TypeInput, err, "failed to read goal file %s", path)
	}
	doc, err := p.Parse(src, path)
	if err != nil {
		return nil, err
	}
	doc.Files = []string{path}
	return doc, nil
}

func init() {
	Register(NewHCLParser())
	Register(NewYAMLParser())
}
