package goalfile

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	goalerrors "goalgraph/internal/errors"
)

// YAMLParser reads goal files as YAML, and JSON since JSON is valid YAML
type YAMLParser struct{}

// NewYAMLParser creates a new YAML parser
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Name returns the parser name
func (p *YAMLParser) Name() string {
	return "yaml"
}

// CanParse accepts .yaml, .yml and .json files
func (p *YAMLParser) CanParse(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

// Parse decodes one YAML or JSON goal file
func (p *YAMLParser) Parse(src []byte, filename string) (*Document, error) {
	var body fileBody

	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, goalerrors.Parsing("failed to decode goal file", err).WithContext("file", filename)
	}

	return body.toDocument(filename)
}
