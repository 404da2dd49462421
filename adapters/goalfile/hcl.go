package goalfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/multierr"

	goalerrors "goalgraph/internal/errors"
)

// HCLParser reads goal files written as goal/dependency blocks:
//
//	goal "emergency" {
//	  title         = "Emergency fund"
//	  target_amount = 15000
//	}
//
//	dependency {
//	  source = "emergency"
//	  target = "retirement"
//	  type   = "sequential"
//	}
//
// hclparse.Parser caches files by name, so each Parse gets a fresh one.
type HCLParser struct{}

// NewHCLParser creates a new HCL parser
func NewHCLParser() *HCLParser {
	return &HCLParser{}
}

// Name returns the parser name
func (p *HCLParser) Name() string {
	return "hcl"
}

// CanParse accepts .hcl files
func (p *HCLParser) CanParse(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".hcl")
}

// Parse decodes one HCL goal file
func (p *HCLParser) Parse(src []byte, filename string) (*Document, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagnosticsError(filename, diags)
	}

	var body fileBody
	if diags := gohcl.DecodeBody(file.Body, nil, &body); diags.HasErrors() {
		return nil, diagnosticsError(filename, diags)
	}

	// Record block lines for error context.
	content, _, _ := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{{Type: "goal", LabelNames: []string{"id"}}},
	})
	for i, block := range content.Blocks {
		if i < len(body.Goals) {
			body.Goals[i].line = block.DefRange.Start.Line
		}
	}

	return body.toDocument(filename)
}

func diagnosticsError(filename string, diags hcl.Diagnostics) error {
	var errs error
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		err := goalerrors.Parsing(fmt.Sprintf("%s: %s", diag.Summary, diag.Detail), nil).WithContext("file", filename)
		if diag.Subject != nil {
			err = err.WithContext("line", diag.Subject.Start.Line)
		}
		errs = multierr.Append(errs, err)
	}
	return errs
}
