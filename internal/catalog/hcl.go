package catalog

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/robalobadob/wordsearch/assets"
)

// hclFile is the top-level structure of a catalog file for decoding.
type hclFile struct {
	Categories []*hclCategory `hcl:"category,block"`
}

type hclCategory struct {
	Name   string      `hcl:"name,label"`
	Levels []*hclLevel `hcl:"level,block"`
}

type hclLevel struct {
	Number string   `hcl:"number,label"`
	Words  []string `hcl:"words"`
}

// ParseHCL decodes catalog source and validates it against maxLen.
func ParseHCL(src []byte, filename string, maxLen int) (*Catalog, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", filename, diags)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", filename, diags)
	}

	cats := make([]Category, 0, len(parsed.Categories))
	for _, hc := range parsed.Categories {
		c := Category{Name: hc.Name}
		for _, hl := range hc.Levels {
			n, err := strconv.Atoi(hl.Number)
			if err != nil {
				return nil, fmt.Errorf("catalog %s: category %q: level label %q is not a number", filename, hc.Name, hl.Number)
			}
			c.Levels = append(c.Levels, Level{Number: n, Words: hl.Words})
		}
		cats = append(cats, c)
	}
	return New(cats, maxLen)
}

// LoadFile reads an HCL catalog from disk.
func LoadFile(path string, maxLen int) (*Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseHCL(src, path, maxLen)
}

// Default returns the embedded catalog.
func Default(maxLen int) (*Catalog, error) {
	return ParseHCL(assets.Categories, "categories.hcl", maxLen)
}

// Load returns the catalog at path, or the embedded one when path is empty.
func Load(path string, maxLen int) (*Catalog, error) {
	if path == "" {
		return Default(maxLen)
	}
	return LoadFile(path, maxLen)
}
