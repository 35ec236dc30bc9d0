package sbol

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Read parses a YAML or JSON SBOL document from the local filesystem.
func Read(path string) (*Document, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to SBOL document: %w", err)
		}
		path = abs
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read SBOL document: %w", err)
	}

	doc, err := Parse(dat)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document. JSON is accepted since it's a subset of YAML.
func Parse(dat []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(dat, doc); err != nil {
		return nil, err
	}

	if err := doc.index(); err != nil {
		return nil, err
	}

	for _, cd := range doc.ComponentDefinitions {
		for _, c := range cd.Components {
			if c.Definition == "" {
				return nil, fmt.Errorf("component %s of %s has no definition", c.Identity, cd.Identity)
			}
		}
	}

	return doc, nil
}
