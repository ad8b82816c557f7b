package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the YAML shape of a record file.
type Document struct {
	// Persons lists the individuals.
	Persons []PersonDoc `yaml:"persons"`

	// Families lists the families. Person fields hold person identifiers.
	Families []FamilyDoc `yaml:"families"`
}

// PersonDoc is one individual.
type PersonDoc struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name,omitempty"`
	Birth string `yaml:"birth,omitempty"`
	Death string `yaml:"death,omitempty"`
}

// FamilyDoc is one family. Husband and Wife map to father and mother.
type FamilyDoc struct {
	ID       string   `yaml:"id"`
	Husband  string   `yaml:"husband,omitempty"`
	Wife     string   `yaml:"wife,omitempty"`
	Children []string `yaml:"children,omitempty"`
	Married  string   `yaml:"married,omitempty"`
	Divorced string   `yaml:"divorced,omitempty"`
}

// ReadDocument reads and strictly decodes a record document file.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	doc, err := DecodeDocument(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return doc, nil
}

// DecodeDocument decodes a record document, rejecting unknown fields.
// An empty input is an empty document.
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &doc, nil
}
