// Package sbol is an in-memory model of the SBOL2 records a MoClo design is
// described with: component definitions, their sub-components, sequence
// constraints and annotations, and the sequences they point at.
package sbol

import (
	"errors"
	"fmt"
	"strings"
)

// Role URIs from the Sequence Ontology used by MoClo designs.
const (
	// RoleFusionSite marks a component definition as an overhang (SO:0001953)
	RoleFusionSite = "http://identifiers.org/so/SO:0001953"

	// RolePlasmid marks a component definition as a plasmid vector (SO:0000637)
	RolePlasmid = "http://identifiers.org/so/SO:0000637"

	// RoleEngineeredRegion is the usual role of an abstract design (SO:0000804)
	RoleEngineeredRegion = "http://identifiers.org/so/SO:0000804"
)

// Precedes is the only sequence constraint restriction that orders components.
const Precedes = "http://sbols.org/v2#precedes"

// ErrNotFound is returned when a referenced record isn't in the document.
var ErrNotFound = errors.New("not found")

// Document is a collection of top level SBOL records.
type Document struct {
	// ComponentDefinitions in declaration order. The first is the top level design
	ComponentDefinitions []*ComponentDefinition `yaml:"componentDefinitions" json:"componentDefinitions"`

	// Sequences referenced by the component definitions
	Sequences []*Sequence `yaml:"sequences" json:"sequences"`

	definitions map[string]*ComponentDefinition
	sequences   map[string]*Sequence
}

// ComponentDefinition is a DNA part, plasmid, or design.
type ComponentDefinition struct {
	Identity            string                `yaml:"identity" json:"identity"`
	DisplayID           string                `yaml:"displayId" json:"displayId"`
	Name                string                `yaml:"name,omitempty" json:"name,omitempty"`
	Roles               []string              `yaml:"roles,omitempty" json:"roles,omitempty"`
	Sequences           []string              `yaml:"sequences,omitempty" json:"sequences,omitempty"`
	Components          []*Component          `yaml:"components,omitempty" json:"components,omitempty"`
	SequenceConstraints []*SequenceConstraint `yaml:"sequenceConstraints,omitempty" json:"sequenceConstraints,omitempty"`
	SequenceAnnotations []*SequenceAnnotation `yaml:"sequenceAnnotations,omitempty" json:"sequenceAnnotations,omitempty"`
}

// Component is an instance of another definition within a parent definition.
type Component struct {
	Identity   string `yaml:"identity" json:"identity"`
	DisplayID  string `yaml:"displayId,omitempty" json:"displayId,omitempty"`
	Definition string `yaml:"definition" json:"definition"`
}

// SequenceConstraint relates two components of the same parent, eg subject precedes object.
type SequenceConstraint struct {
	Subject     string `yaml:"subject" json:"subject"`
	Object      string `yaml:"object" json:"object"`
	Restriction string `yaml:"restriction" json:"restriction"`
}

// SequenceAnnotation locates a component on its parent's sequence (1-indexed, inclusive).
type SequenceAnnotation struct {
	Identity    string `yaml:"identity,omitempty" json:"identity,omitempty"`
	Component   string `yaml:"component" json:"component"`
	Start       int    `yaml:"start" json:"start"`
	End         int    `yaml:"end" json:"end"`
	Orientation string `yaml:"orientation,omitempty" json:"orientation,omitempty"`
}

// Sequence is the literal DNA of a definition.
type Sequence struct {
	Identity string `yaml:"identity" json:"identity"`
	Elements string `yaml:"elements" json:"elements"`
	Encoding string `yaml:"encoding,omitempty" json:"encoding,omitempty"`
}

// index builds the identity lookups. It's called after parsing and after
// any programmatic construction via NewDocument.
func (d *Document) index() error {
	d.definitions = make(map[string]*ComponentDefinition, len(d.ComponentDefinitions))
	for _, cd := range d.ComponentDefinitions {
		if cd == nil || cd.Identity == "" {
			return fmt.Errorf("component definition without an identity")
		}
		if _, dup := d.definitions[cd.Identity]; dup {
			return fmt.Errorf("duplicate component definition %s", cd.Identity)
		}
		d.definitions[cd.Identity] = cd
	}

	d.sequences = make(map[string]*Sequence, len(d.Sequences))
	for _, s := range d.Sequences {
		if s == nil || s.Identity == "" {
			return fmt.Errorf("sequence without an identity")
		}
		if _, dup := d.sequences[s.Identity]; dup {
			return fmt.Errorf("duplicate sequence %s", s.Identity)
		}
		d.sequences[s.Identity] = s
	}

	return nil
}

// NewDocument indexes the definitions and sequences passed into a Document.
func NewDocument(defs []*ComponentDefinition, seqs []*Sequence) (*Document, error) {
	d := &Document{ComponentDefinitions: defs, Sequences: seqs}
	if err := d.index(); err != nil {
		return nil, err
	}
	return d, nil
}

// TopLevel returns the document's first component definition.
func (d *Document) TopLevel() (*ComponentDefinition, error) {
	if len(d.ComponentDefinitions) == 0 {
		return nil, fmt.Errorf("document has no component definitions: %w", ErrNotFound)
	}
	return d.ComponentDefinitions[0], nil
}

// ComponentDefinition returns the definition with the identity passed.
func (d *Document) ComponentDefinition(identity string) (*ComponentDefinition, error) {
	if d.definitions == nil {
		if err := d.index(); err != nil {
			return nil, err
		}
	}

	cd, ok := d.definitions[identity]
	if !ok {
		return nil, fmt.Errorf("component definition %s: %w", identity, ErrNotFound)
	}
	return cd, nil
}

// Sequence returns the sequence with the identity passed.
func (d *Document) Sequence(identity string) (*Sequence, error) {
	if d.sequences == nil {
		if err := d.index(); err != nil {
			return nil, err
		}
	}

	s, ok := d.sequences[identity]
	if !ok {
		return nil, fmt.Errorf("sequence %s: %w", identity, ErrNotFound)
	}
	return s, nil
}

// HasRole returns whether the definition declares the role.
func (cd *ComponentDefinition) HasRole(role string) bool {
	for _, r := range cd.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Label is the name of the definition, or its displayId if it's unnamed.
func (cd *ComponentDefinition) Label() string {
	if strings.TrimSpace(cd.Name) != "" {
		return cd.Name
	}
	return cd.DisplayID
}

// AnnotationStart returns the start index of the first annotation locating
// the component, and false if the component is not annotated.
func (cd *ComponentDefinition) AnnotationStart(component string) (int, bool) {
	for _, a := range cd.SequenceAnnotations {
		if a.Component == component {
			return a.Start, true
		}
	}
	return 0, false
}
