package moclo

import (
	"fmt"

	"github.com/jjtimmons/moclo/internal/sbol"
	"go.uber.org/zap"
)

// Position is a single part of the design and the plasmids that carry it.
type Position struct {
	// Index of the part in the design, 0-indexed
	Index int

	// Part is the abstract part's definition
	Part *sbol.ComponentDefinition

	// Candidates in the order they were found in the library
	Candidates []*Plasmid
}

// CandidateIndex is the plasmids for each position of a design, in design order.
type CandidateIndex struct {
	Positions []*Position
}

// BuildCandidateIndex finds the library plasmids carrying each part.
//
// A library entry is a candidate for a part if it has the plasmid role and
// one of its direct sub-components is an instance of the part. Every design
// position gets an entry, even if no plasmid carries its part.
func BuildCandidateIndex(
	parts []*sbol.ComponentDefinition,
	library *sbol.Document,
	table *FusionSiteTable,
	opts Options,
) (*CandidateIndex, error) {
	log := opts.logger()
	plasmidRole := opts.plasmidRole()

	// parts that show up twice in a design share their candidates
	seen := make(map[string][]*Plasmid)

	index := &CandidateIndex{Positions: make([]*Position, 0, len(parts))}
	for i, part := range parts {
		candidates, indexed := seen[part.Identity]
		if !indexed {
			name := partName(part, library)
			candidates = []*Plasmid{}
			for _, def := range library.ComponentDefinitions {
				if !def.HasRole(plasmidRole) || !carries(def, part) {
					continue
				}

				plasmid, err := NewPlasmid(name, def, library, table, opts)
				if err != nil {
					return nil, fmt.Errorf("failed to resolve candidate for %s: %w", part.DisplayID, err)
				}

				log.Debug("found part in plasmid",
					zap.String("part", part.Identity),
					zap.String("plasmid", def.Identity),
					zap.Any("fusionSites", plasmid.FusionSites),
				)
				candidates = append(candidates, plasmid)
			}
			seen[part.Identity] = candidates
		}

		index.Positions = append(index.Positions, &Position{
			Index:      i,
			Part:       part,
			Candidates: candidates,
		})
	}

	return index, nil
}

// partName is the library's label for a part, or the design's if the library
// doesn't define it
func partName(part *sbol.ComponentDefinition, library *sbol.Document) string {
	if def, err := library.ComponentDefinition(part.Identity); err == nil {
		return def.Label()
	}
	return part.Label()
}

// carries returns whether a direct sub-component of the plasmid is the part
func carries(plasmid, part *sbol.ComponentDefinition) bool {
	for _, c := range plasmid.Components {
		if c.Definition == part.Identity {
			return true
		}
	}
	return false
}

// Len is the number of positions in the design.
func (ci *CandidateIndex) Len() int {
	return len(ci.Positions)
}

// Candidates returns the plasmids carrying the part with the identity passed.
func (ci *CandidateIndex) Candidates(part string) []*Plasmid {
	for _, p := range ci.Positions {
		if p.Part.Identity == part {
			return p.Candidates
		}
	}
	return nil
}
