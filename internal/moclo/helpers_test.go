package moclo

import (
	"path/filepath"
	"testing"

	"github.com/jjtimmons/moclo/internal/sbol"
	"github.com/stretchr/testify/require"
)

// plasmid makes a plasmid with already resolved fusion sites
func plasmid(name string, sites ...FusionSite) *Plasmid {
	return &Plasmid{Name: name, Identity: "https://example.org/" + name, FusionSites: sites}
}

// newIndex makes a candidate index with a part per list of candidates
func newIndex(positions ...[]*Plasmid) *CandidateIndex {
	index := &CandidateIndex{}
	for i, candidates := range positions {
		index.Positions = append(index.Positions, &Position{
			Index:      i,
			Part:       &sbol.ComponentDefinition{Identity: "part" + string(rune('0'+i)), DisplayID: "part" + string(rune('0'+i))},
			Candidates: candidates,
		})
	}
	return index
}

// site is a fusion site definition and its sequence
type site struct {
	id  string
	seq string
}

// plasmidDoc makes a document with a single plasmid carrying the fusion sites
// in the order passed. starts, if not nil, annotates the sites on the plasmid
func plasmidDoc(t *testing.T, sites []site, starts []int) (*sbol.Document, *sbol.ComponentDefinition) {
	t.Helper()

	p := &sbol.ComponentDefinition{
		Identity:  "https://example.org/plasmid",
		DisplayID: "plasmid",
		Roles:     []string{sbol.RolePlasmid},
	}
	defs := []*sbol.ComponentDefinition{p}
	seqs := []*sbol.Sequence{}

	for i, s := range sites {
		component := p.Identity + "/" + s.id
		p.Components = append(p.Components, &sbol.Component{
			Identity:   component,
			Definition: "https://example.org/" + s.id,
		})
		if starts != nil {
			p.SequenceAnnotations = append(p.SequenceAnnotations, &sbol.SequenceAnnotation{
				Component: component,
				Start:     starts[i],
				End:       starts[i] + len(s.seq) - 1,
			})
		}

		def := &sbol.ComponentDefinition{
			Identity:  "https://example.org/" + s.id,
			DisplayID: s.id,
			Roles:     []string{sbol.RoleFusionSite},
		}
		if s.seq != "" {
			def.Sequences = []string{def.Identity + "_seq"}
			seqs = append(seqs, &sbol.Sequence{Identity: def.Identity + "_seq", Elements: s.seq})
		}
		defs = append(defs, def)
	}

	doc, err := sbol.NewDocument(defs, seqs)
	require.NoError(t, err)
	return doc, p
}

// readTestdata reads the design, library and backbone fixtures
func readTestdata(t *testing.T) (design, library, backbone *sbol.Document) {
	t.Helper()

	var err error
	design, err = sbol.Read(filepath.Join("testdata", "design.yaml"))
	require.NoError(t, err)
	library, err = sbol.Read(filepath.Join("testdata", "library.yaml"))
	require.NoError(t, err)
	backbone, err = sbol.Read(filepath.Join("testdata", "backbone.yaml"))
	require.NoError(t, err)

	return design, library, backbone
}
