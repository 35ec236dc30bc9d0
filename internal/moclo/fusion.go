package moclo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jjtimmons/moclo/internal/sbol"
)

// located is a fusion site resolved from one of a plasmid's sub-components
type located struct {
	site      FusionSite
	start     int
	annotated bool
}

// ResolveFusionSites returns the fusion sites on a plasmid in entry, exit order.
//
// Sub-components with the fusion site role have their first sequence looked up
// in the table. The sites are ordered by where they're annotated on the
// plasmid. If any is unannotated, or the ordering is OrderSorted, they're
// sorted by name instead.
func ResolveFusionSites(
	plasmid *sbol.ComponentDefinition,
	doc *sbol.Document,
	table *FusionSiteTable,
	opts Options,
) ([]FusionSite, error) {
	found, err := extractFusionSites(plasmid, doc, table, opts.fusionSiteRole())
	if err != nil {
		return nil, err
	}

	positional := opts.Ordering != OrderSorted && len(found) > 0
	for _, l := range found {
		positional = positional && l.annotated
	}

	if positional {
		sort.SliceStable(found, func(i, j int) bool { return found[i].start < found[j].start })
	} else {
		sort.SliceStable(found, func(i, j int) bool { return found[i].site < found[j].site })
	}

	sites := make([]FusionSite, len(found))
	for i, l := range found {
		sites[i] = l.site
	}
	return sites, nil
}

// extractFusionSites returns the fusion sites of a plasmid in the order its sub-components are declared
func extractFusionSites(
	plasmid *sbol.ComponentDefinition,
	doc *sbol.Document,
	table *FusionSiteTable,
	role string,
) ([]located, error) {
	found := []located{}
	for _, c := range plasmid.Components {
		def, err := doc.ComponentDefinition(c.Definition)
		if err != nil {
			return nil, fmt.Errorf("failed to find sub-component %s of %s: %w", c.Identity, plasmid.Identity, err)
		}
		if !def.HasRole(role) {
			continue
		}

		if len(def.Sequences) == 0 {
			return nil, fmt.Errorf("fusion site %s on %s has no sequence: %w", def.Identity, plasmid.Identity, sbol.ErrNotFound)
		}
		seq, err := doc.Sequence(def.Sequences[0])
		if err != nil {
			return nil, fmt.Errorf("failed to find sequence of fusion site %s: %w", def.Identity, err)
		}

		site, ok := table.Lookup(seq.Elements)
		if !ok {
			return nil, &UnresolvedFusionSiteError{
				Plasmid:  plasmid.Identity,
				Site:     def.Identity,
				Sequence: strings.ToUpper(seq.Elements),
			}
		}

		start, annotated := plasmid.AnnotationStart(c.Identity)
		found = append(found, located{site: site, start: start, annotated: annotated})
	}

	return found, nil
}
