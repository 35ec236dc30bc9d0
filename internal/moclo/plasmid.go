package moclo

import (
	"fmt"
	"strings"

	"github.com/jjtimmons/moclo/internal/sbol"
)

// Plasmid is a physical DNA part with its resolved fusion sites.
type Plasmid struct {
	// Name of the part in the plasmid, suffixed with its fusion sites: "GFP_C_D"
	Name string `json:"name"`

	// Identity of the plasmid's component definition
	Identity string `json:"identity"`

	// FusionSites in entry, exit order
	FusionSites []FusionSite `json:"fusionSites"`

	definition *sbol.ComponentDefinition
}

// NewPlasmid resolves the fusion sites of a plasmid definition.
func NewPlasmid(
	name string,
	def *sbol.ComponentDefinition,
	doc *sbol.Document,
	table *FusionSiteTable,
	opts Options,
) (*Plasmid, error) {
	sites, err := ResolveFusionSites(def, doc, table, opts)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(name)
	for _, s := range sites {
		b.WriteString("_")
		b.WriteString(string(s))
	}

	return &Plasmid{
		Name:        b.String(),
		Identity:    def.Identity,
		FusionSites: sites,
		definition:  def,
	}, nil
}

// Definition is the plasmid's SBOL record.
func (p *Plasmid) Definition() *sbol.ComponentDefinition {
	return p.definition
}

// Entry is the plasmid's 5' fusion site.
func (p *Plasmid) Entry() (FusionSite, error) {
	return p.site(0)
}

// Exit is the plasmid's 3' fusion site.
func (p *Plasmid) Exit() (FusionSite, error) {
	return p.site(1)
}

// site returns the fusion site at index i, failing if the plasmid can't join a chain
func (p *Plasmid) site(i int) (FusionSite, error) {
	if len(p.FusionSites) < 2 {
		return "", &InsufficientSitesError{Plasmid: p.Name, Sites: p.FusionSites}
	}
	return p.FusionSites[i], nil
}

func (p *Plasmid) String() string {
	sites := "not found"
	if len(p.FusionSites) > 0 {
		sites = fmt.Sprint(p.FusionSites)
	}
	return fmt.Sprintf("%s (%s) fusion sites: %s", p.Name, p.Identity, sites)
}
