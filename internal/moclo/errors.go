package moclo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyDesign is returned for a design without any parts.
var ErrEmptyDesign = errors.New("design has no parts")

// UnresolvedFusionSiteError is a fusion site sub-feature whose sequence isn't in the table.
type UnresolvedFusionSiteError struct {
	// Plasmid is the identity of the plasmid the site is on
	Plasmid string

	// Site is the identity of the fusion site definition
	Site string

	// Sequence is the uppercased sequence that failed to match
	Sequence string
}

func (e *UnresolvedFusionSiteError) Error() string {
	return fmt.Sprintf("fusion site %s on %s has unrecognized sequence %q", e.Site, e.Plasmid, e.Sequence)
}

// InsufficientSitesError is a plasmid with fewer than the two fusion sites
// needed to place it in a chain.
type InsufficientSitesError struct {
	Plasmid string
	Sites   []FusionSite
}

func (e *InsufficientSitesError) Error() string {
	return fmt.Sprintf("%s has %d fusion site(s) %v, needs an entry and an exit", e.Plasmid, len(e.Sites), e.Sites)
}

// NoCompatibleCandidateError is a design position that no plasmid can fill.
type NoCompatibleCandidateError struct {
	// Position in the design, 0-indexed
	Position int

	// Part is the abstract part at the position
	Part string

	// Target is the plasmid (or backbone) the position had to match against
	Target string

	// Site is the entry site the candidates were compared to
	Site FusionSite

	// Closing is the backbone exit the last position must also match, empty otherwise
	Closing FusionSite

	// Candidates is how many plasmids implement the part
	Candidates int
}

func (e *NoCompatibleCandidateError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "no plasmid for %s at position %d", e.Part, e.Position)
	if e.Candidates == 0 {
		b.WriteString(": part not found in any library plasmid")
		return b.String()
	}

	fmt.Fprintf(&b, " of %d candidate(s) enters on %s (exit of %s)", e.Candidates, e.Site, e.Target)
	if e.Closing != "" {
		fmt.Fprintf(&b, " and exits on %s to close the backbone", e.Closing)
	}
	return b.String()
}

// AmbiguousCandidateError is a position more than one plasmid could fill. It's
// only returned when Options.RejectAmbiguous is set; otherwise the first wins.
type AmbiguousCandidateError struct {
	Position   int
	Part       string
	Site       FusionSite
	Candidates []string
}

func (e *AmbiguousCandidateError) Error() string {
	return fmt.Sprintf(
		"%d plasmids for %s at position %d enter on %s: %s",
		len(e.Candidates), e.Part, e.Position, e.Site, strings.Join(e.Candidates, ", "),
	)
}
