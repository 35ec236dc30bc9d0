// Package moclo resolves an abstract genetic design into a chain of MoClo
// plasmids whose fusion sites let them be joined end to end into a backbone.
package moclo

import (
	"fmt"

	"github.com/jjtimmons/moclo/internal/sbol"
	"go.uber.org/zap"
)

// Ordering is how a plasmid's resolved fusion sites are put in entry, exit order.
type Ordering string

const (
	// OrderPositional orders sites by their annotation start on the plasmid,
	// sorting by name if any site is unannotated
	OrderPositional Ordering = "positional"

	// OrderSorted always sorts sites by name
	OrderSorted Ordering = "sorted"
)

// Strategy is how the chain resolver picks between compatible plasmids.
type Strategy string

const (
	// StrategyGreedy takes the first compatible plasmid at each position and never revisits it
	StrategyGreedy Strategy = "greedy"

	// StrategyBacktrack searches depth first, revisiting earlier picks when a later position fails
	StrategyBacktrack Strategy = "backtrack"
)

// Options are the knobs of a single resolution.
type Options struct {
	// Logger receives the trace of matching decisions. Nop if nil
	Logger *zap.Logger

	// Ordering of fusion sites on a plasmid. Positional if empty
	Ordering Ordering

	// Strategy for the chain resolver. Greedy if empty
	Strategy Strategy

	// RejectAmbiguous fails a greedy resolution when more than one plasmid
	// could fill a position, rather than taking the first one found
	RejectAmbiguous bool

	// FusionSiteRole is the role marking overhang sub-features
	FusionSiteRole string

	// PlasmidRole is the role marking library entries as plasmids
	PlasmidRole string
}

// ParseOrdering validates an ordering name.
func ParseOrdering(s string) (Ordering, error) {
	switch o := Ordering(s); o {
	case "", OrderPositional:
		return OrderPositional, nil
	case OrderSorted:
		return o, nil
	default:
		return "", fmt.Errorf("unknown fusion site ordering %q, expected %q or %q", s, OrderPositional, OrderSorted)
	}
}

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case "", StrategyGreedy:
		return StrategyGreedy, nil
	case StrategyBacktrack:
		return st, nil
	default:
		return "", fmt.Errorf("unknown strategy %q, expected %q or %q", s, StrategyGreedy, StrategyBacktrack)
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) fusionSiteRole() string {
	if o.FusionSiteRole == "" {
		return sbol.RoleFusionSite
	}
	return o.FusionSiteRole
}

func (o Options) plasmidRole() string {
	if o.PlasmidRole == "" {
		return sbol.RolePlasmid
	}
	return o.PlasmidRole
}
