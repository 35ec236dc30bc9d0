package moclo

import (
	"go.uber.org/zap"
)

// AssemblyChain is one plasmid per design position, joinable end to end.
type AssemblyChain []*Plasmid

// Names returns the names of the plasmids in the chain.
func (c AssemblyChain) Names() []string {
	names := make([]string, len(c))
	for i, p := range c {
		names[i] = p.Name
	}
	return names
}

// ResolveChain picks a plasmid for each position of the index such that the
// first enters on the backbone's entry site, each following plasmid enters on
// its predecessor's exit site, and the last exits on the backbone's exit site.
//
// When more than one plasmid fits a position the first in library order wins.
func ResolveChain(index *CandidateIndex, backbone *Plasmid, opts Options) (AssemblyChain, error) {
	if index.Len() == 0 {
		return nil, ErrEmptyDesign
	}
	if _, err := backbone.Exit(); err != nil {
		return nil, err
	}

	if opts.Strategy == StrategyBacktrack {
		return backtrack(index, backbone, opts)
	}
	return greedy(index, backbone, opts)
}

// greedy walks the design once, keeping the first compatible plasmid at each position
func greedy(index *CandidateIndex, backbone *Plasmid, opts Options) (AssemblyChain, error) {
	log := opts.logger()
	chain := make(AssemblyChain, 0, index.Len())

	matchTarget := backbone // plasmid whose site the next position has to match
	matchIndex := 0         // backbone's entry site, then each pick's exit site
	last := index.Len() - 1

	for i, pos := range index.Positions {
		site := matchTarget.FusionSites[matchIndex]
		matches, err := compatible(pos, site, backbone, i == last)
		if err != nil {
			return nil, err
		}

		if len(matches) == 0 {
			return nil, noCandidate(pos, matchTarget, site, backbone, i == last)
		}
		if len(matches) > 1 {
			if opts.RejectAmbiguous {
				return nil, &AmbiguousCandidateError{
					Position:   i,
					Part:       pos.Part.DisplayID,
					Site:       site,
					Candidates: AssemblyChain(matches).Names(),
				}
			}
			log.Debug("multiple plasmids fit, keeping the first",
				zap.Int("position", i),
				zap.Strings("plasmids", AssemblyChain(matches).Names()),
			)
		}

		selected := matches[0]
		chain = append(chain, selected)
		if i == last {
			log.Debug("matched final plasmid",
				zap.String("plasmid", selected.Name),
				zap.String("target", matchTarget.Name),
				zap.String("backbone", backbone.Name),
				zap.Any("fusionSites", selected.FusionSites),
			)
			break
		}

		log.Debug("matched plasmid",
			zap.String("plasmid", selected.Name),
			zap.String("target", matchTarget.Name),
			zap.String("fusionSite", string(site)),
		)
		matchTarget = selected
		matchIndex = 1
	}

	return chain, nil
}

// backtrack searches depth first for the first chain in library order
func backtrack(index *CandidateIndex, backbone *Plasmid, opts Options) (AssemblyChain, error) {
	log := opts.logger()
	chain := make(AssemblyChain, index.Len())
	last := index.Len() - 1

	// the failure at the deepest position reached is the most useful to report
	var deepest *NoCompatibleCandidateError

	var search func(i int, target *Plasmid, site FusionSite) (bool, error)
	search = func(i int, target *Plasmid, site FusionSite) (bool, error) {
		if i > last {
			return true, nil
		}

		pos := index.Positions[i]
		matches, err := compatible(pos, site, backbone, i == last)
		if err != nil {
			return false, err
		}

		if len(matches) == 0 {
			if deepest == nil || i > deepest.Position {
				deepest = noCandidate(pos, target, site, backbone, i == last)
			}
			return false, nil
		}

		for _, m := range matches {
			chain[i] = m
			found, err := search(i+1, m, m.FusionSites[1])
			if err != nil || found {
				return found, err
			}
			log.Debug("backtracking", zap.Int("position", i), zap.String("plasmid", m.Name))
		}
		return false, nil
	}

	found, err := search(0, backbone, backbone.FusionSites[0])
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, deepest
	}

	return chain, nil
}

// compatible returns the candidates at a position entering on site, in library
// order. The final position's candidates must also exit on the backbone's exit.
//
// A candidate without an entry and an exit is an error only if it's reached
// before the first match. Past that it's skipped.
func compatible(pos *Position, site FusionSite, backbone *Plasmid, closing bool) ([]*Plasmid, error) {
	matches := []*Plasmid{}
	for _, p := range pos.Candidates {
		entry, err := p.Entry()
		if err != nil {
			if len(matches) > 0 {
				continue
			}
			return nil, err
		}
		if entry != site {
			continue
		}
		if closing && p.FusionSites[1] != backbone.FusionSites[1] {
			continue
		}
		matches = append(matches, p)
	}
	return matches, nil
}

func noCandidate(pos *Position, target *Plasmid, site FusionSite, backbone *Plasmid, closing bool) *NoCompatibleCandidateError {
	err := &NoCompatibleCandidateError{
		Position:   pos.Index,
		Part:       pos.Part.DisplayID,
		Target:     target.Name,
		Site:       site,
		Candidates: len(pos.Candidates),
	}
	if closing {
		err.Closing = backbone.FusionSites[1]
	}
	return err
}
