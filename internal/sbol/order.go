package sbol

import (
	"fmt"
	"sort"
)

// InSequentialOrder returns the definition's components 5' to 3'.
//
// "precedes" constraints are honored first. Components the constraints don't
// order relative to one another fall back to their annotation start and then
// to the order they were declared in.
func (cd *ComponentDefinition) InSequentialOrder() ([]*Component, error) {
	n := len(cd.Components)
	byID := make(map[string]int, n)
	for i, c := range cd.Components {
		byID[c.Identity] = i
	}

	// rank each component by annotation start, unannotated ones after
	type rank struct {
		annotated bool
		start     int
		decl      int
	}
	ranks := make([]rank, n)
	for i, c := range cd.Components {
		start, ok := cd.AnnotationStart(c.Identity)
		ranks[i] = rank{annotated: ok, start: start, decl: i}
	}
	less := func(a, b int) bool {
		ra, rb := ranks[a], ranks[b]
		if ra.annotated != rb.annotated {
			return ra.annotated
		}
		if ra.annotated && ra.start != rb.start {
			return ra.start < rb.start
		}
		return ra.decl < rb.decl
	}

	inDegree := make([]int, n)
	next := make([][]int, n)
	for _, sc := range cd.SequenceConstraints {
		if sc.Restriction != Precedes {
			continue
		}
		s, ok := byID[sc.Subject]
		if !ok {
			return nil, fmt.Errorf("constraint subject %s in %s: %w", sc.Subject, cd.Identity, ErrNotFound)
		}
		o, ok := byID[sc.Object]
		if !ok {
			return nil, fmt.Errorf("constraint object %s in %s: %w", sc.Object, cd.Identity, ErrNotFound)
		}
		next[s] = append(next[s], o)
		inDegree[o]++
	}

	ready := []int{}
	for i := 0; i < n; i++ {
		if inDegree[i] == 0 {
			ready = append(ready, i)
		}
	}

	ordered := make([]*Component, 0, n)
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return less(ready[i], ready[j]) })
		head := ready[0]
		ready = ready[1:]
		ordered = append(ordered, cd.Components[head])

		for _, o := range next[head] {
			inDegree[o]--
			if inDegree[o] == 0 {
				ready = append(ready, o)
			}
		}
	}

	if len(ordered) != n {
		return nil, fmt.Errorf("sequence constraints of %s contain a cycle", cd.Identity)
	}

	return ordered, nil
}

// SequentialDefinitions returns the definitions of a design's components 5' to 3'.
func (d *Document) SequentialDefinitions(design *ComponentDefinition) ([]*ComponentDefinition, error) {
	components, err := design.InSequentialOrder()
	if err != nil {
		return nil, err
	}

	defs := make([]*ComponentDefinition, 0, len(components))
	for _, c := range components {
		def, err := d.ComponentDefinition(c.Definition)
		if err != nil {
			return nil, fmt.Errorf("failed to find part of %s: %w", design.Identity, err)
		}
		defs = append(defs, def)
	}

	return defs, nil
}
