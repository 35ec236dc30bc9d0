package moclo

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jjtimmons/moclo/internal/sbol"
	"go.uber.org/zap"
)

// Result is a resolved design.
type Result struct {
	// Design is the abstract design's top level definition
	Design *sbol.ComponentDefinition

	// Backbone the chain closes against
	Backbone *Plasmid

	// Index of candidates the chain was picked from
	Index *CandidateIndex

	// Chain of plasmids, one per design part
	Chain AssemblyChain
}

// Translate resolves the top level design of designDoc into plasmids from the
// library that assemble into the top level plasmid of backboneDoc.
func Translate(
	designDoc, library, backboneDoc *sbol.Document,
	table *FusionSiteTable,
	opts Options,
) (*Result, error) {
	opts.Logger = opts.logger().With(zap.String("run", uuid.New().String()))

	design, err := designDoc.TopLevel()
	if err != nil {
		return nil, fmt.Errorf("failed to find design: %w", err)
	}

	backboneDef, err := backboneDoc.TopLevel()
	if err != nil {
		return nil, fmt.Errorf("failed to find backbone: %w", err)
	}

	parts, err := designDoc.SequentialDefinitions(design)
	if err != nil {
		return nil, fmt.Errorf("failed to order parts of %s: %w", design.DisplayID, err)
	}
	opts.Logger.Info("translating design",
		zap.String("design", design.Identity),
		zap.Int("parts", len(parts)),
		zap.String("backbone", backboneDef.Identity),
	)

	index, err := BuildCandidateIndex(parts, library, table, opts)
	if err != nil {
		return nil, err
	}

	backbone, err := NewPlasmid(backboneDef.DisplayID, backboneDef, backboneDoc, table, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve backbone: %w", err)
	}

	chain, err := ResolveChain(index, backbone, opts)
	if err != nil {
		return nil, err
	}
	opts.Logger.Info("resolved chain", zap.Strings("plasmids", chain.Names()))

	return &Result{
		Design:   design,
		Backbone: backbone,
		Index:    index,
		Chain:    chain,
	}, nil
}
