package moclo

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestResolveChain(t *testing.T) {
	backbone := plasmid("DVA_AE", "A", "E")

	tests := []struct {
		name     string
		index    *CandidateIndex
		backbone *Plasmid
		want     []string
	}{
		{
			"two parts with one candidate each",
			newIndex(
				[]*Plasmid{plasmid("p1", "X", "M")},
				[]*Plasmid{plasmid("p2", "M", "Y")},
			),
			plasmid("bb", "X", "Y"),
			[]string{"p1", "p2"},
		},
		{
			"mismatched candidates are skipped",
			newIndex(
				[]*Plasmid{plasmid("promoter_GB", "G", "B"), plasmid("promoter_AB", "A", "B")},
				[]*Plasmid{plasmid("rbs_AC", "A", "C"), plasmid("rbs_BC", "B", "C")},
				[]*Plasmid{plasmid("cds_CD", "C", "D")},
				[]*Plasmid{plasmid("term_DF", "D", "F"), plasmid("term_DE", "D", "E")},
			),
			backbone,
			[]string{"promoter_AB", "rbs_BC", "cds_CD", "term_DE"},
		},
		{
			"first compatible candidate wins",
			newIndex(
				[]*Plasmid{plasmid("first", "A", "B"), plasmid("second", "A", "B")},
				[]*Plasmid{plasmid("term", "B", "E")},
			),
			backbone,
			[]string{"first", "term"},
		},
		{
			"single part closes against both backbone sites",
			newIndex(
				[]*Plasmid{plasmid("open", "A", "B"), plasmid("closed", "A", "E")},
			),
			backbone,
			[]string{"closed"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveChain(tt.index, tt.backbone, Options{})
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got.Names()); diff != "" {
				t.Errorf("ResolveChain() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// closed checks the chain enters and exits on the backbone and every junction matches
func closed(t *testing.T, chain AssemblyChain, backbone *Plasmid) {
	t.Helper()

	require.NotEmpty(t, chain)
	assert.Equal(t, backbone.FusionSites[0], chain[0].FusionSites[0])
	for i := 0; i < len(chain)-1; i++ {
		assert.Equal(t, chain[i].FusionSites[1], chain[i+1].FusionSites[0], "junction %d", i)
	}
	assert.Equal(t, backbone.FusionSites[1], chain[len(chain)-1].FusionSites[1])
}

func TestResolveChain_closureAndDeterminism(t *testing.T) {
	backbone := plasmid("bb", "A", "E")
	index := newIndex(
		[]*Plasmid{plasmid("p_AB", "A", "B"), plasmid("p_AC", "A", "C")},
		[]*Plasmid{plasmid("r_BC", "B", "C"), plasmid("r_CD", "C", "D")},
		[]*Plasmid{plasmid("c_CD", "C", "D"), plasmid("c_DE", "D", "E")},
		[]*Plasmid{plasmid("t_DE", "D", "E")},
	)

	for _, strategy := range []Strategy{StrategyGreedy, StrategyBacktrack} {
		t.Run(string(strategy), func(t *testing.T) {
			first, err := ResolveChain(index, backbone, Options{Strategy: strategy})
			require.NoError(t, err)
			assert.Len(t, first, index.Len())
			closed(t, first, backbone)

			for i := 0; i < 10; i++ {
				again, err := ResolveChain(index, backbone, Options{Strategy: strategy})
				require.NoError(t, err)
				assert.Equal(t, first.Names(), again.Names())
			}
		})
	}
}

func TestResolveChain_noCompatibleCandidate(t *testing.T) {
	backbone := plasmid("bb", "A", "E")

	tests := []struct {
		name     string
		index    *CandidateIndex
		strategy Strategy
		want     NoCompatibleCandidateError
	}{
		{
			"entry mismatch at first position",
			newIndex(
				[]*Plasmid{plasmid("p_GB", "G", "B")},
				[]*Plasmid{plasmid("t_BE", "B", "E")},
			),
			StrategyGreedy,
			NoCompatibleCandidateError{Position: 0, Part: "part0", Target: "bb", Site: "A", Candidates: 1},
		},
		{
			"last position doesn't close",
			newIndex(
				[]*Plasmid{plasmid("p_AB", "A", "B")},
				[]*Plasmid{plasmid("t_BF", "B", "F")},
			),
			StrategyGreedy,
			NoCompatibleCandidateError{Position: 1, Part: "part1", Target: "p_AB", Site: "B", Closing: "E", Candidates: 1},
		},
		{
			"part with no plasmids",
			newIndex(
				[]*Plasmid{plasmid("p_AB", "A", "B")},
				[]*Plasmid{},
				[]*Plasmid{plasmid("t_CE", "C", "E")},
			),
			StrategyGreedy,
			NoCompatibleCandidateError{Position: 1, Part: "part1", Target: "p_AB", Site: "B", Candidates: 0},
		},
		{
			"greedy doesn't revisit an earlier pick",
			newIndex(
				[]*Plasmid{plasmid("p_AC", "A", "C"), plasmid("p_AB", "A", "B")},
				[]*Plasmid{plasmid("t_BE", "B", "E")},
			),
			StrategyGreedy,
			NoCompatibleCandidateError{Position: 1, Part: "part1", Target: "p_AC", Site: "C", Closing: "E", Candidates: 1},
		},
		{
			"backtracking reports the deepest failure",
			newIndex(
				[]*Plasmid{plasmid("p_AB", "A", "B"), plasmid("p_AC", "A", "C")},
				[]*Plasmid{plasmid("r_BD", "B", "D"), plasmid("r_CD", "C", "D")},
				[]*Plasmid{plasmid("t_DF", "D", "F")},
			),
			StrategyBacktrack,
			NoCompatibleCandidateError{Position: 2, Part: "part2", Target: "r_BD", Site: "D", Closing: "E", Candidates: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain, err := ResolveChain(tt.index, backbone, Options{Strategy: tt.strategy})
			assert.Nil(t, chain)

			var noMatch *NoCompatibleCandidateError
			require.True(t, errors.As(err, &noMatch), "got %v", err)
			assert.Equal(t, tt.want, *noMatch)
			assert.NotEmpty(t, noMatch.Error())
		})
	}
}

func TestResolveChain_backtrack(t *testing.T) {
	backbone := plasmid("bb", "A", "E")
	index := newIndex(
		[]*Plasmid{plasmid("p_AC", "A", "C"), plasmid("p_AB", "A", "B")},
		[]*Plasmid{plasmid("r_CF", "C", "F"), plasmid("r_BD", "B", "D")},
		[]*Plasmid{plasmid("t_DE", "D", "E")},
	)

	_, err := ResolveChain(index, backbone, Options{})
	var noMatch *NoCompatibleCandidateError
	require.ErrorAs(t, err, &noMatch)

	core, logs := observer.New(zapcore.DebugLevel)
	chain, err := ResolveChain(index, backbone, Options{Strategy: StrategyBacktrack, Logger: zap.New(core)})
	require.NoError(t, err)
	assert.Equal(t, []string{"p_AB", "r_BD", "t_DE"}, chain.Names())
	closed(t, chain, backbone)
	assert.Equal(t, 2, logs.FilterMessage("backtracking").Len())
}

func TestResolveChain_ambiguous(t *testing.T) {
	backbone := plasmid("bb", "A", "E")
	index := newIndex(
		[]*Plasmid{plasmid("first", "A", "B"), plasmid("other", "G", "B"), plasmid("second", "A", "B")},
		[]*Plasmid{plasmid("term", "B", "E")},
	)

	core, logs := observer.New(zapcore.DebugLevel)
	chain, err := ResolveChain(index, backbone, Options{Logger: zap.New(core)})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "term"}, chain.Names())
	assert.Equal(t, 1, logs.FilterMessage("multiple plasmids fit, keeping the first").Len())
	assert.Equal(t, 1, logs.FilterMessage("matched final plasmid").Len())

	_, err = ResolveChain(index, backbone, Options{RejectAmbiguous: true})
	var ambiguous *AmbiguousCandidateError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, AmbiguousCandidateError{
		Position:   0,
		Part:       "part0",
		Site:       "A",
		Candidates: []string{"first", "second"},
	}, *ambiguous)
}

func TestResolveChain_insufficientSites(t *testing.T) {
	var insufficient *InsufficientSitesError

	_, err := ResolveChain(newIndex([]*Plasmid{plasmid("p", "A", "E")}), plasmid("bb", "A"), Options{})
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "bb", insufficient.Plasmid)

	_, err = ResolveChain(newIndex([]*Plasmid{plasmid("short", "A"), plasmid("p", "A", "E")}), plasmid("bb", "A", "E"), Options{})
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "short", insufficient.Plasmid)
}

func TestResolveChain_shortPlasmidAfterMatch(t *testing.T) {
	index := newIndex(
		[]*Plasmid{plasmid("good", "A", "B"), plasmid("short", "A")},
		[]*Plasmid{plasmid("term", "B", "E")},
	)

	for _, strategy := range []Strategy{StrategyGreedy, StrategyBacktrack} {
		t.Run(string(strategy), func(t *testing.T) {
			chain, err := ResolveChain(index, plasmid("bb", "A", "E"), Options{Strategy: strategy, RejectAmbiguous: true})
			require.NoError(t, err)
			assert.Equal(t, []string{"good", "term"}, chain.Names())
		})
	}
}

func TestResolveChain_emptyDesign(t *testing.T) {
	_, err := ResolveChain(newIndex(), plasmid("bb", "A", "E"), Options{})
	assert.ErrorIs(t, err, ErrEmptyDesign)
}
