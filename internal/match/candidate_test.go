package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCandidates(t *testing.T) {
	candidates := RankCandidates("sexoo", []string{"edad", "sexo", "ciudad"})
	require.Len(t, candidates, 3)

	best := candidates[0]
	assert.Equal(t, "sexo", best.Name)
	assert.Equal(t, "sexoo", best.Target)
	assert.InDelta(t, 0.8, best.Score, 1e-9)

	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].Score, candidates[i].Score)
	}
}

func TestRankCandidates_SuffixStrip(t *testing.T) {
	candidates := RankCandidates("p3_otro", []string{"p4", "p3_comment", "p3"})
	require.Len(t, candidates, 3)

	// both p3 forms strip to "p3"; ties break by name
	assert.Equal(t, []string{"p3", "p3_comment", "p4"}, candidates.Names())
	assert.InDelta(t, 1.0, candidates[0].Score, 1e-9)
	assert.True(t, candidates.IsAmbiguous(DefaultAmbiguityThreshold))
}

func TestRankCandidates_Empty(t *testing.T) {
	candidates := RankCandidates("edad", nil)
	assert.Empty(t, candidates)
	assert.False(t, candidates.IsAmbiguous(DefaultAmbiguityThreshold))
	assert.Nil(t, candidates.Names())
}

func TestCandidateList_TopAndThreshold(t *testing.T) {
	list := CandidateList{
		{Name: "a", Score: 0.9},
		{Name: "b", Score: 0.7},
		{Name: "c", Score: 0.3},
	}

	assert.Len(t, list.Top(2), 2)
	assert.Len(t, list.Top(10), 3)
	assert.Equal(t, []string{"a", "b"}, list.AboveThreshold(0.6).Names())
	assert.False(t, list.IsAmbiguous(0.1))
}

func TestSuggest(t *testing.T) {
	pool := []string{"edad", "sexo", "ciudad", "grupo/nivel_educativo"}

	tests := []struct {
		name          string
		target        string
		limit         int
		wantNames     []string
		wantAmbiguous bool
	}{
		{name: "single close name", target: "sexoo", limit: DefaultMaxSuggestions, wantNames: []string{"sexo"}},
		{name: "grouped name", target: "NivelEducativo", limit: 1, wantNames: []string{"grupo/nivel_educativo"}},
		{name: "nothing close", target: "zzz", limit: DefaultMaxSuggestions},
		{name: "suggestions disabled", target: "sexo", limit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, ambiguous := Suggest(tt.target, pool, tt.limit, DefaultSuggestionThreshold)
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, tt.wantAmbiguous, ambiguous)
		})
	}
}

func TestSuggest_Ambiguous(t *testing.T) {
	pool := []string{"g1/p3", "g2/p3", "edad"}

	names, ambiguous := Suggest("p3_otro", pool, 1, DefaultSuggestionThreshold)
	assert.Equal(t, []string{"g1/p3"}, names)
	assert.True(t, ambiguous)
}
