package match

import (
	"sort"
	"strings"
)

// Candidate is a possible match between an unmatched column and a variable
// of the label syntax.
type Candidate struct {
	// Name is the candidate variable as written in the syntax.
	Name string
	// Target is the column the candidate is ranked for.
	Target string

	// Score is the normalized Levenshtein similarity (0-1) of the folded
	// names, taking the better of the plain and suffix-stripped forms.
	Score float64

	// Metadata for debugging/explanation
	NormalizedName   string
	NormalizedTarget string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every pool name against target and returns the
// candidates sorted by score (descending).
func RankCandidates(target string, pool []string) CandidateList {
	candidates := make(CandidateList, 0, len(pool))

	targetNorm := NormalizeIdent(target)
	targetNormStripped := NormalizeIdentWithSuffixStrip(target)

	for _, name := range pool {
		nameNorm := NormalizeIdent(name)
		nameNormStripped := NormalizeIdentWithSuffixStrip(name)

		score := LevenshteinNormalized(nameNorm, targetNorm)
		if stripped := LevenshteinNormalized(nameNormStripped, targetNormStripped); stripped > score {
			score = stripped
		}

		candidates = append(candidates, Candidate{
			Name:             name,
			Target:           target,
			Score:            score,
			NormalizedName:   nameNorm,
			NormalizedTarget: targetNorm,
		})
	}

	// Sort by score (descending), then by name for determinism
	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to limit pool names scoring at least threshold against
// target, best first. ambiguous is true when the two best of them score
// within DefaultAmbiguityThreshold of each other.
func Suggest(target string, pool []string, limit int, threshold float64) (names []string, ambiguous bool) {
	if limit <= 0 || len(pool) == 0 {
		return nil, false
	}

	ranked := RankCandidates(target, pool).AboveThreshold(threshold)

	return ranked.Top(limit).Names(), ranked.IsAmbiguous(DefaultAmbiguityThreshold)
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return strings.Compare(c[i].Name, c[j].Name) < 0
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < threshold
}

// AboveThreshold returns candidates with score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Names returns the candidate names in ranking order.
func (c CandidateList) Names() []string {
	if len(c) == 0 {
		return nil
	}

	names := make([]string, len(c))
	for i, cand := range c {
		names[i] = cand.Name
	}

	return names
}

// Suggestion defaults.
const (
	// DefaultSuggestionThreshold is the minimum score for a suggestion.
	DefaultSuggestionThreshold = 0.6
	// DefaultMaxSuggestions is the number of suggestions per unmatched column.
	DefaultMaxSuggestions = 3
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.1
)
