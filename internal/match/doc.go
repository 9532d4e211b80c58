// Package match provides column name normalization and fuzzy name matching
// for joining dataset columns with the variables of a label syntax file.
//
// Key functions:
//   - Canonical: the single naming policy applied to both sides of the join
//   - Namer: per-pass assignment of unique canonical names
//   - NormalizeIdent: folds identifiers for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks "did you mean" suggestions for unmatched columns
package match
