// Package diagnostic provides structured warnings, errors, and infos
// collected while parsing label syntax and reconciling it with a dataset.
//
// Key capabilities:
//   - Skipped or malformed syntax statements
//   - Columns without a label, with "did you mean" suggestions
//   - Naming collisions resolved by suffixing
//   - Override file validation errors
package diagnostic
