// Package export writes reconciliation results for collaborators: a code
// dictionary as CSV, the review report as an aligned text table and the
// metadata a SAV writer consumes as JSON.
package export
