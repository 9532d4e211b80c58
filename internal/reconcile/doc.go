// Package reconcile joins the labels of a parsed syntax document with the
// column names of a dataset.
//
// Every kept column gets a unique canonical name (see match.Namer), a label
// and, when one is defined, a code dictionary. Label lookup for a column
// tries, in order:
//
//  1. A label pinned in the override file
//  2. A syntax variable whose raw name equals the raw column name
//  3. A syntax variable whose canonical name equals the column name
//  4. The same comparison with case folded
//
// Reconcile never fails. Unmatched columns fall back to their raw name as
// label and are listed in the report together with "did you mean"
// suggestions taken from the syntax variables no column claimed.
package reconcile
