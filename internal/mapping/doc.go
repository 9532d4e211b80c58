// Package mapping provides the YAML override file that pins labeling
// decisions, turning a best-effort reconciliation into a deterministic one.
//
// The same format is produced from a reconciliation result (a manifest), so
// an operator can review it, edit it and feed it back on the next run.
//
// # Schema Overview
//
//	version: "1"
//	# Pin the name of a raw column (before collision suffixing)
//	rename:
//	  "grupo_datos/p1": edad
//	# Raw columns left out of the export
//	drop:
//	  - start
//	  - end
//	# Variable labels by canonical name (highest priority)
//	labels:
//	  edad: "Edad en años"
//	# Value labels by canonical name; merged over the syntax dictionary
//	value_labels:
//	  sexo:
//	    "1": Hombre
//	    "2": Mujer
//
// # Priority Order
//
// When a column is labeled, sources are consulted in this order:
//  1. "labels" / "value_labels" of the override file
//  2. the syntax variable with the same raw name
//  3. the syntax variable with the same canonical name
//  4. the same canonical name compared case-insensitively
//
// Codes in value_labels are coerced like syntax codes: "1" and "1.0" are the
// numeric code 1, anything else is a string code.
package mapping
