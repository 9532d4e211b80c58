// Package syntax extracts variable and value labels from statistical
// syntax files (.sps) and writes them back out.
//
// Only the label-defining statements are understood:
//
//	VARIABLE LABELS
//	  /edad 'Edad en años' /sexo "Sexo del entrevistado" .
//	VALUE LABELS
//	  /sexo '1' 'Hombre' '2' 'Mujer'
//	  /p1 p2 1 'Sí' 2 'No' .
//
// The grammar is not line sensitive. Statements end with a period followed
// by whitespace or end of input; keywords are matched case-insensitively and
// may be abbreviated (VAR LAB, VAL LAB). ADD VALUE LABELS merges into an
// existing dictionary where VALUE LABELS replaces it. Every other statement
// is ignored.
//
// Parsing never fails. Statements that do not have the expected shape are
// skipped and reported as warnings on Document.Diagnostics, since syntax
// exported by third-party survey tools is frequently incomplete.
//
// Codes that look numeric are stored as numbers so that numeric columns can
// key their value labels by value, while the original token text is kept for
// string lookups.
package syntax
