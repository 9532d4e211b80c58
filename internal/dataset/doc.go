// Package dataset reads the column names of a survey export.
//
// Exports from LimeSurvey and KoboToolbox arrive as delimited text with a
// header record, in UTF-8 or Latin-1, with comma, semicolon, tab or pipe
// delimiters depending on the locale of the exporting server. Only the header
// is read; the data rows are never loaded.
package dataset
