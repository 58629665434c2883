// Package tabular reads input files into rows of text cells.
//
// ReadFile dispatches on the file extension: delimited text (.csv, .tsv) is
// parsed with standard quoting rules, and spreadsheet containers (.xlsx and
// friends) are read through excelize, first sheet only. Row 0 is always the
// header row; data rows keep their original ragged shape.
package tabular
