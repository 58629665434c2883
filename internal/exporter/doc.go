// Package exporter serializes unified tables to delimited output artifacts.
//
// CSVWriter is the writer collaborator of the merging pipeline: one call per
// group, header first, then every remapped row, with standard field quoting
// and an optional UTF-8 BOM so spreadsheet tools pick up the encoding.
package exporter
