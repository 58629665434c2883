// Package pipeline orchestrates one merging run: discover input files, read
// them, partition them into header-compatible groups, and write one
// consolidated artifact per group.
//
// The schema decisions live in package schema; the pipeline only sequences
// the collaborators and applies the error policy: per-file read problems are
// logged and skipped, a write failure aborts the whole run.
package pipeline
