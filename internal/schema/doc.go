// Package schema decides which tabular files belong together and how their
// rows line up once combined.
//
// The package is pure: every function maps inputs to outputs with no I/O and
// no shared state. GroupHeaders partitions files into compatibility groups by
// Jaccard overlap of column-name sets, MergeHeaders builds a group's unified
// column ordering, RemapRows realigns source rows into that ordering, and
// OutputName derives the deterministic artifact name for a group.
package schema
