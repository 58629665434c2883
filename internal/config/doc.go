// Package config loads the tool's configuration in three layers: built-in
// defaults, an optional config.yaml file, then TABLEMERGE_* environment
// variables, with later layers taking precedence field by field. Validation
// normalizes unknown logging values instead of failing; only an unusable
// extension allow-list is an error.
package config
