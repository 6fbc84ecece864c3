// Package config loads, merges and validates the server configuration.
//
// Sources are applied in order, later sources overriding non-zero fields of
// earlier ones:
//  1. built-in defaults
//  2. environment variables
//  3. command-line flags
//  4. JSON config file
//
// [GetStructuredConfig] is the entry point of the server binary;
// [GetStorageConfig] serves the migration tool.
package config
