// Package config provides configuration loading, merging, and validation
// facilities for the unit dispatcher.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. JSON config file
//
// Fields left unset by every source receive defaults, and the result is
// validated before use. The main entry point is [GetStructuredConfig].
package config
