// Package config provides configuration loading, merging, and validation
// for the tinyfs command line tool.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. TINYFS_* environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The container password is only ever taken from TINYFS_PASS.
package config
