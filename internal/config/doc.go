// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (fills variables that are not already set)
//  2. Environment variables, with documented defaults
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client. The result is built once at
// startup and handed to every component explicitly.
package config
