// Package config provides configuration loading, merging, and validation
// facilities for the console and the API server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] for the console and
// [GetServerConfig] for the API server.
package config
