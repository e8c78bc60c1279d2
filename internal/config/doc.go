// Package config provides configuration loading, merging, and validation
// facilities for the notes client and the maintenance server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (server only)
//  3. JSON config file
//
// The main entry points are [GetServerConfig] for the maintenance server and
// [GetClientConfig] for the terminal client.
package config
