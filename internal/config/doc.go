// Package config provides configuration loading, merging, and validation
// facilities for the form client and the intake server.
//
// Configuration is assembled from multiple sources. When two sources set the
// same field the earlier one wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetServerConfig] for the intake server.
package config
