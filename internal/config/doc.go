// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources override later zero fields):
//  1. Environment variables (optionally seeded from a local .env file)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the backend service
// and [GetPortalConfig] for the portal runtime.
package config
