// Package config loads settings for the Registry Broker tools from, in
// increasing order of precedence: built-in defaults, a TOML file, a .env
// file, and the process environment.
//
// Example registry-broker.toml:
//
//	base_url  = "https://hol.org/registry/api/v1"
//	api_key   = "<registry-broker-api-key>"
//	timeout   = "30s"
//	log_level = "info"
package config
