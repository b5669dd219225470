// Package config loads Atlas settings from a TOML file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/atlas/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # TOML Format
//
//	api_url = "https://restcountries.com/v3.1/all"
//	request_timeout_seconds = 15
//	log_dir = "~/.local/share/atlas/logs"
//	export_dir = "~/.local/share/atlas/charts"
//	listen = ""            # e.g. ":8080" to serve the web frontend
//
// Every field is optional. Directory fields get tilde expansion and are made
// absolute. The field projection of api_url is always replaced by the client,
// so only the scheme, host and path matter.
//
// # Error Handling
//
// Missing config files are not an error. Load fails on unreadable files,
// invalid TOML and a negative timeout.
package config
