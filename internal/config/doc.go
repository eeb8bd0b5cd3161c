// Package config handles loading and parsing Shuttle configuration files.
//
// # Overview
//
// Shuttle reads a small TOML file describing where the Loom gateway lives
// and how aggressively to page through its collections. Everything has a
// sensible default, so Shuttle works with no config file at all on a
// machine running the gateway in its default location.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/shuttle/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Configuration Fields
//
//   - api_bind: HTTP endpoint (host:port) of the Loom gateway
//     (default 127.0.0.1:7600)
//   - page_size: records requested per page fetch (default 100)
//   - debounce_ms: quiet period applied to filter/sort changes before a
//     reset fetch is issued (default 200)
//   - scroll_threshold: remaining rows to the bottom of the list under
//     which the next page is requested (default 12)
//
// Example config.toml:
//
//	api_bind = "127.0.0.1:7600"
//	page_size = 50
//	debounce_ms = 300
//	scroll_threshold = 8
//
// All fields are optional. Tilde expansion is performed for the config file
// path. Non-positive numeric values are treated as unset.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), and TOML parsing errors. A
// missing config file is NOT an error.
package config
