// Package config loads reelboard's runtime settings.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/reelboard/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. REELBOARD_* environment variables override whatever the file set
//
// # Default Values
//
//   - Config file: ~/.config/reelboard/config.toml
//   - Log file: ~/.local/state/reelboard/reelboard.log
//   - Log level: info
//   - Log format: json
//   - Script generation delay: 600ms
//   - Smooth scroll step: 3 rows per frame
//
// # File Format
//
//	log_path = "~/.local/state/reelboard/reelboard.log"
//	log_level = "debug"
//	log_format = "console"
//	generate_delay_ms = 600
//	scroll_step = 3
//
// # Environment
//
//   - REELBOARD_LOG_PATH
//   - REELBOARD_LOG_LEVEL
//   - REELBOARD_GENERATE_DELAY (Go duration, e.g. "250ms")
//
// # Error Handling
//
// A missing file is not an error. An unreadable file, invalid TOML, an unknown
// log_format or a malformed environment value is returned to the caller
// wrapped with context ("open config", "parse config", "parse environment").
//
// Theme colors are not configurable here; they are compiled into the ui
// package and the chosen theme name lives in the prefs package.
package config
