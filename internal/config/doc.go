// Package config handles loading and parsing nekmon configuration files.
//
// # Overview
//
// This package reads nekmon's TOML configuration to discover the logfile
// location and tune the polling behavior. Every field is optional; nekmon
// works out-of-the-box without any configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/nekmon/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/nekmon/config.toml
//   - Logfile: ./logfile
//   - Poll interval: 1s
//   - Jam factor: 1.1
//   - Export directory: . (current directory)
//   - Tail lines: 400
//
// # TOML Format
//
// Example config.toml:
//
//	log_path = "~/runs/turbChannel/logfile"
//	poll_interval_ms = 1000
//	jam_factor = 1.1
//	export_dir = "~/runs/turbChannel/plots"
//	tail_lines = 400
//
// Tilde expansion is performed automatically for path fields.
//
// # Jam Threshold
//
// The Jam indicator lights when the gap between two poll ticks exceeds
// PollInterval * JamFactor. JamThreshold computes this value, substituting
// defaults when either factor is out of range (interval <= 0, factor <= 1).
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead.
//
// # Design Philosophy
//
// The config package is read-only and stateless - it loads configuration
// once at startup and returns an immutable Config struct. No global state
// or singleton patterns are used.
package config
