// Package config loads marquee's configuration.
//
// # Resolution Order
//
//  1. Built-in defaults (see Default)
//  2. The TOML file given on the command line, or ~/.config/marquee/config.toml
//  3. MARQUEE_* environment variables
//
// A missing config file is not an error; marquee works without one.
//
// # TOML Format
//
//	api_base = "https://api.disneyapi.dev"
//	page = 1
//	page_size = 100
//	fetch_timeout = "15s"
//	data_dir = "~/.local/share/marquee"
//	storage = "file"          # or "sqlite"
//	log_file = "~/.local/state/marquee/marquee.log"
//	log_level = "info"        # debug, info, warn, error
//
// Every key is optional. Blank values keep the default.
//
// # Environment
//
// MARQUEE_API_BASE, MARQUEE_PAGE, MARQUEE_PAGE_SIZE, MARQUEE_FETCH_TIMEOUT,
// MARQUEE_DATA_DIR, MARQUEE_STORAGE, MARQUEE_LOG_FILE and MARQUEE_LOG_LEVEL
// override the file. Durations use Go syntax ("30s", "1m").
//
// # Errors
//
// Load fails on unreadable files, TOML syntax errors, malformed environment
// values and out-of-range settings (page below 1, unknown storage driver,
// unknown log level). Paths are tilde-expanded and made absolute.
package config
