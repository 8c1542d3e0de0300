// Package config provides configuration management for dailylog.
//
// Settings are layered with the following precedence, from lowest to highest:
//
//  1. Defaults from New()
//  2. The TOML config file (--config, or .dailylog.toml in the repository)
//  3. Environment variables prefixed with DAILYLOG_
//  4. Command-line flags
//
// Flags and environment variables are bound through urfave/cli. The TOML
// file is applied afterwards with LoadFile, which leaves alone every value
// the command line or environment already set. Finalize validates the
// result.
//
// # Config File
//
//	log_file  = "learning_log.md"
//	remote    = "origin"
//	multi     = false
//	count     = 7
//	delay     = "2s"
//	no_push   = false
//	debug     = false
//	debug_log = ""
package config
