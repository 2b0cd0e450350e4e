// Package config loads minilog settings from a YAML file and the
// environment and applies them to the process-wide gate and adapters.
//
// A file looks like:
//
//	level: debug
//	timestamps: false
//
// String values may reference environment variables as ${NAME}.
// MINILOG_LEVEL and MINILOG_TIMESTAMPS override the file.
package config
