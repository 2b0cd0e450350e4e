// Package zerologhandler provides a zerolog.LevelWriter that decodes
// zerolog's JSON events and writes them as minilog lines.
package zerologhandler
