//go:build !prod

package logger

// Log - package default, development config (human readable, debug level).
var Log = New(true)
