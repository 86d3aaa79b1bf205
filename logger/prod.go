//go:build prod

package logger

// Log - package default, production config (json, info level).
var Log = New(false)
