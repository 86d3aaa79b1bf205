package logger

import "go.uber.org/zap"

// Logger = *zap.Logger.
type Logger = *zap.Logger

// New - development logger when debug, production otherwise. Falls back to Nop if zap can't build.
func New(debug bool) Logger {
	build := zap.NewProduction
	if debug {
		build = zap.NewDevelopment
	}

	l, err := build()
	if err != nil {
		return zap.NewNop()
	}

	return l
}
