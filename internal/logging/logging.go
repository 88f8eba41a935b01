// Package logging provides a thin leveled wrapper around the standard
// library log package.
//
// Zeevonk follows the teacher's lineage: every repo in the retrieval pack
// that touches this domain logs through the standard library (prefixed
// log.Printf calls), not a structured logging library. This package keeps
// that idiom but adds a level gate so verbosity can be controlled the way
// RUST_LOG does in the original source (spec.md §6).
package logging

import (
	"log"
	"os"
	"strings"
)

// Level is a logging verbosity level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func parseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

var current = LevelInfo

// Init sets the active log level from ZEEVONK_LOG_LEVEL, defaulting to
// debug in development environments and info otherwise.
func Init(env string) {
	if lvl, ok := parseLevel(os.Getenv("ZEEVONK_LOG_LEVEL")); ok {
		current = lvl
		return
	}
	if strings.EqualFold(env, "development") {
		current = LevelDebug
		return
	}
	current = LevelInfo
}

func enabled(l Level) bool {
	return l >= current
}

// Debugf logs at debug level.
func Debugf(format string, args ...any) {
	if enabled(LevelDebug) {
		log.Printf("DEBUG "+format, args...)
	}
}

// Infof logs at info level.
func Infof(format string, args ...any) {
	if enabled(LevelInfo) {
		log.Printf("INFO "+format, args...)
	}
}

// Warnf logs at warn level.
func Warnf(format string, args ...any) {
	if enabled(LevelWarn) {
		log.Printf("WARN "+format, args...)
	}
}

// Errorf logs at error level.
func Errorf(format string, args ...any) {
	if enabled(LevelError) {
		log.Printf("ERROR "+format, args...)
	}
}
