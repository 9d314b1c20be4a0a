// Package logger prefixes standard log output with a severity tag.
package logger

import (
	"log"
	"sync/atomic"
)

var debug atomic.Bool

func init() {
	debug.Store(true)
}

// SetDebug toggles whether Debugf writes anything.
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

// DebugEnabled reports whether debug lines are written.
func DebugEnabled() bool {
	return debug.Load()
}

func Debugf(format string, args ...any) {
	if !debug.Load() {
		return
	}
	log.Printf("[DEBUG] "+format, args...)
}

func Infof(format string, args ...any) {
	log.Printf("[INFO] "+format, args...)
}

func Warnf(format string, args ...any) {
	log.Printf("[WARN] "+format, args...)
}

func Errorf(format string, args ...any) {
	log.Printf("[ERROR] "+format, args...)
}
