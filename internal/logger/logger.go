// Package logger provides leveled stderr diagnostics for the CLI.
// Output is off by default; the root command raises the level for
// --verbose and --debug.
package logger

import (
	"fmt"
	"os"
	"time"
)

// Level controls how much diagnostic output is written.
type Level int

const (
	// LevelOff suppresses all diagnostic output.
	LevelOff Level = iota
	// LevelInfo shows per-step progress.
	LevelInfo
	// LevelDebug additionally shows classification traces.
	LevelDebug
)

var (
	currentLevel = LevelOff
	startTime    = time.Now()
)

// SetLevel sets the global level and resets the elapsed-time origin.
func SetLevel(level Level) {
	currentLevel = level
	startTime = time.Now()
}

// Enabled reports whether messages at the given level are emitted.
func Enabled(level Level) bool {
	return currentLevel >= level
}

// Info writes a progress message when --verbose (or --debug) is active.
func Info(format string, args ...interface{}) {
	emit(LevelInfo, "", format, args...)
}

// Debug writes a trace message when --debug is active.
func Debug(format string, args ...interface{}) {
	emit(LevelDebug, "[DEBUG] ", format, args...)
}

func emit(level Level, tag, format string, args ...interface{}) {
	if currentLevel < level {
		return
	}
	elapsed := time.Since(startTime).Round(time.Millisecond)
	fmt.Fprintf(os.Stderr, "["+elapsed.String()+"] "+tag+format+"\n", args...)
}
