// Package logger provides colorized fmt.Printf-style printers for the
// console output levels.
package logger

import (
	"github.com/fatih/color"
)

// Info logs progress and success messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warnings in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs errors in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs in cyan when enabled via Init. It defaults to a no-op so
// packages can log before Init runs.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
