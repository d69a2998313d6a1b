// Package logging prints tagged warnings and errors through the standard logger.
package logging

import (
	"fmt"
	"io"
	"log"

	"github.com/gookit/color"
)

// MapDebug enables the verbose map-mode warnings (stack underflow, bad camera calls, ...)
var MapDebug = true

var (
	styleWarning = color.Style{color.FgYellow, color.OpBold}
	styleError   = color.Style{color.FgRed, color.OpBold}
	styleInfo    = color.Style{color.FgCyan}
	styleTag     = color.Style{color.FgGray}

	colored = true
)

// SetOutput redirects all log output
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// SetColor turns the level colors on or off (off for files and tests)
func SetColor(enabled bool) {
	colored = enabled
}

func paint(s color.Style, text string) string {
	if !colored {
		return text
	}
	return s.Sprint(text)
}

func emit(component string, level string, style color.Style, format string, args ...any) {
	log.Printf("%s %s: %s", paint(styleTag, "["+component+"]"), paint(style, level), fmt.Sprintf(format, args...))
}

// Warnf logs a warning for a component
func Warnf(component, format string, args ...any) {
	emit(component, "Warning", styleWarning, format, args...)
}

// Errorf logs an error for a component
func Errorf(component, format string, args ...any) {
	emit(component, "Error", styleError, format, args...)
}

// Infof logs an informational message for a component
func Infof(component, format string, args ...any) {
	emit(component, "Info", styleInfo, format, args...)
}

// Debugf logs a warning only when MapDebug is on
func Debugf(component, format string, args ...any) {
	if !MapDebug {
		return
	}
	emit(component, "Warning", styleWarning, format, args...)
}
