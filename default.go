package console

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	defaultConsole *Console
	defaultMu      sync.RWMutex
)

func init() {
	// The default handle is built eagerly but stays idle until Start.
	defaultConsole = New(Config{})
}

// Default returns the default console
func Default() *Console {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultConsole
}

// SetDefault sets the default console
func SetDefault(c *Console) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultConsole = c
}

// Package-level convenience functions using the default console

// Start starts the default console's dispatch goroutine
func Start(sinkPath ...string) error {
	return Default().Start(sinkPath...)
}

// Stop stops the default console after a final drain
func Stop() {
	Default().Stop()
}

// Print renders text to the console using the default console
func Print(text string) {
	Default().Print(text)
}

// Printf renders a formatted line using the default console
func Printf(format string, args ...any) {
	Default().Printf(format, args...)
}

// Log appends text to the sink using the default console
func Log(text string) {
	Default().Log(text)
}

// Logf appends a formatted line to the sink using the default console
func Logf(format string, args ...any) {
	Default().Logf(format, args...)
}

// LogAndPrint renders and appends text using the default console
func LogAndPrint(text string) {
	Default().LogAndPrint(text)
}

// StyledPrint renders styled text using the default console
func StyledPrint(text string, primary lipgloss.Style, secondary ...lipgloss.Style) {
	Default().StyledPrint(text, primary, secondary...)
}

// StyledPrintf renders a formatted styled line using the default console
func StyledPrintf(style lipgloss.Style, format string, args ...any) {
	Default().StyledPrintf(style, format, args...)
}

// LayeredStyledPrintf renders a formatted two-layer styled line using the default console
func LayeredStyledPrintf(primary, secondary lipgloss.Style, format string, args ...any) {
	Default().LayeredStyledPrintf(primary, secondary, format, args...)
}

// LogAndStyledPrint renders styled text and appends it using the default console
func LogAndStyledPrint(text string, primary lipgloss.Style, secondary ...lipgloss.Style) {
	Default().LogAndStyledPrint(text, primary, secondary...)
}

// DebugPrint renders accent-styled text using the default console
func DebugPrint(text string) {
	Default().DebugPrint(text)
}

// DebugLog appends debug text to the sink using the default console
func DebugLog(text string) {
	Default().DebugLog(text)
}

// DebugLogAndPrint renders accent-styled text and appends it using the default console
func DebugLogAndPrint(text string) {
	Default().DebugLogAndPrint(text)
}
