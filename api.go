package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/blackfern/console/core"
	"github.com/blackfern/console/formatter"
)

// The entry points below are thin constructors over Submit: each builds
// one Message and hands it off. None of them block on I/O.

// Print renders text to the console.
func (c *Console) Print(text string) {
	c.Submit(core.Message{Text: text, Kind: core.Print})
}

// Printf renders a formatted line to the console.
func (c *Console) Printf(format string, args ...any) {
	c.Submit(core.Message{Text: fmt.Sprintf(format, args...), Kind: core.Print})
}

// Log appends text to the sink without console output.
func (c *Console) Log(text string) {
	c.Submit(core.Message{Text: text, Kind: core.Log})
}

// Logf appends a formatted line to the sink without console output.
func (c *Console) Logf(format string, args ...any) {
	c.Submit(core.Message{Text: fmt.Sprintf(format, args...), Kind: core.Log})
}

// LogAndPrint renders text to the console and appends it to the sink.
func (c *Console) LogAndPrint(text string) {
	c.Submit(core.Message{Text: text, Kind: core.LogAndPrint})
}

// StyledPrint renders text with a primary style and an optional
// secondary layer composed underneath it.
func (c *Console) StyledPrint(text string, primary lipgloss.Style, secondary ...lipgloss.Style) {
	c.Submit(styledMessage(text, core.StyledPrint, core.None, primary, secondary))
}

// StyledPrintf renders a formatted line with the given style.
func (c *Console) StyledPrintf(style lipgloss.Style, format string, args ...any) {
	c.Submit(styledMessage(fmt.Sprintf(format, args...), core.StyledPrint, core.None, style, nil))
}

// LayeredStyledPrintf renders a formatted line with a secondary style
// composed under the primary one.
func (c *Console) LayeredStyledPrintf(primary, secondary lipgloss.Style, format string, args ...any) {
	c.Submit(styledMessage(fmt.Sprintf(format, args...), core.StyledPrint, core.None, primary, []lipgloss.Style{secondary}))
}

// LogAndStyledPrint renders text with style layers and appends the raw
// text to the sink.
func (c *Console) LogAndStyledPrint(text string, primary lipgloss.Style, secondary ...lipgloss.Style) {
	c.Submit(styledMessage(text, core.LogAndStyledPrint, core.None, primary, secondary))
}

// DebugPrint renders text with the fixed debug accent style.
func (c *Console) DebugPrint(text string) {
	c.Submit(styledMessage(text, core.DebugPrint, core.Info, formatter.DebugStyle, nil))
}

// DebugLog appends text to the sink, tagged as debug output.
func (c *Console) DebugLog(text string) {
	c.Submit(core.Message{Text: text, Kind: core.DebugLog, Priority: core.Info})
}

// DebugLogAndPrint renders text with the debug accent style and appends
// the raw text to the sink.
func (c *Console) DebugLogAndPrint(text string) {
	c.Submit(styledMessage(text, core.DebugLogAndPrint, core.Info, formatter.DebugStyle, nil))
}

func styledMessage(text string, kind core.Kind, priority core.Priority, primary lipgloss.Style, secondary []lipgloss.Style) core.Message {
	m := core.Message{
		Text:     text,
		Kind:     kind,
		Priority: priority,
		Styled:   true,
		Primary:  primary,
	}
	if len(secondary) > 0 {
		s := secondary[0]
		m.Secondary = &s
	}
	return m
}
