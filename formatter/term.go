package formatter

import (
	"bytes"

	"github.com/charmbracelet/lipgloss"

	"github.com/blackfern/console/core"
)

// DebugStyle is the fixed accent style the debug entry points attach to
// their console output: bright cyan, bold.
var DebugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)

// Term renders messages for a terminal. Unstyled messages pass through
// as plain text; styled messages are rendered through their carried
// lipgloss styles.
type Term struct{}

// NewTerm creates a new terminal formatter.
func NewTerm() *Term {
	return &Term{}
}

// FormatLine renders the message into buf, always ending with a single
// line terminator.
//
// When a secondary style is present it is composed over the text first,
// and the primary style is applied to the composed result. Otherwise the
// primary style alone is applied.
func (f *Term) FormatLine(m *core.Message, buf *bytes.Buffer) {
	if !m.Styled {
		buf.WriteString(m.Text)
		buf.WriteByte('\n')
		return
	}

	text := m.Text
	if m.Secondary != nil {
		text = m.Secondary.Render(text)
	}
	buf.WriteString(m.Primary.Render(text))
	buf.WriteByte('\n')
}
