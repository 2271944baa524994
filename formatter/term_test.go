package formatter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/blackfern/console/core"
	"github.com/blackfern/console/formatter"
)

func TestTerm_PlainLine(t *testing.T) {
	var buf bytes.Buffer
	f := formatter.NewTerm()

	f.FormatLine(&core.Message{Text: "hello", Kind: core.Print}, &buf)

	assert.Equal(t, "hello\n", buf.String())
}

func TestTerm_AlwaysTerminatesLine(t *testing.T) {
	f := formatter.NewTerm()

	for _, m := range []core.Message{
		{Text: "", Kind: core.Print},
		{Text: "plain", Kind: core.LogAndPrint},
		{Text: "styled", Kind: core.StyledPrint, Styled: true, Primary: lipgloss.NewStyle().Bold(true)},
	} {
		var buf bytes.Buffer
		f.FormatLine(&m, &buf)
		out := buf.String()
		assert.True(t, strings.HasSuffix(out, "\n"), "missing terminator for %q", m.Text)
		assert.Equal(t, 1, strings.Count(out, "\n"))
	}
}

func TestTerm_StyledContainsText(t *testing.T) {
	var buf bytes.Buffer
	f := formatter.NewTerm()

	f.FormatLine(&core.Message{
		Text:    "warning",
		Kind:    core.StyledPrint,
		Styled:  true,
		Primary: lipgloss.NewStyle().Bold(true),
	}, &buf)

	assert.Contains(t, buf.String(), "warning")
}

func TestTerm_SecondaryComposedUnderPrimary(t *testing.T) {
	// Styles that transform the text itself make composition order
	// observable without depending on the terminal color profile.
	primary := lipgloss.NewStyle().PaddingLeft(2)
	secondary := lipgloss.NewStyle().PaddingRight(1)

	var buf bytes.Buffer
	formatter.NewTerm().FormatLine(&core.Message{
		Text:      "x",
		Kind:      core.StyledPrint,
		Styled:    true,
		Primary:   primary,
		Secondary: &secondary,
	}, &buf)

	assert.Equal(t, primary.Render(secondary.Render("x"))+"\n", buf.String())
}

func TestBufferPool_Reuse(t *testing.T) {
	buf := formatter.GetBuffer()
	buf.WriteString("residue")
	formatter.PutBuffer(buf)

	again := formatter.GetBuffer()
	assert.Equal(t, 0, again.Len(), "pooled buffer must come back reset")
	formatter.PutBuffer(again)
}
