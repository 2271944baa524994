package core

import "github.com/charmbracelet/lipgloss"

// Kind selects which dispatch actions a message triggers: console
// rendering, sink appending, or both.
type Kind uint8

const (
	// Print renders to the console (styled if the message is flagged styled)
	Print Kind = iota
	// Log appends to the sink only
	Log
	// LogAndPrint renders to the console, then appends to the sink
	LogAndPrint
	// StyledPrint renders to the console with the carried style
	StyledPrint
	// LogAndStyledPrint renders with style, then appends to the sink
	LogAndStyledPrint
	// DebugPrint renders to the console; preset entry points attach the
	// debug accent style
	DebugPrint
	// DebugLog appends to the sink only
	DebugLog
	// DebugLogAndPrint renders to the console, then appends to the sink
	DebugLogAndPrint
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case Print:
		return "Print"
	case Log:
		return "Log"
	case LogAndPrint:
		return "LogAndPrint"
	case StyledPrint:
		return "StyledPrint"
	case LogAndStyledPrint:
		return "LogAndStyledPrint"
	case DebugPrint:
		return "DebugPrint"
	case DebugLog:
		return "DebugLog"
	case DebugLogAndPrint:
		return "DebugLogAndPrint"
	default:
		return "Unknown"
	}
}

// Priority classifies a message's importance. It is carried metadata:
// dispatch neither orders nor filters by it. The debug entry points tag
// their messages Info; everything else defaults to None.
type Priority uint8

const (
	// None is the zero priority
	None Priority = iota
	// Info for informational messages
	Info
	// Warning for warning messages
	Warning
	// Error for error messages
	Error
)

// String returns the string representation of the priority
func (p Priority) String() string {
	switch p {
	case None:
		return "None"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// Message is a single unit of console/sink output. It is built once by a
// producer and never mutated afterwards; ownership moves from the producer
// to the queue slot on enqueue and to the dispatch loop on dequeue.
//
// Styles are opaque payload. The queue and dispatch loop forward them
// untouched; only the formatter interprets them.
type Message struct {
	Text     string
	Kind     Kind
	Priority Priority

	Styled    bool
	Primary   lipgloss.Style
	Secondary *lipgloss.Style
}
