package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger wraps the charmbracelet logger to add a success level
type Logger struct {
	*log.Logger
}

var logger *Logger

// NewLogger creates a styled logger writing to w.
func NewLogger(w io.Writer) *Logger {
	l := &Logger{Logger: log.New(w)}
	l.SetStyles(levelStyles())
	return l
}

// SetLogger injects the application logger into the UI package.
func SetLogger(l *Logger) {
	logger = l
}

// SetVerbosity maps the quiet and verbose flags onto a log level.
func (l *Logger) SetVerbosity(quiet, verbose bool) {
	switch {
	case quiet:
		l.SetLevel(log.ErrorLevel)
	case verbose:
		l.SetLevel(log.DebugLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}
}

// Success prints a success message with a green prefix
func (l *Logger) Success(msg interface{}, keyvals ...interface{}) {
	l.Helper()
	if l.GetLevel() > log.InfoLevel {
		return
	}
	label := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		SetString("OK   ").
		String()

	// Print skips the level prefix, so the label stands in for it
	l.Print(fmt.Sprintf("%s %v", label, msg), keyvals...)
}

func levelStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Bold(true).
		Foreground(lipgloss.Color("63"))

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO ").
		Bold(true).
		Foreground(lipgloss.Color("86"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN ").
		Bold(true).
		Foreground(lipgloss.Color("192"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))

	return styles
}
