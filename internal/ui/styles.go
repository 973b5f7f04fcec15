package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mydehq/numrange/internal/ranges"
	"github.com/mydehq/numrange/internal/types"
)

var (
	colorLabel = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#00af00", ANSI256: "34", ANSI: "2"},
		Light: lipgloss.CompleteColor{TrueColor: "#008700", ANSI256: "28", ANSI: "2"},
	}
	colorRange = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5fffff", ANSI256: "86", ANSI: "6"},
		Light: lipgloss.CompleteColor{TrueColor: "#008787", ANSI256: "30", ANSI: "6"},
	}
	colorSingle = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#d7ff87", ANSI256: "192", ANSI: "11"},
		Light: lipgloss.CompleteColor{TrueColor: "#5f8700", ANSI256: "64", ANSI: "10"},
	}
	colorPath = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5f5fff", ANSI256: "63", ANSI: "4"},
		Light: lipgloss.CompleteColor{TrueColor: "#0000af", ANSI256: "19", ANSI: "4"},
	}
	colorDim = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#bdbdbd", ANSI256: "250", ANSI: "8"},
		Light: lipgloss.CompleteColor{TrueColor: "#626262", ANSI256: "241", ANSI: "0"},
	}
	colorFlag = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#ff5faf", ANSI256: "204", ANSI: "13"},
		Light: lipgloss.CompleteColor{TrueColor: "#af005f", ANSI256: "125", ANSI: "5"},
	}

	StyleLabel  = lipgloss.NewStyle().Bold(true).Foreground(colorLabel)
	StyleRange  = lipgloss.NewStyle().Bold(true).Foreground(colorRange)
	StyleSingle = lipgloss.NewStyle().Foreground(colorSingle)
	StylePath   = lipgloss.NewStyle().Foreground(colorPath)
	StyleDim    = lipgloss.NewStyle().Foreground(colorDim)
	StyleFlag   = lipgloss.NewStyle().Italic(true).Foreground(colorFlag)

	// StyleBanner is the interactive session and wizard title banner
	StyleBanner = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRange).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorLabel).
			Padding(0, 4).
			Align(lipgloss.Center)
)

// Theme returns the Catppuccin theme for huh forms.
func Theme() *huh.Theme {
	return huh.ThemeCatppuccin()
}

// KeyMap returns the huh key map with esc and ctrl+c both mapped to quit.
func KeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()

	// Map both to Quit; we will distinguish them via a bubbletea filter
	km.Quit.SetKeys("esc", "ctrl+c")
	km.Quit.SetHelp("ctrl+c", "quit")

	// Append navigation help to the primary actions
	km.Select.Submit.SetHelp("enter", "choose • esc: back • ctrl+c: quit")
	km.Confirm.Submit.SetHelp("enter", "confirm • esc: back • ctrl+c: quit")
	km.Note.Next.SetHelp("enter", "next • esc: back • ctrl+c: quit")

	return km
}

// ErrUserBack is returned when the user explicitly requests to go to the previous step.
var ErrUserBack = errors.New("user navigated back")

// interceptedKey tracks the last key that triggered an abort (esc vs ctrl+c).
var interceptedKey string

// wizardFilter is a Bubble Tea filter that intercepts esc and ctrl+c to distinguish them.
func wizardFilter(m tea.Model, msg tea.Msg) tea.Msg {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEsc:
			interceptedKey = "esc"
		case tea.KeyCtrlC:
			interceptedKey = "ctrl+c"
		}
	}
	return msg
}

// RunForm is a helper to run a huh form with our custom filter and key interception.
func RunForm(f *huh.Form) error {
	interceptedKey = ""
	return f.WithProgramOptions(tea.WithFilter(wizardFilter)).Run()
}

// ClearAndPrintBanner clears the terminal and prints the numrange header.
func ClearAndPrintBanner(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
	PrintBanner(w)
}

// PrintBanner prints the numrange header without clearing the screen.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleBanner.Render("numrange"))
	fmt.Fprintln(w)
}

// ColorizeSummary styles each item of a summary: spans in StyleRange,
// single values in StyleSingle and separators dimmed.
func ColorizeSummary(runs []types.Range) string {
	parts := make([]string, len(runs))
	for i, r := range runs {
		if r.IsSingleton() {
			parts[i] = StyleSingle.Render(r.String())
		} else {
			parts[i] = StyleRange.Render(r.String())
		}
	}
	return strings.Join(parts, StyleDim.Render(ranges.Separator))
}

// HighlightYAML highlights a flat "key: value" YAML document for display.
func HighlightYAML(input string) string {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			lines[i] = StyleDim.Render(line)
			continue
		}

		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		lines[i] = StyleRange.Render(key) + ":" + StyleSingle.Render(val)
	}
	return strings.Join(lines, "\n")
}
