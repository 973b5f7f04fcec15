package cli

import (
	"regexp"
	"strings"

	"github.com/mydehq/numrange/internal/ui"
	"github.com/spf13/cobra"
)

// noteAnnotation holds an extra paragraph printed under "Notes:" in help.
const noteAnnotation = "numrange/note"

const negativeNote = `Lists that start with a negative number look like flags to the parser.
  Put "--" before them: numrange -- "-3,-2,-1"`

const coloredUsageTmpl = `{{Header "Usage:"}}{{if .Runnable}}
  {{Usage .UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{Command .CommandPath}} <command>{{end}}{{if gt (len .Aliases) 0}}

{{Header "Aliases:"}} {{join .Aliases ", "}}{{end}}{{if .HasExample}}

{{Header "Examples:"}}
{{.Example}}{{end}}{{with index .Annotations "numrange/note"}}

{{Header "Notes:"}}
  {{.}}{{end}}{{if .HasAvailableSubCommands}}

{{Header "Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{Command (printf "%-13s" .Name)}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{Header "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces | Flags}}{{end}}{{if .HasAvailableInheritedFlags}}

{{Header "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces | Flags}}{{end}}{{if .HasAvailableSubCommands}}

Run {{Command (printf "%s <command> --help" .CommandPath)}} for details on a command.{{end}}
`

var (
	reFlags    = regexp.MustCompile(`(-\w|--[\w-]+)`)
	reArgs     = regexp.MustCompile(`<[a-zA-Z0-9_-]+>`)
	reOptional = regexp.MustCompile(`\[[a-zA-Z0-9_-]+\]`)
	reCmd      = regexp.MustCompile(`^\w+`)
)

// colorizeHelp installs the colored usage template on cmd and its children.
func colorizeHelp(cmd *cobra.Command) {
	cobra.AddTemplateFunc("Header", func(s string) string {
		out := ui.StyleLabel.Render(s)
		if s == "Usage:" {
			return "\n" + out
		}
		return out
	})
	cobra.AddTemplateFunc("Command", func(s string) string { return ui.StyleRange.Render(s) })
	cobra.AddTemplateFunc("join", strings.Join)

	// Flags function colorizes individual flag names and dimmed separators
	cobra.AddTemplateFunc("Flags", func(s string) string {
		s = reFlags.ReplaceAllStringFunc(s, func(match string) string {
			return ui.StyleFlag.Render(match)
		})
		return strings.ReplaceAll(s, ", ", ui.StyleDim.Render(", "))
	})

	// Usage function colorizes the top-level usage line including args
	cobra.AddTemplateFunc("Usage", func(s string) string {
		// <summary> is required, [numbers] optional
		s = reArgs.ReplaceAllStringFunc(s, func(match string) string {
			return ui.StylePath.Render(match)
		})
		s = reOptional.ReplaceAllStringFunc(s, func(match string) string {
			return ui.StyleDim.Render(match)
		})
		return reCmd.ReplaceAllStringFunc(s, func(match string) string {
			return ui.StyleRange.Render(match)
		})
	})

	cmd.SetUsageTemplate(coloredUsageTmpl)
}
