package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mydehq/numrange/internal/api"
	"github.com/mydehq/numrange/internal/config"
	"github.com/mydehq/numrange/internal/types"
	"github.com/mydehq/numrange/internal/ui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

const (
	sampleInput = "1,3,6,7,8,12,13,14,15,21,22,23,24,31"
	inputHint   = "Please make sure all values are valid integers separated by commas."
)

// app holds state shared by the command tree for a single execution.
type app struct {
	cfgFile string
	verbose bool
	quiet   bool
	strict  bool

	cfg    *config.Config
	logger *ui.Logger
}

// NewRootCmd builds the numrange command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: ui.NewLogger(os.Stderr)}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numrange [numbers]",
		Short: "Summarize comma-separated integers as ranges",
		Long: `numrange sorts and deduplicates a comma-separated list of integers and
prints it with consecutive runs collapsed into ranges.

  numrange "1,3,6,7,8,12,13,14,15,21,22,23,24,31"
  → 1, 3, 6-8, 12-15, 21-24, 31

Use "-" to read the list from stdin, and "--" before a list that starts with
a negative number.`,
		Args:          cobra.ArbitraryArgs,
		Annotations:   map[string]string{noteAnnotation: negativeNote},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSummarize(cmd, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "Custom configuration file path")
	cmd.PersistentFlags().StringP("output", "o", "", "Output format (text|plain|json|table)")
	cmd.PersistentFlags().Bool("show-parsed", true, "Print the normalized numbers before the result")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Suppress output except errors")
	cmd.Flags().BoolVar(&a.strict, "strict", false, "Fail when the input contains no numbers")

	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	cmd.AddCommand(
		a.interactiveCmd(),
		a.expandCmd(),
		a.initCmd(),
		newVersionCmd(),
	)

	colorizeHelp(cmd)
	return cmd
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	a := &app{logger: ui.NewLogger(os.Stderr)}
	if err := a.rootCmd().Execute(); err != nil {
		a.reportError(err)
		os.Exit(1)
	}
}

// setup configures logging and loads the configuration for the running command.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = ui.NewLogger(cmd.ErrOrStderr())
	a.logger.SetVerbosity(a.quiet, a.verbose)
	ui.SetLogger(a.logger)

	api.SetDefaultEventHandler(func(e types.Event) {
		switch e.Type {
		case types.EventWarning:
			a.logger.Warn(e.Message)
		default:
			a.logger.Debug(e.Message)
		}
	})

	switch cmd.Name() {
	case "init", "version", "help", "completion", "__complete":
		return nil
	}

	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Path != "" {
		a.logger.Debug("Using config", "path", cfg.Path)
	}
	return nil
}

func (a *app) runSummarize(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintf(out, "Usage: %s \"%s\"\n", cmd.Root().Name(), sampleInput)
		fmt.Fprintf(out, "Or run the interactive mode: %s interactive\n", cmd.Root().Name())
		return nil
	}

	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	var opts []api.Option
	if a.strict {
		opts = append(opts, api.WithStrict())
	}

	res, err := api.Summarize(cmd.Context(), input, opts...)
	if err != nil {
		return err
	}

	return a.renderer(out).Render(res)
}

// readInput joins the arguments with commas so that unquoted lists such as
// `numrange 1 2 3` work. A single "-" reads the list from r, joining lines
// with commas.
func readInput(r io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		// One list per line; spaces inside a line stay part of the token
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
		return strings.Join(lines, ","), nil
	}
	return strings.Join(args, ","), nil
}

func (a *app) renderer(w io.Writer) *ui.Renderer {
	return newRenderer(a.cfg, w)
}

func newRenderer(cfg *config.Config, w io.Writer) *ui.Renderer {
	return &ui.Renderer{
		W:          w,
		Format:     cfg.Output,
		ShowParsed: cfg.ShowParsed,
		Color:      useColor(w),
	}
}

// reportError logs err, adding the input hint for malformed numbers.
func (a *app) reportError(err error) {
	var tokErr types.ErrInvalidToken
	var rangeErr types.ErrInvalidRange

	switch {
	case errors.As(err, &tokErr):
		a.logger.Error(fmt.Sprintf("Invalid number format: '%s'", tokErr.Token))
		a.logger.Info(ui.StyleDim.Render(inputHint))
	case errors.As(err, &rangeErr):
		if rangeErr.Reason != "" {
			a.logger.Error("Invalid range", "item", rangeErr.Item, "reason", rangeErr.Reason)
		} else {
			a.logger.Error("Invalid range", "item", rangeErr.Item)
		}
	case errors.Is(err, types.ErrEmptyInput):
		a.logger.Error("No numbers given")
	default:
		a.logger.Error(err)
	}
}

// useColor honors NO_COLOR and CLICOLOR_FORCE; non-terminal writers get no color.
func useColor(w io.Writer) bool {
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}
