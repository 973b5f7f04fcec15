package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mydehq/numrange/internal/api"
	"github.com/mydehq/numrange/internal/config"
	"github.com/mydehq/numrange/internal/types"
	"github.com/mydehq/numrange/internal/ui"
	"github.com/spf13/cobra"
)

func (a *app) initCmd() *cobra.Command {
	var force, yes bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a numrange config file",
		Long: `Create a config file with the default settings. Without a path the file
is written to the user config directory. On a terminal a short wizard walks
through the settings; --yes skips it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := api.DefaultConfigPath()
			if len(args) > 0 {
				abs, err := filepath.Abs(args[0])
				if err != nil {
					return fmt.Errorf("failed to resolve path: %w", err)
				}
				path = abs
			}

			output, _ := cmd.Flags().GetString("output")
			output = strings.ToLower(strings.TrimSpace(output))
			if output != "" && !config.IsValidFormat(output) {
				return types.ErrUnknownFormat{Format: output}
			}
			showParsed, _ := cmd.Flags().GetBool("show-parsed")

			if !yes && isTerminal(os.Stdin) && isTerminal(os.Stdout) {
				return a.runInitWizard(cmd, path, ui.InitFlags{
					Output:     output,
					HasOutput:  output != "",
					ShowParsed: showParsed,
				})
			}

			opts := []api.Option{api.WithOutput(output), api.WithShowParsed(showParsed)}
			if force {
				opts = append(opts, api.WithForce())
			}
			return a.writeConfig(path, opts...)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the wizard and write the defaults")
	return cmd
}

func (a *app) runInitWizard(cmd *cobra.Command, path string, flags ui.InitFlags) error {
	_, statErr := os.Stat(path)
	flags.Path = path
	flags.Exists = statErr == nil

	choice, err := ui.RunInitWizard(cmd.OutOrStdout(), flags)
	if err != nil {
		return fmt.Errorf("init failed: %w", err)
	}
	if !choice.Confirmed {
		a.logger.Warn(ui.StyleDim.Render("Init cancelled"))
		return nil
	}

	// Overwriting was already confirmed in the wizard
	return a.writeConfig(path,
		api.WithForce(),
		api.WithOutput(choice.Output),
		api.WithShowParsed(choice.ShowParsed),
	)
}

func (a *app) writeConfig(path string, opts ...api.Option) error {
	written, err := api.Init(path, opts...)
	if err != nil {
		return err
	}
	a.logger.Success(fmt.Sprintf("%s: %s", ui.StyleLabel.Render("Created config"), ui.StylePath.Render(written)))
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
