package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mydehq/numrange/internal/config"
)

// InitFlags encapsulates the CLI flags consulted by the init wizard.
type InitFlags struct {
	Path       string
	Exists     bool
	Output     string
	HasOutput  bool
	ShowParsed bool
}

// InitChoice is what the user picked in the wizard.
type InitChoice struct {
	Output     string
	ShowParsed bool
	Confirmed  bool
}

// RunInitWizard walks the user through init.
// overwrite → output format → parsed line → preview and confirm.
func RunInitWizard(w io.Writer, flags InitFlags) (*InitChoice, error) {
	theme := Theme()

	choice := &InitChoice{
		Output:     config.FormatText,
		ShowParsed: flags.ShowParsed,
	}
	if flags.HasOutput {
		choice.Output = flags.Output
	}

	step := 0
	if !flags.Exists {
		step = 1
	}

	for {
		ClearAndPrintBanner(w)
		switch step {
		case 0:
			overwrite := false
			err := RunForm(huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Config already exists").
						Description(fmt.Sprintf("\nOverwrite %s?", StylePath.Render(flags.Path))).
						Value(&overwrite),
				),
			).WithTheme(theme).WithKeyMap(KeyMap()))

			if err != nil {
				if errors.Is(HandleAbort(err), ErrUserBack) {
					// First step, so "back" means cancel.
					return choice, nil
				}
				return nil, err
			}
			if !overwrite {
				return choice, nil
			}
			step++

		case 1:
			if flags.HasOutput {
				step++
				continue
			}

			options := make([]huh.Option[string], 0, len(config.Formats))
			for _, f := range config.Formats {
				options = append(options, huh.NewOption(formatDescriptions[f], f))
			}

			err := RunForm(huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[string]().
						Title("Output format").
						Description("\nHow results are printed by default\n").
						Options(options...).
						Value(&choice.Output),
				),
			).WithTheme(theme).WithKeyMap(KeyMap()))

			if err != nil {
				if errors.Is(HandleAbort(err), ErrUserBack) {
					if flags.Exists {
						step--
						continue
					}
					return choice, nil
				}
				return nil, err
			}
			step++

		case 2:
			err := RunForm(huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Show parsed numbers?").
						Description("\nPrint the normalized list before the summary").
						Value(&choice.ShowParsed),
				),
			).WithTheme(theme).WithKeyMap(KeyMap()))

			if err != nil {
				if errors.Is(HandleAbort(err), ErrUserBack) {
					switch {
					case !flags.HasOutput:
						step = 1
					case flags.Exists:
						step = 0
					default:
						return choice, nil
					}
					continue
				}
				return nil, err
			}
			step++

		case 3:
			cfg := config.Default()
			cfg.Output = choice.Output
			cfg.ShowParsed = choice.ShowParsed

			confirmed, err := showPreviewAndConfirm(&cfg, theme)
			if err != nil {
				if errors.Is(HandleAbort(err), ErrUserBack) {
					step--
					continue
				}
				return nil, err
			}
			choice.Confirmed = confirmed
			return choice, nil
		}
	}
}

var formatDescriptions = map[string]string{
	config.FormatText:  "text   Input, parsed numbers and result",
	config.FormatPlain: "plain  Summary line only",
	config.FormatJSON:  "json   Machine-readable result",
	config.FormatTable: "table  One row per range",
}

// showPreviewAndConfirm renders the config as YAML and asks for confirmation.
func showPreviewAndConfirm(cfg *config.Config, theme *huh.Theme) (bool, error) {
	data, err := config.Marshal(cfg)
	if err != nil {
		return false, fmt.Errorf("failed to preview config: %w", err)
	}

	confirmed := true
	err = RunForm(huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Configuration Preview").
				Description(fmt.Sprintf("\n%s\n", HighlightYAML(string(data)))),

			huh.NewConfirm().
				Title("Write configuration?").
				Value(&confirmed),
		),
	).WithTheme(theme).WithKeyMap(KeyMap()))
	if err != nil {
		return false, err
	}

	return confirmed, nil
}

// HandleAbort maps huh.ErrUserAborted to ErrUserBack for esc, and exits
// cleanly for ctrl+c.
func HandleAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		if interceptedKey == "ctrl+c" {
			fmt.Println()
			if logger != nil {
				logger.Info(StyleDim.Render("Init cancelled"))
			}
			os.Exit(0)
		}
		return ErrUserBack
	}
	return err
}
