package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/mydehq/numrange/internal/api"
	"github.com/mydehq/numrange/internal/config"
	"github.com/mydehq/numrange/internal/ui"
	"github.com/spf13/cobra"
)

const emptyLineHint = "Please enter some numbers or type 'quit' to exit."

func (a *app) interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl", "i"},
		Short:   "Summarize numbers entered line by line",
		Long: `Start an interactive session. Each line is parsed and summarized
independently; type 'quit' or 'exit' (or press Ctrl+D) to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(cmd)
		},
	}
}

// session evaluates one line at a time and writes the outcome to out.
type session struct {
	a   *app
	cmd *cobra.Command
	out io.Writer

	// cfg is swapped when the config file changes on disk
	cfg atomic.Pointer[config.Config]
}

func (a *app) runInteractive(cmd *cobra.Command) error {
	s := &session{a: a, cmd: cmd, out: cmd.OutOrStdout()}
	s.cfg.Store(a.cfg)
	s.printWelcome()

	if path := a.cfg.Path; path != "" {
		w, err := config.NewWatcher(path)
		if err != nil {
			a.logger.Debug("Config reload disabled", "error", err)
		} else {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				if err := w.Run(ctx, s.reload); err != nil {
					a.logger.Warn("Stopped watching config", "error", err)
				}
			}()
		}
	}

	if f, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return s.runReadline()
	}
	return s.runScanner(cmd.InOrStdin())
}

func (s *session) printWelcome() {
	ui.PrintBanner(s.out)
	fmt.Fprintln(s.out, "Enter comma-separated integers to summarize them as ranges.")
	fmt.Fprintln(s.out, "Examples:")
	fmt.Fprintln(s.out, "  1,2,3,5,7,8,9    → 1-3, 5, 7-9")
	fmt.Fprintln(s.out, "  10,3,4,1,2       → 1-4, 10")
	fmt.Fprintln(s.out, "  -3,-2,-1,0,1     → -3-1")
	fmt.Fprintln(s.out, "Type 'quit' or 'exit' to leave.")
	fmt.Fprintln(s.out)
}

// reload re-reads the configuration, keeping the previous one on error.
func (s *session) reload() {
	cfg, err := config.Load(s.a.cfgFile, s.cmd.Flags())
	if err != nil {
		s.a.logger.Warn("Config reload failed", "error", err)
		return
	}
	s.cfg.Store(cfg)
	s.a.logger.Info("Reloaded config", "path", cfg.Path)
}

func (s *session) runReadline() error {
	cfg := s.cfg.Load()
	histFile := cfg.HistoryFile
	if histFile != "" {
		if err := os.MkdirAll(filepath.Dir(histFile), 0755); err != nil {
			s.a.logger.Debug("History disabled", "error", err)
			histFile = ""
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     histFile,
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          s.out,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				fmt.Fprintln(s.out, "Goodbye!")
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if !s.eval(line) {
			return nil
		}
	}
}

// runScanner reads from a pipe or file. No prompt is printed.
func (s *session) runScanner(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		if !s.eval(scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// eval handles one line of input. It returns false when the session should end.
func (s *session) eval(line string) bool {
	input := strings.TrimSpace(line)

	switch strings.ToLower(input) {
	case "quit", "exit":
		fmt.Fprintln(s.out, "Goodbye!")
		return false
	case "help", "?":
		s.printWelcome()
		return true
	case "":
		fmt.Fprintln(s.out, emptyLineHint)
		return true
	}

	res, err := api.Summarize(s.cmd.Context(), input)
	if err != nil {
		s.a.reportError(err)
		fmt.Fprintln(s.out)
		return true
	}

	if err := newRenderer(s.cfg.Load(), s.out).Render(res); err != nil {
		s.a.logger.Error("Failed to render result", "error", err)
	}
	fmt.Fprintln(s.out)
	return true
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("quit"),
		readline.PcItem("exit"),
		readline.PcItem("help"),
	)
}
