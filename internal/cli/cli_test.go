package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mydehq/numrange/internal/config"
	"github.com/mydehq/numrange/internal/types"
	"github.com/mydehq/numrange/internal/ui"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, k := range []string{"NUMRANGE_OUTPUT", "NUMRANGE_SHOW_PARSED", "NO_COLOR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_Summarize(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "", "1,3,6,7,8,12,13,14,15,21,22,23,24,31")
	require.NoError(t, err)

	assert.Contains(t, out, "Input: 1,3,6,7,8,12,13,14,15,21,22,23,24,31\n")
	assert.Contains(t, out, "Parsed numbers: [1, 3, 6, 7, 8, 12, 13, 14, 15, 21, 22, 23, 24, 31]\n")
	assert.Contains(t, out, "Result: 1, 3, 6-8, 12-15, 21-24, 31\n")
}

func TestRoot_Plain(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"single arg", []string{"-o", "plain", "1,3,6,7,8"}, "1, 3, 6-8\n"},
		{"unquoted list", []string{"-o", "plain", "1", "2", "3", "5"}, "1-3, 5\n"},
		{"trailing commas", []string{"-o", "plain", "1, 2, 3,", "5"}, "1-3, 5\n"},
		{"negative", []string{"-o", "plain", "--", "-3,-2,-1,0,1"}, "-3-1\n"},
		{"negative run", []string{"-o", "plain", "--", "-1,-2,-3"}, "-3--1\n"},
		{"duplicates", []string{"-o", "plain", "5,3,5,4,3"}, "3-5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRoot_Stdin(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "1\n2\n3\n\n7, 8\n", "-o", "plain", "-")
	require.NoError(t, err)
	assert.Equal(t, "1-3, 7-8\n", out)
}

func TestRoot_StdinTokensMatchArgs(t *testing.T) {
	isolate(t)

	tests := []struct {
		name  string
		input string
		token string
	}{
		{"inner space", "1 2", "1 2"},
		{"spaced minus", "1, - 5", "- 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, args := range [][]string{
				{"-o", "plain", "-"},
				{"-o", "plain", tt.input},
			} {
				stdin := ""
				if args[len(args)-1] == "-" {
					stdin = tt.input + "\n"
				}
				out, _, err := run(t, stdin, args...)

				var tokErr types.ErrInvalidToken
				require.True(t, errors.As(err, &tokErr), "args %v: %v", args, err)
				assert.Equal(t, tt.token, tokErr.Token)
				assert.Empty(t, out)
			}
		})
	}
}

func TestRoot_HideParsed(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "", "--show-parsed=false", "1,2")
	require.NoError(t, err)
	assert.NotContains(t, out, "Parsed numbers")
	assert.Contains(t, out, "Result: 1-2\n")
}

func TestRoot_NoArgs(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, `Usage: numrange "1,3,6,7,8,12,13,14,15,21,22,23,24,31"`)
	assert.Contains(t, out, "numrange interactive")
}

func TestRoot_InvalidToken(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "", "1,a,3")
	require.Error(t, err)

	var tokErr types.ErrInvalidToken
	require.True(t, errors.As(err, &tokErr))
	assert.Equal(t, "a", tokErr.Token)
	assert.NotContains(t, out, "Result:")
}

func TestRoot_Strict(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "", "--strict", ",,")
	assert.ErrorIs(t, err, types.ErrEmptyInput)

	out, _, err := run(t, "", "-o", "plain", ",,")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestRoot_JSON(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "", "-o", "json", "3,1,2")
	require.NoError(t, err)
	assert.Contains(t, out, `"summary": "1-3"`)
	assert.Contains(t, out, `"input": "3,1,2"`)
}

func TestRoot_EnvAndConfigFile(t *testing.T) {
	dir := isolate(t)

	t.Setenv("NUMRANGE_OUTPUT", "plain")
	out, _, err := run(t, "", "1,2,4")
	require.NoError(t, err)
	assert.Equal(t, "1-2, 4\n", out)

	// Flags override the environment
	out, _, err = run(t, "", "-o", "text", "--show-parsed=false", "1,2,4")
	require.NoError(t, err)
	assert.Equal(t, "Input: 1,2,4\nResult: 1-2, 4\n", out)

	os.Unsetenv("NUMRANGE_OUTPUT")

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("output: xml\n"), 0644))
	_, _, err = run(t, "", "--config", bad, "1")
	var cfgErr types.ErrConfigInvalid
	assert.True(t, errors.As(err, &cfgErr))
}

func TestInteractive(t *testing.T) {
	isolate(t)

	in := "1,2,3\n\n  \nabc\n-1,-2\nQUIT\n4,5\n"
	out, errOut, err := run(t, in, "interactive", "--show-parsed=false")
	require.NoError(t, err)

	assert.Contains(t, out, "numrange")
	assert.Contains(t, out, "Result: 1-3\n")
	assert.Contains(t, out, "Result: -2--1\n")
	assert.Equal(t, 2, strings.Count(out, emptyLineHint))
	assert.Contains(t, out, "Goodbye!\n")
	assert.NotContains(t, out, "Result: 4-5")

	assert.Contains(t, errOut, "Invalid number format: 'abc'")
	assert.Contains(t, errOut, inputHint)
}

func TestInteractive_EOF(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "7,8,9", "repl", "-o", "plain")
	require.NoError(t, err)
	assert.Contains(t, out, "7-9\n")
	assert.NotContains(t, out, "Goodbye!")
}

func TestSession_Reload(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "numrange.yml")
	require.NoError(t, os.WriteFile(path, []byte("output: plain\n"), 0644))

	var logs, out bytes.Buffer
	a := &app{cfgFile: path, logger: ui.NewLogger(&logs)}
	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	a.cfg = cfg

	s := &session{a: a, cmd: &cobra.Command{}, out: &out}
	s.cfg.Store(cfg)

	require.NoError(t, os.WriteFile(path, []byte("output: json\n"), 0644))
	s.reload()
	assert.Equal(t, config.FormatJSON, s.cfg.Load().Output)

	// A broken file keeps the last good config
	require.NoError(t, os.WriteFile(path, []byte("output: xml\n"), 0644))
	s.reload()
	assert.Equal(t, config.FormatJSON, s.cfg.Load().Output)
	assert.Contains(t, logs.String(), "Config reload failed")

	assert.True(t, s.eval("1,2,3"))
	assert.Contains(t, out.String(), `"summary": "1-3"`)
	assert.False(t, s.eval("exit"))
}

func TestExpand(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "", "expand", "-o", "plain", "8-6, 1")
	require.NoError(t, err)
	assert.Equal(t, "1, 6-8\n", out)

	out, _, err = run(t, "", "expand", "--show-parsed", "1-3, 5")
	require.NoError(t, err)
	assert.Contains(t, out, "Parsed numbers: [1, 2, 3, 5]\n")

	out, _, err = run(t, "", "expand", "-o", "plain", "--", "-3--1, 4")
	require.NoError(t, err)
	assert.Equal(t, "-3--1, 4\n", out)

	out, _, err = run(t, "", "expand", "-o", "json", "--", "-1-1")
	require.NoError(t, err)
	assert.Contains(t, out, `"summary": "-1-1"`)

	_, _, err = run(t, "", "expand", "1-x")
	var rangeErr types.ErrInvalidRange
	assert.True(t, errors.As(err, &rangeErr))
}

func TestInit(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "numrange.yml")

	_, _, err := run(t, "", "init", "--yes", "-o", "table", path)
	require.NoError(t, err)

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, config.FormatTable, cfg.Output)

	_, _, err = run(t, "", "init", "--yes", path)
	var existsErr types.ErrConfigExists
	require.True(t, errors.As(err, &existsErr))

	_, _, err = run(t, "", "init", "--yes", "--force", "--show-parsed=false", path)
	require.NoError(t, err)
	cfg, err = config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, config.FormatText, cfg.Output)
	assert.False(t, cfg.ShowParsed)

	_, _, err = run(t, "", "init", "--yes", "-o", "xml", filepath.Join(dir, "other.yml"))
	var fmtErr types.ErrUnknownFormat
	assert.True(t, errors.As(err, &fmtErr))
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "numrange "))
}

func TestHelp_NegativeNote(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{{"--help"}, {"expand", "--help"}} {
		out, _, err := run(t, "", args...)
		require.NoError(t, err)
		assert.Contains(t, out, "Notes:", "args %v", args)
		assert.Contains(t, out, `numrange -- "-3,-2,-1"`)
	}

	out, _, err := run(t, "", "expand", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, `numrange expand -o json -- "-3--1, 4"`)

	out, _, err = run(t, "", "version", "--help")
	require.NoError(t, err)
	assert.NotContains(t, out, "Notes:")
	assert.Contains(t, out, "Global Flags:")
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"token", types.ErrInvalidToken{Token: "x"}, []string{"Invalid number format: 'x'", inputHint}},
		{"range", types.ErrInvalidRange{Item: "1-", Reason: "missing end"}, []string{"Invalid range", "item=1-"}},
		{"empty", types.ErrEmptyInput, []string{"No numbers given"}},
		{"other", errors.New("boom"), []string{"boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			a := &app{logger: ui.NewLogger(&buf)}
			a.reportError(tt.err)
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestReadInput(t *testing.T) {
	got, err := readInput(strings.NewReader("1 2\n3"), []string{"-"})
	require.NoError(t, err)
	assert.Equal(t, "1 2,3", got)

	got, err = readInput(strings.NewReader("4, 5\r\n6\r\n"), []string{"-"})
	require.NoError(t, err)
	assert.Equal(t, "4, 5,6", got)

	got, err = readInput(nil, []string{"1,", "2"})
	require.NoError(t, err)
	assert.Equal(t, "1,,2", got)
}
