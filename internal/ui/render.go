package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mydehq/numrange/internal/config"
	"github.com/mydehq/numrange/internal/types"
)

// Renderer writes results in one of the config output formats
type Renderer struct {
	W          io.Writer
	Format     string
	ShowParsed bool
	Color      bool
}

// Render writes res to the renderer's writer.
func (r *Renderer) Render(res *types.Result) error {
	switch r.Format {
	case config.FormatText, "":
		return r.renderText(res)
	case config.FormatPlain:
		_, err := fmt.Fprintln(r.W, res.Summary)
		return err
	case config.FormatJSON:
		enc := json.NewEncoder(r.W)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case config.FormatTable:
		return r.renderTable(res)
	default:
		return types.ErrUnknownFormat{Format: r.Format}
	}
}

func (r *Renderer) renderText(res *types.Result) error {
	if res.Input != "" {
		fmt.Fprintf(r.W, "%s %s\n", r.label("Input:"), res.Input)
	}
	if r.ShowParsed {
		fmt.Fprintf(r.W, "%s %s\n", r.label("Parsed numbers:"), FormatNumbers(res.Numbers))
	}

	summary := res.Summary
	if r.Color {
		summary = ColorizeSummary(res.Ranges)
	}
	_, err := fmt.Fprintf(r.W, "%s %s\n", r.label("Result:"), summary)
	return err
}

func (r *Renderer) renderTable(res *types.Result) error {
	if len(res.Ranges) == 0 {
		_, err := fmt.Fprintln(r.W, "(0 ranges)")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.W)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Start", "End", "Count", "Range"})

	for i, rg := range res.Ranges {
		t.AppendRow(table.Row{i + 1, rg.Start, rg.End, rg.Len(), rg.String()})
	}
	t.AppendFooter(table.Row{"", "", "Total", len(res.Numbers), ""})

	t.Render()
	_, err := fmt.Fprintf(r.W, "%s %s\n", r.label("Result:"), res.Summary)
	return err
}

func (r *Renderer) label(s string) string {
	if !r.Color {
		return s
	}
	return StyleLabel.Render(s)
}

// FormatNumbers renders nums as "[1, 3, 6]".
func FormatNumbers(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
