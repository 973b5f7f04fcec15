// Package api provides the core implementation for numrange operations.
// This package is used by both the CLI and the public library API.
package api

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/mydehq/numrange/internal/config"
	"github.com/mydehq/numrange/internal/ranges"
	"github.com/mydehq/numrange/internal/types"
)

// Option is a functional option for configuring operations
type Option func(*Options)

// Options holds configuration for numrange operations
type Options struct {
	Events     types.EventHandler
	Strict     bool
	Force      bool
	Output     string
	ShowParsed bool
}

// WithEvents sets the handler that receives progress events
func WithEvents(h types.EventHandler) Option {
	return func(o *Options) { o.Events = h }
}

// WithStrict makes input without any numbers an error
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithForce enables force mode (overwrite existing files)
func WithForce() Option {
	return func(o *Options) { o.Force = true }
}

// WithOutput sets the output format written by Init
func WithOutput(format string) Option {
	return func(o *Options) { o.Output = format }
}

// WithShowParsed sets whether Init enables the parsed numbers line
func WithShowParsed(show bool) Option {
	return func(o *Options) { o.ShowParsed = show }
}

var (
	handlerMu      sync.RWMutex
	defaultHandler types.EventHandler
)

// SetDefaultEventHandler sets the handler used when no WithEvents option is given.
func SetDefaultEventHandler(h types.EventHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	defaultHandler = h
}

func newOptions(opts []Option) *Options {
	options := &Options{ShowParsed: true}
	for _, opt := range opts {
		opt(options)
	}
	if options.Events == nil {
		handlerMu.RLock()
		options.Events = defaultHandler
		handlerMu.RUnlock()
	}
	return options
}

func (o *Options) emit(t types.EventType, format string, a ...any) {
	if o.Events == nil {
		return
	}
	o.Events(types.Event{Type: t, Message: fmt.Sprintf(format, a...)})
}

// Summarize parses input and compresses the numbers into ranges.
// Parse errors are returned unwrapped so callers can match types.ErrInvalidToken.
func Summarize(ctx context.Context, input string, opts ...Option) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	options := newOptions(opts)

	nums, err := ranges.Parse(input)
	if err != nil {
		options.emit(types.EventError, "Rejected input: %v", err)
		return nil, err
	}
	options.emit(types.EventInfo, "Parsed %d numbers", len(nums))

	if len(nums) == 0 && options.Strict {
		return nil, types.ErrEmptyInput
	}

	res := build(input, nums)
	options.emit(types.EventSuccess, "Compressed into %d ranges", len(res.Ranges))
	return res, nil
}

// SummarizeNumbers compresses nums as given. Unlike Summarize it does not
// deduplicate, so repeated values show up as repeated runs.
func SummarizeNumbers(ctx context.Context, nums []int, opts ...Option) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	options := newOptions(opts)

	if len(nums) == 0 && options.Strict {
		return nil, types.ErrEmptyInput
	}

	res := build("", nums)
	options.emit(types.EventSuccess, "Compressed into %d ranges", len(res.Ranges))
	return res, nil
}

// Expand re-expands a summary string and renders it again canonically.
func Expand(ctx context.Context, summary string, opts ...Option) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	options := newOptions(opts)

	nums, err := ranges.Expand(summary)
	if err != nil {
		options.emit(types.EventError, "Rejected summary: %v", err)
		return nil, err
	}
	options.emit(types.EventInfo, "Expanded into %d numbers", len(nums))

	if len(nums) == 0 && options.Strict {
		return nil, types.ErrEmptyInput
	}

	return build(summary, nums), nil
}

func build(input string, nums []int) *types.Result {
	if nums == nil {
		nums = []int{}
	}
	runs := ranges.Compress(nums)
	if runs == nil {
		runs = []types.Range{}
	}
	return &types.Result{
		Input:   input,
		Numbers: nums,
		Ranges:  runs,
		Summary: ranges.Join(runs),
	}
}

// Init writes a default configuration file to path (config.DefaultPath when empty).
// It returns the path written.
func Init(path string, opts ...Option) (string, error) {
	options := newOptions(opts)

	if path == "" {
		path = config.DefaultPath()
	}

	if _, err := os.Stat(path); err == nil {
		if !options.Force {
			return "", types.ErrConfigExists{Path: path}
		}
		backup, err := config.Backup(path)
		if err != nil {
			return "", err
		}
		options.emit(types.EventInfo, "Backed up existing config to %s", backup)
	}

	cfg := config.Default()
	cfg.ShowParsed = options.ShowParsed
	if options.Output != "" {
		cfg.Output = options.Output
	}

	if err := config.Save(path, &cfg); err != nil {
		return "", fmt.Errorf("failed to save config: %w", err)
	}

	options.emit(types.EventSuccess, "Created config: %s", path)
	return path, nil
}

// DefaultConfigPath returns the location Init writes to by default.
func DefaultConfigPath() string {
	return config.DefaultPath()
}
