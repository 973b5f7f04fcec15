// Package numrange parses comma-separated integer lists and summarizes them
// as ranges of consecutive values ("1, 3, 6-8, 12-15").
//
// This package mirrors the CLI functionality and provides a compatible API
// for integrating numrange into other Go applications.
package numrange

import (
	"github.com/mydehq/numrange/internal/api"
	"github.com/mydehq/numrange/internal/ranges"
	"github.com/mydehq/numrange/internal/types"
	"github.com/mydehq/numrange/internal/version"
)

// Re-export all types
type (
	Option          = api.Option
	Options         = api.Options
	Range           = types.Range
	Result          = types.Result
	Event           = types.Event
	EventType       = types.EventType
	EventHandler    = types.EventHandler
	ErrInvalidToken = types.ErrInvalidToken
	ErrInvalidRange = types.ErrInvalidRange
)

// Re-export event types
const (
	EventInfo    = types.EventInfo
	EventSuccess = types.EventSuccess
	EventWarning = types.EventWarning
	EventError   = types.EventError
)

// ErrEmptyInput is returned in strict mode when the input holds no numbers
var ErrEmptyInput = types.ErrEmptyInput

// Re-export all option constructors
var (
	WithEvents     = api.WithEvents
	WithStrict     = api.WithStrict
	WithForce      = api.WithForce
	WithOutput     = api.WithOutput
	WithShowParsed = api.WithShowParsed
)

// Re-export core functions
var (
	Parse       = ranges.Parse
	Summarize   = ranges.Summarize
	Compress    = ranges.Compress
	Expand      = ranges.Expand
	FormatRange = ranges.FormatRange
)

// Re-export pipeline functions
var (
	Process                = api.Summarize
	ProcessNumbers         = api.SummarizeNumbers
	ExpandSummary          = api.Expand
	Init                   = api.Init
	DefaultConfigPath      = api.DefaultConfigPath
	SetDefaultEventHandler = api.SetDefaultEventHandler
)

// Version returns the library version string
func Version() string {
	return version.String()
}
