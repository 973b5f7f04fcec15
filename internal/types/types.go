// Package types defines the core data structures for numrange.
package types

import "strconv"

// Range is an inclusive span of consecutive integers
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// IsSingleton reports whether the range holds exactly one value
func (r Range) IsSingleton() bool {
	return r.Start == r.End
}

// Len returns the number of values covered by the range
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// String renders the range as "5" or "1-3".
// Bounds are concatenated as-is, so a negative end yields "-3--1".
func (r Range) String() string {
	if r.IsSingleton() {
		return strconv.Itoa(r.Start)
	}
	return strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End)
}

// Result is the outcome of a summarize or expand operation
type Result struct {
	Input   string  `json:"input"`
	Numbers []int   `json:"numbers"`
	Ranges  []Range `json:"ranges"`
	Summary string  `json:"summary"`
}

// EventType represents the type of progress event
type EventType string

const (
	EventInfo    EventType = "info"
	EventSuccess EventType = "success"
	EventWarning EventType = "warning"
	EventError   EventType = "error"
)

// Event represents a progress event during operations
type Event struct {
	Type    EventType `json:"type"`
	Message string    `json:"message"`
	Data    any       `json:"data,omitempty"`
}

// EventHandler receives progress events during operations
type EventHandler func(Event)
