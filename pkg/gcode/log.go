package gcode

import (
	"time"

	"github.com/google/uuid"

	"github.com/millworks/millwright/pkg/header"
)

// Category classifies a log entry for downstream rendering.
type Category string

// Valid Category constants for command log entries.
const (
	// CategoryMachine tags entries produced by machine-level decisions
	// (workpiece selection, derivation sources).
	CategoryMachine Category = "machine"
	// CategoryMill tags entries produced by the mill state itself
	// (speed and feed settings).
	CategoryMill Category = "mill"
	// CategoryWarning tags recoverable conditions that were absorbed into
	// the log instead of failing the operation.
	CategoryWarning Category = "warning"
	// CategoryGCode tags entries that carry a machine-code token.
	CategoryGCode Category = "gcode"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the recognized categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMachine, CategoryMill, CategoryWarning, CategoryGCode:
		return true
	default:
		return false
	}
}

// Entry is a single derivation decision or warning. Entries are immutable
// once appended; Sequence is assigned by the owning Log.
type Entry struct {
	// Code is the optional machine-code token (e.g. "G97", "S6000").
	Code string `json:"code,omitempty" yaml:"code,omitempty"`

	// Comment is the human-readable description of the decision.
	Comment string `json:"comment" yaml:"comment"`

	// Category classifies the entry for audit and rendering.
	Category Category `json:"category" yaml:"category"`

	// Sequence is the monotonically increasing position within the log.
	Sequence int `json:"sequence" yaml:"sequence"`
}

// Comment creates an unsequenced comment entry. The category falls back to
// CategoryMachine when invalid.
func Comment(category Category, comment string) Entry {
	if !category.IsValid() {
		category = CategoryMachine
	}
	return Entry{Comment: comment, Category: category}
}

// Command creates an unsequenced entry carrying a machine-code token.
func Command(code, comment string) Entry {
	return Entry{Code: code, Comment: comment, Category: CategoryGCode}
}

// Warning creates an unsequenced warning entry.
func Warning(comment string) Entry {
	return Entry{Comment: comment, Category: CategoryWarning}
}

// Log is the append-only record of derivation decisions for one machining
// session. It is not safe for concurrent use; each session owns its own Log
// and writes to it from a single control flow.
type Log struct {
	session string
	created time.Time
	entries []Entry
}

// NewLog creates an empty Log with a fresh session identifier.
func NewLog() *Log {
	return &Log{
		session: uuid.New().String(),
		created: time.Now().UTC(),
	}
}

// Session returns the session identifier assigned at creation.
func (l *Log) Session() string {
	return l.session
}

// Append sequences the given entries and adds them to the log in order.
// It returns the number of entries appended.
func (l *Log) Append(entries ...Entry) int {
	for _, e := range entries {
		e.Sequence = len(l.entries)
		l.entries = append(l.entries, e)
	}
	return len(entries)
}

// Len returns the number of entries in the log.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the log contents in append order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Warnings returns the warning entries in append order.
func (l *Log) Warnings() []Entry {
	var out []Entry
	for _, e := range l.entries {
		if e.Category == CategoryWarning {
			out = append(out, e)
		}
	}
	return out
}

// Trace is the serializable snapshot of a Log, consumed by the external
// instruction-rendering layer.
type Trace struct {
	header.Header `yaml:",inline"`

	// Session is the session identifier of the originating log.
	Session string `json:"session" yaml:"session"`

	// Created is the UTC creation time of the log.
	Created time.Time `json:"created" yaml:"created"`

	// Entries contains the full ordered record.
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Snapshot returns a Trace of the current log contents.
func (l *Log) Snapshot() *Trace {
	return &Trace{
		Header: *header.New(
			header.WithKind(header.KindTrace),
			header.WithAPIVersion("v1"),
		),
		Session: l.session,
		Created: l.created,
		Entries: l.Entries(),
	}
}
