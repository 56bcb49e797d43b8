package gcode

import (
	"testing"

	"github.com/google/uuid"

	"github.com/millworks/millwright/pkg/header"
)

func TestNewLog(t *testing.T) {
	l := NewLog()
	if _, err := uuid.Parse(l.Session()); err != nil {
		t.Errorf("Session() = %q, not a valid UUID: %v", l.Session(), err)
	}
	if l.Len() != 0 {
		t.Errorf("new log Len() = %d, want 0", l.Len())
	}

	other := NewLog()
	if l.Session() == other.Session() {
		t.Error("two logs should not share a session identifier")
	}
}

func TestLog_AppendSequencing(t *testing.T) {
	l := NewLog()

	l.Append(Comment(CategoryMachine, "Workpiece is Aluminum"))
	l.Append(
		Command("G97", "Constant Spindle Speed"),
		Command("S6000", "Set Spindle RPM: 6000.0000"),
	)
	l.Append(Warning("no chipload data for this diameter"))

	entries := l.Entries()
	if len(entries) != 4 {
		t.Fatalf("Len() = %d, want 4", len(entries))
	}

	for i, e := range entries {
		if e.Sequence != i {
			t.Errorf("entry %d has sequence %d", i, e.Sequence)
		}
	}

	if entries[1].Code != "G97" || entries[1].Category != CategoryGCode {
		t.Errorf("code entry = %+v", entries[1])
	}
	if entries[3].Category != CategoryWarning {
		t.Errorf("warning entry = %+v", entries[3])
	}
}

func TestLog_EntriesIsCopy(t *testing.T) {
	l := NewLog()
	l.Append(Comment(CategoryMill, "Setting RPM: 1000.0000"))

	entries := l.Entries()
	entries[0].Comment = "tampered"

	if got := l.Entries()[0].Comment; got != "Setting RPM: 1000.0000" {
		t.Errorf("log entry mutated through returned slice: %q", got)
	}
}

func TestLog_Warnings(t *testing.T) {
	l := NewLog()
	l.Append(
		Comment(CategoryMill, "a"),
		Warning("first"),
		Command("S100", "b"),
		Warning("second"),
	)

	warnings := l.Warnings()
	if len(warnings) != 2 {
		t.Fatalf("Warnings() returned %d entries, want 2", len(warnings))
	}
	if warnings[0].Comment != "first" || warnings[1].Comment != "second" {
		t.Errorf("Warnings() order wrong: %+v", warnings)
	}
}

func TestComment_InvalidCategoryFallsBack(t *testing.T) {
	e := Comment(Category("bogus"), "x")
	if e.Category != CategoryMachine {
		t.Errorf("Category = %v, want %v", e.Category, CategoryMachine)
	}
}

func TestLog_Snapshot(t *testing.T) {
	l := NewLog()
	l.Append(Comment(CategoryMachine, "hello"))

	snap := l.Snapshot()
	if snap.Session != l.Session() {
		t.Errorf("Snapshot session = %q, want %q", snap.Session, l.Session())
	}
	if len(snap.Entries) != 1 {
		t.Fatalf("Snapshot entries = %d, want 1", len(snap.Entries))
	}
	if snap.Created.IsZero() {
		t.Error("Snapshot created time should be set")
	}
	if snap.Kind != header.KindTrace {
		t.Errorf("Snapshot kind = %q, want %q", snap.Kind, header.KindTrace)
	}
}
