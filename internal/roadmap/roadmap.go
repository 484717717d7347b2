// Package roadmap is the scheduling engine: it owns the document state,
// routes every mutation through the undo manager, and persists each committed
// state synchronously. Group-level schedule and assignee data are never
// stored; they are derived from member items on every read.
package roadmap

import (
	"strings"

	"roadmap-cli/internal/model"
	"roadmap-cli/internal/store"
)

// Span is a closed calendar-date interval.
type Span struct {
	Start string
	End   string
}

// UndoEntry captures the full document as it existed immediately before a
// described mutation.
type UndoEntry struct {
	Description string
	snapshot    *model.State
}

// Ack is the transient acknowledgement surfaced after a described mutation.
// Seq lets the UI drop expiry timers that were superseded by a newer one.
type Ack struct {
	Description string
	Seq         int
}

type Roadmap struct {
	store store.Store
	state *model.State

	undo   []UndoEntry
	ack    *Ack
	ackSeq int
}

// Open loads (or seeds) the persisted document and wraps it in an engine with
// an empty undo history. The undo stack is process-lifetime only.
func Open(s store.Store) (*Roadmap, error) {
	st, err := s.Load()
	if err != nil {
		return nil, err
	}
	return &Roadmap{store: s, state: st}, nil
}

// State exposes the live document for reads. Callers must route all writes
// through the engine's mutation methods.
func (r *Roadmap) State() *model.State {
	return r.state
}

// UndoDepth reports how many described mutations can currently be undone.
func (r *Roadmap) UndoDepth() int {
	return len(r.undo)
}

// LastAck returns the most recent acknowledgement, if one is active.
func (r *Roadmap) LastAck() (Ack, bool) {
	if r.ack == nil {
		return Ack{}, false
	}
	return *r.ack, true
}

// ExpireAck clears the acknowledgement if seq still identifies it; a newer
// acknowledgement supersedes the pending expiry and is left alone.
func (r *Roadmap) ExpireAck(seq int) {
	if r.ack != nil && r.ack.Seq == seq {
		r.ack = nil
	}
}

// apply commits one mutation. A non-empty description makes the mutation
// undoable: the pre-mutation state is deep-copied onto the undo stack and an
// acknowledgement is raised. An empty description is a silent mutation that
// touches neither. Either way the resulting state is persisted before apply
// returns.
func (r *Roadmap) apply(description string, fn func(st *model.State)) error {
	description = strings.TrimSpace(description)
	if description != "" {
		r.undo = append(r.undo, UndoEntry{
			Description: description,
			snapshot:    r.state.Clone(),
		})
		r.ackSeq++
		r.ack = &Ack{Description: description, Seq: r.ackSeq}
	}
	fn(r.state)
	return r.store.Save(r.state)
}

// Undo pops the most recent described mutation and restores its pre-mutation
// snapshot wholesale. Silent mutations (drag frames) never enter the stack,
// so they are skipped over by construction. No-op when the stack is empty.
// There is no redo.
func (r *Roadmap) Undo() error {
	if len(r.undo) == 0 {
		return nil
	}
	top := r.undo[len(r.undo)-1]
	r.undo = r.undo[:len(r.undo)-1]
	r.state = top.snapshot
	r.ack = nil
	return r.store.Save(r.state)
}
