// Package models defines the client-side note document: notes, their content
// elements and the identity a note has on the server.
//
// Notes are values. Every With* method returns a new Note that shares no
// slices with the receiver, so a caller can keep an older version around
// while editing a newer one.
package models

import (
	"time"

	"github.com/dmitrijs2005/scripto/internal/client/stroke"
	"github.com/google/uuid"
)

// now is a test seam for the clock used by Touch and NewNote.
var now = time.Now

// Note is a versioned document made of ordered content elements.
type Note struct {
	id uuid.UUID

	// Remote tells whether and under which id the server stores the note.
	Remote Identity

	Title   string
	Tags    []string
	Subject string

	// Content is in drawing order; the last element is drawn on top.
	Content []NoteElement

	CreatedAt  time.Time
	ModifiedAt time.Time
}

// NewNote creates an empty, unsaved note with a fresh local id.
func NewNote(title string) Note {
	t := now().UTC()
	return Note{
		id:         uuid.New(),
		Title:      title,
		CreatedAt:  t,
		ModifiedAt: t,
	}
}

// RestoreNote rebuilds a note whose local id is already known.
func RestoreNote(id uuid.UUID, remote Identity, title, subject string, tags []string,
	content []NoteElement, createdAt, modifiedAt time.Time) Note {
	n := Note{
		id:         id,
		Remote:     remote,
		Title:      title,
		Subject:    subject,
		Tags:       uniqueTags(tags),
		Content:    cloneElements(content),
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
	}
	if n.ModifiedAt.Before(n.CreatedAt) {
		n.ModifiedAt = n.CreatedAt
	}
	return n
}

// ID returns the local id. It never changes after creation.
func (n Note) ID() uuid.UUID { return n.id }

// WithTags replaces the tag set. Duplicates and empty labels are dropped.
func (n Note) WithTags(tags ...string) Note {
	out := n.clone()
	out.Tags = uniqueTags(tags)
	return out
}

// WithRemote returns a copy that carries the given server identity.
func (n Note) WithRemote(remote Identity) Note {
	out := n.clone()
	out.Remote = remote
	return out
}

// WithElement appends e on top of the existing content.
func (n Note) WithElement(e NoteElement) Note {
	out := n.clone()
	out.Content = append(out.Content, e.clone())
	return out.Touch()
}

// WithUpdatedLastElement replaces the most recent element with fn's result
// and re-derives its bounds. A note without content is returned unchanged.
func (n Note) WithUpdatedLastElement(fn func(NoteElement) NoteElement) Note {
	if len(n.Content) == 0 {
		return n.clone()
	}
	out := n.clone()
	last := len(out.Content) - 1
	updated := fn(out.Content[last].clone())
	updated.Bounds = stroke.Bounds(updated.Points)
	out.Content[last] = updated
	return out.Touch()
}

// Touch advances ModifiedAt to the current time. It never moves backwards.
func (n Note) Touch() Note {
	out := n.clone()
	if t := now().UTC(); t.After(out.ModifiedAt) {
		out.ModifiedAt = t
	}
	return out
}

// BeginStroke starts a new drawing element at p.
func (n Note) BeginStroke(p stroke.Point, style *StrokeProperties) Note {
	return n.WithElement(NewDrawing(p, style))
}

// ContinueStroke appends p to the stroke in progress.
func (n Note) ContinueStroke(p stroke.Point) Note {
	return n.WithUpdatedLastElement(func(e NoteElement) NoteElement {
		return e.WithPoint(p)
	})
}

// Equal reports structural equality ignoring CreatedAt and ModifiedAt.
// Tags are compared as a set.
func (n Note) Equal(o Note) bool {
	if n.id != o.id || n.Remote != o.Remote || n.Title != o.Title || n.Subject != o.Subject {
		return false
	}
	if !sameTags(n.Tags, o.Tags) {
		return false
	}
	if len(n.Content) != len(o.Content) {
		return false
	}
	for i := range n.Content {
		if !n.Content[i].Equal(o.Content[i]) {
			return false
		}
	}
	return true
}

func (n Note) clone() Note {
	out := n
	out.Tags = append([]string(nil), n.Tags...)
	out.Content = cloneElements(n.Content)
	return out
}

func cloneElements(in []NoteElement) []NoteElement {
	if in == nil {
		return nil
	}
	out := make([]NoteElement, len(in))
	for i, e := range in {
		out[i] = e.clone()
	}
	return out
}

func uniqueTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func sameTags(a, b []string) bool {
	as := make(map[string]struct{}, len(a))
	for _, t := range a {
		as[t] = struct{}{}
	}
	bs := make(map[string]struct{}, len(b))
	for _, t := range b {
		bs[t] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for t := range as {
		if _, ok := bs[t]; !ok {
			return false
		}
	}
	return true
}
