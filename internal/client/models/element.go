package models

import (
	"github.com/dmitrijs2005/scripto/internal/client/stroke"
	"github.com/google/uuid"
)

// ElementType classifies a content element.
type ElementType string

const (
	// ElementTypeDrawing is a freehand ink stroke.
	ElementTypeDrawing ElementType = "drawing"
)

// Known reports whether t is one of the element types this client understands.
// Unknown types received from the server are kept verbatim so they survive a
// round trip.
func (t ElementType) Known() bool {
	switch t {
	case ElementTypeDrawing:
		return true
	default:
		return false
	}
}

// StrokeProperties is the optional style of a drawing element.
type StrokeProperties struct {
	Color string
	Width float64
}

// DefaultStrokeProperties is the style new strokes get when the caller does
// not pick one.
func DefaultStrokeProperties() *StrokeProperties {
	return &StrokeProperties{Color: "black", Width: 2.0}
}

// NoteElement is one discrete content unit inside a note.
type NoteElement struct {
	id     uuid.UUID
	Type   ElementType
	Points []stroke.Point
	// Bounds always equals stroke.Bounds(Points).
	Bounds stroke.Rect
	// Style is nil when the element inherits the default style.
	Style *StrokeProperties
}

// NewElement builds an element with a fresh id and derived bounds.
func NewElement(typ ElementType, points []stroke.Point, style *StrokeProperties) NoteElement {
	return RestoreElement(uuid.New(), typ, points, style)
}

// RestoreElement rebuilds an element with a known id, e.g. one decoded from
// the server.
func RestoreElement(id uuid.UUID, typ ElementType, points []stroke.Point, style *StrokeProperties) NoteElement {
	pts := clonePoints(points)
	return NoteElement{
		id:     id,
		Type:   typ,
		Points: pts,
		Bounds: stroke.Bounds(pts),
		Style:  cloneStyle(style),
	}
}

// NewDrawing starts a drawing element from its first sample.
func NewDrawing(first stroke.Point, style *StrokeProperties) NoteElement {
	return NewElement(ElementTypeDrawing, []stroke.Point{first}, style)
}

// ID returns the element id, unique within its note.
func (e NoteElement) ID() uuid.UUID { return e.id }

// WithPoint appends a sample and recomputes the bounds.
func (e NoteElement) WithPoint(p stroke.Point) NoteElement {
	pts := make([]stroke.Point, len(e.Points), len(e.Points)+1)
	copy(pts, e.Points)
	pts = append(pts, p)

	out := e.clone()
	out.Points = pts
	out.Bounds = stroke.Bounds(pts)
	return out
}

// Equal compares two elements field by field.
func (e NoteElement) Equal(o NoteElement) bool {
	if e.id != o.id || e.Type != o.Type || e.Bounds != o.Bounds {
		return false
	}
	if len(e.Points) != len(o.Points) {
		return false
	}
	for i := range e.Points {
		if e.Points[i] != o.Points[i] {
			return false
		}
	}
	switch {
	case e.Style == nil && o.Style == nil:
		return true
	case e.Style == nil || o.Style == nil:
		return false
	default:
		return *e.Style == *o.Style
	}
}

func (e NoteElement) clone() NoteElement {
	out := e
	out.Points = clonePoints(e.Points)
	out.Style = cloneStyle(e.Style)
	return out
}

func clonePoints(points []stroke.Point) []stroke.Point {
	if points == nil {
		return nil
	}
	return append(make([]stroke.Point, 0, len(points)), points...)
}

func cloneStyle(s *StrokeProperties) *StrokeProperties {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
