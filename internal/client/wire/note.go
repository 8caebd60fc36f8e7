package wire

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/scripto/internal/client/models"
	"github.com/dmitrijs2005/scripto/internal/client/stroke"
	"github.com/google/uuid"
)

// TimeLayout is the timestamp format the backend reads and writes.
const TimeLayout = "2006-01-02T15:04:05-0700"

// FormatTime renders t in UTC using TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime accepts TimeLayout and, as a fallback, RFC 3339.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err == nil {
		return t.UTC(), nil
	}
	if t2, err2 := time.Parse(time.RFC3339Nano, s); err2 == nil {
		return t2.UTC(), nil
	}
	return time.Time{}, err
}

// NotePayload is the request body of a note create or update.
type NotePayload struct {
	ID       string           `json:"id,omitempty"`
	Title    string           `json:"title"`
	Tags     []string         `json:"tags"`
	Subject  string           `json:"subject"`
	Content  []ElementPayload `json:"content"`
	Created  string           `json:"created"`
	Modified string           `json:"modified"`
}

// ElementPayload is one entry of a note's "content" array.
type ElementPayload struct {
	ID               string         `json:"id"`
	Type             string         `json:"type"`
	Content          ElementContent `json:"content"`
	Bounds           RectPayload    `json:"bounds"`
	StrokeProperties *StrokePayload `json:"stroke_properties,omitempty"`
}

// ElementContent wraps the points of a drawing element.
type ElementContent struct {
	Points []PointPayload `json:"points"`
}

// PointPayload is a quantized sample.
type PointPayload struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Pressure float64 `json:"pressure"`
}

// RectPayload is an element's bounding box, derived from its sent points.
type RectPayload struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// StrokePayload is the optional "stroke_properties" of an element.
type StrokePayload struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// EncodeNote builds the request body for n. Every element's points are
// thinned and quantized with stroke.Optimize, and the transmitted bounds are
// those of the transmitted points. n itself is not modified.
func EncodeNote(n models.Note) NotePayload {
	p := NotePayload{
		Title:    n.Title,
		Tags:     append(make([]string, 0, len(n.Tags)), n.Tags...),
		Subject:  n.Subject,
		Content:  make([]ElementPayload, 0, len(n.Content)),
		Created:  FormatTime(n.CreatedAt),
		Modified: FormatTime(n.ModifiedAt),
	}
	if id, ok := n.Remote.ServerID(); ok {
		p.ID = id
	}

	for _, e := range n.Content {
		pts := stroke.Optimize(e.Points)
		ep := ElementPayload{
			ID:      e.ID().String(),
			Type:    string(e.Type),
			Content: ElementContent{Points: make([]PointPayload, len(pts))},
			Bounds:  rectPayload(stroke.Bounds(pts)),
		}
		for i, pt := range pts {
			ep.Content.Points[i] = PointPayload{X: pt.X, Y: pt.Y, Pressure: pt.Pressure}
		}
		if e.Style != nil {
			ep.StrokeProperties = &StrokePayload{Color: e.Style.Color, Width: e.Style.Width}
		}
		p.Content = append(p.Content, ep)
	}
	return p
}

func rectPayload(r stroke.Rect) RectPayload {
	return RectPayload{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// NoteFromValue reinterprets an envelope's data member as a note. sent is the
// note the request was made for: its local id is kept, and its remote
// identity and timestamps fill in anything the server omits.
//
// Element content may be an object with a "points" member or a bare points
// array, ids may be strings or numbers, and a missing pressure defaults to
// stroke.DefaultPressure.
func NoteFromValue(v Value, sent models.Note) (models.Note, error) {
	if v.Kind() != KindObject {
		return models.Note{}, fmt.Errorf("note is %s: %w", v.Kind(), ErrUnexpectedShape)
	}

	remote := sent.Remote
	if idv, ok := v.Field("id"); ok && !idv.IsNull() {
		id, err := idText(idv)
		if err != nil {
			return models.Note{}, fmt.Errorf("id: %w", err)
		}
		if id != "" {
			remote = models.Saved(id)
		}
	}

	title, err := optString(v, "title")
	if err != nil {
		return models.Note{}, err
	}
	subject, err := optString(v, "subject")
	if err != nil {
		return models.Note{}, err
	}
	tags, err := optStrings(v, "tags")
	if err != nil {
		return models.Note{}, err
	}

	created, err := optTime(v, "created", sent.CreatedAt)
	if err != nil {
		return models.Note{}, err
	}
	modified, err := optTime(v, "modified", sent.ModifiedAt)
	if err != nil {
		return models.Note{}, err
	}

	var content []models.NoteElement
	if cv, ok := v.Field("content"); ok && !cv.IsNull() {
		items, ok := cv.AsArray()
		if !ok {
			return models.Note{}, fmt.Errorf("content is %s: %w", cv.Kind(), ErrUnexpectedShape)
		}
		content = make([]models.NoteElement, 0, len(items))
		for i, item := range items {
			e, err := elementFromValue(item, i, sent.Content)
			if err != nil {
				return models.Note{}, fmt.Errorf("content[%d]: %w", i, err)
			}
			content = append(content, e)
		}
	}

	return models.RestoreNote(sent.ID(), remote, title, subject, tags, content, created, modified), nil
}

func elementFromValue(v Value, idx int, sent []models.NoteElement) (models.NoteElement, error) {
	if v.Kind() != KindObject {
		return models.NoteElement{}, fmt.Errorf("element is %s: %w", v.Kind(), ErrUnexpectedShape)
	}

	typ, err := optString(v, "type")
	if err != nil {
		return models.NoteElement{}, err
	}
	if typ == "" {
		return models.NoteElement{}, fmt.Errorf("element without type: %w", ErrUnexpectedShape)
	}

	id := uuid.Nil
	if idv, ok := v.Field("id"); ok && !idv.IsNull() {
		text, err := idText(idv)
		if err != nil {
			return models.NoteElement{}, fmt.Errorf("id: %w", err)
		}
		if parsed, err := uuid.Parse(text); err == nil {
			id = parsed
		}
	}
	if id == uuid.Nil {
		if idx < len(sent) {
			id = sent[idx].ID()
		} else {
			id = uuid.New()
		}
	}

	var points []stroke.Point
	if cv, ok := v.Field("content"); ok && !cv.IsNull() {
		raw := cv
		if cv.Kind() == KindObject {
			raw, ok = cv.Field("points")
			if !ok {
				raw = Null()
			}
		}
		points, err = pointsFromValue(raw)
		if err != nil {
			return models.NoteElement{}, err
		}
	}

	var style *models.StrokeProperties
	if sv, ok := v.Field("stroke_properties"); ok && !sv.IsNull() {
		if sv.Kind() != KindObject {
			return models.NoteElement{}, fmt.Errorf("stroke_properties is %s: %w", sv.Kind(), ErrUnexpectedShape)
		}
		color, err := optString(sv, "color")
		if err != nil {
			return models.NoteElement{}, err
		}
		width, _, err := optFloat(sv, "width")
		if err != nil {
			return models.NoteElement{}, err
		}
		style = &models.StrokeProperties{Color: color, Width: width}
	}

	return models.RestoreElement(id, models.ElementType(typ), points, style), nil
}

func pointsFromValue(v Value) ([]stroke.Point, error) {
	if v.IsNull() {
		return nil, nil
	}
	items, ok := v.AsArray()
	if !ok {
		return nil, fmt.Errorf("points is %s: %w", v.Kind(), ErrUnexpectedShape)
	}

	out := make([]stroke.Point, 0, len(items))
	for i, item := range items {
		if item.Kind() != KindObject {
			return nil, fmt.Errorf("points[%d] is %s: %w", i, item.Kind(), ErrUnexpectedShape)
		}
		x, okX, err := optFloat(item, "x")
		if err != nil {
			return nil, fmt.Errorf("points[%d]: %w", i, err)
		}
		y, okY, err := optFloat(item, "y")
		if err != nil {
			return nil, fmt.Errorf("points[%d]: %w", i, err)
		}
		if !okX || !okY {
			return nil, fmt.Errorf("points[%d] without coordinates: %w", i, ErrUnexpectedShape)
		}
		p, okP, err := optFloat(item, "pressure")
		if err != nil {
			return nil, fmt.Errorf("points[%d]: %w", i, err)
		}
		if !okP {
			p = stroke.DefaultPressure
		}
		out = append(out, stroke.Point{X: x, Y: y, Pressure: p})
	}
	return out, nil
}

func idText(v Value) (string, error) {
	if s, ok := v.AsString(); ok {
		return s, nil
	}
	if n, ok := v.AsNumberText(); ok {
		return n, nil
	}
	return "", fmt.Errorf("id is %s: %w", v.Kind(), ErrUnexpectedShape)
}

func optString(v Value, name string) (string, error) {
	f, ok := v.Field(name)
	if !ok || f.IsNull() {
		return "", nil
	}
	s, ok := f.AsString()
	if !ok {
		return "", fmt.Errorf("%s is %s: %w", name, f.Kind(), ErrUnexpectedShape)
	}
	return s, nil
}

func optFloat(v Value, name string) (float64, bool, error) {
	f, ok := v.Field(name)
	if !ok || f.IsNull() {
		return 0, false, nil
	}
	n, ok := f.AsFloat()
	if !ok {
		return 0, false, fmt.Errorf("%s is %s: %w", name, f.Kind(), ErrUnexpectedShape)
	}
	return n, true, nil
}

func optStrings(v Value, name string) ([]string, error) {
	f, ok := v.Field(name)
	if !ok || f.IsNull() {
		return nil, nil
	}
	items, ok := f.AsArray()
	if !ok {
		return nil, fmt.Errorf("%s is %s: %w", name, f.Kind(), ErrUnexpectedShape)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.AsString()
		if !ok {
			return nil, fmt.Errorf("%s[%d] is %s: %w", name, i, item.Kind(), ErrUnexpectedShape)
		}
		out = append(out, s)
	}
	return out, nil
}

func optTime(v Value, name string, fallback time.Time) (time.Time, error) {
	s, err := optString(v, name)
	if err != nil {
		return time.Time{}, err
	}
	if s == "" {
		return fallback, nil
	}
	t, err := ParseTime(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}
