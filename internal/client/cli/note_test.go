package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/scripto/internal/client/client"
	"github.com/dmitrijs2005/scripto/internal/client/models"
	"github.com/dmitrijs2005/scripto/internal/client/stroke"
	"github.com/stretchr/testify/require"
)

func TestNoteCommands_RequireNote(t *testing.T) {
	a, _, out := newTestApp(t, "")
	ctx := context.Background()

	require.ErrorIs(t, a.Stroke(ctx), errNoNote)
	require.ErrorIs(t, a.Show(ctx), errNoNote)
	require.ErrorIs(t, a.Save(ctx), errNoNote)
	require.Contains(t, out.String(), "use 'new' first")
}

func TestNewNote(t *testing.T) {
	prompts := stubInputs(t, nil, "Physics", "science", "exam, final, exam")
	a, _, out := newTestApp(t, "")

	require.NoError(t, a.NewNote(context.Background()))
	require.Equal(t, []string{"Title", "Subject", "Tags (comma separated)"}, *prompts)
	require.NotNil(t, a.note)
	require.Equal(t, "Physics", a.note.Title)
	require.Equal(t, "science", a.note.Subject)
	require.ElementsMatch(t, []string{"exam", "final"}, a.note.Tags)
	require.False(t, a.note.Remote.IsSaved())
	require.Contains(t, out.String(), `Started note "Physics"`)
}

func TestStroke_AddsElement(t *testing.T) {
	a, _, out := newTestApp(t, "0,0\n3,0\nbad\n6,4,0.5\n\nstatus\n")
	n := models.NewNote("Physics")
	a.note = &n

	require.NoError(t, a.Stroke(context.Background()))

	require.Len(t, a.note.Content, 1)
	el := a.note.Content[0]
	require.Equal(t, models.ElementTypeDrawing, el.Type)
	require.Equal(t, []stroke.Point{
		{X: 0, Y: 0, Pressure: 1},
		{X: 3, Y: 0, Pressure: 1},
		{X: 6, Y: 4, Pressure: 0.5},
	}, el.Points)
	require.Equal(t, stroke.Rect{X: 0, Y: 0, Width: 6, Height: 4}, el.Bounds)
	require.Equal(t, models.DefaultStrokeProperties(), el.Style)

	require.Contains(t, out.String(), "Skipped: ")
	require.Contains(t, out.String(), "Added stroke with 3 points, bounds 6.00x4.00 at (0.00, 0.00)")

	rest, _ := a.reader.ReadString('\n')
	require.Equal(t, "status\n", rest, "input after the blank line is left for the REPL")
}

func TestStroke_TwoStrokesMakeTwoElements(t *testing.T) {
	a, _, _ := newTestApp(t, "0,0\n10,10\n\n5,5\n\n")
	n := models.NewNote("n")
	a.note = &n

	require.NoError(t, a.Stroke(context.Background()))
	require.NoError(t, a.Stroke(context.Background()))
	require.Len(t, a.note.Content, 2)
	require.Len(t, a.note.Content[1].Points, 1)
}

func TestStroke_NoPoints(t *testing.T) {
	a, _, out := newTestApp(t, "nope\n\n")
	n := models.NewNote("n")
	a.note = &n

	require.NoError(t, a.Stroke(context.Background()))
	require.Empty(t, a.note.Content)
	require.Contains(t, out.String(), "No points entered")
}

func TestShow_PrintsWireForm(t *testing.T) {
	a, _, out := newTestApp(t, "")
	n := models.NewNote("Physics").
		BeginStroke(stroke.Point{X: 1.234, Y: 5.678, Pressure: 0.66}, models.DefaultStrokeProperties())
	a.note = &n

	require.NoError(t, a.Show(context.Background()))
	s := out.String()
	require.Contains(t, s, "Remote: unsaved")
	require.Contains(t, s, `"title": "Physics"`)
	require.Contains(t, s, `"x": 1.23`)
	require.Contains(t, s, `"pressure": 0.7`)
	require.NotContains(t, s, `"id": ""`)
	require.Equal(t, 1.234, a.note.Content[0].Points[0].X, "show does not change the note")
}

func TestSave_ReplacesWorkingNote(t *testing.T) {
	a, sess, out := newTestApp(t, "")
	n := models.NewNote("Physics").BeginStroke(stroke.NewPoint(0, 0), nil)
	a.note = &n
	sess.saveRet = func(in models.Note) models.Note { return in.WithRemote(models.Saved("srv-1")) }

	require.NoError(t, a.Save(context.Background()))
	require.Len(t, sess.saved, 1)
	require.Equal(t, models.Saved("srv-1"), a.note.Remote)
	require.Equal(t, n.ID(), a.note.ID())
	require.Contains(t, out.String(), "Saved: saved(srv-1) (1 elements)")
}

func TestSave_Unauthorized(t *testing.T) {
	a, sess, out := newTestApp(t, "")
	n := models.NewNote("Physics")
	a.note = &n
	sess.saveErr = fmt.Errorf("save note: %w", client.ErrUnauthorized)

	require.ErrorIs(t, a.Save(context.Background()), client.ErrUnauthorized)
	require.Contains(t, out.String(), "Not logged in or session expired. Please log in again.")
	require.False(t, a.note.Remote.IsSaved(), "working note is kept as it was")
}
