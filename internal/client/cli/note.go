package cli

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/scripto/internal/client/models"
	"github.com/dmitrijs2005/scripto/internal/client/wire"
)

var errNoNote = errors.New("no note in progress, use 'new' first")

// NewNote starts a fresh working note, replacing any unsaved one.
func (a *App) NewNote(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	subject, err := getSimpleText(a.reader, "Subject", a.out)
	if err != nil {
		return err
	}
	tags, err := getSimpleText(a.reader, "Tags (comma separated)", a.out)
	if err != nil {
		return err
	}

	n := models.NewNote(title).WithTags(SplitTags(tags)...)
	n.Subject = subject
	a.note = &n

	a.printf("Started note %q\n", title)
	return nil
}

// Stroke reads one stroke, a sample per line, and adds it to the working note.
// Lines that do not parse are reported and skipped.
func (a *App) Stroke(ctx context.Context) error {
	if a.note == nil {
		a.report(errNoNote)
		return errNoNote
	}

	lines, err := GetLines(a.reader, "Enter points as x,y[,pressure]", a.out)
	if err != nil {
		return err
	}

	n := *a.note
	count := 0
	for _, line := range lines {
		p, err := ParsePoint(line)
		if err != nil {
			a.printf("Skipped: %v\n", err)
			continue
		}
		if count == 0 {
			n = n.BeginStroke(p, models.DefaultStrokeProperties())
		} else {
			n = n.ContinueStroke(p)
		}
		count++
	}

	if count == 0 {
		a.printf("No points entered\n")
		return nil
	}
	a.note = &n

	last := n.Content[len(n.Content)-1]
	a.printf("Added stroke with %d points, bounds %.2fx%.2f at (%.2f, %.2f)\n",
		count, last.Bounds.Width, last.Bounds.Height, last.Bounds.X, last.Bounds.Y)
	return nil
}

// Show prints the working note exactly as it would be sent.
func (a *App) Show(ctx context.Context) error {
	if a.note == nil {
		a.report(errNoNote)
		return errNoNote
	}

	b, err := json.MarshalIndent(wire.EncodeNote(*a.note), "", "  ")
	if err != nil {
		return err
	}
	a.printf("Remote: %s\n%s\n", a.note.Remote, b)
	return nil
}

// Save sends the working note and replaces it with the server's version.
func (a *App) Save(ctx context.Context) error {
	if a.note == nil {
		a.report(errNoNote)
		return errNoNote
	}

	saved, err := a.session.SaveNote(ctx, *a.note)
	if err != nil {
		a.report(err)
		return err
	}
	a.note = &saved

	a.printf("Saved: %s (%d elements)\n", saved.Remote, len(saved.Content))
	return nil
}
