package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/scripto/internal/client/client"
	"github.com/dmitrijs2005/scripto/internal/client/models"
)

// SaveNote sends note to the server and returns the server's version of it.
// When the server rejects the token the session is left Unauthenticated.
func (s *session) SaveNote(ctx context.Context, note models.Note) (models.Note, error) {
	saved, err := s.client.CreateOrUpdate(ctx, note)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			s.log.Info(ctx, "session ended by server", "note", note.ID().String())
		}
		return models.Note{}, fmt.Errorf("save note: %w", err)
	}

	s.log.Debug(ctx, "note saved", "note", saved.ID().String(), "remote", saved.Remote.String())
	return saved, nil
}
