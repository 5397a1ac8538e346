package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/yudhapratama/gonote/internal/note/entity"
	"github.com/yudhapratama/gonote/internal/pkg/goerror"
)

type NoteUpdateInput struct {
	ID      int64  `validate:"required"`
	Title   string `validate:"omitempty,max=200"`
	Content string
}

func (s *Usecase) NoteUpdate(ctx context.Context, in NoteUpdateInput) (*entity.Note, error) {
	ctx, span := s.startSpan(ctx, "NoteUpdate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	// Ownership lives in the WHERE clause; a foreign id is indistinguishable
	// from a missing one.
	if err := s.repoDB.UpdateNote(ctx, entity.PatchNote{
		ID:      in.ID,
		UserID:  clm.UserID,
		Title:   in.Title,
		Content: in.Content,
	}); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Note not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update note", "note_id", in.ID, "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	note, err := s.repoDB.GetNote(ctx, in.ID, clm.UserID)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Note not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo get note", "note_id", in.ID, "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return note, nil
}
