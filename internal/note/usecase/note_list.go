package usecase

import (
	"context"
	"log/slog"

	"github.com/yudhapratama/gonote/internal/note/entity"
	"github.com/yudhapratama/gonote/internal/pkg/goerror"
)

func (s *Usecase) NoteList(ctx context.Context) ([]entity.Note, error) {
	ctx, span := s.startSpan(ctx, "NoteList")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	notes, err := s.repoDB.GetNotesByUserID(ctx, clm.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get notes by user", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return notes, nil
}
