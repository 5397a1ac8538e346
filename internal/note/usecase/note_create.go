package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yudhapratama/gonote/internal/note/entity"
	"github.com/yudhapratama/gonote/internal/pkg/goerror"
)

type NoteCreateInput struct {
	Title   string `validate:"required,max=200"`
	Content string `validate:"required"`
}

func (s *Usecase) NoteCreate(ctx context.Context, in NoteCreateInput) (*entity.Note, error) {
	ctx, span := s.startSpan(ctx, "NoteCreate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	now := s.clock.Now()
	note := entity.Note{
		ID:        s.uid.Generate(),
		UserID:    clm.UserID,
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repoDB.CreateNote(ctx, note); err != nil {
		slog.ErrorContext(ctx, "failed to repo create note", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &note, nil
}
