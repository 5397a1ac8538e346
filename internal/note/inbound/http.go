package inbound

import (
	"context"

	"github.com/yudhapratama/gonote/internal/note/entity"
	"github.com/yudhapratama/gonote/internal/note/usecase"
	"github.com/yudhapratama/gonote/internal/pkg/router"
)

type uc interface {
	NoteCreate(ctx context.Context, in usecase.NoteCreateInput) (*entity.Note, error)
	NoteList(ctx context.Context) ([]entity.Note, error)
	NoteUpdate(ctx context.Context, in usecase.NoteUpdateInput) (*entity.Note, error)
	NoteDelete(ctx context.Context, in usecase.NoteDeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// all endpoints require authentication
	r.GET("/api/v1/notes", end.NoteList)
	r.POST("/api/v1/notes", end.NoteCreate)
	r.PUT("/api/v1/notes/:id", end.NoteUpdate)
	r.DELETE("/api/v1/notes/:id", end.NoteDelete)
}
