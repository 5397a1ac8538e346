package inbound

import (
	"time"

	"github.com/yudhapratama/gonote/internal/note/entity"
)

type NoteCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type NoteUpdateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type NoteResponse struct {
	ID        int64     `json:"id,string"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NoteDeleteResponse struct{}

func (NoteDeleteResponse) Message() string {
	return "Note deleted successfully."
}

func toNoteResponse(n entity.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
