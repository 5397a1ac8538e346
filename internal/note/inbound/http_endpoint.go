package inbound

import (
	"github.com/samber/lo"
	"github.com/yudhapratama/gonote/internal/note/entity"
	"github.com/yudhapratama/gonote/internal/note/usecase"
	"github.com/yudhapratama/gonote/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for personal notes.
type HTTPEndpoint struct {
	uc uc
}

// NoteList returns the caller's notes, newest first.
// @Summary List notes
// @Tags Notes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=[]NoteResponse} "Notes"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Router /api/v1/notes [get]
func (h *HTTPEndpoint) NoteList(r *router.Request) (any, error) {
	notes, err := h.uc.NoteList(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(notes, func(n entity.Note, _ int) NoteResponse {
		return toNoteResponse(n)
	}), nil
}

// NoteCreate creates a note owned by the caller.
// @Summary Create note
// @Tags Notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body NoteCreateRequest true "Note payload"
// @Success 200 {object} router.successResponse{data=NoteResponse} "Created note"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/notes [post]
func (h *HTTPEndpoint) NoteCreate(r *router.Request) (any, error) {
	var req NoteCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	note, err := h.uc.NoteCreate(r.Context(), usecase.NoteCreateInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}

	return toNoteResponse(*note), nil
}

// NoteUpdate updates a note owned by the caller.
// @Summary Update note
// @Tags Notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Param request body NoteUpdateRequest true "Fields to update"
// @Success 200 {object} router.successResponse{data=NoteResponse} "Updated note"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 404 {object} router.errorResponse "Note not found"
// @Router /api/v1/notes/{id} [put]
func (h *HTTPEndpoint) NoteUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req NoteUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	note, err := h.uc.NoteUpdate(r.Context(), usecase.NoteUpdateInput{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}

	return toNoteResponse(*note), nil
}

// NoteDelete removes a note owned by the caller.
// @Summary Delete note
// @Tags Notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Success 200 {object} router.successResponse{data=NoteDeleteResponse} "Deleted"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 404 {object} router.errorResponse "Note not found"
// @Router /api/v1/notes/{id} [delete]
func (h *HTTPEndpoint) NoteDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.NoteDelete(r.Context(), usecase.NoteDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return NoteDeleteResponse{}, nil
}
