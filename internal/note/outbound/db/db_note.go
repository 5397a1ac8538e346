package db

import (
	"context"

	"github.com/yudhapratama/gonote/internal/note/entity"
	"github.com/yudhapratama/gonote/internal/pkg/goerror"
)

const createNote = `
INSERT INTO notes (id, user_id, title, content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
`

func (s *DB) CreateNote(ctx context.Context, in entity.Note) (err error) {
	ctx, span := s.startSpan(ctx, "CreateNote")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, createNote, in.ID, in.UserID, in.Title, in.Content, in.CreatedAt)
	err = s.mapError(err)
	return err
}

const getNotesByUserID = `
SELECT id, user_id, title, content, created_at, updated_at
FROM notes
WHERE user_id = $1
ORDER BY created_at DESC
`

func (s *DB) GetNotesByUserID(ctx context.Context, userID int64) (_ []entity.Note, err error) {
	ctx, span := s.startSpan(ctx, "GetNotesByUserID")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, getNotesByUserID, userID)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	notes := make([]entity.Note, 0)
	for rows.Next() {
		var n entity.Note
		if err = rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, s.mapError(err)
		}
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return notes, nil
}

const getNote = `
SELECT id, user_id, title, content, created_at, updated_at
FROM notes
WHERE id = $1 AND user_id = $2
`

func (s *DB) GetNote(ctx context.Context, id, userID int64) (_ *entity.Note, err error) {
	ctx, span := s.startSpan(ctx, "GetNote")
	defer func() { s.endSpan(span, err) }()

	var n entity.Note
	err = s.conn.QueryRow(ctx, getNote, id, userID).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &n, nil
}

const updateNote = `
UPDATE notes
SET title   = COALESCE(NULLIF($3, ''), title),
    content = COALESCE(NULLIF($4, ''), content),
    updated_at = NOW()
WHERE id = $1 AND user_id = $2
`

func (s *DB) UpdateNote(ctx context.Context, in entity.PatchNote) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateNote")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, updateNote, in.ID, in.UserID, in.Title, in.Content)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

const deleteNote = `
DELETE FROM notes
WHERE id = $1 AND user_id = $2
`

func (s *DB) DeleteNote(ctx context.Context, id, userID int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteNote")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, deleteNote, id, userID)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
