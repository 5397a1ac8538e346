package entity

import "time"

// Note is a personal note owned by a single user.
type Note struct {
	ID        int64
	UserID    int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PatchNote carries a partial update; empty fields keep their current value.
type PatchNote struct {
	ID      int64
	UserID  int64
	Title   string
	Content string
}
