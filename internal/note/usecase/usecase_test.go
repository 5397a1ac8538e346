package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yudhapratama/gonote/internal/note/entity"
	"github.com/yudhapratama/gonote/internal/pkg/config"
	"github.com/yudhapratama/gonote/internal/pkg/goerror"
	"github.com/yudhapratama/gonote/internal/pkg/instrument"
	"github.com/yudhapratama/gonote/internal/pkg/jwt"
	"github.com/yudhapratama/gonote/internal/pkg/validator"
)

type fakeRepoDB struct {
	createNote       func(ctx context.Context, in entity.Note) error
	getNotesByUserID func(ctx context.Context, userID int64) ([]entity.Note, error)
	getNote          func(ctx context.Context, id, userID int64) (*entity.Note, error)
	updateNote       func(ctx context.Context, in entity.PatchNote) error
	deleteNote       func(ctx context.Context, id, userID int64) error
}

func (f *fakeRepoDB) CreateNote(ctx context.Context, in entity.Note) error {
	return f.createNote(ctx, in)
}

func (f *fakeRepoDB) GetNotesByUserID(ctx context.Context, userID int64) ([]entity.Note, error) {
	return f.getNotesByUserID(ctx, userID)
}

func (f *fakeRepoDB) GetNote(ctx context.Context, id, userID int64) (*entity.Note, error) {
	return f.getNote(ctx, id, userID)
}

func (f *fakeRepoDB) UpdateNote(ctx context.Context, in entity.PatchNote) error {
	return f.updateNote(ctx, in)
}

func (f *fakeRepoDB) DeleteNote(ctx context.Context, id, userID int64) error {
	return f.deleteNote(ctx, id, userID)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fixedUID struct{ id int64 }

func (f fixedUID) Generate() int64 { return f.id }

func testUsecase(t *testing.T, now time.Time, repo *fakeRepoDB) *Usecase {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  note:\n    enabled: true\n"))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	return New(Dependency{
		RepoDB:     repo,
		Validator:  v10,
		Config:     cfg,
		UID:        fixedUID{id: 101},
		Clock:      fixedClock{t: now},
		Instrument: instrument.NewNoop(),
	})
}

func authedCtx(userID int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		UserID:    userID,
		UserEmail: "owner@example.com",
	})
}

func assertCode(t *testing.T, err error, want goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}
	if gerr.Code() != want {
		t.Fatalf("expected code %s, got %s (%v)", want, gerr.Code(), err)
	}
}

func TestNoteCreate(t *testing.T) {
	now := time.Now()

	t.Run("requires authentication", func(t *testing.T) {
		uc := testUsecase(t, now, &fakeRepoDB{})
		_, err := uc.NoteCreate(context.Background(), NoteCreateInput{Title: "a", Content: "b"})
		assertCode(t, err, goerror.CodeUnauthorized)
	})

	t.Run("creates note owned by the caller", func(t *testing.T) {
		var created entity.Note
		repo := &fakeRepoDB{
			createNote: func(_ context.Context, in entity.Note) error {
				created = in
				return nil
			},
		}

		uc := testUsecase(t, now, repo)
		note, err := uc.NoteCreate(authedCtx(5), NoteCreateInput{Title: " Groceries ", Content: "milk, eggs"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if created.UserID != 5 {
			t.Errorf("expected owner 5, got %d", created.UserID)
		}
		if created.ID != 101 {
			t.Errorf("expected generated id 101, got %d", created.ID)
		}
		if created.Title != "Groceries" {
			t.Errorf("expected trimmed title, got %q", created.Title)
		}
		if !note.CreatedAt.Equal(now) || !note.UpdatedAt.Equal(now) {
			t.Errorf("unexpected timestamps: %+v", note)
		}
	})

	t.Run("rejects empty title", func(t *testing.T) {
		uc := testUsecase(t, now, &fakeRepoDB{})
		_, err := uc.NoteCreate(authedCtx(5), NoteCreateInput{Title: "   ", Content: "x"})
		assertCode(t, err, goerror.CodeInvalidInput)
	})
}

func TestNoteList(t *testing.T) {
	now := time.Now()

	t.Run("requires authentication", func(t *testing.T) {
		uc := testUsecase(t, now, &fakeRepoDB{})
		_, err := uc.NoteList(context.Background())
		assertCode(t, err, goerror.CodeUnauthorized)
	})

	t.Run("lists only the caller's notes", func(t *testing.T) {
		var askedUserID int64
		repo := &fakeRepoDB{
			getNotesByUserID: func(_ context.Context, userID int64) ([]entity.Note, error) {
				askedUserID = userID
				return []entity.Note{{ID: 1, UserID: userID, Title: "t"}}, nil
			},
		}

		uc := testUsecase(t, now, repo)
		notes, err := uc.NoteList(authedCtx(5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if askedUserID != 5 {
			t.Errorf("expected query for user 5, got %d", askedUserID)
		}
		if len(notes) != 1 {
			t.Errorf("expected 1 note, got %d", len(notes))
		}
	})
}

func TestNoteUpdate(t *testing.T) {
	now := time.Now()

	t.Run("foreign or missing note is not found", func(t *testing.T) {
		repo := &fakeRepoDB{
			updateNote: func(context.Context, entity.PatchNote) error {
				return goerror.ErrNotFound
			},
		}

		uc := testUsecase(t, now, repo)
		_, err := uc.NoteUpdate(authedCtx(5), NoteUpdateInput{ID: 99, Title: "x"})
		assertCode(t, err, goerror.CodeNotFound)
	})

	t.Run("updates and returns the note", func(t *testing.T) {
		var patched entity.PatchNote
		repo := &fakeRepoDB{
			updateNote: func(_ context.Context, in entity.PatchNote) error {
				patched = in
				return nil
			},
			getNote: func(_ context.Context, id, userID int64) (*entity.Note, error) {
				return &entity.Note{ID: id, UserID: userID, Title: "new title", Content: "old content"}, nil
			},
		}

		uc := testUsecase(t, now, repo)
		note, err := uc.NoteUpdate(authedCtx(5), NoteUpdateInput{ID: 99, Title: "new title"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if patched.ID != 99 || patched.UserID != 5 {
			t.Errorf("unexpected patch target: %+v", patched)
		}
		if note.Title != "new title" {
			t.Errorf("unexpected note: %+v", note)
		}
	})
}

func TestNoteDelete(t *testing.T) {
	now := time.Now()

	t.Run("foreign or missing note is not found", func(t *testing.T) {
		repo := &fakeRepoDB{
			deleteNote: func(context.Context, int64, int64) error {
				return goerror.ErrNotFound
			},
		}

		uc := testUsecase(t, now, repo)
		err := uc.NoteDelete(authedCtx(5), NoteDeleteInput{ID: 99})
		assertCode(t, err, goerror.CodeNotFound)
	})

	t.Run("deletes the caller's note", func(t *testing.T) {
		var gotID, gotUserID int64
		repo := &fakeRepoDB{
			deleteNote: func(_ context.Context, id, userID int64) error {
				gotID, gotUserID = id, userID
				return nil
			},
		}

		uc := testUsecase(t, now, repo)
		if err := uc.NoteDelete(authedCtx(5), NoteDeleteInput{ID: 99}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotID != 99 || gotUserID != 5 {
			t.Errorf("expected delete of (99, 5), got (%d, %d)", gotID, gotUserID)
		}
	})
}
