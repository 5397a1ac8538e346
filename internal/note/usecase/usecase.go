package usecase

import (
	"context"

	"github.com/yudhapratama/gonote/internal/note/entity"
	"github.com/yudhapratama/gonote/internal/pkg/clock"
	"github.com/yudhapratama/gonote/internal/pkg/config"
	"github.com/yudhapratama/gonote/internal/pkg/goerror"
	"github.com/yudhapratama/gonote/internal/pkg/instrument"
	"github.com/yudhapratama/gonote/internal/pkg/jwt"
	"github.com/yudhapratama/gonote/internal/pkg/uid"
	"github.com/yudhapratama/gonote/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	CreateNote(ctx context.Context, in entity.Note) error
	GetNotesByUserID(ctx context.Context, userID int64) ([]entity.Note, error)
	GetNote(ctx context.Context, id, userID int64) (*entity.Note, error)
	UpdateNote(ctx context.Context, in entity.PatchNote) error
	DeleteNote(ctx context.Context, id, userID int64) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	uid       uid.NumberID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Config     config.Config
	UID        uid.NumberID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		uid:       dep.UID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("note.usecase").Start(ctx, name)
}

// authenticated returns the JWT claims from the request context.
func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return clm, nil
}
