package usecase

import (
	"context"
	"time"

	"github.com/yudhapratama/gonote/internal/identity/entity"
	"github.com/yudhapratama/gonote/internal/pkg/clock"
	"github.com/yudhapratama/gonote/internal/pkg/config"
	"github.com/yudhapratama/gonote/internal/pkg/hash"
	"github.com/yudhapratama/gonote/internal/pkg/idempotency"
	"github.com/yudhapratama/gonote/internal/pkg/instrument"
	"github.com/yudhapratama/gonote/internal/pkg/jwt"
	"github.com/yudhapratama/gonote/internal/pkg/otp"
	"github.com/yudhapratama/gonote/internal/pkg/uid"
	"github.com/yudhapratama/gonote/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, in entity.NewUser) error
	SetOTPChallenge(ctx context.Context, in entity.OTPChallenge) error
	MarkUserVerified(ctx context.Context, id int64) error
}

type repoMail interface {
	SendOTP(ctx context.Context, email, fullName, code string) error
}

type Usecase struct {
	repoDB    repoDB
	repoMail  repoMail
	idemp     idempotency.Idempotency
	validator validator.Validator
	cfg       config.Config
	bcrypt    hash.Hash
	uid       uid.NumberID
	otp       otp.Generator
	clock     clock.Clocker
	jwt       jwt.JWT
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB      repoDB
	RepoMail    repoMail
	Idempotency idempotency.Idempotency
	Validator   validator.Validator
	Config      config.Config
	Bcrypt      hash.Hash
	UID         uid.NumberID
	OTP         otp.Generator
	Clock       clock.Clocker
	JWT         jwt.JWT
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		repoMail:  dep.RepoMail,
		idemp:     dep.Idempotency,
		validator: dep.Validator,
		cfg:       dep.Config,
		bcrypt:    dep.Bcrypt,
		uid:       dep.UID,
		otp:       dep.OTP,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

// issueChallenge generates a fresh OTP code, its bcrypt hash, and the
// absolute expiry derived from configuration.
func (s *Usecase) issueChallenge() (code string, otpHash string, expiresAt time.Time, err error) {
	code, err = s.otp.Generate()
	if err != nil {
		return "", "", time.Time{}, err
	}

	hashed, err := s.bcrypt.Hash(code)
	if err != nil {
		return "", "", time.Time{}, err
	}

	ttl := s.cfg.GetMinute("modules.identity.otp_ttl_minutes")
	return code, string(hashed), s.clock.Now().Add(ttl), nil
}
