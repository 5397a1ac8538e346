package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/yudhapratama/gonote/internal/identity/inbound"
	"github.com/yudhapratama/gonote/internal/identity/outbound/db"
	"github.com/yudhapratama/gonote/internal/identity/outbound/email"
	"github.com/yudhapratama/gonote/internal/identity/usecase"
	"github.com/yudhapratama/gonote/internal/pkg/clock"
	"github.com/yudhapratama/gonote/internal/pkg/config"
	"github.com/yudhapratama/gonote/internal/pkg/hash"
	"github.com/yudhapratama/gonote/internal/pkg/idempotency"
	"github.com/yudhapratama/gonote/internal/pkg/instrument"
	"github.com/yudhapratama/gonote/internal/pkg/jwt"
	"github.com/yudhapratama/gonote/internal/pkg/mail"
	"github.com/yudhapratama/gonote/internal/pkg/otp"
	"github.com/yudhapratama/gonote/internal/pkg/router"
	"github.com/yudhapratama/gonote/internal/pkg/uid"
	"github.com/yudhapratama/gonote/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	CacheConn   *redis.Client              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Mail        mail.Mail                  `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	Bcrypt      hash.Hash                  `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	OTP         otp.Generator              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
	JWT         jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoMail := email.NewEmail(dep.Mail, dep.Config, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:      repoDB,
		RepoMail:    repoMail,
		Idempotency: dep.Idempotency,
		Validator:   dep.Validator,
		Config:      dep.Config,
		Bcrypt:      dep.Bcrypt,
		UID:         dep.UID,
		OTP:         dep.OTP,
		Clock:       dep.Clock,
		JWT:         dep.JWT,
		Instrument:  dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
