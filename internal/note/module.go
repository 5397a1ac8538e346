package note

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yudhapratama/gonote/internal/note/inbound"
	"github.com/yudhapratama/gonote/internal/note/outbound/db"
	"github.com/yudhapratama/gonote/internal/note/usecase"
	"github.com/yudhapratama/gonote/internal/pkg/clock"
	"github.com/yudhapratama/gonote/internal/pkg/config"
	"github.com/yudhapratama/gonote/internal/pkg/instrument"
	"github.com/yudhapratama/gonote/internal/pkg/router"
	"github.com/yudhapratama/gonote/internal/pkg/uid"
	"github.com/yudhapratama/gonote/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     repoDB,
		Validator:  dep.Validator,
		Config:     dep.Config,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
