package app

import (
	"log/slog"
	"os"

	"github.com/yudhapratama/gonote/internal/identity"
	"github.com/yudhapratama/gonote/internal/note"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(identity.Dependency{
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			Bcrypt:      a.bcrypt,
			Clock:       a.clock,
			Validator:   a.validator,
			Router:      a.router,
			OTP:         a.otp,
			DBConn:      a.dbConn,
			CacheConn:   a.cacheConn,
			Idempotency: a.idemp,
			Mail:        a.mail,
			JWT:         a.jwt,
		}); err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.note.enabled") {
		if err := note.New(note.Dependency{
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			Clock:      a.clock,
			Validator:  a.validator,
			Router:     a.router,
			DBConn:     a.dbConn,
		}); err != nil {
			slog.Error("failed to init module note", "error", err)
			os.Exit(1)
		}
	}
}
