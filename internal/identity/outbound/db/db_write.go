package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/yudhapratama/gonote/internal/identity/entity"
	"github.com/yudhapratama/gonote/internal/pkg/goerror"
)

const createUser = `
INSERT INTO users (id, email, full_name, password, verified, otp_hash, otp_expires_at)
VALUES ($1, $2, $3, $4, FALSE, $5, $6)
`

func (s *DB) CreateUser(ctx context.Context, in entity.NewUser) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, createUser,
		in.ID,
		in.Email,
		in.FullName,
		in.Password,
		in.OTPHash,
		pgtype.Timestamptz{Valid: true, Time: in.OTPExpiresAt},
	)

	err = s.mapError(err)
	return err
}

const setOTPChallenge = `
UPDATE users
SET otp_hash = $2, otp_expires_at = $3, updated_at = NOW()
WHERE id = $1 AND verified = FALSE
`

func (s *DB) SetOTPChallenge(ctx context.Context, in entity.OTPChallenge) (err error) {
	ctx, span := s.startSpan(ctx, "SetOTPChallenge")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, setOTPChallenge,
		in.UserID,
		in.OTPHash,
		pgtype.Timestamptz{Valid: true, Time: in.ExpiresAt},
	)
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

const markUserVerified = `
UPDATE users
SET verified = TRUE, otp_hash = NULL, otp_expires_at = NULL, updated_at = NOW()
WHERE id = $1 AND verified = FALSE
`

func (s *DB) MarkUserVerified(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "MarkUserVerified")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, markUserVerified, id)
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
