package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/yudhapratama/gonote/internal/identity/entity"
)

const getUserByEmail = `
SELECT id, email, full_name, password, verified, otp_hash, otp_expires_at, created_at, updated_at
FROM users
WHERE email = $1
`

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	var (
		user         entity.User
		otpHash      pgtype.Text
		otpExpiresAt pgtype.Timestamptz
	)

	err = s.conn.QueryRow(ctx, getUserByEmail, email).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.Password,
		&user.Verified,
		&otpHash,
		&otpExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	if otpHash.Valid {
		user.OTPHash = otpHash.String
	}
	if otpExpiresAt.Valid {
		t := otpExpiresAt.Time
		user.OTPExpiresAt = &t
	}

	return &user, nil
}
