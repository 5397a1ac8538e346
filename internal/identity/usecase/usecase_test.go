package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/yudhapratama/gonote/internal/identity/entity"
	"github.com/yudhapratama/gonote/internal/pkg/config"
	"github.com/yudhapratama/gonote/internal/pkg/hash"
	"github.com/yudhapratama/gonote/internal/pkg/idempotency"
	"github.com/yudhapratama/gonote/internal/pkg/instrument"
	"github.com/yudhapratama/gonote/internal/pkg/jwt"
	"github.com/yudhapratama/gonote/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepoDB struct {
	getUserByEmail   func(ctx context.Context, email string) (*entity.User, error)
	createUser       func(ctx context.Context, in entity.NewUser) error
	setOTPChallenge  func(ctx context.Context, in entity.OTPChallenge) error
	markUserVerified func(ctx context.Context, id int64) error
}

func (f *fakeRepoDB) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.getUserByEmail(ctx, email)
}

func (f *fakeRepoDB) CreateUser(ctx context.Context, in entity.NewUser) error {
	return f.createUser(ctx, in)
}

func (f *fakeRepoDB) SetOTPChallenge(ctx context.Context, in entity.OTPChallenge) error {
	return f.setOTPChallenge(ctx, in)
}

func (f *fakeRepoDB) MarkUserVerified(ctx context.Context, id int64) error {
	return f.markUserVerified(ctx, id)
}

type fakeRepoMail struct {
	sendOTP func(ctx context.Context, email, fullName, code string) error
}

func (f *fakeRepoMail) SendOTP(ctx context.Context, email, fullName, code string) error {
	return f.sendOTP(ctx, email, fullName, code)
}

type fakeIdemp struct {
	acquire func(ctx context.Context, key string, d time.Duration) (idempotency.State, error)
}

func (f *fakeIdemp) Acquire(ctx context.Context, key string, d time.Duration) (idempotency.State, error) {
	if f.acquire != nil {
		return f.acquire(ctx, key, d)
	}
	return idempotency.StateNone, nil
}

func (f *fakeIdemp) MarkCompleted(context.Context, string, time.Duration) error { return nil }
func (f *fakeIdemp) MarkFailed(context.Context, string, time.Duration) error    { return nil }
func (f *fakeIdemp) Exec(ctx context.Context, _ string, fn func(context.Context) error, _ ...idempotency.Option) error {
	return fn(ctx)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fixedUID struct{ id int64 }

func (f fixedUID) Generate() int64 { return f.id }

type fixedStringID struct{ id string }

func (f fixedStringID) Generate() string { return f.id }

type fixedOTP struct {
	code string
	err  error
}

func (f fixedOTP) Generate() (string, error) { return f.code, f.err }

const testJWTSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func testConfig(t *testing.T) config.Config {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(`
modules:
  identity:
    otp_ttl_minutes: 10
    resend_throttle_seconds: 60
mail:
  send_timeout_seconds: 5
`))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}
	return cfg
}

func testUsecase(t *testing.T, now time.Time, repo *fakeRepoDB, mail *fakeRepoMail, idemp idempotency.Idempotency) *Usecase {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	clk := fixedClock{t: now}
	token, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte(testJWTSecret),
		Issuer:    "gonote",
		Audiences: []string{"gonote-web"},
		TTL:       12 * time.Hour,
		Clock:     clk,
		UUID:      fixedStringID{id: "jti-1"},
	})
	if err != nil {
		t.Fatalf("failed to build jwt: %v", err)
	}

	if idemp == nil {
		idemp = &fakeIdemp{}
	}

	return New(Dependency{
		RepoDB:      repo,
		RepoMail:    mail,
		Idempotency: idemp,
		Validator:   v10,
		Config:      testConfig(t),
		Bcrypt:      hash.NewBcrypt(bcrypt.MinCost, ""),
		UID:         fixedUID{id: 42},
		OTP:         fixedOTP{code: "123456"},
		Clock:       clk,
		JWT:         token,
		Instrument:  instrument.NewNoop(),
	})
}

func mustHash(t *testing.T, plaintext string) string {
	t.Helper()

	h, err := hash.NewBcrypt(bcrypt.MinCost, "").Hash(plaintext)
	if err != nil {
		t.Fatalf("failed to hash %q: %v", plaintext, err)
	}
	return string(h)
}
