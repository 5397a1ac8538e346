package inbound

import (
	"context"

	"github.com/yudhapratama/gonote/internal/identity/usecase"
	"github.com/yudhapratama/gonote/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	VerifyOTP(ctx context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error)
	ResendOTP(ctx context.Context, in usecase.ResendOTPInput) error
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/auth/register", end.Register)
	r.POST("/api/v1/auth/verify-otp", end.VerifyOTP)
	r.POST("/api/v1/auth/resend-otp", end.ResendOTP)
	r.POST("/api/v1/auth/login", end.Login)
}
