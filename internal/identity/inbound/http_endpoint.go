package inbound

import (
	"github.com/yudhapratama/gonote/internal/identity/usecase"
	"github.com/yudhapratama/gonote/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the registration and login workflows.
type HTTPEndpoint struct {
	uc uc
}

// Register creates an unverified account and emails a verification code.
// @Summary Register account
// @Description Creates an unverified account and sends a 6-digit OTP to the given email.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 200 {object} router.successResponse{data=RegisterResponse} "OTP sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.Name,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{
		Email:        resp.Email,
		OTPExpiresAt: resp.OTPExpiresAt,
	}, nil
}

// VerifyOTP verifies the emailed code and returns a session token.
// @Summary Verify OTP
// @Description Verifies the pending OTP for the email; on success the account is activated and a session token is returned.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "Verification payload"
// @Success 200 {object} router.successResponse{data=SessionResponse} "Account verified"
// @Failure 401 {object} router.errorResponse "Invalid or expired code"
// @Failure 404 {object} router.errorResponse "Email not registered"
// @Failure 409 {object} router.errorResponse "No code pending"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/verify-otp [post]
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyOTP(r.Context(), usecase.VerifyOTPInput{
		Email: req.Email,
		OTP:   req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return SessionResponse{
		Token: resp.Token,
		User: UserResponse{
			ID:    resp.UserID,
			Name:  resp.FullName,
			Email: resp.Email,
		},
	}, nil
}

// ResendOTP issues a fresh verification code, replacing any previous one.
// @Summary Resend OTP
// @Description Replaces the outstanding OTP with a new one and re-sends the email. Throttled per email.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ResendOTPRequest true "Resend payload"
// @Success 200 {object} router.successResponse{data=ResendOTPResponse} "OTP re-sent"
// @Failure 404 {object} router.errorResponse "Email not registered"
// @Failure 409 {object} router.errorResponse "Account already verified"
// @Failure 429 {object} router.errorResponse "Resend throttled"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/resend-otp [post]
func (h *HTTPEndpoint) ResendOTP(r *router.Request) (any, error) {
	var req ResendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ResendOTP(r.Context(), usecase.ResendOTPInput{
		Email: req.Email,
	}); err != nil {
		return nil, err
	}

	return ResendOTPResponse{}, nil
}

// Login authenticates a verified user and returns a session token.
// @Summary Login
// @Description Validates credentials for a verified account and returns a 12-hour session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=SessionResponse} "Authenticated"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 403 {object} router.errorResponse "Email not verified"
// @Failure 404 {object} router.errorResponse "Email not registered"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return SessionResponse{
		Token: resp.Token,
		User: UserResponse{
			ID:    resp.UserID,
			Name:  resp.FullName,
			Email: resp.Email,
		},
	}, nil
}
