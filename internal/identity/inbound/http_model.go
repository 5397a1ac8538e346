package inbound

import "time"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Email        string    `json:"email"`
	OTPExpiresAt time.Time `json:"otp_expires_at"`
}

func (RegisterResponse) Message() string {
	return "OTP sent to your email successfully. Please check your inbox."
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type ResendOTPRequest struct {
	Email string `json:"email"`
}

type ResendOTPResponse struct{}

func (ResendOTPResponse) Message() string {
	return "A new OTP has been sent to your email."
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    int64  `json:"id,string"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
