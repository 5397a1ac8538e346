package email

import (
	"context"
	"fmt"

	"github.com/yudhapratama/gonote/internal/pkg/config"
	"github.com/yudhapratama/gonote/internal/pkg/instrument"
	"github.com/yudhapratama/gonote/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

// Email delivers identity transactional mail through the shared mail provider.
type Email struct {
	mail mail.Mail
	cfg  config.Config
	ins  instrument.Instrumentation
}

func NewEmail(m mail.Mail, cfg config.Config, ins instrument.Instrumentation) *Email {
	return &Email{
		mail: m,
		cfg:  cfg,
		ins:  ins,
	}
}

// SendOTP renders and sends the account verification code. A config-driven
// deadline is attached to the context; the SMTP transport observes it before
// dialing but does not interrupt an exchange already in flight.
func (e *Email) SendOTP(ctx context.Context, to, fullName, code string) (err error) {
	ctx, span := e.ins.Tracer("identity.outbound.email").Start(ctx, "SendOTP")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	timeout := e.cfg.GetSecond("mail.send_timeout_seconds")
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ttlMinutes := int(e.cfg.GetMinute("modules.identity.otp_ttl_minutes").Minutes())

	err = e.mail.Send(ctx, mail.Message{
		To:       []string{to},
		Subject:  "Your OTP for Account Verification - GoNote",
		HTMLBody: otpHTMLBody(fullName, code, ttlMinutes),
		TextBody: fmt.Sprintf(
			"Hello %s,\n\nYour OTP for account verification is: %s\n\nThis OTP is valid for %d minutes only.\n\nIf you didn't request this, please ignore this email.",
			fullName, code, ttlMinutes,
		),
	})
	return err
}

func otpHTMLBody(fullName, code string, ttlMinutes int) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #333;">Account Verification</h2>
    <p>Hello %s,</p>
    <p>Your OTP for account verification is:</p>
    <div style="background-color: #f4f4f4; padding: 20px; text-align: center; font-size: 24px; font-weight: bold; letter-spacing: 2px; margin: 20px 0;">%s</div>
    <p style="color: #666;">This OTP is valid for %d minutes only.</p>
    <p>If you didn't request this, please ignore this email.</p>
    <hr style="margin: 20px 0;">
    <p style="color: #999; font-size: 12px;">This is an automated email. Please do not reply.</p>
</div>`, fullName, code, ttlMinutes)
}
