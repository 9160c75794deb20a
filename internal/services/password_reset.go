package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/numetry/internal/store"
	"github.com/example/numetry/internal/utils"
)

var (
	ErrNoSuchAccount    = errors.New("no account found with that email")
	ErrInvalidOTP       = errors.New("invalid otp")
	ErrResetNotVerified = errors.New("otp not verified")
)

// ResetSession is the per-browser password reset state. The zero value is idle.
//
// A code is valid until it is consumed by CompleteReset or overwritten by a
// new RequestReset. There is no time limit and no attempt counter.
type ResetSession struct {
	OTP      string
	Email    string
	Verified bool
}

// Active reports whether a code has been issued and not yet consumed.
func (rs *ResetSession) Active() bool {
	return rs.OTP != ""
}

// Clear returns the session to idle.
func (rs *ResetSession) Clear() {
	*rs = ResetSession{}
}

// PasswordResetService runs the forgot-password flow: request a code, verify
// it, then set a new password.
type PasswordResetService struct {
	users   UserStore
	mailer  OTPMailer
	newCode func() (string, error)
	log     *zap.Logger
}

// NewPasswordResetService constructs a PasswordResetService.
func NewPasswordResetService(users UserStore, mailer OTPMailer, log *zap.Logger) *PasswordResetService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PasswordResetService{
		users:   users,
		mailer:  mailer,
		newCode: utils.GenerateOTP,
		log:     log,
	}
}

// RequestReset issues a fresh code for email and mails it. rs is left
// untouched when the account does not exist. A mailer failure is returned
// after rs has been updated.
func (s *PasswordResetService) RequestReset(ctx context.Context, rs *ResetSession, email string) error {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNoSuchAccount
		}
		return err
	}

	code, err := s.newCode()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}

	*rs = ResetSession{OTP: code, Email: user.Email}

	if err := s.mailer.SendOTP(ctx, user.Email, code); err != nil {
		return fmt.Errorf("send otp email: %w", err)
	}

	s.log.Info("password reset requested", zap.String("user_id", user.ID.String()))
	return nil
}

// VerifyOTP checks code against the issued one. Any mismatch, including when
// no code was issued, drops the session back to awaiting a code.
func (s *PasswordResetService) VerifyOTP(rs *ResetSession, code string) error {
	if !rs.Active() || code != rs.OTP {
		rs.Verified = false
		return ErrInvalidOTP
	}
	rs.Verified = true
	return nil
}

// CompleteReset stores newPassword for the session's target email and clears
// the session. It requires a verified code.
func (s *PasswordResetService) CompleteReset(ctx context.Context, rs *ResetSession, newPassword string) error {
	if !rs.Active() || !rs.Verified {
		return ErrResetNotVerified
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, rs.Email, hash); err != nil {
		return err
	}

	s.log.Info("password reset completed")
	rs.Clear()
	return nil
}
