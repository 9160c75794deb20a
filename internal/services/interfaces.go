package services

import (
	"context"

	"github.com/example/numetry/internal/models"
)

// UserStore is the slice of the credential store used by auth and reset flows.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// EnquiryStore persists enquiry submissions.
type EnquiryStore interface {
	CreateEnquiry(ctx context.Context, enquiry *models.Enquiry) error
}

// OTPMailer delivers a reset code by email.
type OTPMailer interface {
	SendOTP(ctx context.Context, to, code string) error
}

// TextSender delivers an SMS. It reports the outcome instead of failing.
type TextSender interface {
	SendText(ctx context.Context, phone, body string) (bool, string)
}

// AdminNotifier alerts staff about new enquiries.
type AdminNotifier interface {
	NotifyNewEnquiry(n EnquiryNotification) error
}
