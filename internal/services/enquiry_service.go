package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/numetry/internal/models"
	"github.com/example/numetry/internal/utils"
)

// EnquiryInput carries an already validated enquiry form.
type EnquiryInput struct {
	FirstName string
	LastName  string
	Contact   string
	Email     string
}

// EnquiryResult reports the stored enquiry and the advisory SMS outcome.
type EnquiryResult struct {
	ID         uuid.UUID
	SMSSent    bool
	SMSMessage string
}

// EnquiryService stores enquiries and sends the confirmation text.
type EnquiryService struct {
	enquiries EnquiryStore
	sms       TextSender
	admin     AdminNotifier
	log       *zap.Logger
}

// NewEnquiryService constructs an EnquiryService. admin may be nil.
func NewEnquiryService(enquiries EnquiryStore, sms TextSender, admin AdminNotifier, log *zap.Logger) *EnquiryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &EnquiryService{enquiries: enquiries, sms: sms, admin: admin, log: log}
}

// Submit persists the enquiry and then texts a confirmation. The enquiry
// stays stored whatever the SMS outcome.
func (s *EnquiryService) Submit(ctx context.Context, in EnquiryInput) (*EnquiryResult, error) {
	enquiry := &models.Enquiry{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Contact:   utils.NormalizePhone(in.Contact),
		Email:     in.Email,
	}
	if err := s.enquiries.CreateEnquiry(ctx, enquiry); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("Hi %s, your enquiry form has been submitted successfully!", in.FirstName)
	sent, msg := s.sms.SendText(ctx, enquiry.Contact, body)

	if s.admin != nil {
		err := s.admin.NotifyNewEnquiry(EnquiryNotification{
			EnquiryID: enquiry.ID.String(),
			FirstName: enquiry.FirstName,
			LastName:  enquiry.LastName,
			Contact:   enquiry.Contact,
			Email:     enquiry.Email,
			SMSSent:   sent,
		})
		if err != nil {
			s.log.Warn("admin enquiry alert failed", zap.Error(err))
		}
	}

	return &EnquiryResult{ID: enquiry.ID, SMSSent: sent, SMSMessage: msg}, nil
}
