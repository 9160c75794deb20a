package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/numetry/internal/models"
)

func TestSubmit_NormalizesAndTexts(t *testing.T) {
	var stored *models.Enquiry
	enquiries := &mockEnquiryStore{CreateEnquiryFunc: func(ctx context.Context, e *models.Enquiry) error {
		e.ID = uuid.New()
		stored = e
		return nil
	}}
	var textedTo, textBody string
	sms := &mockTextSender{SendTextFunc: func(ctx context.Context, phone, body string) (bool, string) {
		textedTo, textBody = phone, body
		return true, "SMS sent successfully."
	}}
	admin := &mockAdmin{}
	svc := NewEnquiryService(enquiries, sms, admin, nil)

	res, err := svc.Submit(context.Background(), EnquiryInput{
		FirstName: "Asha", LastName: "Rao", Contact: "9876543210", Email: "asha@x.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "+9876543210", stored.Contact)
	assert.Equal(t, stored.ID, res.ID)
	assert.True(t, res.SMSSent)
	assert.Equal(t, "+9876543210", textedTo)
	assert.Equal(t, "Hi Asha, your enquiry form has been submitted successfully!", textBody)
	require.Len(t, admin.got, 1)
	assert.Equal(t, stored.ID.String(), admin.got[0].EnquiryID)
}

func TestSubmit_KeepsInternationalPrefix(t *testing.T) {
	var stored *models.Enquiry
	enquiries := &mockEnquiryStore{CreateEnquiryFunc: func(ctx context.Context, e *models.Enquiry) error {
		stored = e
		return nil
	}}
	sms := &mockTextSender{SendTextFunc: func(ctx context.Context, phone, body string) (bool, string) {
		return true, ""
	}}

	_, err := NewEnquiryService(enquiries, sms, nil, nil).Submit(context.Background(), EnquiryInput{
		FirstName: "B", LastName: "C", Contact: "+19876543210", Email: "b@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "+19876543210", stored.Contact)
}

func TestSubmit_SMSFailureIsAdvisory(t *testing.T) {
	enquiries := &mockEnquiryStore{CreateEnquiryFunc: func(ctx context.Context, e *models.Enquiry) error { return nil }}
	sms := &mockTextSender{SendTextFunc: func(ctx context.Context, phone, body string) (bool, string) {
		return false, "Error sending SMS: unreachable"
	}}
	admin := &mockAdmin{err: errors.New("telegram down")}

	res, err := NewEnquiryService(enquiries, sms, admin, nil).Submit(context.Background(), EnquiryInput{
		FirstName: "B", LastName: "C", Contact: "1", Email: "b@x.com",
	})
	require.NoError(t, err)
	assert.False(t, res.SMSSent)
	assert.Equal(t, "Error sending SMS: unreachable", res.SMSMessage)
	require.Len(t, admin.got, 1)
	assert.False(t, admin.got[0].SMSSent)
}

func TestSubmit_StoreFailureSkipsSMS(t *testing.T) {
	boom := errors.New("insert failed")
	enquiries := &mockEnquiryStore{CreateEnquiryFunc: func(ctx context.Context, e *models.Enquiry) error { return boom }}
	sms := &mockTextSender{SendTextFunc: func(ctx context.Context, phone, body string) (bool, string) {
		t.Fatal("sms must not be sent when the enquiry was not stored")
		return false, ""
	}}

	_, err := NewEnquiryService(enquiries, sms, nil, nil).Submit(context.Background(), EnquiryInput{FirstName: "B"})
	assert.ErrorIs(t, err, boom)
}
