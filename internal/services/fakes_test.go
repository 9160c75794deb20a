package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/example/numetry/internal/models"
	"github.com/example/numetry/internal/store"
	"github.com/example/numetry/internal/utils"
)

func init() {
	utils.PasswordCost = bcrypt.MinCost
}

// memoryUsers is an in-memory UserStore keyed by lower-cased email.
type memoryUsers struct {
	users     map[string]*models.User
	updateErr error
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]*models.User{}}
}

func (m *memoryUsers) CreateUser(ctx context.Context, user *models.User) error {
	key := strings.ToLower(user.Email)
	if _, ok := m.users[key]; ok {
		return store.ErrDuplicateEmail
	}
	user.ID = uuid.New()
	user.Email = key
	cp := *user
	m.users[key] = &cp
	return nil
}

func (m *memoryUsers) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := m.users[strings.ToLower(email)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memoryUsers) UpdatePassword(ctx context.Context, email, hash string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	u, ok := m.users[strings.ToLower(email)]
	if !ok {
		return store.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

type mockMailer struct {
	SendOTPFunc func(ctx context.Context, to, code string) error
	calls       int
}

func (m *mockMailer) SendOTP(ctx context.Context, to, code string) error {
	m.calls++
	if m.SendOTPFunc == nil {
		return nil
	}
	return m.SendOTPFunc(ctx, to, code)
}

type mockTextSender struct {
	SendTextFunc func(ctx context.Context, phone, body string) (bool, string)
}

func (m *mockTextSender) SendText(ctx context.Context, phone, body string) (bool, string) {
	return m.SendTextFunc(ctx, phone, body)
}

type mockEnquiryStore struct {
	CreateEnquiryFunc func(ctx context.Context, e *models.Enquiry) error
}

func (m *mockEnquiryStore) CreateEnquiry(ctx context.Context, e *models.Enquiry) error {
	return m.CreateEnquiryFunc(ctx, e)
}

type mockAdmin struct {
	got []EnquiryNotification
	err error
}

func (m *mockAdmin) NotifyNewEnquiry(n EnquiryNotification) error {
	m.got = append(m.got, n)
	return m.err
}
