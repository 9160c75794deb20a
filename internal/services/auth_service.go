package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/numetry/internal/models"
	"github.com/example/numetry/internal/store"
	"github.com/example/numetry/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService registers users and checks their credentials.
type AuthService struct {
	users     UserStore
	jwtSecret string
	tokenTTL  time.Duration
	log       *zap.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(users UserStore, jwtSecret string, tokenTTL time.Duration, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// RegisterInput carries an already validated registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Contact  string
	Password string
}

// Register hashes the password and stores a new user. store.ErrDuplicateEmail
// is returned unchanged when the email is taken.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		Contact:      in.Contact,
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Login verifies email and password and returns the user together with a
// signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		s.log.Info("login rejected", zap.String("user_id", user.ID.String()))
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.jwtSecret, user.ID, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}
