package services

import (
	"context"
	"errors"
	"time"

	"opsboard/internal/repository"
	"opsboard/internal/session"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords;
// login responses never say which.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, data *session.Data, err error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (*session.Data, error)
}

type authService struct {
	userRepo repository.UserRepository
	sessions session.Store
}

func NewAuthService(userRepo repository.UserRepository, sessions session.Store) AuthService {
	return &authService{userRepo: userRepo, sessions: sessions}
}

// Login resolves the username case-insensitively and compares the password
// against the stored bcrypt hash. The compare is constant-time; the stored
// value is never a plaintext password.
func (s *authService) Login(ctx context.Context, username, password string) (string, *session.Data, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	data := &session.Data{
		UserID:      user.ID,
		Username:    user.Username,
		Role:        user.Role,
		DisplayName: user.DisplayName,
		CreatedAt:   time.Now(),
	}
	token, err := s.sessions.Create(ctx, data)
	if err != nil {
		return "", nil, err
	}
	return token, data, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *authService) Resolve(ctx context.Context, token string) (*session.Data, error) {
	return s.sessions.Get(ctx, token)
}
