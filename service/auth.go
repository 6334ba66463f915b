package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymsphere/domain"
	"gymsphere/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo     domain.UserRepository
	sessionRepo  domain.SessionRepository
	accessToken  *utils.JWTManager
	refreshToken *utils.JWTManager
}

func NewAuthService(userRepo domain.UserRepository, sessionRepo domain.SessionRepository, secret string) domain.AuthUseCase {
	return &authService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		accessToken:  utils.NewJWTManager(secret, time.Hour),
		refreshToken: utils.NewJWTManager(secret, 7*24*time.Hour),
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.AuthTokens, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, errors.New("invalid credentials")
	}
	if !user.Active {
		return nil, nil, errors.New("account is deactivated")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil, errors.New("invalid credentials")
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return tokens, user, nil
}

// Register creates a member account. Staff accounts are created by an admin
// through the user management endpoints, never by self-registration.
func (s *authService) Register(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if _, err := s.userRepo.GetByEmail(ctx, user.Email); err == nil {
		return nil, errors.New("email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)
	user.Role = domain.RoleMember
	user.Active = true

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	go func(email, name string) {
		subject := "Welcome to the gym"
		body := fmt.Sprintf("Hi %s,\n\nYour membership account is ready. See you in class!", name)
		if err := utils.SendEmail(email, subject, body); err != nil {
			log.Warn().Err(err).Str("email", email).Msg("failed to send welcome email")
		}
	}(user.Email, user.Name)

	return user, nil
}

// Refresh rotates the token pair. The presented refresh token must match the
// session stored server-side; a signature alone is not enough.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthTokens, error) {
	userUUID, _, err := s.refreshToken.VerifyToken(refreshToken)
	if err != nil {
		return nil, errors.New("invalid refresh token")
	}

	valid, err := s.sessionRepo.Validate(ctx, userUUID, refreshToken)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, errors.New("session expired, please log in again")
	}

	user, err := s.userRepo.GetByUUID(ctx, userUUID)
	if err != nil {
		return nil, errors.New("invalid refresh token")
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) Logout(ctx context.Context, userUUID string) error {
	return s.sessionRepo.Delete(ctx, userUUID)
}

func (s *authService) Me(ctx context.Context, userUUID string) (*domain.User, []string, error) {
	user, err := s.userRepo.GetByUUID(ctx, userUUID)
	if err != nil {
		return nil, nil, err
	}
	return user, domain.PermissionsFor(user), nil
}

func (s *authService) ChangePassword(ctx context.Context, userUUID, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByUUID(ctx, userUUID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return errors.New("old password mismatch")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.userRepo.Update(ctx, user)
}

func (s *authService) GetAccessTokenManager() *utils.JWTManager {
	return s.accessToken
}

func (s *authService) issueTokens(ctx context.Context, user *domain.User) (*domain.AuthTokens, error) {
	access, err := s.accessToken.GenerateToken(user.UUID, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.refreshToken.GenerateToken(user.UUID, user.Role)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Save(ctx, user.UUID, refresh, s.refreshToken.Duration()); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &domain.AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
