// domain/auth.go
package domain

import (
	"context"
	"time"

	"gymsphere/utils"
)

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SessionRepository stores refresh tokens server-side so sessions can be
// revoked; a token not present in the store is invalid regardless of its
// signature.
type SessionRepository interface {
	Save(ctx context.Context, userUUID, refreshToken string, ttl time.Duration) error
	Validate(ctx context.Context, userUUID, refreshToken string) (bool, error)
	Delete(ctx context.Context, userUUID string) error
}

type AuthUseCase interface {
	GetAccessTokenManager() *utils.JWTManager
	Login(ctx context.Context, email, password string) (*AuthTokens, *User, error)
	Register(ctx context.Context, user *User, password string) (*User, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, userUUID string) error
	Me(ctx context.Context, userUUID string) (*User, []string, error)
	ChangePassword(ctx context.Context, userUUID, oldPassword, newPassword string) error
}
