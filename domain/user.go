package domain

import "context"

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUUID(ctx context.Context, uuid string) (*User, error)
	List(ctx context.Context, role string) ([]User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, uuid string) error
}

type UserUseCase interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUUID(ctx context.Context, uuid string) (*User, error)
	List(ctx context.Context, role string) ([]User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, uuid string) error
}
