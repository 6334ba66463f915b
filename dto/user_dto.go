package dto

import (
	"time"

	"gymsphere/domain"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name           string `json:"name" binding:"required,max=50"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required,max=14"`
	Password       string `json:"password" binding:"required,min=8"`
	MembershipType string `json:"membership_type" binding:"omitempty,oneof=basic premium vip"`
}

func (r *RegisterRequest) ToUser() *domain.User {
	membership := r.MembershipType
	if membership == "" {
		membership = domain.MembershipBasic
	}
	status := domain.MembershipStatusActive
	expires := time.Now().AddDate(0, 1, 0)
	return &domain.User{
		Name:                r.Name,
		Email:               r.Email,
		Phone:               r.Phone,
		MembershipType:      &membership,
		MembershipStatus:    &status,
		MembershipExpiresAt: &expires,
	}
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// CreateUserRequest is the admin-facing creation payload. Role-specific
// fields are validated again in the service against the chosen role.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,max=14"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin member receptionist"`

	MembershipType *string `json:"membership_type" binding:"omitempty,oneof=basic premium vip"`
	Shift          *string `json:"shift" binding:"omitempty,oneof=morning afternoon night"`
	AccessLevel    *string `json:"access_level" binding:"omitempty,oneof=general super"`
}

func (r *CreateUserRequest) ToUser() *domain.User {
	user := &domain.User{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Password:       r.Password,
		Role:           r.Role,
		MembershipType: r.MembershipType,
		Shift:          r.Shift,
		AccessLevel:    r.AccessLevel,
	}
	if r.Role == domain.RoleMember {
		status := domain.MembershipStatusActive
		expires := time.Now().AddDate(0, 1, 0)
		user.MembershipStatus = &status
		user.MembershipExpiresAt = &expires
	}
	if r.Role == domain.RoleReceptionist {
		now := time.Now()
		user.HiredAt = &now
	}
	return user
}

type UpdateUserRequest struct {
	Name   string `json:"name" binding:"required,max=50"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone" binding:"required,max=14"`
	Active *bool  `json:"active" binding:"required"`

	MembershipType   *string    `json:"membership_type" binding:"omitempty,oneof=basic premium vip"`
	MembershipStatus *string    `json:"membership_status" binding:"omitempty,oneof=active expired suspended"`
	ExpiresAt        *time.Time `json:"membership_expires_at" binding:"omitempty"`
	Shift            *string    `json:"shift" binding:"omitempty,oneof=morning afternoon night"`
	AccessLevel      *string    `json:"access_level" binding:"omitempty,oneof=general super"`
}

func (r *UpdateUserRequest) ApplyTo(user *domain.User) {
	user.Name = r.Name
	user.Email = r.Email
	user.Phone = r.Phone
	if r.Active != nil {
		user.Active = *r.Active
	}
	if r.MembershipType != nil {
		user.MembershipType = r.MembershipType
	}
	if r.MembershipStatus != nil {
		user.MembershipStatus = r.MembershipStatus
	}
	if r.ExpiresAt != nil {
		user.MembershipExpiresAt = r.ExpiresAt
	}
	if r.Shift != nil {
		user.Shift = r.Shift
	}
	if r.AccessLevel != nil {
		user.AccessLevel = r.AccessLevel
	}
}
