package service

import (
	"context"
	"errors"
	"fmt"

	"gymsphere/domain"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo domain.UserRepository
}

func NewUserService(userRepo domain.UserRepository) domain.UserUseCase {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := validateRoleFields(user); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, user.Email); err == nil {
		return nil, errors.New("email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)
	user.Active = true

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByUUID(ctx context.Context, uuid string) (*domain.User, error) {
	return s.userRepo.GetByUUID(ctx, uuid)
}

func (s *userService) List(ctx context.Context, role string) ([]domain.User, error) {
	return s.userRepo.List(ctx, role)
}

func (s *userService) Update(ctx context.Context, user *domain.User) error {
	existing, err := s.userRepo.GetByUUID(ctx, user.UUID)
	if err != nil {
		return err
	}

	// Roles never change after creation; the repository also omits the
	// column, this keeps the validation honest against the stored role.
	user.Role = existing.Role
	if err := validateRoleFields(user); err != nil {
		return err
	}
	return s.userRepo.Update(ctx, user)
}

func (s *userService) Delete(ctx context.Context, uuid string) error {
	return s.userRepo.Delete(ctx, uuid)
}

// validateRoleFields rejects profile columns that do not belong to the
// user's role, so a member row never carries a shift and an admin never
// carries a membership.
func validateRoleFields(user *domain.User) error {
	switch user.Role {
	case domain.RoleMember:
		if user.Shift != nil || user.HiredAt != nil || user.AccessLevel != nil {
			return errors.New("member accounts cannot carry staff fields")
		}
		if user.MembershipType == nil {
			basic := domain.MembershipBasic
			user.MembershipType = &basic
		}
		if user.MembershipStatus == nil {
			active := domain.MembershipStatusActive
			user.MembershipStatus = &active
		}
	case domain.RoleReceptionist:
		if user.MembershipType != nil || user.AccessLevel != nil {
			return errors.New("receptionist accounts cannot carry member or admin fields")
		}
	case domain.RoleAdmin:
		if user.MembershipType != nil || user.Shift != nil {
			return errors.New("admin accounts cannot carry member or receptionist fields")
		}
		if user.AccessLevel == nil {
			general := domain.AccessLevelGeneral
			user.AccessLevel = &general
		}
	default:
		return fmt.Errorf("unknown role %q", user.Role)
	}
	return nil
}
