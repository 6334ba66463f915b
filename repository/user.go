package repository

import (
	"context"
	"errors"
	"fmt"

	"gymsphere/domain"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "email = ? AND deleted_at IS NULL", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByUUID(ctx context.Context, uuid string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "uuid = ? AND deleted_at IS NULL", uuid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, role string) ([]domain.User, error) {
	var users []domain.User
	q := r.db.WithContext(ctx).Where("deleted_at IS NULL")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// Update never touches the role column: roles are immutable after creation.
// The column map is explicit so zero values (deactivation, cleared optional
// fields) are written instead of skipped.
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	result := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("uuid = ? AND deleted_at IS NULL", user.UUID).
		Updates(map[string]interface{}{
			"name":                  user.Name,
			"email":                 user.Email,
			"phone":                 user.Phone,
			"password":              user.Password,
			"active":                user.Active,
			"membership_type":       user.MembershipType,
			"membership_expires_at": user.MembershipExpiresAt,
			"membership_status":     user.MembershipStatus,
			"shift":                 user.Shift,
			"hired_at":              user.HiredAt,
			"access_level":          user.AccessLevel,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete is a soft delete; the row stays for history but drops out of every
// query that filters on deleted_at.
func (r *userRepository) Delete(ctx context.Context, uuid string) error {
	result := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("uuid = ? AND deleted_at IS NULL", uuid).
		Update("deleted_at", gorm.Expr("CURRENT_TIMESTAMP"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
