package repository

import (
	"context"
	"errors"
	"fmt"

	"gymsphere/domain"

	"gorm.io/gorm"
)

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) domain.ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, class *domain.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) GetByID(ctx context.Context, id int) (*domain.Class, error) {
	var class domain.Class
	if err := r.db.WithContext(ctx).First(&class, "id = ? AND deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch class: %w", err)
	}
	return &class, nil
}

func (r *classRepository) List(ctx context.Context) ([]domain.Class, error) {
	var classes []domain.Class
	if err := r.db.WithContext(ctx).
		Where("active = ? AND deleted_at IS NULL", true).
		Order("name ASC").
		Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch classes: %w", err)
	}
	return classes, nil
}

// Update writes an explicit column map; a struct update would skip zero
// values and silently drop a deactivation or a cleared description.
func (r *classRepository) Update(ctx context.Context, class *domain.Class) error {
	result := r.db.WithContext(ctx).Model(&domain.Class{}).
		Where("id = ? AND deleted_at IS NULL", class.ID).
		Updates(map[string]interface{}{
			"name":             class.Name,
			"description":      class.Description,
			"duration_minutes": class.DurationMinutes,
			"max_capacity":     class.MaxCapacity,
			"level":            class.Level,
			"equipment":        class.Equipment,
			"active":           class.Active,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *classRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Model(&domain.Class{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", gorm.Expr("CURRENT_TIMESTAMP"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
