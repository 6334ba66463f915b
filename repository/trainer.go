package repository

import (
	"context"
	"errors"
	"fmt"

	"gymsphere/domain"

	"gorm.io/gorm"
)

type trainerRepository struct {
	db *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) domain.TrainerRepository {
	return &trainerRepository{db: db}
}

func (r *trainerRepository) Create(ctx context.Context, trainer *domain.Trainer) error {
	return r.db.WithContext(ctx).Create(trainer).Error
}

func (r *trainerRepository) GetByID(ctx context.Context, id int) (*domain.Trainer, error) {
	var trainer domain.Trainer
	if err := r.db.WithContext(ctx).First(&trainer, "id = ? AND deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch trainer: %w", err)
	}
	return &trainer, nil
}

func (r *trainerRepository) List(ctx context.Context) ([]domain.Trainer, error) {
	var trainers []domain.Trainer
	if err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("name ASC").
		Find(&trainers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch trainers: %w", err)
	}
	return trainers, nil
}

// Update writes an explicit column map so zero values (a deactivation, a
// rate dropped to 0) are not skipped the way struct updates skip them.
// The rating and class counters stay repository-owned.
func (r *trainerRepository) Update(ctx context.Context, trainer *domain.Trainer) error {
	result := r.db.WithContext(ctx).Model(&domain.Trainer{}).
		Where("id = ? AND deleted_at IS NULL", trainer.ID).
		Updates(map[string]interface{}{
			"name":             trainer.Name,
			"email":            trainer.Email,
			"phone":            trainer.Phone,
			"specialties":      trainer.Specialties,
			"certifications":   trainer.Certifications,
			"experience_years": trainer.ExperienceYears,
			"hourly_rate":      trainer.HourlyRate,
			"active":           trainer.Active,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *trainerRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Model(&domain.Trainer{}).
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

func (r *trainerRepository) ListAssignments(ctx context.Context, filter domain.AssignmentFilter) ([]domain.TrainerAssignment, error) {
	var assignments []domain.TrainerAssignment

	q := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Trainer")

	if filter.MemberUUID != "" {
		q = q.Where("member_uuid = ?", filter.MemberUUID)
	}
	if filter.TrainerID > 0 {
		q = q.Where("trainer_id = ?", filter.TrainerID)
	}

	if err := q.Order("assigned_at DESC").Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	return assignments, nil
}

// CreateAssignment verifies both references in the same transaction as the
// insert: no assignment may point at a missing member or an inactive trainer.
func (r *trainerRepository) CreateAssignment(ctx context.Context, assignment *domain.TrainerAssignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member domain.User
		if err := tx.First(&member, "uuid = ? AND role = ? AND deleted_at IS NULL",
			assignment.MemberUUID, domain.RoleMember).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("member %s: %w", assignment.MemberUUID, domain.ErrNotFound)
			}
			return fmt.Errorf("failed to verify member: %w", err)
		}

		var trainer domain.Trainer
		if err := tx.First(&trainer, "id = ? AND active = ? AND deleted_at IS NULL",
			assignment.TrainerID, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("trainer %d: %w", assignment.TrainerID, domain.ErrNotFound)
			}
			return fmt.Errorf("failed to verify trainer: %w", err)
		}

		if err := tx.Create(assignment).Error; err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}

		assignment.Member = member
		assignment.Trainer = trainer
		return nil
	})
}
