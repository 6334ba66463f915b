package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymsphere/domain"
	"gymsphere/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) domain.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// lockForUpdate acquires a row-level lock where the dialect supports it.
// SQLite (tests) has a single writer per database, so the lock is redundant
// there and FOR UPDATE is not valid syntax.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *scheduleRepository) List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.ClassSchedule, error) {
	var schedules []domain.ClassSchedule

	q := r.db.WithContext(ctx).
		Preload("Class").
		Preload("Trainer")

	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	} else {
		q = q.Where("date >= ?", utils.Today())
	}
	if filter.TrainerID > 0 {
		q = q.Where("trainer_id = ?", filter.TrainerID)
	}
	if filter.OnlyUpcoming {
		q = q.Where("status = ?", domain.ScheduleStatusScheduled)
	}

	err := q.Order("date ASC, start_time ASC").Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}

	return schedules, nil
}

func (r *scheduleRepository) GetByID(ctx context.Context, id int) (*domain.ClassSchedule, error) {
	var schedule domain.ClassSchedule
	err := r.db.WithContext(ctx).
		Preload("Class").
		Preload("Trainer").
		First(&schedule, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	return &schedule, nil
}

// Create inserts a schedule after verifying the trainer has no overlapping
// scheduled occurrence on the same date. Check and insert run in one
// transaction with the trainer row locked, so two concurrent creations for
// the same trainer cannot both pass the conflict check.
func (r *scheduleRepository) Create(ctx context.Context, schedule *domain.ClassSchedule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var class domain.Class
		if err := tx.First(&class, "id = ? AND active = ?", schedule.ClassID, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("class %d: %w", schedule.ClassID, domain.ErrNotFound)
			}
			return fmt.Errorf("failed to verify class: %w", err)
		}

		var trainer domain.Trainer
		if err := lockForUpdate(tx).First(&trainer, "id = ? AND active = ?", schedule.TrainerID, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("trainer %d: %w", schedule.TrainerID, domain.ErrNotFound)
			}
			return fmt.Errorf("failed to verify trainer: %w", err)
		}

		// Half-open overlap: touching ranges are not conflicts. Only
		// scheduled occurrences block; cancelled and completed never do.
		var count int64
		err := tx.Model(&domain.ClassSchedule{}).
			Where("trainer_id = ? AND date = ? AND status = ? AND deleted_at IS NULL",
				schedule.TrainerID, schedule.Date, domain.ScheduleStatusScheduled).
			Where("start_time < ? AND end_time > ?", schedule.EndTime, schedule.StartTime).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check trainer conflicts: %w", err)
		}
		if count > 0 {
			return domain.ErrScheduleConflict
		}

		schedule.Status = domain.ScheduleStatusScheduled
		schedule.EnrolledCount = 0
		if err := tx.Create(schedule).Error; err != nil {
			return fmt.Errorf("failed to create schedule: %w", err)
		}

		schedule.Class = class
		schedule.Trainer = trainer
		return nil
	})
}

func (r *scheduleRepository) Roster(ctx context.Context, scheduleID int) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("schedule_id = ? AND status = ?", scheduleID, domain.EnrollmentStatusActive).
		Order("enrolled_at ASC").
		Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}
	return enrollments, nil
}

func (r *scheduleRepository) Start(ctx context.Context, id int) error {
	return r.transition(ctx, id, []string{domain.ScheduleStatusScheduled}, domain.ScheduleStatusInProgress)
}

// Complete marks the occurrence finished and credits the trainer with one
// more class taught.
func (r *scheduleRepository) Complete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var schedule domain.ClassSchedule
		if err := lockForUpdate(tx).First(&schedule, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to fetch schedule: %w", err)
		}

		if schedule.Status != domain.ScheduleStatusScheduled && schedule.Status != domain.ScheduleStatusInProgress {
			return domain.ErrInvalidTransition
		}

		if err := tx.Model(&domain.ClassSchedule{}).
			Where("id = ?", id).
			Update("status", domain.ScheduleStatusCompleted).Error; err != nil {
			return fmt.Errorf("failed to complete schedule: %w", err)
		}

		if err := tx.Model(&domain.Trainer{}).
			Where("id = ?", schedule.TrainerID).
			Update("classes_taught", gorm.Expr("classes_taught + 1")).Error; err != nil {
			return fmt.Errorf("failed to update trainer class count: %w", err)
		}

		return nil
	})
}

// Cancel cancels the occurrence and cascades to its active enrollments so no
// member stays booked into a dead class. One transaction: either the schedule
// and its whole roster flip, or nothing does.
func (r *scheduleRepository) Cancel(ctx context.Context, id int, reason *string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var schedule domain.ClassSchedule
		if err := lockForUpdate(tx).First(&schedule, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to fetch schedule: %w", err)
		}

		if schedule.Status != domain.ScheduleStatusScheduled {
			return domain.ErrInvalidTransition
		}

		if reason == nil || *reason == "" {
			defaultReason := "class cancelled by the gym"
			reason = &defaultReason
		}
		now := time.Now()

		if err := tx.Model(&domain.Enrollment{}).
			Where("schedule_id = ? AND status = ?", id, domain.EnrollmentStatusActive).
			Updates(map[string]interface{}{
				"status":        domain.EnrollmentStatusCancelled,
				"cancelled_at":  now,
				"cancel_reason": reason,
			}).Error; err != nil {
			return fmt.Errorf("failed to cancel enrollments: %w", err)
		}

		if err := tx.Model(&domain.ClassSchedule{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":         domain.ScheduleStatusCancelled,
				"enrolled_count": 0,
			}).Error; err != nil {
			return fmt.Errorf("failed to cancel schedule: %w", err)
		}

		return nil
	})
}

func (r *scheduleRepository) transition(ctx context.Context, id int, from []string, to string) error {
	result := r.db.WithContext(ctx).Model(&domain.ClassSchedule{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return fmt.Errorf("failed to update schedule status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		r.db.WithContext(ctx).Model(&domain.ClassSchedule{}).Where("id = ?", id).Count(&count)
		if count == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}
