package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymsphere/domain"

	"gorm.io/gorm"
)

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) domain.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// Enroll books a member into a schedule. The seat reservation is a single
// conditional UPDATE guarded by the capacity, so two concurrent calls for the
// last open seat cannot both succeed: the second one matches zero rows.
func (r *enrollmentRepository) Enroll(ctx context.Context, memberUUID string, scheduleID int, notes *string) (*domain.Enrollment, error) {
	var enrollment *domain.Enrollment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member domain.User
		if err := tx.First(&member, "uuid = ? AND role = ? AND active = ? AND deleted_at IS NULL",
			memberUUID, domain.RoleMember, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("member %s: %w", memberUUID, domain.ErrNotFound)
			}
			return fmt.Errorf("failed to verify member: %w", err)
		}

		// The schedule row is locked for the whole booking: two concurrent
		// enrolls for the same schedule serialize here, so the duplicate
		// check below cannot race itself.
		var schedule domain.ClassSchedule
		if err := lockForUpdate(tx).Preload("Class").First(&schedule, "id = ?", scheduleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("schedule %d: %w", scheduleID, domain.ErrNotFound)
			}
			return fmt.Errorf("failed to fetch schedule: %w", err)
		}
		if schedule.Status != domain.ScheduleStatusScheduled {
			return domain.ErrScheduleNotOpen
		}

		var dup int64
		if err := tx.Model(&domain.Enrollment{}).
			Where("member_uuid = ? AND schedule_id = ? AND status = ?",
				memberUUID, scheduleID, domain.EnrollmentStatusActive).
			Count(&dup).Error; err != nil {
			return fmt.Errorf("failed to check existing enrollment: %w", err)
		}
		if dup > 0 {
			return domain.ErrAlreadyEnrolled
		}

		// Atomic seat reservation against the capacity invariant.
		result := tx.Model(&domain.ClassSchedule{}).
			Where("id = ? AND status = ? AND enrolled_count < ?",
				scheduleID, domain.ScheduleStatusScheduled, schedule.Class.MaxCapacity).
			Update("enrolled_count", gorm.Expr("enrolled_count + 1"))
		if result.Error != nil {
			return fmt.Errorf("failed to reserve seat: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrClassFull
		}

		enrollment = &domain.Enrollment{
			MemberUUID: memberUUID,
			ScheduleID: scheduleID,
			Status:     domain.EnrollmentStatusActive,
			Notes:      notes,
		}
		if err := tx.Create(enrollment).Error; err != nil {
			return fmt.Errorf("failed to create enrollment: %w", err)
		}

		enrollment.Member = member
		schedule.EnrolledCount++
		enrollment.Schedule = schedule
		return nil
	})
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id int) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Schedule.Class").
		Preload("Schedule.Trainer").
		First(&enrollment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch enrollment: %w", err)
	}
	return &enrollment, nil
}

// Cancel releases the member's seat, provided the minimum-notice window has
// not closed. The window is measured against the schedule's actual start
// timestamp, not the enrollment time.
func (r *enrollmentRepository) Cancel(ctx context.Context, id int, reason *string, notice time.Duration) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var enrollment domain.Enrollment
		if err := tx.Preload("Schedule").First(&enrollment, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to fetch enrollment: %w", err)
		}

		if enrollment.Status != domain.EnrollmentStatusActive {
			return domain.ErrEnrollmentNotActive
		}

		startsAt, err := enrollment.Schedule.StartsAt()
		if err != nil {
			return fmt.Errorf("failed to parse schedule start: %w", err)
		}
		if time.Now().After(startsAt.Add(-notice)) {
			return domain.ErrCancelTooLate
		}

		if reason != nil && *reason == "" {
			reason = nil
		}

		if err := enrollment.MarkCancelled(time.Now(), reason); err != nil {
			return err
		}

		if err := tx.Model(&domain.Enrollment{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":        enrollment.Status,
				"cancelled_at":  enrollment.CancelledAt,
				"cancel_reason": enrollment.CancelReason,
			}).Error; err != nil {
			return fmt.Errorf("failed to cancel enrollment: %w", err)
		}

		if err := tx.Model(&domain.ClassSchedule{}).
			Where("id = ? AND enrolled_count > 0", enrollment.ScheduleID).
			Update("enrolled_count", gorm.Expr("enrolled_count - 1")).Error; err != nil {
			return fmt.Errorf("failed to release seat: %w", err)
		}

		return nil
	})
}

func (r *enrollmentRepository) Complete(ctx context.Context, id int) error {
	return r.finish(ctx, id, domain.EnrollmentStatusCompleted)
}

func (r *enrollmentRepository) MarkNoShow(ctx context.Context, id int) error {
	return r.finish(ctx, id, domain.EnrollmentStatusNoShow)
}

// finish moves an active enrollment to a terminal attendance status and
// releases its seat count. Terminal states never transition again.
func (r *enrollmentRepository) finish(ctx context.Context, id int, target string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.Enrollment{}).
			Where("id = ? AND status = ?", id, domain.EnrollmentStatusActive).
			Update("status", target)
		if result.Error != nil {
			return fmt.Errorf("failed to update enrollment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var count int64
			tx.Model(&domain.Enrollment{}).Where("id = ?", id).Count(&count)
			if count == 0 {
				return domain.ErrNotFound
			}
			return domain.ErrEnrollmentNotActive
		}

		var enrollment domain.Enrollment
		if err := tx.First(&enrollment, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to fetch enrollment: %w", err)
		}
		if err := tx.Model(&domain.ClassSchedule{}).
			Where("id = ? AND enrolled_count > 0", enrollment.ScheduleID).
			Update("enrolled_count", gorm.Expr("enrolled_count - 1")).Error; err != nil {
			return fmt.Errorf("failed to release seat: %w", err)
		}
		return nil
	})
}

// Rate stores a clamped score on a completed enrollment and refreshes the
// trainer's average from all stored ratings.
func (r *enrollmentRepository) Rate(ctx context.Context, id int, score int, comment *string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var enrollment domain.Enrollment
		if err := tx.Preload("Schedule").First(&enrollment, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to fetch enrollment: %w", err)
		}

		if err := enrollment.SetRating(score, comment); err != nil {
			return err
		}

		if err := tx.Model(&domain.Enrollment{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"rating":  enrollment.Rating,
				"comment": enrollment.Comment,
			}).Error; err != nil {
			return fmt.Errorf("failed to save rating: %w", err)
		}

		trainerID := enrollment.Schedule.TrainerID
		if err := tx.Model(&domain.Trainer{}).
			Where("id = ?", trainerID).
			Update("average_rating", tx.Model(&domain.Enrollment{}).
				Select("COALESCE(AVG(enrollments.rating), 0)").
				Joins("JOIN class_schedules ON class_schedules.id = enrollments.schedule_id").
				Where("class_schedules.trainer_id = ? AND enrollments.rating IS NOT NULL", trainerID),
			).Error; err != nil {
			return fmt.Errorf("failed to refresh trainer rating: %w", err)
		}

		return nil
	})
}

func (r *enrollmentRepository) ListByMember(ctx context.Context, memberUUID string) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Schedule.Class").
		Preload("Schedule.Trainer").
		Where("member_uuid = ?", memberUUID).
		Order("enrolled_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member enrollments: %w", err)
	}
	return enrollments, nil
}
