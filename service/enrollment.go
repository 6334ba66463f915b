package service

import (
	"context"
	"os"
	"strconv"
	"time"

	"gymsphere/domain"
)

type enrollmentService struct {
	enrollmentRepo domain.EnrollmentRepository
	cancelNotice   time.Duration
}

func NewEnrollmentService(enrollmentRepo domain.EnrollmentRepository) domain.EnrollmentUseCase {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		cancelNotice:   cancelNoticeFromEnv(),
	}
}

// cancelNoticeFromEnv allows overriding the minimum cancellation notice in
// hours; anything unset or unparsable falls back to the default policy.
func cancelNoticeFromEnv() time.Duration {
	raw := os.Getenv("CANCEL_NOTICE_HOURS")
	if raw == "" {
		return domain.DefaultCancelNotice
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours < 0 {
		return domain.DefaultCancelNotice
	}
	return time.Duration(hours) * time.Hour
}

func (s *enrollmentService) Enroll(ctx context.Context, memberUUID string, scheduleID int, notes *string) (*domain.Enrollment, error) {
	return s.enrollmentRepo.Enroll(ctx, memberUUID, scheduleID, notes)
}

func (s *enrollmentService) GetByID(ctx context.Context, id int) (*domain.Enrollment, error) {
	return s.enrollmentRepo.GetByID(ctx, id)
}

func (s *enrollmentService) Cancel(ctx context.Context, id int, reason *string) error {
	return s.enrollmentRepo.Cancel(ctx, id, reason, s.cancelNotice)
}

func (s *enrollmentService) Complete(ctx context.Context, id int) error {
	return s.enrollmentRepo.Complete(ctx, id)
}

func (s *enrollmentService) MarkNoShow(ctx context.Context, id int) error {
	return s.enrollmentRepo.MarkNoShow(ctx, id)
}

func (s *enrollmentService) Rate(ctx context.Context, id int, score int, comment *string) error {
	return s.enrollmentRepo.Rate(ctx, id, score, comment)
}

func (s *enrollmentService) ListByMember(ctx context.Context, memberUUID string) ([]domain.Enrollment, error) {
	return s.enrollmentRepo.ListByMember(ctx, memberUUID)
}
