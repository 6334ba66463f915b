package service

import (
	"context"
	"errors"

	"gymsphere/domain"
	"gymsphere/utils"
)

type scheduleService struct {
	scheduleRepo domain.ScheduleRepository
	classRepo    domain.ClassRepository
}

func NewScheduleService(scheduleRepo domain.ScheduleRepository, classRepo domain.ClassRepository) domain.ScheduleUseCase {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		classRepo:    classRepo,
	}
}

func (s *scheduleService) List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.ClassSchedule, error) {
	return s.scheduleRepo.List(ctx, filter)
}

func (s *scheduleService) GetByID(ctx context.Context, id int) (*domain.ClassSchedule, error) {
	return s.scheduleRepo.GetByID(ctx, id)
}

// Create fills the end time from the class duration when the caller left it
// empty, then rejects empty or inverted time ranges before the repository
// runs the trainer-conflict check.
func (s *scheduleService) Create(ctx context.Context, schedule *domain.ClassSchedule) error {
	if schedule.EndTime == "" {
		class, err := s.classRepo.GetByID(ctx, schedule.ClassID)
		if err != nil {
			return err
		}
		end, err := utils.CalculateEndTime(schedule.StartTime, class.DurationMinutes)
		if err != nil {
			return err
		}
		schedule.EndTime = end
	}

	if schedule.StartTime >= schedule.EndTime {
		return errors.New("end time must be after start time")
	}

	schedule.Status = domain.ScheduleStatusScheduled
	schedule.EnrolledCount = 0
	return s.scheduleRepo.Create(ctx, schedule)
}

func (s *scheduleService) Roster(ctx context.Context, scheduleID int) ([]domain.Enrollment, error) {
	if _, err := s.scheduleRepo.GetByID(ctx, scheduleID); err != nil {
		return nil, err
	}
	return s.scheduleRepo.Roster(ctx, scheduleID)
}

func (s *scheduleService) Start(ctx context.Context, id int) error {
	return s.scheduleRepo.Start(ctx, id)
}

func (s *scheduleService) Complete(ctx context.Context, id int) error {
	return s.scheduleRepo.Complete(ctx, id)
}

func (s *scheduleService) Cancel(ctx context.Context, id int, reason *string) error {
	return s.scheduleRepo.Cancel(ctx, id, reason)
}
