package service

import (
	"context"
	"testing"

	"gymsphere/domain"
)

type fakeScheduleRepo struct {
	domain.ScheduleRepository
	created *domain.ClassSchedule
}

func (f *fakeScheduleRepo) Create(ctx context.Context, schedule *domain.ClassSchedule) error {
	f.created = schedule
	return nil
}

type fakeClassRepo struct {
	domain.ClassRepository
	class *domain.Class
}

func (f *fakeClassRepo) GetByID(ctx context.Context, id int) (*domain.Class, error) {
	if f.class == nil || f.class.ID != id {
		return nil, domain.ErrNotFound
	}
	return f.class, nil
}

func TestScheduleCreateDerivesEndTime(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{}
	classRepo := &fakeClassRepo{class: &domain.Class{ID: 1, DurationMinutes: 45}}
	svc := NewScheduleService(scheduleRepo, classRepo)

	schedule := &domain.ClassSchedule{
		ClassID:   1,
		TrainerID: 1,
		Date:      "2026-09-01",
		StartTime: "18:15",
	}
	if err := svc.Create(context.Background(), schedule); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if scheduleRepo.created == nil {
		t.Fatal("schedule never reached the repository")
	}
	if scheduleRepo.created.EndTime != "19:00" {
		t.Errorf("derived end time = %s, want 19:00", scheduleRepo.created.EndTime)
	}
	if scheduleRepo.created.Status != domain.ScheduleStatusScheduled {
		t.Errorf("status = %s, want scheduled", scheduleRepo.created.Status)
	}
	if scheduleRepo.created.EnrolledCount != 0 {
		t.Errorf("enrolled_count = %d, want 0", scheduleRepo.created.EnrolledCount)
	}
}

func TestScheduleCreateKeepsExplicitEndTime(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{}
	svc := NewScheduleService(scheduleRepo, &fakeClassRepo{})

	schedule := &domain.ClassSchedule{
		ClassID:   1,
		TrainerID: 1,
		Date:      "2026-09-01",
		StartTime: "18:00",
		EndTime:   "19:30",
	}
	if err := svc.Create(context.Background(), schedule); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if scheduleRepo.created.EndTime != "19:30" {
		t.Errorf("end time = %s, want 19:30 untouched", scheduleRepo.created.EndTime)
	}
}

func TestScheduleCreateRejectsEmptyRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"zero duration", "10:00", "10:00"},
		{"inverted range", "11:00", "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheduleRepo := &fakeScheduleRepo{}
			svc := NewScheduleService(scheduleRepo, &fakeClassRepo{})

			err := svc.Create(context.Background(), &domain.ClassSchedule{
				ClassID:   1,
				TrainerID: 1,
				Date:      "2026-09-01",
				StartTime: tt.start,
				EndTime:   tt.end,
			})
			if err == nil {
				t.Error("Create() accepted an empty time range")
			}
			if scheduleRepo.created != nil {
				t.Error("invalid schedule reached the repository")
			}
		})
	}
}

func TestScheduleCreateUnknownClass(t *testing.T) {
	svc := NewScheduleService(&fakeScheduleRepo{}, &fakeClassRepo{})

	err := svc.Create(context.Background(), &domain.ClassSchedule{
		ClassID:   42,
		TrainerID: 1,
		Date:      "2026-09-01",
		StartTime: "18:00",
	})
	if err == nil {
		t.Error("Create() should fail when the class cannot be loaded")
	}
}
