package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gymsphere/domain"
)

func TestEnrollReservesSeats(t *testing.T) {
	db := newTestDB(t)
	repo := NewEnrollmentRepository(db)
	ctx := context.Background()

	trainer := seedTrainer(t, db, "Dana", "dana@gym.test")
	class := seedClass(t, db, "Private Yoga", 1)
	schedule := seedSchedule(t, db, class.ID, trainer.ID, futureDate(7), "09:00", "10:00")

	alice := seedMember(t, db, "Alice", "alice@gym.test")
	bob := seedMember(t, db, "Bob", "bob@gym.test")

	enrollment, err := repo.Enroll(ctx, alice.UUID, schedule.ID, nil)
	if err != nil {
		t.Fatalf("first Enroll() error: %v", err)
	}
	if enrollment.Status != domain.EnrollmentStatusActive {
		t.Errorf("status = %s, want active", enrollment.Status)
	}

	// The class holds one seat, the second member bounces.
	if _, err := repo.Enroll(ctx, bob.UUID, schedule.ID, nil); !errors.Is(err, domain.ErrClassFull) {
		t.Errorf("second Enroll() = %v, want ErrClassFull", err)
	}

	var reloaded domain.ClassSchedule
	db.First(&reloaded, schedule.ID)
	if reloaded.EnrolledCount != 1 {
		t.Errorf("enrolled_count = %d, want 1", reloaded.EnrolledCount)
	}
}

func TestEnrollRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewEnrollmentRepository(db)
	ctx := context.Background()

	trainer := seedTrainer(t, db, "Dana", "dana@gym.test")
	class := seedClass(t, db, "Spin", 20)
	schedule := seedSchedule(t, db, class.ID, trainer.ID, futureDate(7), "09:00", "10:00")
	alice := seedMember(t, db, "Alice", "alice@gym.test")

	first, err := repo.Enroll(ctx, alice.UUID, schedule.ID, nil)
	if err != nil {
		t.Fatalf("Enroll() error: %v", err)
	}

	if _, err := repo.Enroll(ctx, alice.UUID, schedule.ID, nil); !errors.Is(err, domain.ErrAlreadyEnrolled) {
		t.Errorf("duplicate Enroll() = %v, want ErrAlreadyEnrolled", err)
	}

	// After cancelling, the member may enroll again.
	if err := repo.Cancel(ctx, first.ID, nil, 0); err != nil {
		t.Fatalf("Cancel() error: %v", err)
	}
	if _, err := repo.Enroll(ctx, alice.UUID, schedule.ID, nil); err != nil {
		t.Errorf("re-Enroll() after cancel = %v, want nil", err)
	}
}

// Two active enrollments for the same member and schedule must be impossible
// even when rows are written without going through Enroll, as would happen if
// two concurrent bookings both passed the duplicate check.
func TestActiveEnrollmentUniqueIndex(t *testing.T) {
	db := newTestDB(t)

	trainer := seedTrainer(t, db, "Dana", "dana@gym.test")
	class := seedClass(t, db, "Spin", 20)
	schedule := seedSchedule(t, db, class.ID, trainer.ID, futureDate(7), "09:00", "10:00")
	alice := seedMember(t, db, "Alice", "alice@gym.test")

	first := &domain.Enrollment{
		MemberUUID: alice.UUID,
		ScheduleID: schedule.ID,
		Status:     domain.EnrollmentStatusActive,
	}
	if err := db.Create(first).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}

	dup := &domain.Enrollment{
		MemberUUID: alice.UUID,
		ScheduleID: schedule.ID,
		Status:     domain.EnrollmentStatusActive,
	}
	if err := db.Create(dup).Error; err == nil {
		t.Error("second active enrollment for the same member and schedule was accepted")
	}

	// The index is partial: once the first is cancelled, a fresh active
	// enrollment is allowed.
	db.Model(first).Update("status", domain.EnrollmentStatusCancelled)
	if err := db.Create(&domain.Enrollment{
		MemberUUID: alice.UUID,
		ScheduleID: schedule.ID,
		Status:     domain.EnrollmentStatusActive,
	}).Error; err != nil {
		t.Errorf("active enrollment after cancellation rejected: %v", err)
	}
}

func TestEnrollGuards(t *testing.T) {
	db := newTestDB(t)
	repo := NewEnrollmentRepository(db)
	ctx := context.Background()

	trainer := seedTrainer(t, db, "Dana", "dana@gym.test")
	class := seedClass(t, db, "Spin", 20)
	schedule := seedSchedule(t, db, class.ID, trainer.ID, futureDate(7), "09:00", "10:00")
	alice := seedMember(t, db, "Alice", "alice@gym.test")

	if _, err := repo.Enroll(ctx, "11111111-1111-1111-1111-111111111111", schedule.ID, nil); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown member = %v, want ErrNotFound", err)
	}
	if _, err := repo.Enroll(ctx, alice.UUID, 999, nil); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown schedule = %v, want ErrNotFound", err)
	}

	db.Model(schedule).Update("status", domain.ScheduleStatusCancelled)
	if _, err := repo.Enroll(ctx, alice.UUID, schedule.ID, nil); !errors.Is(err, domain.ErrScheduleNotOpen) {
		t.Errorf("cancelled schedule = %v, want ErrScheduleNotOpen", err)
	}
}

func TestCancelNoticeWindow(t *testing.T) {
	db := newTestDB(t)
	repo := NewEnrollmentRepository(db)
	ctx := context.Background()

	trainer := seedTrainer(t, db, "Dana", "dana@gym.test")
	class := seedClass(t, db, "Spin", 20)
	schedule := seedSchedule(t, db, class.ID, trainer.ID, futureDate(2), "09:00", "10:00")
	alice := seedMember(t, db, "Alice", "alice@gym.test")

	enrollment, err := repo.Enroll(ctx, alice.UUID, schedule.ID, nil)
	if err != nil {
		t.Fatalf("Enroll() error: %v", err)
	}

	// A notice longer than the time until start means the window is shut.
	tooLong := 30 * 24 * time.Hour
	if err := repo.Cancel(ctx, enrollment.ID, nil, tooLong); !errors.Is(err, domain.ErrCancelTooLate) {
		t.Errorf("Cancel() inside window = %v, want ErrCancelTooLate", err)
	}

	// The class starts in two days, the default notice still allows it.
	reason := "travel"
	if err := repo.Cancel(ctx, enrollment.ID, &reason, domain.DefaultCancelNotice); err != nil {
		t.Fatalf("Cancel() outside window = %v, want nil", err)
	}

	var reloaded domain.Enrollment
	db.First(&reloaded, enrollment.ID)
	if reloaded.Status != domain.EnrollmentStatusCancelled {
		t.Errorf("status = %s, want cancelled", reloaded.Status)
	}
	if reloaded.CancelledAt == nil {
		t.Error("cancelled_at not set")
	}
	if reloaded.CancelReason == nil || *reloaded.CancelReason != reason {
		t.Error("cancel reason not stored")
	}

	var sched domain.ClassSchedule
	db.First(&sched, schedule.ID)
	if sched.EnrolledCount != 0 {
		t.Errorf("enrolled_count = %d, want 0 after cancel", sched.EnrolledCount)
	}

	if err := repo.Cancel(ctx, enrollment.ID, nil, 0); !errors.Is(err, domain.ErrEnrollmentNotActive) {
		t.Errorf("second Cancel() = %v, want ErrEnrollmentNotActive", err)
	}
	if err := repo.Cancel(ctx, 999, nil, 0); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Cancel(999) = %v, want ErrNotFound", err)
	}
}

func TestCompleteAndNoShowReleaseSeats(t *testing.T) {
	db := newTestDB(t)
	repo := NewEnrollmentRepository(db)
	ctx := context.Background()

	trainer := seedTrainer(t, db, "Dana", "dana@gym.test")
	class := seedClass(t, db, "Spin", 20)
	schedule := seedSchedule(t, db, class.ID, trainer.ID, futureDate(7), "09:00", "10:00")

	alice := seedMember(t, db, "Alice", "alice@gym.test")
	bob := seedMember(t, db, "Bob", "bob@gym.test")
	a, _ := repo.Enroll(ctx, alice.UUID, schedule.ID, nil)
	b, _ := repo.Enroll(ctx, bob.UUID, schedule.ID, nil)

	if err := repo.Complete(ctx, a.ID); err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if err := repo.MarkNoShow(ctx, b.ID); err != nil {
		t.Fatalf("MarkNoShow() error: %v", err)
	}

	var statuses []string
	db.Model(&domain.Enrollment{}).
		Where("schedule_id = ?", schedule.ID).
		Order("id ASC").
		Pluck("status", &statuses)
	want := []string{domain.EnrollmentStatusCompleted, domain.EnrollmentStatusNoShow}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("statuses[%d] = %s, want %s", i, statuses[i], want[i])
		}
	}

	var sched domain.ClassSchedule
	db.First(&sched, schedule.ID)
	if sched.EnrolledCount != 0 {
		t.Errorf("enrolled_count = %d, want 0", sched.EnrolledCount)
	}

	// Terminal states stay terminal.
	if err := repo.Complete(ctx, a.ID); !errors.Is(err, domain.ErrEnrollmentNotActive) {
		t.Errorf("Complete() twice = %v, want ErrEnrollmentNotActive", err)
	}
	if err := repo.MarkNoShow(ctx, a.ID); !errors.Is(err, domain.ErrEnrollmentNotActive) {
		t.Errorf("MarkNoShow() on completed = %v, want ErrEnrollmentNotActive", err)
	}
	if err := repo.Complete(ctx, 999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Complete(999) = %v, want ErrNotFound", err)
	}
}

func TestRateUpdatesTrainerAverage(t *testing.T) {
	db := newTestDB(t)
	repo := NewEnrollmentRepository(db)
	ctx := context.Background()

	trainer := seedTrainer(t, db, "Dana", "dana@gym.test")
	class := seedClass(t, db, "Spin", 20)
	schedule := seedSchedule(t, db, class.ID, trainer.ID, futureDate(7), "09:00", "10:00")

	alice := seedMember(t, db, "Alice", "alice@gym.test")
	bob := seedMember(t, db, "Bob", "bob@gym.test")
	a, _ := repo.Enroll(ctx, alice.UUID, schedule.ID, nil)
	b, _ := repo.Enroll(ctx, bob.UUID, schedule.ID, nil)

	// Rating requires attendance.
	if err := repo.Rate(ctx, a.ID, 5, nil); !errors.Is(err, domain.ErrNotCompleted) {
		t.Errorf("Rate() on active = %v, want ErrNotCompleted", err)
	}

	if err := repo.Complete(ctx, a.ID); err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if err := repo.Complete(ctx, b.ID); err != nil {
		t.Fatalf("Complete() error: %v", err)
	}

	comment := "loved it"
	if err := repo.Rate(ctx, a.ID, 5, &comment); err != nil {
		t.Fatalf("Rate() error: %v", err)
	}
	// Out-of-range scores are clamped, not rejected.
	if err := repo.Rate(ctx, b.ID, 99, nil); err != nil {
		t.Fatalf("Rate() with high score error: %v", err)
	}

	var rated domain.Enrollment
	db.First(&rated, b.ID)
	if rated.Rating == nil || *rated.Rating != domain.RatingMax {
		t.Errorf("rating = %v, want clamped to %d", rated.Rating, domain.RatingMax)
	}

	var updated domain.Trainer
	db.First(&updated, trainer.ID)
	if updated.AverageRating != 5 {
		t.Errorf("average_rating = %v, want 5", updated.AverageRating)
	}

	if err := repo.Rate(ctx, 999, 4, nil); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Rate(999) = %v, want ErrNotFound", err)
	}
}

func TestListByMember(t *testing.T) {
	db := newTestDB(t)
	repo := NewEnrollmentRepository(db)
	ctx := context.Background()

	trainer := seedTrainer(t, db, "Dana", "dana@gym.test")
	class := seedClass(t, db, "Spin", 20)
	s1 := seedSchedule(t, db, class.ID, trainer.ID, futureDate(7), "09:00", "10:00")
	s2 := seedSchedule(t, db, class.ID, trainer.ID, futureDate(8), "09:00", "10:00")

	alice := seedMember(t, db, "Alice", "alice@gym.test")
	bob := seedMember(t, db, "Bob", "bob@gym.test")
	if _, err := repo.Enroll(ctx, alice.UUID, s1.ID, nil); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := repo.Enroll(ctx, alice.UUID, s2.ID, nil); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := repo.Enroll(ctx, bob.UUID, s1.ID, nil); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	mine, err := repo.ListByMember(ctx, alice.UUID)
	if err != nil {
		t.Fatalf("ListByMember() error: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("ListByMember() returned %d rows, want 2", len(mine))
	}
	for _, e := range mine {
		if e.MemberUUID != alice.UUID {
			t.Errorf("found enrollment for %s in alice's list", e.MemberUUID)
		}
		if e.Schedule.Class.Name != "Spin" {
			t.Error("schedule class not preloaded")
		}
	}
}
