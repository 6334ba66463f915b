package domain

import (
	"context"
	"time"
)

// CanTransition reports whether an enrollment may move from its current
// status to target. Active is the only non-terminal status.
func (e *Enrollment) CanTransition(target string) bool {
	if e.Status != EnrollmentStatusActive {
		return false
	}
	switch target {
	case EnrollmentStatusCancelled, EnrollmentStatusCompleted, EnrollmentStatusNoShow:
		return true
	}
	return false
}

// MarkCancelled moves the enrollment to cancelled with a timestamp and an
// optional reason. Only valid from active.
func (e *Enrollment) MarkCancelled(at time.Time, reason *string) error {
	if !e.CanTransition(EnrollmentStatusCancelled) {
		return ErrEnrollmentNotActive
	}
	e.Status = EnrollmentStatusCancelled
	e.CancelledAt = &at
	e.CancelReason = reason
	return nil
}

func (e *Enrollment) MarkCompleted() error {
	if !e.CanTransition(EnrollmentStatusCompleted) {
		return ErrEnrollmentNotActive
	}
	e.Status = EnrollmentStatusCompleted
	return nil
}

func (e *Enrollment) MarkNoShow() error {
	if !e.CanTransition(EnrollmentStatusNoShow) {
		return ErrEnrollmentNotActive
	}
	e.Status = EnrollmentStatusNoShow
	return nil
}

// SetRating attaches a rating and optional comment. Ratings are only allowed
// once the class was attended (status completed) and the score is clamped
// into [RatingMin, RatingMax].
func (e *Enrollment) SetRating(score int, comment *string) error {
	if e.Status != EnrollmentStatusCompleted {
		return ErrNotCompleted
	}
	e.Rating = &score
	ClampRating(e.Rating)
	e.Comment = comment
	return nil
}

func ClampRating(score *int) {
	if *score < RatingMin {
		*score = RatingMin
	}
	if *score > RatingMax {
		*score = RatingMax
	}
}

type EnrollmentRepository interface {
	// Enroll creates an active enrollment and reserves a seat atomically.
	Enroll(ctx context.Context, memberUUID string, scheduleID int, notes *string) (*Enrollment, error)
	GetByID(ctx context.Context, id int) (*Enrollment, error)
	// Cancel enforces the minimum-notice policy against the schedule's
	// start timestamp and releases the seat in the same transaction.
	Cancel(ctx context.Context, id int, reason *string, notice time.Duration) error
	Complete(ctx context.Context, id int) error
	MarkNoShow(ctx context.Context, id int) error
	Rate(ctx context.Context, id int, score int, comment *string) error
	ListByMember(ctx context.Context, memberUUID string) ([]Enrollment, error)
}

type EnrollmentUseCase interface {
	Enroll(ctx context.Context, memberUUID string, scheduleID int, notes *string) (*Enrollment, error)
	GetByID(ctx context.Context, id int) (*Enrollment, error)
	Cancel(ctx context.Context, id int, reason *string) error
	Complete(ctx context.Context, id int) error
	MarkNoShow(ctx context.Context, id int) error
	Rate(ctx context.Context, id int, score int, comment *string) error
	ListByMember(ctx context.Context, memberUUID string) ([]Enrollment, error)
}
