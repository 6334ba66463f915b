package domain

import "context"

// TimeRangesOverlap reports whether two half-open [start,end) clock ranges
// overlap. Ranges that only touch (one ends exactly when the other starts)
// do not overlap. HH:MM strings compare correctly as plain strings.
func TimeRangesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// ScheduleFilter narrows the schedule listing. An empty Date means
// "today and later". Status defaults to scheduled occurrences only when
// OnlyUpcoming is set.
type ScheduleFilter struct {
	Date         string
	TrainerID    int
	OnlyUpcoming bool
}

type ScheduleRepository interface {
	List(ctx context.Context, filter ScheduleFilter) ([]ClassSchedule, error)
	GetByID(ctx context.Context, id int) (*ClassSchedule, error)
	// Create validates the trainer-conflict invariant and inserts the
	// schedule within a single transaction.
	Create(ctx context.Context, schedule *ClassSchedule) error
	Roster(ctx context.Context, scheduleID int) ([]Enrollment, error)
	Start(ctx context.Context, id int) error
	Complete(ctx context.Context, id int) error
	Cancel(ctx context.Context, id int, reason *string) error
}

type ScheduleUseCase interface {
	List(ctx context.Context, filter ScheduleFilter) ([]ClassSchedule, error)
	GetByID(ctx context.Context, id int) (*ClassSchedule, error)
	Create(ctx context.Context, schedule *ClassSchedule) error
	Roster(ctx context.Context, scheduleID int) ([]Enrollment, error)
	Start(ctx context.Context, id int) error
	Complete(ctx context.Context, id int) error
	Cancel(ctx context.Context, id int, reason *string) error
}
