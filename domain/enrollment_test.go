package domain

import (
	"errors"
	"testing"
	"time"
)

func TestEnrollmentCanTransition(t *testing.T) {
	tests := []struct {
		name   string
		status string
		target string
		want   bool
	}{
		{"active to cancelled", EnrollmentStatusActive, EnrollmentStatusCancelled, true},
		{"active to completed", EnrollmentStatusActive, EnrollmentStatusCompleted, true},
		{"active to no_show", EnrollmentStatusActive, EnrollmentStatusNoShow, true},
		{"active to active", EnrollmentStatusActive, EnrollmentStatusActive, false},
		{"cancelled is terminal", EnrollmentStatusCancelled, EnrollmentStatusCompleted, false},
		{"completed is terminal", EnrollmentStatusCompleted, EnrollmentStatusCancelled, false},
		{"no_show is terminal", EnrollmentStatusNoShow, EnrollmentStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Enrollment{Status: tt.status}
			if got := e.CanTransition(tt.target); got != tt.want {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.status, tt.target, got, tt.want)
			}
		})
	}
}

func TestMarkCancelled(t *testing.T) {
	reason := "schedule clash"
	at := time.Now()

	e := &Enrollment{Status: EnrollmentStatusActive}
	if err := e.MarkCancelled(at, &reason); err != nil {
		t.Fatalf("MarkCancelled() on active enrollment: %v", err)
	}
	if e.Status != EnrollmentStatusCancelled {
		t.Errorf("status = %s, want cancelled", e.Status)
	}
	if e.CancelledAt == nil || !e.CancelledAt.Equal(at) {
		t.Error("cancelled_at not recorded")
	}
	if e.CancelReason == nil || *e.CancelReason != reason {
		t.Error("cancel reason not recorded")
	}

	// Terminal states stay untouched.
	done := &Enrollment{Status: EnrollmentStatusCompleted}
	if err := done.MarkCancelled(at, nil); !errors.Is(err, ErrEnrollmentNotActive) {
		t.Errorf("MarkCancelled() on completed = %v, want ErrEnrollmentNotActive", err)
	}
	if done.Status != EnrollmentStatusCompleted || done.CancelledAt != nil {
		t.Error("failed transition mutated the enrollment")
	}
}

func TestSetRating(t *testing.T) {
	comment := "great session"

	tests := []struct {
		name    string
		status  string
		score   int
		want    int
		wantErr error
	}{
		{"valid score", EnrollmentStatusCompleted, 4, 4, nil},
		{"clamped low", EnrollmentStatusCompleted, 0, RatingMin, nil},
		{"clamped negative", EnrollmentStatusCompleted, -10, RatingMin, nil},
		{"clamped high", EnrollmentStatusCompleted, 9, RatingMax, nil},
		{"active cannot rate", EnrollmentStatusActive, 5, 0, ErrNotCompleted},
		{"cancelled cannot rate", EnrollmentStatusCancelled, 5, 0, ErrNotCompleted},
		{"no_show cannot rate", EnrollmentStatusNoShow, 5, 0, ErrNotCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Enrollment{Status: tt.status}
			err := e.SetRating(tt.score, &comment)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SetRating() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if e.Rating != nil {
					t.Error("failed SetRating() still stored a rating")
				}
				return
			}
			if e.Rating == nil || *e.Rating != tt.want {
				t.Errorf("rating = %v, want %d", e.Rating, tt.want)
			}
			if e.Comment == nil || *e.Comment != comment {
				t.Error("comment not stored")
			}
		})
	}
}
