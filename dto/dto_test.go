package dto

import (
	"testing"

	"gymsphere/domain"
)

func TestToScheduleResponseLabels(t *testing.T) {
	resp := ToScheduleResponse(domain.ClassSchedule{
		Status: domain.ScheduleStatusInProgress,
		Class:  domain.Class{Level: domain.LevelIntermediate},
	})
	if resp.StatusLabel != "In Progress" {
		t.Errorf("StatusLabel = %q, want %q", resp.StatusLabel, "In Progress")
	}
	if resp.LevelLabel != "Intermediate" {
		t.Errorf("LevelLabel = %q, want %q", resp.LevelLabel, "Intermediate")
	}
}

func TestToTrainerResponseLabels(t *testing.T) {
	resp := ToTrainerResponse(domain.Trainer{
		Specialties: domain.StringList{"strength_training", "yoga"},
	})
	want := []string{"Strength Training", "Yoga"}
	if len(resp.SpecialtyLabels) != len(want) {
		t.Fatalf("SpecialtyLabels = %v, want %v", resp.SpecialtyLabels, want)
	}
	for i := range want {
		if resp.SpecialtyLabels[i] != want[i] {
			t.Errorf("SpecialtyLabels[%d] = %q, want %q", i, resp.SpecialtyLabels[i], want[i])
		}
	}
}
