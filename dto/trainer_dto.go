package dto

import (
	"gymsphere/domain"
	"gymsphere/utils"
)

type CreateTrainerRequest struct {
	Name            string   `json:"name" binding:"required,max=50"`
	Email           string   `json:"email" binding:"required,email"`
	Phone           string   `json:"phone" binding:"omitempty,max=14"`
	Specialties     []string `json:"specialties" binding:"required,min=1"`
	Certifications  []string `json:"certifications" binding:"omitempty"`
	ExperienceYears int      `json:"experience_years" binding:"omitempty,gte=0"`
	HourlyRate      float64  `json:"hourly_rate" binding:"omitempty,gte=0"`
}

func (r *CreateTrainerRequest) ToTrainer() *domain.Trainer {
	return &domain.Trainer{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Specialties:     domain.StringList(r.Specialties),
		Certifications:  domain.StringList(r.Certifications),
		ExperienceYears: r.ExperienceYears,
		HourlyRate:      r.HourlyRate,
	}
}

type UpdateTrainerRequest struct {
	Name            string   `json:"name" binding:"required,max=50"`
	Email           string   `json:"email" binding:"required,email"`
	Phone           string   `json:"phone" binding:"omitempty,max=14"`
	Specialties     []string `json:"specialties" binding:"required,min=1"`
	Certifications  []string `json:"certifications" binding:"omitempty"`
	ExperienceYears int      `json:"experience_years" binding:"omitempty,gte=0"`
	HourlyRate      float64  `json:"hourly_rate" binding:"omitempty,gte=0"`
	Active          *bool    `json:"active" binding:"required"`
}

func (r *UpdateTrainerRequest) ApplyTo(trainer *domain.Trainer) {
	trainer.Name = r.Name
	trainer.Email = r.Email
	trainer.Phone = r.Phone
	trainer.Specialties = domain.StringList(r.Specialties)
	trainer.Certifications = domain.StringList(r.Certifications)
	trainer.ExperienceYears = r.ExperienceYears
	trainer.HourlyRate = r.HourlyRate
	if r.Active != nil {
		trainer.Active = *r.Active
	}
}

// TrainerResponse decorates a trainer with display labels for the specialty
// slugs ("strength_training" reads as "Strength Training" on dashboards).
type TrainerResponse struct {
	domain.Trainer
	SpecialtyLabels []string `json:"specialty_labels"`
}

func ToTrainerResponse(t domain.Trainer) TrainerResponse {
	labels := make([]string, 0, len(t.Specialties))
	for _, s := range t.Specialties {
		labels = append(labels, utils.DisplayLabel(s))
	}
	return TrainerResponse{
		Trainer:         t,
		SpecialtyLabels: labels,
	}
}

func ToTrainerResponses(trainers []domain.Trainer) []TrainerResponse {
	out := make([]TrainerResponse, 0, len(trainers))
	for _, t := range trainers {
		out = append(out, ToTrainerResponse(t))
	}
	return out
}

type CreateAssignmentRequest struct {
	MemberUUID string  `json:"member_uuid" binding:"required,uuid"`
	TrainerID  int     `json:"trainer_id" binding:"required,gt=0"`
	StartDate  string  `json:"start_date" binding:"omitempty,dateformat"`
	EndDate    *string `json:"end_date" binding:"omitempty,dateformat"`
	Notes      *string `json:"notes" binding:"omitempty,max=255"`
}

func (r *CreateAssignmentRequest) ToAssignment() *domain.TrainerAssignment {
	return &domain.TrainerAssignment{
		MemberUUID: r.MemberUUID,
		TrainerID:  r.TrainerID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Notes:      r.Notes,
	}
}
