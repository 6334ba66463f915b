package dto

import "gymsphere/domain"

type CreateClassRequest struct {
	Name            string   `json:"name" binding:"required,max=50"`
	Description     string   `json:"description" binding:"omitempty,max=255"`
	DurationMinutes int      `json:"duration_minutes" binding:"required,gt=0,lte=480"`
	MaxCapacity     int      `json:"max_capacity" binding:"required,gt=0,lte=200"`
	Level           string   `json:"level" binding:"required,oneof=beginner intermediate advanced"`
	Equipment       []string `json:"equipment" binding:"omitempty"`
}

func (r *CreateClassRequest) ToClass() *domain.Class {
	return &domain.Class{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		MaxCapacity:     r.MaxCapacity,
		Level:           r.Level,
		Equipment:       domain.StringList(r.Equipment),
	}
}

type UpdateClassRequest struct {
	Name            string   `json:"name" binding:"required,max=50"`
	Description     string   `json:"description" binding:"omitempty,max=255"`
	DurationMinutes int      `json:"duration_minutes" binding:"required,gt=0,lte=480"`
	MaxCapacity     int      `json:"max_capacity" binding:"required,gt=0,lte=200"`
	Level           string   `json:"level" binding:"required,oneof=beginner intermediate advanced"`
	Equipment       []string `json:"equipment" binding:"omitempty"`
	Active          *bool    `json:"active" binding:"required"`
}

func (r *UpdateClassRequest) ApplyTo(class *domain.Class) {
	class.Name = r.Name
	class.Description = r.Description
	class.DurationMinutes = r.DurationMinutes
	class.MaxCapacity = r.MaxCapacity
	class.Level = r.Level
	class.Equipment = domain.StringList(r.Equipment)
	if r.Active != nil {
		class.Active = *r.Active
	}
}
