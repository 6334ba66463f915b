package dto

import (
	"gymsphere/domain"
	"gymsphere/utils"
)

// CreateScheduleRequest schedules one occurrence of a class. EndTime is
// optional; when omitted it is derived from the class duration.
type CreateScheduleRequest struct {
	ClassID   int    `json:"class_id" binding:"required,gt=0"`
	TrainerID int    `json:"trainer_id" binding:"required,gt=0"`
	Date      string `json:"date" binding:"required,dateformat"`
	StartTime string `json:"start_time" binding:"required,timeformat"`
	EndTime   string `json:"end_time" binding:"omitempty,timeformat"`
	Room      string `json:"room" binding:"omitempty,max=50"`
}

func (r *CreateScheduleRequest) ToSchedule() *domain.ClassSchedule {
	return &domain.ClassSchedule{
		ClassID:   r.ClassID,
		TrainerID: r.TrainerID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Room:      r.Room,
	}
}

type CancelScheduleRequest struct {
	Reason *string `json:"reason" binding:"omitempty,max=255"`
}

// ScheduleResponse decorates a schedule with dashboard-ready labels for the
// status and class level enums.
type ScheduleResponse struct {
	domain.ClassSchedule
	StatusLabel string `json:"status_label"`
	LevelLabel  string `json:"level_label"`
}

func ToScheduleResponse(s domain.ClassSchedule) ScheduleResponse {
	return ScheduleResponse{
		ClassSchedule: s,
		StatusLabel:   utils.DisplayLabel(s.Status),
		LevelLabel:    utils.DisplayLabel(s.Class.Level),
	}
}

func ToScheduleResponses(schedules []domain.ClassSchedule) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, ToScheduleResponse(s))
	}
	return out
}
