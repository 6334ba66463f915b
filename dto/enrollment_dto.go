package dto

// EnrollRequest books a seat. MemberUUID is only honored for staff callers
// booking on a member's behalf; members always enroll themselves.
type EnrollRequest struct {
	ScheduleID int     `json:"schedule_id" binding:"required,gt=0"`
	MemberUUID string  `json:"member_uuid" binding:"omitempty,uuid"`
	Notes      *string `json:"notes" binding:"omitempty,max=255"`
}

type CancelEnrollmentRequest struct {
	Reason *string `json:"reason" binding:"omitempty,max=255"`
}

// RateEnrollmentRequest leaves the rating range unchecked at the binding
// layer. Out-of-range values are clamped into [1,5] downstream rather than
// rejected.
type RateEnrollmentRequest struct {
	Rating  int     `json:"rating" binding:"required"`
	Comment *string `json:"comment" binding:"omitempty,max=255"`
}
