package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin        = "admin"
	RoleMember       = "member"
	RoleReceptionist = "receptionist"

	ScheduleStatusScheduled  = "scheduled"
	ScheduleStatusInProgress = "in_progress"
	ScheduleStatusCompleted  = "completed"
	ScheduleStatusCancelled  = "cancelled"

	EnrollmentStatusActive    = "active"
	EnrollmentStatusCancelled = "cancelled"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusNoShow    = "no_show"

	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"

	MembershipBasic   = "basic"
	MembershipPremium = "premium"
	MembershipVIP     = "vip"

	MembershipStatusActive    = "active"
	MembershipStatusExpired   = "expired"
	MembershipStatusSuspended = "suspended"

	ShiftMorning   = "morning"
	ShiftAfternoon = "afternoon"
	ShiftNight     = "night"

	AccessLevelGeneral = "general"
	AccessLevelSuper   = "super"

	RatingMin = 1
	RatingMax = 5

	// DefaultCancelNotice is the minimum time before class start at which a
	// member may still cancel an enrollment.
	DefaultCancelNotice = 2 * time.Hour

	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// StringList is stored as a JSON array in a single text column so the same
// model works on Postgres and SQLite.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
}

type User struct {
	UUID      string     `gorm:"primaryKey;type:uuid" json:"uuid"`
	Name      string     `gorm:"not null;size:50" json:"name"`
	Email     string     `gorm:"unique;not null" json:"email"`
	Phone     string     `gorm:"not null;size:14" json:"phone"`
	Password  string     `gorm:"not null" json:"-"`
	Role      string     `gorm:"not null;size:20" json:"role"` // admin | member | receptionist
	Active    bool       `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`

	// Member-only columns
	MembershipType      *string    `gorm:"size:20" json:"membership_type,omitempty"` // basic | premium | vip
	MembershipExpiresAt *time.Time `json:"membership_expires_at,omitempty"`
	MembershipStatus    *string    `gorm:"size:20" json:"membership_status,omitempty"`

	// Receptionist-only columns
	Shift   *string    `gorm:"size:20" json:"shift,omitempty"` // morning | afternoon | night
	HiredAt *time.Time `json:"hired_at,omitempty"`

	// Admin-only column
	AccessLevel *string `gorm:"size:20" json:"access_level,omitempty"` // general | super
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UUID == "" {
		u.UUID = uuid.NewString()
	}
	return nil
}

type Trainer struct {
	ID              int        `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"not null;size:50" json:"name"`
	Email           string     `gorm:"unique;not null" json:"email"`
	Phone           string     `gorm:"size:14" json:"phone"`
	Specialties     StringList `gorm:"type:text;not null" json:"specialties"`
	Certifications  StringList `gorm:"type:text;not null" json:"certifications"`
	ExperienceYears int        `gorm:"not null;default:0" json:"experience_years"`
	HourlyRate      float64    `gorm:"not null;default:0" json:"hourly_rate"`
	Active          bool       `gorm:"not null;default:true" json:"active"`
	HiredAt         time.Time  `gorm:"autoCreateTime" json:"hired_at"`
	AverageRating   float64    `gorm:"not null;default:0" json:"average_rating"`
	ClassesTaught   int        `gorm:"not null;default:0" json:"classes_taught"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// Class is the reusable template; ClassSchedule is one occurrence of it.
type Class struct {
	ID              int        `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"not null;size:50" json:"name"`
	Description     string     `json:"description"`
	DurationMinutes int        `gorm:"not null" json:"duration_minutes"`
	MaxCapacity     int        `gorm:"not null" json:"max_capacity"`
	Level           string     `gorm:"not null;size:20" json:"level"` // beginner | intermediate | advanced
	Equipment       StringList `gorm:"type:text;not null" json:"equipment"`
	Active          bool       `gorm:"not null;default:true" json:"active"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

type ClassSchedule struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	ClassID   int    `gorm:"not null;index" json:"class_id"`
	TrainerID int    `gorm:"not null;index" json:"trainer_id"`
	Date      string `gorm:"not null;size:10;index" json:"date"` // YYYY-MM-DD
	StartTime string `gorm:"not null;size:5" json:"start_time"`  // HH:MM
	EndTime   string `gorm:"not null;size:5" json:"end_time"`    // HH:MM, exclusive
	Room      string `gorm:"size:50" json:"room"`
	Status    string `gorm:"not null;size:20;default:'scheduled'" json:"status"`
	// EnrolledCount mirrors the number of active enrollments. It is only
	// mutated inside the enrollment transactions and never exceeds the
	// class's MaxCapacity.
	EnrolledCount int        `gorm:"not null;default:0" json:"enrolled_count"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     *time.Time `gorm:"index" json:"deleted_at,omitempty"`

	Class   Class   `gorm:"foreignKey:ClassID" json:"class"`
	Trainer Trainer `gorm:"foreignKey:TrainerID" json:"trainer"`
}

// StartsAt combines the schedule's date and start time in local time.
func (s *ClassSchedule) StartsAt() (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+ClockLayout, s.Date+" "+s.StartTime, time.Local)
}

// Enrollment rows carry a partial unique index over (member_uuid,
// schedule_id) for active status, so at most one active enrollment per
// member and schedule can exist even if two bookings slip past the
// application-level duplicate check.
type Enrollment struct {
	ID           int        `gorm:"primaryKey" json:"id"`
	MemberUUID   string     `gorm:"type:uuid;not null;index;index:uniq_active_enrollment,unique,where:status = 'active'" json:"member_uuid"`
	ScheduleID   int        `gorm:"not null;index;index:uniq_active_enrollment,unique,where:status = 'active'" json:"schedule_id"`
	EnrolledAt   time.Time  `gorm:"autoCreateTime" json:"enrolled_at"`
	Status       string     `gorm:"not null;size:20;default:'active'" json:"status"`
	Rating       *int       `json:"rating,omitempty"`
	Comment      *string    `json:"comment,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	CancelReason *string    `json:"cancel_reason,omitempty"`
	Notes        *string    `json:"notes,omitempty"`

	Member   User          `gorm:"foreignKey:MemberUUID;references:UUID" json:"member"`
	Schedule ClassSchedule `gorm:"foreignKey:ScheduleID" json:"schedule"`
}

type TrainerAssignment struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	MemberUUID string    `gorm:"type:uuid;not null;index" json:"member_uuid"`
	TrainerID  int       `gorm:"not null;index" json:"trainer_id"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assigned_at"`
	StartDate  string    `gorm:"not null;size:10" json:"start_date"` // YYYY-MM-DD
	EndDate    *string   `gorm:"size:10" json:"end_date,omitempty"`
	Active     bool      `gorm:"not null;default:true" json:"active"`
	Notes      *string   `json:"notes,omitempty"`

	Member  User    `gorm:"foreignKey:MemberUUID;references:UUID" json:"member"`
	Trainer Trainer `gorm:"foreignKey:TrainerID" json:"trainer"`
}

// Business-rule errors. Delivery maps these to client-error statuses;
// everything else is reported generically and logged in full.
var (
	ErrScheduleConflict    = errors.New("trainer already has a class scheduled in that time range")
	ErrClassFull           = errors.New("class is already at maximum capacity")
	ErrAlreadyEnrolled     = errors.New("member already has an active enrollment in this schedule")
	ErrScheduleNotOpen     = errors.New("schedule is not open for enrollment")
	ErrEnrollmentNotActive = errors.New("enrollment is not active")
	ErrCancelTooLate       = errors.New("cancellation window has closed for this class")
	ErrNotCompleted        = errors.New("enrollment has not been completed")
	ErrNotFound            = errors.New("record not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
)
