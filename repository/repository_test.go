package repository

import (
	"testing"
	"time"

	"gymsphere/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory database with the full schema. One
// open connection, otherwise each pooled connection would see its own empty
// memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Trainer{},
		&domain.Class{},
		&domain.ClassSchedule{},
		&domain.Enrollment{},
		&domain.TrainerAssignment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

func seedMember(t *testing.T, db *gorm.DB, name, email string) *domain.User {
	t.Helper()

	tier := domain.MembershipBasic
	status := domain.MembershipStatusActive
	member := &domain.User{
		Name:             name,
		Email:            email,
		Phone:            "5550001111",
		Password:         "hashed",
		Role:             domain.RoleMember,
		Active:           true,
		MembershipType:   &tier,
		MembershipStatus: &status,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to seed member: %v", err)
	}
	return member
}

func seedTrainer(t *testing.T, db *gorm.DB, name, email string) *domain.Trainer {
	t.Helper()

	trainer := &domain.Trainer{
		Name:        name,
		Email:       email,
		Specialties: domain.StringList{"strength"},
		Active:      true,
	}
	if err := db.Create(trainer).Error; err != nil {
		t.Fatalf("failed to seed trainer: %v", err)
	}
	return trainer
}

func seedClass(t *testing.T, db *gorm.DB, name string, capacity int) *domain.Class {
	t.Helper()

	class := &domain.Class{
		Name:            name,
		DurationMinutes: 60,
		MaxCapacity:     capacity,
		Level:           domain.LevelBeginner,
		Equipment:       domain.StringList{},
		Active:          true,
	}
	if err := db.Create(class).Error; err != nil {
		t.Fatalf("failed to seed class: %v", err)
	}
	return class
}

func seedSchedule(t *testing.T, db *gorm.DB, classID, trainerID int, date, start, end string) *domain.ClassSchedule {
	t.Helper()

	schedule := &domain.ClassSchedule{
		ClassID:   classID,
		TrainerID: trainerID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    domain.ScheduleStatusScheduled,
	}
	if err := db.Create(schedule).Error; err != nil {
		t.Fatalf("failed to seed schedule: %v", err)
	}
	return schedule
}

// futureDate gives a date far enough out that listing filters and the
// cancellation notice window never interfere with a test.
func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(domain.DateLayout)
}
