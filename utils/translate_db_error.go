package utils

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// TranslateDBError turns database errors into messages safe to show a caller
func TranslateDBError(err error) string {
	if err == nil {
		return ""
	}

	// PostgreSQL-specific errors
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // Unique violation
			msg := "Duplicate value, please use another"
			if strings.Contains(pgErr.Message, "users_email_key") {
				msg = "Email already exists"
			} else if strings.Contains(pgErr.Message, "trainers_email_key") {
				msg = "A trainer with this email already exists"
			}
			return msg

		case "23503":
			return "This record is referenced by another table"

		case "23502":
			return "Some required fields are missing"

		case "22P02":
			return "Invalid data format"

		case "42703":
			return "Column not found in database"
		}

		return "A database error occurred"
	}

	// Handle GORM errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "Record not found"
	}

	// Handle context timeouts
	lowerErr := strings.ToLower(err.Error())
	if strings.Contains(lowerErr, "context deadline exceeded") {
		return "Request timeout"
	}
	if strings.Contains(lowerErr, "context canceled") {
		return "Request was cancelled"
	}

	if strings.Contains(lowerErr, "connection") {
		return "Failed to reach the database"
	}

	return err.Error()
}
