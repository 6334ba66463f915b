package utils

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// CalculateEndTime adds a class duration to an HH:MM start time.
func CalculateEndTime(startTime string, durationMinutes int) (string, error) {
	t, err := time.Parse(clockLayout, startTime)
	if err != nil {
		return "", fmt.Errorf("invalid time format: %w", err)
	}

	endTime := t.Add(time.Duration(durationMinutes) * time.Minute)
	return endTime.Format(clockLayout), nil
}

// CombineDateTime builds a local timestamp from a YYYY-MM-DD date and an
// HH:MM clock value.
func CombineDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation(dateLayout+" "+clockLayout, date+" "+clock, time.Local)
}

// Today returns the current local date in YYYY-MM-DD form.
func Today() string {
	return time.Now().Format(dateLayout)
}

// DisplayLabel formats an enum-ish value ("in_progress", "beginner") for
// dashboards: underscores out, title case in.
func DisplayLabel(value string) string {
	out := make([]byte, len(value))
	for i := 0; i < len(value); i++ {
		if value[i] == '_' {
			out[i] = ' '
		} else {
			out[i] = value[i]
		}
	}
	return cases.Title(language.English).String(string(out))
}

// GetAPIHitter resolves a display name for the authenticated caller, falling
// back to the client IP for anonymous requests.
func GetAPIHitter(c *gin.Context) string {
	if name, exists := c.Get("userName"); exists {
		if s, ok := name.(string); ok && s != "" {
			return s
		}
	}
	if uuid, exists := c.Get("userUUID"); exists {
		if s, ok := uuid.(string); ok && s != "" {
			return s
		}
	}
	return c.ClientIP()
}
