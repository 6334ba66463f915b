package delivery

import (
	"errors"
	"net/http"

	"gymsphere/domain"
	"gymsphere/utils"

	"github.com/gin-gonic/gin"
)

// respondDomainError maps business-rule errors onto client statuses and
// writes the envelope. Anything unrecognized is logged with its detail and
// reported generically.
func respondDomainError(c *gin.Context, hitter, handlerName string, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong, please try again later"

	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrScheduleConflict),
		errors.Is(err, domain.ErrClassFull),
		errors.Is(err, domain.ErrAlreadyEnrolled):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domain.ErrCancelTooLate),
		errors.Is(err, domain.ErrEnrollmentNotActive),
		errors.Is(err, domain.ErrScheduleNotOpen),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrNotCompleted):
		status = http.StatusBadRequest
		message = err.Error()
	}

	utils.PrintLogInfo(&hitter, status, handlerName, &err)
	if status == http.StatusInternalServerError {
		message = utils.TranslateDBError(err)
		if message == err.Error() {
			message = "Something went wrong, please try again later"
		}
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

func respondBindError(c *gin.Context, hitter, handlerName string, err error) {
	utils.PrintLogInfo(&hitter, http.StatusBadRequest, handlerName, &err)
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   translateBindError(err),
	})
}
