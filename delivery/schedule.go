package delivery

import (
	"net/http"
	"strconv"

	"gymsphere/domain"
	"gymsphere/dto"
	"gymsphere/utils"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleUC domain.ScheduleUseCase
}

func NewScheduleHandler(scheduleUC domain.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{scheduleUC: scheduleUC}
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, hitter, "CreateSchedule", err)
		return
	}

	schedule := req.ToSchedule()
	if err := h.scheduleUC.Create(c.Request.Context(), schedule); err != nil {
		respondDomainError(c, hitter, "CreateSchedule", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusCreated, "CreateSchedule", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Class scheduled successfully",
		"data":    dto.ToScheduleResponse(*schedule),
	})
}

func (h *ScheduleHandler) List(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	filter := domain.ScheduleFilter{
		Date:         c.Query("date"),
		OnlyUpcoming: c.Query("upcoming") == "true",
	}
	if raw := c.Query("trainer_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondBindError(c, hitter, "ListSchedules", err)
			return
		}
		filter.TrainerID = id
	}

	schedules, err := h.scheduleUC.List(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, hitter, "ListSchedules", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "ListSchedules", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToScheduleResponses(schedules),
	})
}

func (h *ScheduleHandler) GetByID(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, hitter, "GetSchedule", err)
		return
	}

	schedule, err := h.scheduleUC.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, hitter, "GetSchedule", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "GetSchedule", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToScheduleResponse(*schedule),
	})
}

// Roster lists the active enrollments of one schedule, front-desk view.
func (h *ScheduleHandler) Roster(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, hitter, "ScheduleRoster", err)
		return
	}

	roster, err := h.scheduleUC.Roster(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, hitter, "ScheduleRoster", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "ScheduleRoster", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    roster,
	})
}

func (h *ScheduleHandler) Start(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, hitter, "StartSchedule", err)
		return
	}

	if err := h.scheduleUC.Start(c.Request.Context(), id); err != nil {
		respondDomainError(c, hitter, "StartSchedule", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "StartSchedule", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Class is now in progress",
	})
}

func (h *ScheduleHandler) Complete(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, hitter, "CompleteSchedule", err)
		return
	}

	if err := h.scheduleUC.Complete(c.Request.Context(), id); err != nil {
		respondDomainError(c, hitter, "CompleteSchedule", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "CompleteSchedule", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Class completed",
	})
}

// Cancel cancels the occurrence and every active enrollment in it.
func (h *ScheduleHandler) Cancel(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, hitter, "CancelSchedule", err)
		return
	}

	var req dto.CancelScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respondBindError(c, hitter, "CancelSchedule", err)
		return
	}

	if err := h.scheduleUC.Cancel(c.Request.Context(), id, req.Reason); err != nil {
		respondDomainError(c, hitter, "CancelSchedule", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "CancelSchedule", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Class cancelled, enrolled members have been released",
	})
}
