package delivery

import (
	"net/http"
	"strconv"

	"gymsphere/domain"
	"gymsphere/dto"
	"gymsphere/utils"

	"github.com/gin-gonic/gin"
)

type TrainerHandler struct {
	trainerUC domain.TrainerUseCase
}

func NewTrainerHandler(trainerUC domain.TrainerUseCase) *TrainerHandler {
	return &TrainerHandler{trainerUC: trainerUC}
}

func (h *TrainerHandler) Create(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	var req dto.CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, hitter, "CreateTrainer", err)
		return
	}

	created, err := h.trainerUC.Create(c.Request.Context(), req.ToTrainer())
	if err != nil {
		respondDomainError(c, hitter, "CreateTrainer", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusCreated, "CreateTrainer", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Trainer created successfully",
		"data":    created,
	})
}

func (h *TrainerHandler) List(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	trainers, err := h.trainerUC.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, hitter, "ListTrainers", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "ListTrainers", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToTrainerResponses(trainers),
	})
}

func (h *TrainerHandler) GetByID(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, hitter, "GetTrainer", err)
		return
	}

	trainer, err := h.trainerUC.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, hitter, "GetTrainer", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "GetTrainer", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToTrainerResponse(*trainer),
	})
}

func (h *TrainerHandler) Update(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, hitter, "UpdateTrainer", err)
		return
	}

	var req dto.UpdateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, hitter, "UpdateTrainer", err)
		return
	}

	trainer, err := h.trainerUC.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, hitter, "UpdateTrainer", err)
		return
	}
	req.ApplyTo(trainer)

	if err := h.trainerUC.Update(c.Request.Context(), trainer); err != nil {
		respondDomainError(c, hitter, "UpdateTrainer", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "UpdateTrainer", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Trainer updated successfully",
		"data":    trainer,
	})
}

func (h *TrainerHandler) Delete(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, hitter, "DeleteTrainer", err)
		return
	}

	if err := h.trainerUC.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, hitter, "DeleteTrainer", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "DeleteTrainer", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Trainer deleted successfully",
	})
}

func (h *TrainerHandler) ListAssignments(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	filter := domain.AssignmentFilter{
		MemberUUID: c.Query("member_uuid"),
	}
	if raw := c.Query("trainer_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondBindError(c, hitter, "ListAssignments", err)
			return
		}
		filter.TrainerID = id
	}

	assignments, err := h.trainerUC.ListAssignments(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, hitter, "ListAssignments", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "ListAssignments", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    assignments,
	})
}

func (h *TrainerHandler) CreateAssignment(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, hitter, "CreateAssignment", err)
		return
	}

	created, err := h.trainerUC.CreateAssignment(c.Request.Context(), req.ToAssignment())
	if err != nil {
		respondDomainError(c, hitter, "CreateAssignment", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusCreated, "CreateAssignment", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Trainer assigned successfully",
		"data":    created,
	})
}
