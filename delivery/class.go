package delivery

import (
	"net/http"
	"strconv"

	"gymsphere/domain"
	"gymsphere/dto"
	"gymsphere/utils"

	"github.com/gin-gonic/gin"
)

type ClassHandler struct {
	classUC domain.ClassUseCase
}

func NewClassHandler(classUC domain.ClassUseCase) *ClassHandler {
	return &ClassHandler{classUC: classUC}
}

func (h *ClassHandler) Create(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, hitter, "CreateClass", err)
		return
	}

	created, err := h.classUC.Create(c.Request.Context(), req.ToClass())
	if err != nil {
		respondDomainError(c, hitter, "CreateClass", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusCreated, "CreateClass", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Class created successfully",
		"data":    created,
	})
}

func (h *ClassHandler) List(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	classes, err := h.classUC.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, hitter, "ListClasses", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "ListClasses", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    classes,
	})
}

func (h *ClassHandler) GetByID(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, hitter, "GetClass", err)
		return
	}

	class, err := h.classUC.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, hitter, "GetClass", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "GetClass", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    class,
	})
}

func (h *ClassHandler) Update(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, hitter, "UpdateClass", err)
		return
	}

	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, hitter, "UpdateClass", err)
		return
	}

	class, err := h.classUC.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, hitter, "UpdateClass", err)
		return
	}
	req.ApplyTo(class)

	if err := h.classUC.Update(c.Request.Context(), class); err != nil {
		respondDomainError(c, hitter, "UpdateClass", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "UpdateClass", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Class updated successfully",
		"data":    class,
	})
}

func (h *ClassHandler) Delete(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, hitter, "DeleteClass", err)
		return
	}

	if err := h.classUC.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, hitter, "DeleteClass", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "DeleteClass", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Class deleted successfully",
	})
}
