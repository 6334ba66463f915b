package delivery

import (
	"net/http"

	"gymsphere/domain"
	"gymsphere/dto"
	"gymsphere/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUseCase
}

func NewUserHandler(userUC domain.UserUseCase) *UserHandler {
	return &UserHandler{userUC: userUC}
}

func (h *UserHandler) Create(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, hitter, "CreateUser", err)
		return
	}

	created, err := h.userUC.Create(c.Request.Context(), req.ToUser())
	if err != nil {
		respondDomainError(c, hitter, "CreateUser", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusCreated, "CreateUser", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"data":    created,
	})
}

func (h *UserHandler) List(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	users, err := h.userUC.List(c.Request.Context(), c.Query("role"))
	if err != nil {
		respondDomainError(c, hitter, "ListUsers", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "ListUsers", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
	})
}

func (h *UserHandler) GetByUUID(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	user, err := h.userUC.GetByUUID(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		respondDomainError(c, hitter, "GetUser", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "GetUser", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

func (h *UserHandler) Update(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, hitter, "UpdateUser", err)
		return
	}

	user, err := h.userUC.GetByUUID(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		respondDomainError(c, hitter, "UpdateUser", err)
		return
	}
	req.ApplyTo(user)

	if err := h.userUC.Update(c.Request.Context(), user); err != nil {
		respondDomainError(c, hitter, "UpdateUser", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "UpdateUser", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
		"data":    user,
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	if err := h.userUC.Delete(c.Request.Context(), c.Param("uuid")); err != nil {
		respondDomainError(c, hitter, "DeleteUser", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "DeleteUser", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deleted successfully",
	})
}
