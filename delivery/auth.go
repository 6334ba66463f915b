package delivery

import (
	"net/http"

	"gymsphere/domain"
	"gymsphere/dto"
	"gymsphere/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authUC domain.AuthUseCase
}

func NewAuthHandler(authUC domain.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

func (h *AuthHandler) Login(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&hitter, http.StatusBadRequest, "Login", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   translateBindError(err),
		})
		return
	}

	tokens, user, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.PrintLogInfo(&hitter, http.StatusUnauthorized, "Login", &err)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Invalid email or password",
		})
		return
	}

	utils.PrintLogInfo(&user.Name, http.StatusOK, "Login", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"tokens": tokens,
			"user":   user,
		},
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&hitter, http.StatusBadRequest, "Register", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   translateBindError(err),
		})
		return
	}

	user := req.ToUser()
	created, err := h.authUC.Register(c.Request.Context(), user, req.Password)
	if err != nil {
		utils.PrintLogInfo(&hitter, http.StatusConflict, "Register", &err)
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	utils.PrintLogInfo(&created.Name, http.StatusCreated, "Register", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created successfully",
		"data":    created,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&hitter, http.StatusBadRequest, "Refresh", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   translateBindError(err),
		})
		return
	}

	tokens, err := h.authUC.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		utils.PrintLogInfo(&hitter, http.StatusUnauthorized, "Refresh", &err)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Session expired, please log in again",
		})
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "Refresh", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tokens,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)
	userUUID := c.GetString("userUUID")

	if err := h.authUC.Logout(c.Request.Context(), userUUID); err != nil {
		utils.PrintLogInfo(&hitter, http.StatusInternalServerError, "Logout", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to log out",
		})
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "Logout", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)
	userUUID := c.GetString("userUUID")

	user, permissions, err := h.authUC.Me(c.Request.Context(), userUUID)
	if err != nil {
		utils.PrintLogInfo(&hitter, http.StatusNotFound, "Me", &err)
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
		})
		return
	}

	utils.PrintLogInfo(&user.Name, http.StatusOK, "Me", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"user":        user,
			"permissions": permissions,
		},
	})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)
	userUUID := c.GetString("userUUID")

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&hitter, http.StatusBadRequest, "ChangePassword", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   translateBindError(err),
		})
		return
	}

	if err := h.authUC.ChangePassword(c.Request.Context(), userUUID, req.OldPassword, req.NewPassword); err != nil {
		utils.PrintLogInfo(&hitter, http.StatusBadRequest, "ChangePassword", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "ChangePassword", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password updated successfully",
	})
}

// translateBindError keeps validation feedback readable without leaking
// struct internals.
func translateBindError(err error) string {
	if verr, ok := err.(validator.ValidationErrors); ok {
		return utils.TranslateValidationError(verr)
	}
	return "Invalid request body"
}
