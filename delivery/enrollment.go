package delivery

import (
	"net/http"
	"strconv"

	"gymsphere/domain"
	"gymsphere/dto"
	"gymsphere/utils"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollmentUC domain.EnrollmentUseCase
}

func NewEnrollmentHandler(enrollmentUC domain.EnrollmentUseCase) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentUC: enrollmentUC}
}

// Enroll books the calling member into a schedule. Staff book on behalf of a
// member by naming the member in the request; members only ever book
// themselves.
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, hitter, "Enroll", err)
		return
	}

	memberUUID := c.GetString("userUUID")
	if c.GetString("role") != domain.RoleMember {
		if req.MemberUUID == "" {
			utils.PrintLogInfo(&hitter, http.StatusBadRequest, "Enroll", nil)
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "member_uuid is required when booking on behalf of a member",
			})
			return
		}
		memberUUID = req.MemberUUID
	} else if req.MemberUUID != "" && req.MemberUUID != memberUUID {
		utils.PrintLogInfo(&hitter, http.StatusForbidden, "Enroll", nil)
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "You can only enroll yourself",
		})
		return
	}

	enrollment, err := h.enrollmentUC.Enroll(c.Request.Context(), memberUUID, req.ScheduleID, req.Notes)
	if err != nil {
		respondDomainError(c, hitter, "Enroll", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusCreated, "Enroll", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Enrolled successfully",
		"data":    enrollment,
	})
}

func (h *EnrollmentHandler) ListMine(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)
	memberUUID := c.GetString("userUUID")

	enrollments, err := h.enrollmentUC.ListByMember(c.Request.Context(), memberUUID)
	if err != nil {
		respondDomainError(c, hitter, "ListMyEnrollments", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "ListMyEnrollments", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    enrollments,
	})
}

// Cancel lets a member drop their own enrollment. Staff may cancel on behalf
// of any member, the ownership check only binds callers with the member role.
func (h *EnrollmentHandler) Cancel(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, hitter, "CancelEnrollment", err)
		return
	}

	var req dto.CancelEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respondBindError(c, hitter, "CancelEnrollment", err)
		return
	}

	if !h.callerOwnsEnrollment(c, id) {
		utils.PrintLogInfo(&hitter, http.StatusForbidden, "CancelEnrollment", nil)
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "You can only cancel your own enrollments",
		})
		return
	}

	if err := h.enrollmentUC.Cancel(c.Request.Context(), id, req.Reason); err != nil {
		respondDomainError(c, hitter, "CancelEnrollment", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "CancelEnrollment", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Enrollment cancelled, the seat has been released",
	})
}

func (h *EnrollmentHandler) Complete(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, hitter, "CompleteEnrollment", err)
		return
	}

	if err := h.enrollmentUC.Complete(c.Request.Context(), id); err != nil {
		respondDomainError(c, hitter, "CompleteEnrollment", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "CompleteEnrollment", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Attendance recorded",
	})
}

func (h *EnrollmentHandler) MarkNoShow(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, hitter, "MarkNoShow", err)
		return
	}

	if err := h.enrollmentUC.MarkNoShow(c.Request.Context(), id); err != nil {
		respondDomainError(c, hitter, "MarkNoShow", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "MarkNoShow", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Member marked as no-show",
	})
}

func (h *EnrollmentHandler) Rate(c *gin.Context) {
	hitter := utils.GetAPIHitter(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, hitter, "RateEnrollment", err)
		return
	}

	var req dto.RateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, hitter, "RateEnrollment", err)
		return
	}

	if !h.callerOwnsEnrollment(c, id) {
		utils.PrintLogInfo(&hitter, http.StatusForbidden, "RateEnrollment", nil)
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "You can only rate your own enrollments",
		})
		return
	}

	if err := h.enrollmentUC.Rate(c.Request.Context(), id, req.Rating, req.Comment); err != nil {
		respondDomainError(c, hitter, "RateEnrollment", err)
		return
	}

	utils.PrintLogInfo(&hitter, http.StatusOK, "RateEnrollment", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thanks for the feedback",
	})
}

func (h *EnrollmentHandler) callerOwnsEnrollment(c *gin.Context, id int) bool {
	if c.GetString("role") != domain.RoleMember {
		return true
	}
	enrollment, err := h.enrollmentUC.GetByID(c.Request.Context(), id)
	if err != nil {
		// Let the use case surface the not-found, the ownership check
		// only blocks cross-member access.
		return true
	}
	return enrollment.MemberUUID == c.GetString("userUUID")
}
