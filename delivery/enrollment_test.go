package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gymsphere/domain"

	"github.com/gin-gonic/gin"
)

type fakeEnrollmentUC struct {
	domain.EnrollmentUseCase
	enrolledUUID string
	ratedScore   int
}

func (f *fakeEnrollmentUC) Rate(ctx context.Context, id int, score int, comment *string) error {
	f.ratedScore = score
	return nil
}

func (f *fakeEnrollmentUC) Enroll(ctx context.Context, memberUUID string, scheduleID int, notes *string) (*domain.Enrollment, error) {
	f.enrolledUUID = memberUUID
	return &domain.Enrollment{
		ID:         1,
		MemberUUID: memberUUID,
		ScheduleID: scheduleID,
		Status:     domain.EnrollmentStatusActive,
	}, nil
}

func enrollRequest(t *testing.T, uc domain.EnrollmentUseCase, role, callerUUID, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/enrollments", func(c *gin.Context) {
		c.Set("userUUID", callerUUID)
		c.Set("role", role)
	}, NewEnrollmentHandler(uc).Enroll)

	req := httptest.NewRequest(http.MethodPost, "/enrollments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEnrollMemberBooksSelf(t *testing.T) {
	uc := &fakeEnrollmentUC{}
	w := enrollRequest(t, uc, domain.RoleMember, "member-1", `{"schedule_id": 7}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if uc.enrolledUUID != "member-1" {
		t.Errorf("enrolled %q, want the caller", uc.enrolledUUID)
	}
}

func TestEnrollMemberCannotBookAnother(t *testing.T) {
	other := "22222222-2222-2222-2222-222222222222"
	uc := &fakeEnrollmentUC{}
	w := enrollRequest(t, uc, domain.RoleMember, "member-1",
		`{"schedule_id": 7, "member_uuid": "`+other+`"}`)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403: %s", w.Code, w.Body.String())
	}
	if uc.enrolledUUID != "" {
		t.Error("enrollment reached the use case despite the ownership check")
	}
}

func TestEnrollStaffBooksMemberIn(t *testing.T) {
	member := "22222222-2222-2222-2222-222222222222"
	uc := &fakeEnrollmentUC{}
	w := enrollRequest(t, uc, domain.RoleReceptionist, "desk-1",
		`{"schedule_id": 7, "member_uuid": "`+member+`"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if uc.enrolledUUID != member {
		t.Errorf("enrolled %q, want the named member", uc.enrolledUUID)
	}

	var envelope struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil || !envelope.Success {
		t.Errorf("unexpected envelope: %s", w.Body.String())
	}
}

func TestEnrollStaffMustNameMember(t *testing.T) {
	uc := &fakeEnrollmentUC{}
	w := enrollRequest(t, uc, domain.RoleReceptionist, "desk-1", `{"schedule_id": 7}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
	if uc.enrolledUUID != "" {
		t.Error("enrollment reached the use case without a target member")
	}
}

func TestRateAcceptsOutOfRangeScore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := &fakeEnrollmentUC{}

	router := gin.New()
	router.PUT("/enrollments/:id/rate", func(c *gin.Context) {
		c.Set("userUUID", "desk-1")
		c.Set("role", domain.RoleAdmin)
	}, NewEnrollmentHandler(uc).Rate)

	req := httptest.NewRequest(http.MethodPut, "/enrollments/3/rate",
		strings.NewReader(`{"rating": 99}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// The binding layer passes the raw score through; clamping into the
	// 1..5 band happens in the use case, not at the edge.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if uc.ratedScore != 99 {
		t.Errorf("use case received score %d, want the raw 99", uc.ratedScore)
	}
}
