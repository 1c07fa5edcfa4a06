package handler

import (
	"strconv"
	"time"

	"wallet-verification-gateway/internal/adapter/http/dto"
	"wallet-verification-gateway/internal/adapter/http/middleware"
	"wallet-verification-gateway/internal/core/domain"
	"wallet-verification-gateway/internal/core/ports"
	"wallet-verification-gateway/pkg/apperror"
	"wallet-verification-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles privileged review endpoints.
type AdminHandler struct {
	verificationSvc ports.VerificationService
	complianceSvc   ports.ComplianceService
	alerts          ports.AlertRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(verificationSvc ports.VerificationService, complianceSvc ports.ComplianceService, alerts ports.AlertRepository) *AdminHandler {
	return &AdminHandler{verificationSvc: verificationSvc, complianceSvc: complianceSvc, alerts: alerts}
}

// Override handles POST /api/v1/admin/verifications/:id/override.
func (h *AdminHandler) Override(c *gin.Context) {
	adminID, ok := adminID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.verificationSvc.Override(c.Request.Context(), id, adminID, req.Approve, req.Reason); err != nil {
		response.Error(c, err)
		return
	}

	status := domain.StatusRejected
	if req.Approve {
		status = domain.StatusApproved
	}
	response.OK(c, gin.H{"status": string(status)})
}

// ListAlerts handles GET /api/v1/admin/alerts.
func (h *AdminHandler) ListAlerts(c *gin.Context) {
	if _, ok := adminID(c); !ok {
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			response.Error(c, apperror.Validation("limit must be between 1 and 500"))
			return
		}
		limit = n
	}

	alerts, err := h.alerts.ListOpen(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	out := make([]dto.AlertResponse, len(alerts))
	for i, a := range alerts {
		out[i] = dto.AlertResponse{
			ID:             a.ID.String(),
			VerificationID: a.VerificationID,
			UserID:         a.UserID,
			AlertType:      string(a.AlertType),
			Severity:       string(a.Severity),
			Details:        a.Details,
			Status:         string(a.Status),
			CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		}
	}
	response.OK(c, out)
}

// ResolveAlert handles POST /api/v1/admin/alerts/:id/resolve.
func (h *AdminHandler) ResolveAlert(c *gin.Context) {
	adminID, ok := adminID(c)
	if !ok {
		return
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid alert id"))
		return
	}

	var req dto.ResolveAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.complianceSvc.ResolveAlert(c.Request.Context(), alertID, adminID, req.Notes, domain.AlertStatus(req.Outcome)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"status": req.Outcome})
}

// GenerateReport handles POST /api/v1/admin/verifications/:id/reports.
func (h *AdminHandler) GenerateReport(c *gin.Context) {
	if _, ok := adminID(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	report, err := h.complianceSvc.GenerateReport(c.Request.Context(), id, domain.ReportType(req.ReportType))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ReportResponse{
		ID:             report.ID.String(),
		VerificationID: report.VerificationID,
		ReportType:     string(report.ReportType),
		IntegrityHash:  report.IntegrityHash,
		RetentionUntil: report.RetentionUntil.Format(time.RFC3339),
		CreatedAt:      report.CreatedAt.Format(time.RFC3339),
	})
}

// adminID pulls the authenticated admin from context, writing the error
// response on failure.
func adminID(c *gin.Context) (int64, bool) {
	aid, ok := c.Get(middleware.CtxAdminID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return 0, false
	}
	return aid.(int64), true
}
