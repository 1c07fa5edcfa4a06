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
)

// VerificationHandler handles verification lifecycle endpoints.
type VerificationHandler struct {
	verificationSvc ports.VerificationService
	stepSvc         ports.StepOrchestrator
}

// NewVerificationHandler creates a new VerificationHandler.
func NewVerificationHandler(verificationSvc ports.VerificationService, stepSvc ports.StepOrchestrator) *VerificationHandler {
	return &VerificationHandler{verificationSvc: verificationSvc, stepSvc: stepSvc}
}

// Create handles POST /api/v1/verifications.
func (h *VerificationHandler) Create(c *gin.Context) {
	userID, ok := userID(c)
	if !ok {
		return
	}

	var req dto.CreateVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.verificationSvc.Create(c.Request.Context(), ports.CreateRequest{
		UserID:        userID,
		Feature:       domain.Feature(req.Feature),
		Method:        domain.Method(req.Method),
		WalletAddress: req.WalletAddress,
		WalletNetwork: domain.Network(req.WalletNetwork),
		Amount:        req.Amount,
		Context:       req.Context,
		ClientIP:      c.ClientIP(),
		UserAgent:     c.Request.UserAgent(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateVerificationResponse{
		ID:        result.ID,
		Method:    string(result.Method),
		Challenge: result.Challenge,
		Nonce:     result.Nonce,
		ExpiresAt: result.ExpiresAt.Format(time.RFC3339),
		RiskLevel: string(result.RiskLevel),
	})
}

// SubmitProof handles POST /api/v1/verifications/:id/proof.
func (h *VerificationHandler) SubmitProof(c *gin.Context) {
	if _, ok := userID(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.SubmitProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrMalformedProof(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	proof := ports.ProofPayload{
		WalletAddress: req.WalletAddress,
		Signature:     req.Signature,
		Reason:        req.Reason,
		UserInfo:      req.UserInfo,
		Channel:       req.Channel,
	}
	for _, p := range req.Signatures {
		proof.Signatures = append(proof.Signatures, ports.SignaturePair{
			WalletAddress: p.WalletAddress,
			Signature:     p.Signature,
		})
	}

	result, err := h.verificationSvc.SubmitProof(c.Request.Context(), id, proof)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SubmitProofResponse{Status: string(result.Status), Message: result.Message})
}

// ConfirmToken handles POST /api/v1/verifications/:id/confirm.
func (h *VerificationHandler) ConfirmToken(c *gin.Context) {
	if _, ok := userID(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ConfirmTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.verificationSvc.ConfirmToken(c.Request.Context(), id, req.Token)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SubmitProofResponse{Status: string(result.Status), Message: result.Message})
}

// GetStatus handles GET /api/v1/verifications/:id.
func (h *VerificationHandler) GetStatus(c *gin.Context) {
	if _, ok := userID(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.verificationSvc.GetStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToStatusResponse(result))
}

// Check handles GET /api/v1/verifications/check.
func (h *VerificationHandler) Check(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	feature := domain.Feature(c.Query("feature"))
	if !domain.ValidFeature(feature) {
		response.Error(c, apperror.Validation("unknown feature"))
		return
	}

	var wallet *string
	if w := c.Query("wallet_address"); w != "" {
		wallet = &w
	}

	verified, err := h.verificationSvc.IsVerified(c.Request.Context(), uid, feature, wallet)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CheckResponse{Verified: verified})
}

// Cancel handles DELETE /api/v1/verifications/:id.
func (h *VerificationHandler) Cancel(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.verificationSvc.Cancel(c.Request.Context(), id, uid); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"status": string(domain.StatusCancelled)})
}

// InitiateWithdrawal handles POST /api/v1/withdrawals.
func (h *VerificationHandler) InitiateWithdrawal(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req dto.InitiateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.stepSvc.Initiate(c.Request.Context(), ports.InitiateRequest{
		UserID:        uid,
		Amount:        req.Amount,
		WalletAddress: req.WalletAddress,
		WalletNetwork: domain.Network(req.WalletNetwork),
		ClientIP:      c.ClientIP(),
		UserAgent:     c.Request.UserAgent(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.InitiateWithdrawalResponse{
		ID:        result.ID,
		Tier:      string(result.Tier),
		Steps:     dto.ToStepResponses(result.Steps),
		ExpiresAt: result.ExpiresAt.Format(time.RFC3339),
	})
}

// CompleteStep handles POST /api/v1/withdrawals/:id/steps/:step.
func (h *VerificationHandler) CompleteStep(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	stepNumber, err := strconv.Atoi(c.Param("step"))
	if err != nil || stepNumber < 1 {
		response.Error(c, apperror.Validation("invalid step number"))
		return
	}

	result, err := h.stepSvc.CompleteStep(c.Request.Context(), id, stepNumber, uid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CompleteStepResponse{Status: string(result.Status), NextStep: result.NextStep})
}

// userID pulls the authenticated user from context, writing the error
// response on failure.
func userID(c *gin.Context) (int64, bool) {
	uid, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrForbidden())
		return 0, false
	}
	return uid.(int64), true
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, apperror.Validation("invalid verification id"))
		return 0, false
	}
	return id, true
}
