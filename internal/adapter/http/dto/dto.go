package dto

import (
	"time"

	"wallet-verification-gateway/internal/core/domain"
	"wallet-verification-gateway/internal/core/ports"
)

// CreateVerificationRequest is the request body for starting a
// verification.
type CreateVerificationRequest struct {
	Feature       string         `json:"feature" binding:"required"`
	Method        string         `json:"method,omitempty"`
	WalletAddress string         `json:"wallet_address" binding:"required,wallet_addr"`
	WalletNetwork string         `json:"wallet_network" binding:"required,oneof=ERC20 BEP20 TRC20"`
	Amount        int64          `json:"amount" binding:"gte=0"`
	Context       map[string]any `json:"context,omitempty"`
}

// CreateVerificationResponse is the response for a created verification.
type CreateVerificationResponse struct {
	ID        int64  `json:"id"`
	Method    string `json:"method"`
	Challenge string `json:"challenge"`
	Nonce     string `json:"nonce"`
	ExpiresAt string `json:"expires_at"`
	RiskLevel string `json:"risk_level"`
}

// SignaturePair is one wallet/signature pair in a multi-signature proof.
type SignaturePair struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
	Signature     string `json:"signature" binding:"required"`
}

// SubmitProofRequest is the request body for proof submission. Fields
// beyond the method's own are ignored.
type SubmitProofRequest struct {
	WalletAddress string            `json:"wallet_address,omitempty"`
	Signature     string            `json:"signature,omitempty"`
	Signatures    []SignaturePair   `json:"signatures,omitempty"`
	Reason        string            `json:"reason,omitempty"`
	UserInfo      map[string]string `json:"user_info,omitempty"`
	Channel       string            `json:"channel,omitempty"`
}

// ConfirmTokenRequest carries the out-of-band confirmation token.
type ConfirmTokenRequest struct {
	Token string `json:"token" binding:"required,max=128"`
}

// SubmitProofResponse reports the submission outcome.
type SubmitProofResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StepResponse is one step of a tiered flow.
type StepResponse struct {
	StepNumber  int     `json:"step_number"`
	StepType    string  `json:"step_type"`
	Status      string  `json:"status"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

// StatusResponse is the full verification view.
type StatusResponse struct {
	ID            int64          `json:"id"`
	Feature       string         `json:"feature"`
	Method        string         `json:"method"`
	WalletAddress string         `json:"wallet_address"`
	WalletNetwork string         `json:"wallet_network"`
	Status        string         `json:"status"`
	RiskLevel     string         `json:"risk_level"`
	CurrentStep   int            `json:"current_step,omitempty"`
	Steps         []StepResponse `json:"steps,omitempty"`
	CreatedAt     string         `json:"created_at"`
	ExpiresAt     string         `json:"expires_at"`
	VerifiedAt    *string        `json:"verified_at,omitempty"`
}

// CheckResponse answers an IsVerified lookup.
type CheckResponse struct {
	Verified bool `json:"verified"`
}

// InitiateWithdrawalRequest starts a tiered withdrawal flow.
type InitiateWithdrawalRequest struct {
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	WalletAddress string `json:"wallet_address" binding:"required,wallet_addr"`
	WalletNetwork string `json:"wallet_network" binding:"required,oneof=ERC20 BEP20 TRC20"`
}

// InitiateWithdrawalResponse describes the created flow.
type InitiateWithdrawalResponse struct {
	ID        int64          `json:"id"`
	Tier      string         `json:"tier"`
	Steps     []StepResponse `json:"steps"`
	ExpiresAt string         `json:"expires_at"`
}

// CompleteStepResponse reports a step completion.
type CompleteStepResponse struct {
	Status   string `json:"status"`
	NextStep int    `json:"next_step"`
}

// OverrideRequest is the admin override body.
type OverrideRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason" binding:"required,min=3,max=500"`
}

// ResolveAlertRequest closes a security alert.
type ResolveAlertRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=RESOLVED FALSE_POSITIVE"`
	Notes   string `json:"notes" binding:"max=1000"`
}

// AlertResponse is one security alert.
type AlertResponse struct {
	ID             string `json:"id"`
	VerificationID int64  `json:"verification_id"`
	UserID         int64  `json:"user_id"`
	AlertType      string `json:"alert_type"`
	Severity       string `json:"severity"`
	Details        string `json:"details"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

// GenerateReportRequest asks for a compliance report.
type GenerateReportRequest struct {
	ReportType string `json:"report_type" binding:"required,oneof=VERIFICATION_SUMMARY SOURCE_OF_FUNDS INCIDENT"`
}

// ReportResponse describes a generated report. Report data itself stays
// encrypted at rest and is not returned.
type ReportResponse struct {
	ID             string `json:"id"`
	VerificationID int64  `json:"verification_id"`
	ReportType     string `json:"report_type"`
	IntegrityHash  string `json:"integrity_hash"`
	RetentionUntil string `json:"retention_until"`
	CreatedAt      string `json:"created_at"`
}

// ToStatusResponse converts a service status result to the DTO.
func ToStatusResponse(res *ports.StatusResult) StatusResponse {
	v := res.Request
	out := StatusResponse{
		ID:            v.ID,
		Feature:       string(v.Feature),
		Method:        string(v.Method),
		WalletAddress: v.WalletAddress,
		WalletNetwork: string(v.WalletNetwork),
		Status:        string(v.Status),
		RiskLevel:     string(v.RiskLevel),
		CurrentStep:   v.VerificationStep,
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
		ExpiresAt:     v.ExpiresAt.Format(time.RFC3339),
	}
	if v.VerifiedAt != nil {
		s := v.VerifiedAt.Format(time.RFC3339)
		out.VerifiedAt = &s
	}
	out.Steps = ToStepResponses(res.Steps)
	return out
}

// ToStepResponses converts domain steps to DTOs.
func ToStepResponses(steps []domain.VerificationStep) []StepResponse {
	if len(steps) == 0 {
		return nil
	}
	out := make([]StepResponse, len(steps))
	for i, s := range steps {
		out[i] = StepResponse{
			StepNumber: s.StepNumber,
			StepType:   string(s.StepType),
			Status:     string(s.Status),
		}
		if s.CompletedAt != nil {
			ts := s.CompletedAt.Format(time.RFC3339)
			out[i].CompletedAt = &ts
		}
	}
	return out
}
