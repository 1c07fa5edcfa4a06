package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited state transition.
type AuditAction string

const (
	AuditActionCreated       AuditAction = "VERIFICATION_CREATED"
	AuditActionProofAccepted AuditAction = "PROOF_ACCEPTED"
	AuditActionProofRejected AuditAction = "PROOF_REJECTED"
	AuditActionProofFailed   AuditAction = "PROOF_SUBMISSION_FAILED"
	AuditActionStepCompleted AuditAction = "STEP_COMPLETED"
	AuditActionExpired       AuditAction = "VERIFICATION_EXPIRED"
	AuditActionCancelled     AuditAction = "VERIFICATION_CANCELLED"
	AuditActionOverride      AuditAction = "ADMIN_OVERRIDE"
	AuditActionAssistedOpen  AuditAction = "ASSISTED_CASE_OPENED"
	AuditActionTokenIssued   AuditAction = "CONFIRM_TOKEN_ISSUED"
	AuditActionReport        AuditAction = "COMPLIANCE_REPORT"
	AuditActionAlertResolved AuditAction = "ALERT_RESOLVED"
)

// AuditEntry is an append-only record of one state transition.
// Entries are never mutated or deleted; details are ciphertext only.
type AuditEntry struct {
	ID               uuid.UUID   `json:"id"`
	VerificationID   int64       `json:"verification_id"`
	UserID           int64       `json:"user_id"`
	Action           AuditAction `json:"action"`
	EncryptedDetails *string     `json:"-"`
	IPAddress        string      `json:"ip_address,omitempty"`
	UserAgent        string      `json:"user_agent,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}
