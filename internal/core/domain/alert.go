package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertType identifies which detection rule fired.
type AlertType string

const (
	AlertRepeatedRejections AlertType = "REPEATED_REJECTIONS"
	AlertRequestBurst       AlertType = "REQUEST_BURST"
	AlertFirstHighValue     AlertType = "FIRST_HIGH_VALUE"
	AlertMultipleIPs        AlertType = "MULTIPLE_IPS"
	AlertHighRiskScore      AlertType = "HIGH_RISK_SCORE"
)

// AlertSeverity grades an alert.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "LOW"
	SeverityMedium   AlertSeverity = "MEDIUM"
	SeverityHigh     AlertSeverity = "HIGH"
	SeverityCritical AlertSeverity = "CRITICAL"
)

// AlertStatus tracks reviewer handling of an alert.
type AlertStatus string

const (
	AlertStatusNew           AlertStatus = "NEW"
	AlertStatusReviewing     AlertStatus = "REVIEWING"
	AlertStatusResolved      AlertStatus = "RESOLVED"
	AlertStatusFalsePositive AlertStatus = "FALSE_POSITIVE"
)

// SecurityAlert is created by the detection rules and resolved only by an
// authorized reviewer.
type SecurityAlert struct {
	ID             uuid.UUID     `json:"id"`
	VerificationID int64         `json:"verification_id"`
	UserID         int64         `json:"user_id"`
	AlertType      AlertType     `json:"alert_type"`
	Severity       AlertSeverity `json:"severity"`
	Details        string        `json:"details"`
	Status         AlertStatus   `json:"status"`
	ResolvedBy     *int64        `json:"resolved_by,omitempty"`
	ResolutionNote *string       `json:"resolution_note,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
