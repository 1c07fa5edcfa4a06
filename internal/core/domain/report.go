package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportType identifies the kind of compliance snapshot.
type ReportType string

const (
	ReportVerificationSummary ReportType = "VERIFICATION_SUMMARY"
	ReportSourceOfFunds       ReportType = "SOURCE_OF_FUNDS"
	ReportIncident            ReportType = "INCIDENT"
)

// ReportRetention is the fixed retention horizon for compliance reports.
const ReportRetention = 7 * 365 * 24 * time.Hour

// ComplianceReport is a write-once, hashed snapshot of a verification's
// full history. Regeneration appends a new row; rows are never overwritten.
type ComplianceReport struct {
	ID                 uuid.UUID  `json:"id"`
	VerificationID     int64      `json:"verification_id"`
	ReportType         ReportType `json:"report_type"`
	EncryptedReportData string    `json:"-"`
	IntegrityHash      string     `json:"integrity_hash"`
	RetentionUntil     time.Time  `json:"retention_until"`
	CreatedAt          time.Time  `json:"created_at"`
}
