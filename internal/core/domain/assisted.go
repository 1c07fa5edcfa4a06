package domain

import "time"

// AssistedStatus represents the state of a manual-review case.
type AssistedStatus string

const (
	AssistedPending    AssistedStatus = "PENDING"
	AssistedInProgress AssistedStatus = "IN_PROGRESS"
	AssistedCompleted  AssistedStatus = "COMPLETED"
	AssistedCancelled  AssistedStatus = "CANCELLED"
)

// AssistedCase is the manual-review escape hatch for users who cannot
// produce cryptographic proof. Resolution is a privileged transition.
type AssistedCase struct {
	ID                int64          `json:"id"`
	VerificationID    int64          `json:"verification_id"`
	TicketID          string         `json:"ticket_id"`
	Reason            string         `json:"reason"`
	EncryptedUserInfo *string        `json:"-"`
	Status            AssistedStatus `json:"status"`
	AssignedAdmin     *int64         `json:"assigned_admin,omitempty"`
	EncryptedResult   *string        `json:"-"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
