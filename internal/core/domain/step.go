package domain

import "time"

// Tier buckets a withdrawal amount into a required-step profile.
type Tier string

const (
	TierSmall  Tier = "SMALL"
	TierMedium Tier = "MEDIUM"
	TierLarge  Tier = "LARGE"
)

// Tier boundaries in smallest currency units. An amount equal to a
// boundary falls into the lower tier.
const (
	TierSmallMax  int64 = 1_000
	TierMediumMax int64 = 10_000
)

// DetermineTier maps an amount onto exactly one tier.
func DetermineTier(amount int64) Tier {
	switch {
	case amount <= TierSmallMax:
		return TierSmall
	case amount <= TierMediumMax:
		return TierMedium
	default:
		return TierLarge
	}
}

// StepType identifies one stage of a tiered withdrawal flow.
type StepType string

const (
	StepConfirmDetails  StepType = "CONFIRM_DETAILS"
	StepWalletOwnership StepType = "WALLET_OWNERSHIP"
	StepSecurityConfirm StepType = "SECURITY_CONFIRM"
	StepProcessing      StepType = "PROCESSING"
)

// RequiredSteps returns the ordered step list for a tier.
func (t Tier) RequiredSteps() []StepType {
	switch t {
	case TierSmall:
		return []StepType{StepConfirmDetails, StepProcessing}
	case TierMedium:
		return []StepType{StepConfirmDetails, StepWalletOwnership, StepProcessing}
	default:
		return []StepType{StepConfirmDetails, StepWalletOwnership, StepSecurityConfirm, StepProcessing}
	}
}

// Expiry returns the verification TTL for a tier.
func (t Tier) Expiry() time.Duration {
	switch t {
	case TierSmall:
		return 2 * time.Hour
	case TierMedium:
		return 6 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// StepStatus represents the state of a single verification step.
type StepStatus string

const (
	StepStatusPending   StepStatus = "PENDING"
	StepStatusCompleted StepStatus = "COMPLETED"
	StepStatusFailed    StepStatus = "FAILED"
	StepStatusSkipped   StepStatus = "SKIPPED"
)

// VerificationStep is one stage of a tiered flow, owned exclusively by its
// parent request. Steps are created atomically with the parent and never
// reordered.
type VerificationStep struct {
	ID             int64      `json:"id"`
	VerificationID int64      `json:"verification_id"`
	StepNumber     int        `json:"step_number"`
	StepType       StepType   `json:"step_type"`
	Status         StepStatus `json:"status"`
	EncryptedData  *string    `json:"-"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
