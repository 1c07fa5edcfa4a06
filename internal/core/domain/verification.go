package domain

import (
	"strings"
	"time"
)

// Feature identifies the platform feature requesting wallet verification.
type Feature string

const (
	FeatureLottery    Feature = "LOTTERY"
	FeatureAirdrop    Feature = "AIRDROP"
	FeatureTrading    Feature = "TRADING"
	FeatureWithdrawal Feature = "WITHDRAWAL"
	FeatureGeneral    Feature = "GENERAL"
)

// ValidFeature reports whether f is a known feature.
func ValidFeature(f Feature) bool {
	switch f {
	case FeatureLottery, FeatureAirdrop, FeatureTrading, FeatureWithdrawal, FeatureGeneral:
		return true
	}
	return false
}

// Method identifies how wallet control is proven.
type Method string

const (
	MethodStandardSignature Method = "STANDARD_SIGNATURE"
	MethodMultiSignature    Method = "MULTI_SIGNATURE"
	MethodAssisted          Method = "ASSISTED"
	MethodTimeDelayed       Method = "TIME_DELAYED"
)

// ValidMethod reports whether m is a known verification method.
func ValidMethod(m Method) bool {
	switch m {
	case MethodStandardSignature, MethodMultiSignature, MethodAssisted, MethodTimeDelayed:
		return true
	}
	return false
}

// Network identifies the wallet address network.
type Network string

const (
	NetworkERC20 Network = "ERC20"
	NetworkBEP20 Network = "BEP20"
	NetworkTRC20 Network = "TRC20"
)

// ValidNetwork reports whether n is a supported network.
func ValidNetwork(n Network) bool {
	switch n {
	case NetworkERC20, NetworkBEP20, NetworkTRC20:
		return true
	}
	return false
}

// Status represents the lifecycle state of a verification request.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusVerifying Status = "VERIFYING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
)

// VerificationRequest is the ledger entity gating a money-moving action.
// Proof material and feature context are stored encrypted only.
type VerificationRequest struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"user_id"`
	Feature          Feature    `json:"feature"`
	Method           Method     `json:"method"`
	WalletAddress    string     `json:"wallet_address"`
	WalletNetwork    Network    `json:"wallet_network"`
	ChallengeMessage string     `json:"challenge_message"`
	Nonce            string     `json:"nonce"`
	EncryptedProof   *string    `json:"-"`
	EncryptedContext *string    `json:"-"`
	RiskScore        int        `json:"risk_score"`
	RiskLevel        RiskLevel  `json:"risk_level"`
	RiskFactors      []string   `json:"risk_factors,omitempty"`
	Status           Status     `json:"status"`
	VerificationStep int        `json:"verification_step"` // 0 for single-step methods
	ClientIP         string     `json:"client_ip,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	ExpiresAt        time.Time  `json:"expires_at"`
	VerifiedAt       *time.Time `json:"verified_at,omitempty"`
	OverrideBy       *int64     `json:"override_by,omitempty"`
	OverrideReason   *string    `json:"override_reason,omitempty"`
}

// IsTerminal returns true once the request can no longer change state.
func (v *VerificationRequest) IsTerminal() bool {
	switch v.Status {
	case StatusApproved, StatusRejected, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

// AcceptsProof reports whether proof may still be submitted.
func (v *VerificationRequest) AcceptsProof() bool {
	return v.Status == StatusPending || v.Status == StatusVerifying
}

// IsExpired reports whether the TTL has elapsed at the given instant.
// Expiry is evaluated lazily on access, never by a background sweep.
func (v *VerificationRequest) IsExpired(now time.Time) bool {
	return !v.IsTerminal() && now.After(v.ExpiresAt)
}

// WalletMatches compares wallet addresses case-insensitively.
func (v *VerificationRequest) WalletMatches(address string) bool {
	return strings.EqualFold(v.WalletAddress, address)
}
