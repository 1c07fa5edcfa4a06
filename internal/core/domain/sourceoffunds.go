package domain

import "time"

// SourceOfFundsStatus represents the state of a source-of-funds check.
type SourceOfFundsStatus string

const (
	SourceOfFundsPending  SourceOfFundsStatus = "PENDING"
	SourceOfFundsVerified SourceOfFundsStatus = "VERIFIED"
	SourceOfFundsRejected SourceOfFundsStatus = "REJECTED"
	SourceOfFundsExpired  SourceOfFundsStatus = "EXPIRED"
)

// SourceOfFundsRecord proves withdrawn funds trace to a specific wallet.
// Created lazily, one-to-one with a withdrawal verification.
type SourceOfFundsRecord struct {
	ID               int64               `json:"id"`
	VerificationID   int64               `json:"verification_id"`
	Amount           int64               `json:"amount"`
	WalletAddress    string              `json:"wallet_address"`
	Method           Method              `json:"method"`
	EncryptedProof   *string             `json:"-"`
	VerificationHash string              `json:"verification_hash"`
	Status           SourceOfFundsStatus `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}
