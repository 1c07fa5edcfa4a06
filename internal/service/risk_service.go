package service

import (
	"wallet-verification-gateway/internal/core/domain"
)

// Additive rule weights. Scoring is deliberately rule-based, not ML, so
// an auditor can reconstruct any historical score from the snapshot.
const (
	riskNewWallet        = 10
	riskWalletRejections = 30
	riskRequestBurst     = 20
	riskSharedIP         = 25
	riskLargeAmount      = 35
	riskElevatedAmount   = 20
	riskNewAccount       = 15

	rejectionThreshold   = 3
	burstThreshold       = 5
	sharedIPThreshold    = 5
	largeAmountCutoff    = 10_000
	elevatedAmountCutoff = 5_000
	newAccountDays       = 7

	levelHighCutoff   = 60
	levelMediumCutoff = 40
)

// RiskAssessorService implements ports.RiskAssessor. Assess is a pure
// function of its snapshot: no clock, no store, no randomness.
type RiskAssessorService struct{}

// NewRiskAssessor creates the rule-based risk assessor.
func NewRiskAssessor() *RiskAssessorService {
	return &RiskAssessorService{}
}

// Assess computes the additive risk score, clamped to 0..100.
func (s *RiskAssessorService) Assess(snap domain.RiskSnapshot) domain.RiskAssessment {
	score := 0
	var factors []string

	if !snap.WalletSeenBefore {
		score += riskNewWallet
		factors = append(factors, domain.RiskFactorNewWallet)
	}
	if snap.WalletRejections >= rejectionThreshold {
		score += riskWalletRejections
		factors = append(factors, domain.RiskFactorWalletRejections)
	}
	if snap.RequestsLastHour > burstThreshold {
		score += riskRequestBurst
		factors = append(factors, domain.RiskFactorRequestBurst)
	}
	if snap.WalletsForIPIn24h > sharedIPThreshold {
		score += riskSharedIP
		factors = append(factors, domain.RiskFactorSharedIP)
	}
	switch {
	case snap.Amount > largeAmountCutoff:
		score += riskLargeAmount
		factors = append(factors, domain.RiskFactorLargeAmount)
	case snap.Amount > elevatedAmountCutoff:
		score += riskElevatedAmount
		factors = append(factors, domain.RiskFactorElevatedAmount)
	}
	if snap.AccountAgeDays < newAccountDays {
		score += riskNewAccount
		factors = append(factors, domain.RiskFactorNewAccount)
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return domain.RiskAssessment{
		Score:   score,
		Level:   levelFor(score),
		Factors: factors,
	}
}

func levelFor(score int) domain.RiskLevel {
	switch {
	case score >= levelHighCutoff:
		return domain.RiskHigh
	case score >= levelMediumCutoff:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// EscalateMethod applies the step-up policy: a request defaulting to a
// standard signature is escalated when the computed level is high. High
// amounts demand multiple signatures; lower amounts trade cryptographic
// strength for a second out-of-band channel. Explicitly requested
// non-standard methods are never downgraded.
func EscalateMethod(method domain.Method, level domain.RiskLevel, amount int64) domain.Method {
	if method != domain.MethodStandardSignature || level != domain.RiskHigh {
		return method
	}
	if amount > elevatedAmountCutoff {
		return domain.MethodMultiSignature
	}
	return domain.MethodTimeDelayed
}
