package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerificationRequest_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{"pending", StatusPending, false},
		{"verifying", StatusVerifying, false},
		{"approved", StatusApproved, true},
		{"rejected", StatusRejected, true},
		{"expired", StatusExpired, true},
		{"cancelled", StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &VerificationRequest{Status: tt.status}
			assert.Equal(t, tt.want, v.IsTerminal())
		})
	}
}

func TestVerificationRequest_AcceptsProof(t *testing.T) {
	assert.True(t, (&VerificationRequest{Status: StatusPending}).AcceptsProof())
	assert.True(t, (&VerificationRequest{Status: StatusVerifying}).AcceptsProof())
	assert.False(t, (&VerificationRequest{Status: StatusApproved}).AcceptsProof())
	assert.False(t, (&VerificationRequest{Status: StatusExpired}).AcceptsProof())
}

func TestVerificationRequest_IsExpired(t *testing.T) {
	now := time.Now().UTC()

	live := &VerificationRequest{Status: StatusPending, ExpiresAt: now.Add(time.Hour)}
	assert.False(t, live.IsExpired(now))

	stale := &VerificationRequest{Status: StatusVerifying, ExpiresAt: now.Add(-time.Minute)}
	assert.True(t, stale.IsExpired(now))

	// Terminal requests never report expired, even past the deadline.
	done := &VerificationRequest{Status: StatusApproved, ExpiresAt: now.Add(-time.Hour)}
	assert.False(t, done.IsExpired(now))
}

func TestVerificationRequest_WalletMatches(t *testing.T) {
	v := &VerificationRequest{WalletAddress: "0xAbCdEf1234567890aBcDeF1234567890abcdef12"}
	assert.True(t, v.WalletMatches("0xabcdef1234567890abcdef1234567890abcdef12"))
	assert.True(t, v.WalletMatches("0xABCDEF1234567890ABCDEF1234567890ABCDEF12"))
	assert.False(t, v.WalletMatches("0xabcdef1234567890abcdef1234567890abcdef13"))
}

func TestDetermineTier_Boundaries(t *testing.T) {
	tests := []struct {
		amount int64
		want   Tier
	}{
		{1, TierSmall},
		{500, TierSmall},
		{TierSmallMax, TierSmall}, // boundary belongs to the lower tier
		{TierSmallMax + 1, TierMedium},
		{5_000, TierMedium},
		{TierMediumMax, TierMedium},
		{TierMediumMax + 1, TierLarge},
		{50_000, TierLarge},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetermineTier(tt.amount), "amount=%d", tt.amount)
	}
}

func TestTier_RequiredSteps(t *testing.T) {
	assert.Equal(t,
		[]StepType{StepConfirmDetails, StepProcessing},
		TierSmall.RequiredSteps())
	assert.Equal(t,
		[]StepType{StepConfirmDetails, StepWalletOwnership, StepProcessing},
		TierMedium.RequiredSteps())
	assert.Equal(t,
		[]StepType{StepConfirmDetails, StepWalletOwnership, StepSecurityConfirm, StepProcessing},
		TierLarge.RequiredSteps())
}

func TestTier_Expiry(t *testing.T) {
	assert.Equal(t, 2*time.Hour, TierSmall.Expiry())
	assert.Equal(t, 6*time.Hour, TierMedium.Expiry())
	assert.Equal(t, 24*time.Hour, TierLarge.Expiry())
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidFeature(FeatureWithdrawal))
	assert.False(t, ValidFeature(Feature("STAKING")))
	assert.True(t, ValidMethod(MethodMultiSignature))
	assert.False(t, ValidMethod(Method("CARRIER_PIGEON")))
	assert.True(t, ValidNetwork(NetworkTRC20))
	assert.False(t, ValidNetwork(Network("SOL")))
}
