package domain

// RiskLevel is the coarse classification derived from the risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Risk factor tags recorded alongside the score for audit reconstruction.
const (
	RiskFactorNewWallet        = "new_wallet"
	RiskFactorWalletRejections = "wallet_rejections"
	RiskFactorRequestBurst     = "request_burst"
	RiskFactorSharedIP         = "shared_ip"
	RiskFactorLargeAmount      = "large_amount"
	RiskFactorElevatedAmount   = "elevated_amount"
	RiskFactorNewAccount       = "new_account"
)

// RiskAssessment is the deterministic scoring output persisted with a request.
type RiskAssessment struct {
	Score   int       `json:"score"`
	Level   RiskLevel `json:"level"`
	Factors []string  `json:"factors"`
}

// RiskSnapshot is the explicit history input to the assessor. It is read
// inside the same transaction that creates the request so scoring never
// observes stale data, and it makes the assessor a pure function.
type RiskSnapshot struct {
	Amount             int64
	AccountAgeDays     int
	WalletSeenBefore   bool
	WalletRejections   int // historical rejections for this wallet
	RequestsLastHour   int // requests by this user in the last hour
	WalletsForIPIn24h  int // distinct wallets seen from this IP in 24h
	PriorApprovals     int
	DistinctIPsIn7Days int
}
