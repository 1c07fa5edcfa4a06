package ports

import (
	"context"
	"time"

	"wallet-verification-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EnvelopeCipher handles versioned AES-256-GCM encryption. The ciphertext
// blob carries its key version so rotated keys still decrypt old records.
type EnvelopeCipher interface {
	Encrypt(plaintext []byte) (string, error)
	Decrypt(blob string) ([]byte, error)
	EncryptJSON(v any) (string, error)
	DecryptJSON(blob string, v any) error
}

// SignatureVerifier is the platform crypto primitive. It only answers
// whether a signature over message recovers to address on the network;
// an error means "could not verify", never "verification failed".
type SignatureVerifier interface {
	Verify(ctx context.Context, message, signature, address string, network domain.Network) (bool, error)
}

// RiskAssessor computes a deterministic risk assessment from an explicit
// history snapshot. Pure: identical snapshots yield identical results.
type RiskAssessor interface {
	Assess(snap domain.RiskSnapshot) domain.RiskAssessment
}

// NonceStore manages nonce uniqueness for replay prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if the nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, userID int64, nonce string, ttl time.Duration) (bool, error)
}

// ConfirmTokenStore holds hashed time-delayed confirmation tokens with
// their own expiry, independent of the request TTL.
type ConfirmTokenStore interface {
	Store(ctx context.Context, verificationID int64, tokenHash string, ttl time.Duration) error
	// Get returns the stored hash, or "" when absent or expired.
	Get(ctx context.Context, verificationID int64) (string, error)
	// Delete removes the hash once the token has been consumed.
	Delete(ctx context.Context, verificationID int64) error
}

// TokenHasher hashes confirmation tokens for storage and compares
// submissions in constant time.
type TokenHasher interface {
	Hash(token string) string
	Verify(token string, storedHash string) bool
}

// TokenService validates admin JWTs. Token issuance happens elsewhere.
type TokenService interface {
	Validate(tokenString string) (*AdminClaims, error)
}

// AdminClaims holds the parsed admin JWT claims.
type AdminClaims struct {
	AdminID int64
	Role    string
}

// UserDirectory is the platform account repository collaborator.
type UserDirectory interface {
	AccountAgeDays(ctx context.Context, userID int64) (int, error)
	IsBanned(ctx context.Context, userID int64) (bool, error)
}

// WebhookNotifier queues delivery of verification events to calling
// features. Fire-and-forget: it must never block or roll back the
// transition that produced the event.
type WebhookNotifier interface {
	Queue(verificationID, userID int64, eventType string, payload any)
}

// NotificationSender delivers user-facing messages on state changes.
type NotificationSender interface {
	Send(ctx context.Context, userID int64, subject, body string)
}

// Webhook event types emitted on terminal transitions.
const (
	EventVerificationApproved = "VERIFICATION_APPROVED"
	EventVerificationRejected = "VERIFICATION_REJECTED"
	EventVerificationExpired  = "VERIFICATION_EXPIRED"
	EventStepCompleted        = "VERIFICATION_STEP_COMPLETED"
)

// --- Method handling ---

// SignaturePair is one wallet/signature pair in a multi-signature proof.
type SignaturePair struct {
	WalletAddress string `json:"wallet_address"`
	Signature     string `json:"signature"`
}

// ProofPayload is the union of all method proof shapes; each handler
// consumes the fields relevant to its method.
type ProofPayload struct {
	WalletAddress string            `json:"wallet_address,omitempty"`
	Signature     string            `json:"signature,omitempty"`
	Signatures    []SignaturePair   `json:"signatures,omitempty"`
	Reason        string            `json:"reason,omitempty"`
	UserInfo      map[string]string `json:"user_info,omitempty"`
	Channel       string            `json:"channel,omitempty"` // out-of-band address for time-delayed
}

// MethodOutcome is a handler's decided result. A returned error means the
// submission was not decided (validation or crypto failure) and the
// request state is unchanged.
type MethodOutcome struct {
	Status         domain.Status
	Action         domain.AuditAction
	Message        string
	EncryptedProof *string
}

// MethodHandler validates one kind of proof. Implementations run inside
// the caller's transaction and must not commit or roll it back.
type MethodHandler interface {
	Method() domain.Method
	SubmitProof(ctx context.Context, tx pgx.Tx, req *domain.VerificationRequest, proof ProofPayload) (*MethodOutcome, error)
}

// --- Service Ports (Business Logic) ---

// CreateRequest holds validated input for creating a verification.
type CreateRequest struct {
	UserID        int64
	Feature       domain.Feature
	Method        domain.Method // empty = standard_signature before escalation
	WalletAddress string
	WalletNetwork domain.Network
	Amount        int64
	Context       map[string]any
	ClientIP      string
	UserAgent     string
}

// CreateResult is returned to the calling feature.
type CreateResult struct {
	ID        int64            `json:"id"`
	Method    domain.Method    `json:"method"`
	Challenge string           `json:"challenge"`
	Nonce     string           `json:"nonce"`
	ExpiresAt time.Time        `json:"expires_at"`
	RiskLevel domain.RiskLevel `json:"risk_level"`
}

// SubmitResult reports the outcome of a proof submission.
type SubmitResult struct {
	Status  domain.Status `json:"status"`
	Message string        `json:"message"`
}

// StatusResult is the full request view including steps.
type StatusResult struct {
	Request domain.VerificationRequest `json:"request"`
	Steps   []domain.VerificationStep  `json:"steps,omitempty"`
}

// VerificationService is the orchestration entry point for single-step
// verification flows.
type VerificationService interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)
	SubmitProof(ctx context.Context, id int64, proof ProofPayload) (*SubmitResult, error)
	ConfirmToken(ctx context.Context, id int64, token string) (*SubmitResult, error)
	GetStatus(ctx context.Context, id int64) (*StatusResult, error)
	IsVerified(ctx context.Context, userID int64, feature domain.Feature, walletAddress *string) (bool, error)
	Cancel(ctx context.Context, id int64, userID int64) error
	Override(ctx context.Context, id int64, adminID int64, approve bool, reason string) error
}

// InitiateRequest starts a tiered withdrawal verification.
type InitiateRequest struct {
	UserID        int64
	Amount        int64
	WalletAddress string
	WalletNetwork domain.Network
	ClientIP      string
	UserAgent     string
}

// InitiateResult describes the created tiered flow.
type InitiateResult struct {
	ID        int64                     `json:"id"`
	Tier      domain.Tier               `json:"tier"`
	Steps     []domain.VerificationStep `json:"steps"`
	ExpiresAt time.Time                 `json:"expires_at"`
}

// StepResult reports a step completion. NextStep is 0 once finalized.
type StepResult struct {
	Status   domain.Status `json:"status"`
	NextStep int           `json:"next_step"`
}

// StepOrchestrator drives tiered multi-step withdrawal flows.
type StepOrchestrator interface {
	Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error)
	CompleteStep(ctx context.Context, id int64, stepNumber int, userID int64) (*StepResult, error)
}

// AuditRecord is the pre-encryption form of an audit entry.
type AuditRecord struct {
	VerificationID int64
	UserID         int64
	Action         domain.AuditAction
	Details        any // encrypted before persistence; never plaintext proofs
	IP             string
	UserAgent      string
}

// AuditService appends immutable audit entries within the caller's
// transaction so a transition and its trail commit atomically.
type AuditService interface {
	LogTransition(ctx context.Context, tx pgx.Tx, rec AuditRecord) error
}

// ComplianceService runs alert detection and produces retained reports.
type ComplianceService interface {
	DetectAlerts(ctx context.Context, verificationID int64) ([]domain.SecurityAlert, error)
	GenerateReport(ctx context.Context, verificationID int64, reportType domain.ReportType) (*domain.ComplianceReport, error)
	ResolveAlert(ctx context.Context, alertID uuid.UUID, adminID int64, notes string, outcome domain.AlertStatus) error
}
