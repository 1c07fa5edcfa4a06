package integration

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"wallet-verification-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// In-memory repository implementations backing the integration stack.
// Row locking is emulated by a single mutex held from Begin until the
// first Commit or Rollback, which serializes transactions the way
// SELECT ... FOR UPDATE serializes writers on a row. Writes apply
// immediately; Rollback only releases the lock, which is sufficient
// because the flows under test never write before their last possible
// failure point.

type memTx struct {
	pgx.Tx
	once    sync.Once
	release func()
}

func (t *memTx) Commit(ctx context.Context) error {
	t.once.Do(t.release)
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	t.once.Do(t.release)
	return nil
}

type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (tr *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	tr.mu.Lock()
	return &memTx{release: tr.mu.Unlock}, nil
}

// --- Verifications ---

type inMemoryVerificationRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*domain.VerificationRequest
}

func newInMemoryVerificationRepo() *inMemoryVerificationRepo {
	return &inMemoryVerificationRepo{rows: make(map[int64]*domain.VerificationRequest)}
}

func (r *inMemoryVerificationRepo) Create(ctx context.Context, tx pgx.Tx, v *domain.VerificationRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	v.ID = r.nextID
	clone := *v
	r.rows[v.ID] = &clone
	return nil
}

func (r *inMemoryVerificationRepo) GetByID(ctx context.Context, id int64) (*domain.VerificationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *v
	return &clone, nil
}

func (r *inMemoryVerificationRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.VerificationRequest, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryVerificationRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, status domain.Status, verifiedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.rows[id]; ok {
		v.Status = status
		if verifiedAt != nil {
			v.VerifiedAt = verifiedAt
		}
	}
	return nil
}

func (r *inMemoryVerificationRepo) SetProof(ctx context.Context, tx pgx.Tx, id int64, encryptedProof string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.rows[id]; ok {
		v.EncryptedProof = &encryptedProof
	}
	return nil
}

func (r *inMemoryVerificationRepo) SetStep(ctx context.Context, tx pgx.Tx, id int64, step int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.rows[id]; ok {
		v.VerificationStep = step
	}
	return nil
}

func (r *inMemoryVerificationRepo) SetOverride(ctx context.Context, tx pgx.Tx, id int64, adminID int64, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.rows[id]; ok {
		v.OverrideBy = &adminID
		v.OverrideReason = &reason
	}
	return nil
}

func (r *inMemoryVerificationRepo) HasApproved(ctx context.Context, userID int64, feature domain.Feature, walletAddress *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.rows {
		if v.UserID != userID || v.Feature != feature || v.Status != domain.StatusApproved {
			continue
		}
		if walletAddress != nil && !strings.EqualFold(v.WalletAddress, *walletAddress) {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (r *inMemoryVerificationRepo) CountByUserSince(ctx context.Context, tx pgx.Tx, userID int64, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, v := range r.rows {
		if v.UserID == userID && v.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

func (r *inMemoryVerificationRepo) CountRejectedForWallet(ctx context.Context, tx pgx.Tx, walletAddress string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, v := range r.rows {
		if strings.EqualFold(v.WalletAddress, walletAddress) && v.Status == domain.StatusRejected {
			n++
		}
	}
	return n, nil
}

func (r *inMemoryVerificationRepo) CountRejectedForWalletSince(ctx context.Context, tx pgx.Tx, walletAddress string, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, v := range r.rows {
		if strings.EqualFold(v.WalletAddress, walletAddress) && v.Status == domain.StatusRejected && !v.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *inMemoryVerificationRepo) CountWalletsForIPSince(ctx context.Context, tx pgx.Tx, ip string, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wallets := make(map[string]struct{})
	for _, v := range r.rows {
		if v.ClientIP == ip && v.CreatedAt.After(since) {
			wallets[strings.ToLower(v.WalletAddress)] = struct{}{}
		}
	}
	return len(wallets), nil
}

func (r *inMemoryVerificationRepo) CountApprovedByUser(ctx context.Context, tx pgx.Tx, userID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, v := range r.rows {
		if v.UserID == userID && v.Status == domain.StatusApproved {
			n++
		}
	}
	return n, nil
}

func (r *inMemoryVerificationRepo) CountDistinctIPsSince(ctx context.Context, tx pgx.Tx, userID int64, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ips := make(map[string]struct{})
	for _, v := range r.rows {
		if v.UserID == userID && v.CreatedAt.After(since) && v.ClientIP != "" {
			ips[v.ClientIP] = struct{}{}
		}
	}
	return len(ips), nil
}

func (r *inMemoryVerificationRepo) WalletSeen(ctx context.Context, tx pgx.Tx, userID int64, walletAddress string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.rows {
		if v.UserID == userID && strings.EqualFold(v.WalletAddress, walletAddress) {
			return true, nil
		}
	}
	return false, nil
}

// setExpiresAt rewinds a request's TTL so tests can exercise lazy expiry
// without sleeping.
func (r *inMemoryVerificationRepo) setExpiresAt(id int64, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.rows[id]; ok {
		v.ExpiresAt = at
	}
}

// --- Steps ---

type inMemoryStepRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []domain.VerificationStep
}

func newInMemoryStepRepo() *inMemoryStepRepo {
	return &inMemoryStepRepo{}
}

func (r *inMemoryStepRepo) CreateBatch(ctx context.Context, tx pgx.Tx, steps []domain.VerificationStep) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range steps {
		r.nextID++
		steps[i].ID = r.nextID
		r.rows = append(r.rows, steps[i])
	}
	return nil
}

func (r *inMemoryStepRepo) ListByVerification(ctx context.Context, verificationID int64) ([]domain.VerificationStep, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.VerificationStep
	for _, s := range r.rows {
		if s.VerificationID == verificationID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StepNumber < out[j].StepNumber })
	return out, nil
}

func (r *inMemoryStepRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, verificationID int64, stepNumber int) (*domain.VerificationStep, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.rows {
		if s.VerificationID == verificationID && s.StepNumber == stepNumber {
			clone := s
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *inMemoryStepRepo) MarkCompleted(ctx context.Context, tx pgx.Tx, id int64, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Status = domain.StepStatusCompleted
			at := completedAt
			r.rows[i].CompletedAt = &at
		}
	}
	return nil
}

// --- Source of funds ---

type inMemorySourceOfFundsRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*domain.SourceOfFundsRecord // keyed by verification ID
}

func newInMemorySourceOfFundsRepo() *inMemorySourceOfFundsRepo {
	return &inMemorySourceOfFundsRepo{rows: make(map[int64]*domain.SourceOfFundsRecord)}
}

func (r *inMemorySourceOfFundsRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.SourceOfFundsRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	rec.ID = r.nextID
	clone := *rec
	r.rows[rec.VerificationID] = &clone
	return nil
}

func (r *inMemorySourceOfFundsRepo) GetByVerification(ctx context.Context, verificationID int64) (*domain.SourceOfFundsRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[verificationID]
	if !ok {
		return nil, nil
	}
	clone := *rec
	return &clone, nil
}

func (r *inMemorySourceOfFundsRepo) UpdateStatusByVerification(ctx context.Context, tx pgx.Tx, verificationID int64, status domain.SourceOfFundsStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.rows[verificationID]; ok {
		rec.Status = status
		rec.UpdatedAt = time.Now().UTC()
	}
	return nil
}

// --- Assisted cases ---

type inMemoryAssistedCaseRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*domain.AssistedCase // keyed by verification ID
}

func newInMemoryAssistedCaseRepo() *inMemoryAssistedCaseRepo {
	return &inMemoryAssistedCaseRepo{rows: make(map[int64]*domain.AssistedCase)}
}

func (r *inMemoryAssistedCaseRepo) Create(ctx context.Context, tx pgx.Tx, c *domain.AssistedCase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c.ID = r.nextID
	clone := *c
	r.rows[c.VerificationID] = &clone
	return nil
}

func (r *inMemoryAssistedCaseRepo) GetByVerification(ctx context.Context, verificationID int64) (*domain.AssistedCase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[verificationID]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *inMemoryAssistedCaseRepo) Resolve(ctx context.Context, tx pgx.Tx, id int64, adminID int64, encryptedResult string, status domain.AssistedStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.rows {
		if c.ID == id {
			c.Status = status
			c.AssignedAdmin = &adminID
			c.EncryptedResult = &encryptedResult
			c.UpdatedAt = time.Now().UTC()
		}
	}
	return nil
}

// --- Audit trail ---

type inMemoryAuditRepo struct {
	mu   sync.Mutex
	rows []domain.AuditEntry
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Append(ctx context.Context, tx pgx.Tx, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *entry)
	return nil
}

func (r *inMemoryAuditRepo) ListByVerification(ctx context.Context, verificationID int64) ([]domain.AuditEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.AuditEntry
	for _, e := range r.rows {
		if e.VerificationID == verificationID {
			out = append(out, e)
		}
	}
	return out, nil
}

// countActions returns how many entries with the action exist for a
// verification; used to assert exactly-once transitions under load.
func (r *inMemoryAuditRepo) countActions(verificationID int64, action domain.AuditAction) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.rows {
		if e.VerificationID == verificationID && e.Action == action {
			n++
		}
	}
	return n
}

// --- Alerts ---

type inMemoryAlertRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*domain.SecurityAlert
}

func newInMemoryAlertRepo() *inMemoryAlertRepo {
	return &inMemoryAlertRepo{rows: make(map[uuid.UUID]*domain.SecurityAlert)}
}

func (r *inMemoryAlertRepo) Create(ctx context.Context, alert *domain.SecurityAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *alert
	r.rows[alert.ID] = &clone
	return nil
}

func (r *inMemoryAlertRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SecurityAlert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (r *inMemoryAlertRepo) ListOpen(ctx context.Context, limit int) ([]domain.SecurityAlert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.SecurityAlert
	for _, a := range r.rows {
		if a.Status == domain.AlertStatusNew || a.Status == domain.AlertStatusReviewing {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemoryAlertRepo) Resolve(ctx context.Context, id uuid.UUID, adminID int64, note string, status domain.AlertStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.rows[id]; ok {
		a.Status = status
		a.ResolvedBy = &adminID
		a.ResolutionNote = &note
		a.UpdatedAt = time.Now().UTC()
	}
	return nil
}

// --- Reports ---

type inMemoryReportRepo struct {
	mu   sync.Mutex
	rows []domain.ComplianceReport
}

func newInMemoryReportRepo() *inMemoryReportRepo {
	return &inMemoryReportRepo{}
}

func (r *inMemoryReportRepo) Append(ctx context.Context, report *domain.ComplianceReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *report)
	return nil
}

func (r *inMemoryReportRepo) ListByVerification(ctx context.Context, verificationID int64) ([]domain.ComplianceReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ComplianceReport
	for _, rep := range r.rows {
		if rep.VerificationID == verificationID {
			out = append(out, rep)
		}
	}
	return out, nil
}

// --- User directory ---

type inMemoryUserDirectory struct {
	mu      sync.Mutex
	ageDays map[int64]int
	banned  map[int64]bool
}

func newInMemoryUserDirectory() *inMemoryUserDirectory {
	return &inMemoryUserDirectory{
		ageDays: make(map[int64]int),
		banned:  make(map[int64]bool),
	}
}

func (d *inMemoryUserDirectory) AccountAgeDays(ctx context.Context, userID int64) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if age, ok := d.ageDays[userID]; ok {
		return age, nil
	}
	return 365, nil
}

func (d *inMemoryUserDirectory) IsBanned(ctx context.Context, userID int64) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.banned[userID], nil
}

func (d *inMemoryUserDirectory) setAccountAge(userID int64, days int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ageDays[userID] = days
}

func (d *inMemoryUserDirectory) ban(userID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.banned[userID] = true
}
