package postgres

import (
	"context"
	"testing"
	"time"

	"wallet-verification-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepo_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	details := "encryptedblob"
	entry := &domain.AuditEntry{
		ID:               uuid.New(),
		VerificationID:   42,
		UserID:           7,
		Action:           domain.AuditActionProofAccepted,
		EncryptedDetails: &details,
		IPAddress:        "192.168.1.1",
		CreatedAt:        time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO audit_entries").
		WithArgs(
			entry.ID, entry.VerificationID, entry.UserID, entry.Action,
			entry.EncryptedDetails, entry.IPAddress, entry.UserAgent, entry.CreatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Append(context.Background(), dbTx, entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_ListByVerification(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	now := time.Now().UTC()
	cols := []string{"id", "verification_id", "user_id", "action", "encrypted_details", "ip_address", "user_agent", "created_at"}

	mock.ExpectQuery("SELECT .+ FROM audit_entries WHERE verification_id").
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(uuid.New(), int64(42), int64(7), domain.AuditActionCreated, (*string)(nil), "192.168.1.1", "", now).
			AddRow(uuid.New(), int64(42), int64(7), domain.AuditActionProofAccepted, (*string)(nil), "192.168.1.1", "", now.Add(time.Minute)))

	entries, err := repo.ListByVerification(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.AuditActionCreated, entries[0].Action)
	assert.Equal(t, domain.AuditActionProofAccepted, entries[1].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}
