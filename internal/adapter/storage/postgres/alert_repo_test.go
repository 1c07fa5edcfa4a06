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

func alertColumnNames() []string {
	return []string{"id", "verification_id", "user_id", "alert_type", "severity", "details", "status",
		"resolved_by", "resolution_note", "created_at", "updated_at"}
}

func TestAlertRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAlertRepo(mock)
	now := time.Now().UTC()
	alert := &domain.SecurityAlert{
		ID:             uuid.New(),
		VerificationID: 42,
		UserID:         7,
		AlertType:      domain.AlertHighRiskScore,
		Severity:       domain.SeverityCritical,
		Details:        "risk score 75 classified HIGH",
		Status:         domain.AlertStatusNew,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	mock.ExpectExec("INSERT INTO security_alerts").
		WithArgs(
			alert.ID, alert.VerificationID, alert.UserID, alert.AlertType,
			alert.Severity, alert.Details, alert.Status, alert.CreatedAt, alert.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), alert)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAlertRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM security_alerts WHERE id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(alertColumnNames()))

	alert, err := repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, alert)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepo_Resolve(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAlertRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE security_alerts SET status").
		WithArgs(domain.AlertStatusResolved, int64(99), "checked with user", pgxmock.AnyArg(), id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Resolve(context.Background(), id, 99, "checked with user", domain.AlertStatusResolved)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
