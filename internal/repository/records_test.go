package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symptom-guidance-server/internal/domain"
)

// getTestPool returns a pgx pool for integration testing.
// Skip test if TEST_DATABASE_URL is not set.
func getTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL tests")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS medical_records (
			id UUID PRIMARY KEY,
			patient_id TEXT NOT NULL,
			symptoms TEXT[] NOT NULL DEFAULT '{}',
			diagnosis TEXT NOT NULL,
			medicines JSONB NOT NULL DEFAULT '[]',
			record_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			severity TEXT NOT NULL DEFAULT 'low',
			follow_up_required BOOLEAN NOT NULL DEFAULT FALSE,
			feedback JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Exec(ctx, "DELETE FROM medical_records WHERE patient_id LIKE 'it-%'")
		pool.Close()
	})

	return pool
}

func newIntegrationRepo(t *testing.T) *RecordRepository {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return NewRecordRepository(getTestPool(t), logger)
}

func TestRecordRepository_RoundTrip(t *testing.T) {
	repo := newIntegrationRepo(t)
	ctx := context.Background()

	record := &domain.MedicalRecord{
		PatientID: "it-patient-1",
		Symptoms:  []string{"Cough", "Fever"},
		Diagnosis: "Flu",
		Medicines: []domain.Medicine{{ID: "paracetamol", Name: "Paracetamol 500mg"}},
		Date:      time.Now().UTC().Truncate(time.Millisecond),
		Severity:  domain.SeverityMedium,
	}

	require.NoError(t, repo.Create(ctx, record))
	require.NotEmpty(t, record.ID)

	got, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.PatientID, got.PatientID)
	assert.Equal(t, record.Symptoms, got.Symptoms)
	assert.Equal(t, record.Medicines, got.Medicines)
	assert.Equal(t, domain.SeverityMedium, got.Severity)
	assert.Nil(t, got.Feedback)
}

func TestRecordRepository_AttachFeedbackAndDelete(t *testing.T) {
	repo := newIntegrationRepo(t)
	ctx := context.Background()

	record := &domain.MedicalRecord{
		PatientID: "it-patient-2",
		Symptoms:  []string{"Stomach pain"},
		Diagnosis: "Gastritis",
		Severity:  domain.SeverityHigh,
	}
	require.NoError(t, repo.Create(ctx, record))

	feedback := &domain.RecordFeedback{Helpful: false, Rating: 2, Comments: "diagnosis felt off"}
	require.NoError(t, repo.AttachFeedback(ctx, record.ID, feedback))

	got, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Feedback)
	assert.Equal(t, "diagnosis felt off", got.Feedback.Comments)

	require.NoError(t, repo.Delete(ctx, record.ID))
	_, err = repo.GetByID(ctx, record.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordRepository_ListByPatientOrder(t *testing.T) {
	repo := newIntegrationRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	older := &domain.MedicalRecord{
		PatientID: "it-patient-3",
		Symptoms:  []string{"Headache"},
		Diagnosis: "Headache",
		Date:      now.Add(-24 * time.Hour),
		Severity:  domain.SeverityLow,
	}
	newer := &domain.MedicalRecord{
		PatientID: "it-patient-3",
		Symptoms:  []string{"Cough"},
		Diagnosis: "Common Cold",
		Date:      now,
		Severity:  domain.SeverityLow,
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	records, err := repo.ListByPatient(ctx, "it-patient-3")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Common Cold", records[0].Diagnosis)
	assert.Equal(t, "Headache", records[1].Diagnosis)
}
