// Package repository persists medical record history and learning metric
// snapshots.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/symptom-guidance-server/internal/domain"
)

// RecordRepository handles medical record persistence on Postgres.
type RecordRepository struct {
	db  *pgxpool.Pool
	log *logrus.Logger
}

// NewRecordRepository creates a new medical record repository
func NewRecordRepository(db *pgxpool.Pool, logger *logrus.Logger) *RecordRepository {
	return &RecordRepository{
		db:  db,
		log: logger,
	}
}

// Create inserts a new medical record. A missing ID is assigned; a zero date
// is filled with the current time.
func (r *RecordRepository) Create(ctx context.Context, record *domain.MedicalRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.Date.IsZero() {
		record.Date = time.Now()
	}

	medicines, err := json.Marshal(record.Medicines)
	if err != nil {
		return fmt.Errorf("encoding medicines: %w", err)
	}
	feedback, err := encodeFeedback(record.Feedback)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO medical_records (
			id, patient_id, symptoms, diagnosis, medicines,
			record_date, severity, follow_up_required, feedback
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)`

	_, err = r.db.Exec(ctx, query,
		record.ID,
		record.PatientID,
		record.Symptoms,
		record.Diagnosis,
		medicines,
		record.Date,
		string(record.Severity),
		record.FollowUpRequired,
		feedback,
	)

	if err != nil {
		r.log.WithFields(logrus.Fields{
			"record_id":  record.ID,
			"patient_id": record.PatientID,
			"error":      err,
		}).Error("Failed to create medical record")
		return fmt.Errorf("creating medical record: %w", err)
	}

	r.log.WithFields(logrus.Fields{
		"record_id":  record.ID,
		"patient_id": record.PatientID,
		"diagnosis":  record.Diagnosis,
	}).Info("Medical record created")

	return nil
}

// GetByID retrieves a medical record by its ID.
func (r *RecordRepository) GetByID(ctx context.Context, id string) (*domain.MedicalRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid record id %q: %w", id, domain.ErrNotFound)
	}

	query := `
		SELECT id, patient_id, symptoms, diagnosis, medicines,
			   record_date, severity, follow_up_required, feedback
		FROM medical_records
		WHERE id = $1`

	record, err := scanRecord(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("medical record not found: %w", domain.ErrNotFound)
		}
		r.log.WithFields(logrus.Fields{
			"record_id": id,
			"error":     err,
		}).Error("Failed to get medical record")
		return nil, fmt.Errorf("getting medical record: %w", err)
	}

	return record, nil
}

// ListByPatient returns a patient's records, newest first.
func (r *RecordRepository) ListByPatient(ctx context.Context, patientID string) ([]*domain.MedicalRecord, error) {
	query := `
		SELECT id, patient_id, symptoms, diagnosis, medicines,
			   record_date, severity, follow_up_required, feedback
		FROM medical_records
		WHERE patient_id = $1
		ORDER BY record_date DESC`

	rows, err := r.db.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("listing medical records by patient: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// List returns records across all patients with pagination, newest first.
func (r *RecordRepository) List(ctx context.Context, limit, offset int) ([]*domain.MedicalRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, patient_id, symptoms, diagnosis, medicines,
			   record_date, severity, follow_up_required, feedback
		FROM medical_records
		ORDER BY record_date DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing medical records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// AttachFeedback stores the feedback block on an existing record, replacing
// any prior feedback.
func (r *RecordRepository) AttachFeedback(ctx context.Context, id string, feedback *domain.RecordFeedback) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid record id %q: %w", id, domain.ErrNotFound)
	}

	encoded, err := encodeFeedback(feedback)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE medical_records SET feedback = $2, updated_at = NOW() WHERE id = $1`,
		id, encoded,
	)
	if err != nil {
		return fmt.Errorf("attaching feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("medical record not found: %w", domain.ErrNotFound)
	}

	r.log.WithField("record_id", id).Info("Feedback attached to medical record")
	return nil
}

// Delete removes a record. Feedback events referencing the record are left
// in place; the reference is weak.
func (r *RecordRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid record id %q: %w", id, domain.ErrNotFound)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM medical_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting medical record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("medical record not found: %w", domain.ErrNotFound)
	}

	r.log.WithField("record_id", id).Info("Medical record deleted")
	return nil
}

// scanRecord scans one row into a MedicalRecord.
func scanRecord(row pgx.Row) (*domain.MedicalRecord, error) {
	var record domain.MedicalRecord
	var severity string
	var medicines []byte
	var feedback []byte

	err := row.Scan(
		&record.ID,
		&record.PatientID,
		&record.Symptoms,
		&record.Diagnosis,
		&medicines,
		&record.Date,
		&severity,
		&record.FollowUpRequired,
		&feedback,
	)
	if err != nil {
		return nil, err
	}

	record.Severity = domain.Severity(severity)
	if err := json.Unmarshal(medicines, &record.Medicines); err != nil {
		return nil, fmt.Errorf("decoding medicines: %w", err)
	}
	if feedback != nil {
		var fb domain.RecordFeedback
		if err := json.Unmarshal(feedback, &fb); err != nil {
			return nil, fmt.Errorf("decoding feedback: %w", err)
		}
		record.Feedback = &fb
	}
	return &record, nil
}

func collectRecords(rows pgx.Rows) ([]*domain.MedicalRecord, error) {
	records := make([]*domain.MedicalRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning medical record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating medical records: %w", err)
	}
	return records, nil
}

func encodeFeedback(feedback *domain.RecordFeedback) ([]byte, error) {
	if feedback == nil {
		return nil, nil
	}
	data, err := json.Marshal(feedback)
	if err != nil {
		return nil, fmt.Errorf("encoding feedback: %w", err)
	}
	return data, nil
}
