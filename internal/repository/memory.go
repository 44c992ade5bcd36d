package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/symptom-guidance-server/internal/domain"
)

// MemoryRecordRepository is an in-process record repository for tests and
// database-less deployments.
type MemoryRecordRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.MedicalRecord
}

// NewMemoryRecordRepository creates an empty in-memory repository.
func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{
		records: make(map[string]*domain.MedicalRecord),
	}
}

// Create stores a copy of the record, assigning an ID and date if missing.
func (m *MemoryRecordRepository) Create(_ context.Context, record *domain.MedicalRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.Date.IsZero() {
		record.Date = time.Now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *record
	m.records[record.ID] = &copied
	return nil
}

// GetByID returns a copy of the stored record.
func (m *MemoryRecordRepository) GetByID(_ context.Context, id string) (*domain.MedicalRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("medical record not found: %w", domain.ErrNotFound)
	}
	copied := *record
	return &copied, nil
}

// ListByPatient returns the patient's records, newest first.
func (m *MemoryRecordRepository) ListByPatient(_ context.Context, patientID string) ([]*domain.MedicalRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*domain.MedicalRecord, 0)
	for _, record := range m.records {
		if record.PatientID != patientID {
			continue
		}
		copied := *record
		records = append(records, &copied)
	}
	sortNewestFirst(records)
	return records, nil
}

// List returns records across all patients with pagination, newest first.
func (m *MemoryRecordRepository) List(_ context.Context, limit, offset int) ([]*domain.MedicalRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*domain.MedicalRecord, 0, len(m.records))
	for _, record := range m.records {
		copied := *record
		records = append(records, &copied)
	}
	sortNewestFirst(records)

	if offset >= len(records) {
		return []*domain.MedicalRecord{}, nil
	}
	records = records[offset:]
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// AttachFeedback stores the feedback block on an existing record.
func (m *MemoryRecordRepository) AttachFeedback(_ context.Context, id string, feedback *domain.RecordFeedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok {
		return fmt.Errorf("medical record not found: %w", domain.ErrNotFound)
	}
	if feedback != nil {
		copied := *feedback
		record.Feedback = &copied
	} else {
		record.Feedback = nil
	}
	return nil
}

// Delete removes a record.
func (m *MemoryRecordRepository) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return fmt.Errorf("medical record not found: %w", domain.ErrNotFound)
	}
	delete(m.records, id)
	return nil
}

func sortNewestFirst(records []*domain.MedicalRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
}
