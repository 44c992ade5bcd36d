package domain

import (
	"context"
)

// Catalog provides read-only access to the static reference datasets.
// Implementations load once and never mutate for the process lifetime.
type Catalog interface {
	Diseases() []Disease
	Medicines() []Medicine
	Clinics() []Clinic
	Questions() []Question

	DiseaseByID(id string) (Disease, bool)
	MedicineByID(id string) (Medicine, bool)
	ClinicByID(id string) (Clinic, bool)
}

// Store is a generic persistent key-value store of JSON-serializable values.
// Get reports whether the key was present; a value that fails to deserialize
// is treated as absent rather than surfaced as a fatal error.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// RecordRepository persists medical record history for the profile feature.
// Deleting a record does not cascade to feedback events (weak reference).
type RecordRepository interface {
	Create(ctx context.Context, record *MedicalRecord) error
	GetByID(ctx context.Context, id string) (*MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID string) ([]*MedicalRecord, error)
	List(ctx context.Context, limit, offset int) ([]*MedicalRecord, error)
	AttachFeedback(ctx context.Context, id string, feedback *RecordFeedback) error
	Delete(ctx context.Context, id string) error
}

// ConfigManager provides access to application configuration
type ConfigManager interface {
	GetConfig() *Config
	GetServerConfig() *ServerConfig
	Validate() error
}
