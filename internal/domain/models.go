package domain

import (
	"time"
)

// Core Enums and Types

// Severity represents the assessed seriousness of a condition or diagnosis
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank returns the numeric ordering of a severity level (low=1, high=3).
// Unknown values rank 0, below every valid level.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// Urgency represents the advised response time derived from severity
type Urgency string

const (
	UrgencyNotUrgent Urgency = "not-urgent"
	UrgencyModerate  Urgency = "moderate"
	UrgencyUrgent    Urgency = "urgent"
)

// Availability represents the stock status of a medicine
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityLimited     Availability = "limited"
	AvailabilityUnavailable Availability = "unavailable"
)

// Duration buckets offered by the symptom questionnaire
const (
	DurationUnderOneDay = "Less than 1 day"
	DurationOneToThree  = "1-3 days"
	DurationFourToSeven = "4-7 days"
	DurationOverOneWeek = "More than 1 week"
)

// Reference Catalog Models

// Disease represents one entry of the static disease catalog
type Disease struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Symptoms        []string `json:"symptoms"`
	CommonSymptoms  []string `json:"common_symptoms"`
	RareSymptoms    []string `json:"rare_symptoms"`
	Severity        Severity `json:"severity"`
	Category        string   `json:"category"`
	Prevalence      int      `json:"prevalence"`
	AgeGroups       []string `json:"age_groups"`
	Prevention      []string `json:"prevention"`
	WhenToSeeDoctor []string `json:"when_to_see_doctor"`
}

// Medicine represents one entry of the static medicine catalog
type Medicine struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	GenericName       string       `json:"generic_name"`
	Category          string       `json:"category"`
	Dosage            string       `json:"dosage"`
	SideEffects       []string     `json:"side_effects"`
	Contraindications []string     `json:"contraindications"`
	Price             float64      `json:"price"`
	Availability      Availability `json:"availability"`
	OverTheCounter    bool         `json:"over_the_counter"`
	Description       string       `json:"description"`
}

// AvailableHours describes a clinic's opening schedule
type AvailableHours struct {
	Open  string   `json:"open"`
	Close string   `json:"close"`
	Days  []string `json:"days"`
}

// Clinic represents one entry of the static clinic catalog
type Clinic struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Address              string         `json:"address"`
	City                 string         `json:"city"`
	State                string         `json:"state"`
	Pincode              string         `json:"pincode"`
	Phone                string         `json:"phone"`
	Email                string         `json:"email"`
	Specialties          []string       `json:"specialties"`
	Rating               float64        `json:"rating"`
	IsGovernmentApproved bool           `json:"is_government_approved"`
	AvailableHours       AvailableHours `json:"available_hours"`
	Facilities           []string       `json:"facilities"`
}

// Question represents one questionnaire entry served to intake UIs
type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"` // single, multiple, scale, boolean
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
	Category string   `json:"category"`
}

// Engine Input/Output Models

// AnswerSet is the validated output of the symptom questionnaire,
// consumed by the scoring engine. Constructed fresh per session.
type AnswerSet struct {
	PrimarySymptom     string   `json:"primary_symptom"`
	Duration           string   `json:"duration"`
	Severity           int      `json:"severity"` // self-reported, 1-10
	AdditionalSymptoms []string `json:"additional_symptoms"`
	MedicationTaken    bool     `json:"medication_taken"`
	ChronicConditions  []string `json:"chronic_conditions"`
	CurrentMedication  bool     `json:"current_medication"`
}

// DiseaseMatch pairs a catalog disease with its computed match score
type DiseaseMatch struct {
	Disease          Disease  `json:"disease"`
	Probability      float64  `json:"probability"` // in (20, 95]
	MatchingSymptoms []string `json:"matching_symptoms"`
}

// DiagnosisResult is the scoring engine's complete output for one analysis.
// Immutable after creation.
type DiagnosisResult struct {
	PossibleDiseases     []DiseaseMatch `json:"possible_diseases"`
	RecommendedMedicines []Medicine     `json:"recommended_medicines"`
	Severity             Severity       `json:"severity"`
	Urgency              Urgency        `json:"urgency"`
	Recommendations      []string       `json:"recommendations"`
	NearestClinics       []Clinic       `json:"nearest_clinics"`
}

// History and Feedback Models

// RecordFeedback is the optional feedback block attached to a medical record
type RecordFeedback struct {
	Helpful  bool   `json:"helpful"`
	Comments string `json:"comments"`
	Rating   int    `json:"rating"` // 1-5
}

// MedicalRecord is a saved diagnosis, owned by the profile/history feature.
// The feedback aggregator consumes records read-only.
type MedicalRecord struct {
	ID               string          `json:"id"`
	PatientID        string          `json:"patient_id"`
	Symptoms         []string        `json:"symptoms"`
	Diagnosis        string          `json:"diagnosis"`
	Medicines        []Medicine      `json:"medicines"`
	Date             time.Time       `json:"date"`
	Severity         Severity        `json:"severity"`
	FollowUpRequired bool            `json:"follow_up_required"`
	Feedback         *RecordFeedback `json:"feedback,omitempty"`
}

// Patient represents a patient profile
type Patient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"` // male, female, other
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeedbackEvent is one user-submitted rating tied to a past medical record.
// The record reference is weak: aggregation tolerates dangling ids, and
// deleting a record never removes its events.
type FeedbackEvent struct {
	RecordID  string    `json:"record_id"`
	Helpful   bool      `json:"helpful"`
	Rating    int       `json:"rating"` // 1-5
	Comments  string    `json:"comments"`
	Timestamp time.Time `json:"timestamp"`
}

// LearningMetrics is the aggregate statistics derived from the full feedback
// log. Fully recomputed on every submission, never incrementally updated.
type LearningMetrics struct {
	TotalFeedback          int      `json:"total_feedback"`
	AverageRating          float64  `json:"average_rating"`
	HelpfulPercentage      float64  `json:"helpful_percentage"`
	CommonIssues           []string `json:"common_issues"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
}

// Trend Models

// SymptomTrend reports how often a symptom appears across the record history
type SymptomTrend struct {
	Symptom   string `json:"symptom"`
	Frequency int    `json:"frequency"`
	Trend     string `json:"trend"` // increasing, decreasing, stable
}

// DiseaseTrend reports how often a diagnosis appears across the record history
type DiseaseTrend struct {
	Disease   string `json:"disease"`
	Frequency int    `json:"frequency"`
	Trend     string `json:"trend"`
}

// TrendReport is the derived pattern analysis over medical record history
type TrendReport struct {
	SymptomTrends    []SymptomTrend `json:"symptom_trends"`
	DiseaseTrends    []DiseaseTrend `json:"disease_trends"`
	SeasonalPatterns map[string]int `json:"seasonal_patterns"`
}
