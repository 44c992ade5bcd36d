package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/symptom-guidance-server/internal/domain"
)

type diagnoseRequest struct {
	PrimarySymptom     string   `json:"primary_symptom" binding:"required"`
	Duration           string   `json:"duration"`
	Severity           int      `json:"severity" binding:"required,min=1,max=10"`
	AdditionalSymptoms []string `json:"additional_symptoms"`
	MedicationTaken    bool     `json:"medication_taken"`
	ChronicConditions  []string `json:"chronic_conditions"`
	CurrentMedication  bool     `json:"current_medication"`
}

type feedbackRequest struct {
	RecordID string `json:"record_id" binding:"required"`
	Helpful  *bool  `json:"helpful" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comments string `json:"comments"`
}

type createRecordRequest struct {
	PatientID        string            `json:"patient_id" binding:"required"`
	Symptoms         []string          `json:"symptoms" binding:"required,min=1"`
	Diagnosis        string            `json:"diagnosis" binding:"required"`
	Medicines        []domain.Medicine `json:"medicines"`
	Date             time.Time         `json:"date"`
	Severity         domain.Severity   `json:"severity"`
	FollowUpRequired bool              `json:"follow_up_required"`
}

// handleDiagnose runs the scoring engine over one answer set.
func (s *Server) handleDiagnose(c *gin.Context) {
	var req diagnoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, domain.ErrCodeInvalidInput, "Invalid diagnosis request", err.Error())
		return
	}

	result := s.engine.Analyze(domain.AnswerSet{
		PrimarySymptom:     req.PrimarySymptom,
		Duration:           req.Duration,
		Severity:           req.Severity,
		AdditionalSymptoms: req.AdditionalSymptoms,
		MedicationTaken:    req.MedicationTaken,
		ChronicConditions:  req.ChronicConditions,
		CurrentMedication:  req.CurrentMedication,
	})

	c.JSON(http.StatusOK, result)
}

// handleSubmitFeedback records a feedback event and returns the recomputed
// learning metrics. The event is also attached to the referenced medical
// record when it still exists; a missing record is not an error.
func (s *Server) handleSubmitFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, domain.ErrCodeInvalidInput, "Invalid feedback request", err.Error())
		return
	}

	ctx := c.Request.Context()

	metrics, err := s.aggregator.SubmitFeedback(ctx, domain.FeedbackEvent{
		RecordID: req.RecordID,
		Helpful:  *req.Helpful,
		Rating:   req.Rating,
		Comments: req.Comments,
	})
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, domain.ErrCodeStoreError, "Failed to store feedback", err.Error())
		return
	}

	err = s.records.AttachFeedback(ctx, req.RecordID, &domain.RecordFeedback{
		Helpful:  *req.Helpful,
		Rating:   req.Rating,
		Comments: req.Comments,
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.WithError(err).WithField("record_id", req.RecordID).Warn("Failed to attach feedback to record")
	}

	if s.snapshots != nil {
		if err := s.snapshots.Save(ctx, metrics); err != nil {
			s.logger.WithError(err).Warn("Failed to save metrics snapshot")
		}
	}

	c.JSON(http.StatusOK, metrics)
}

// handleGetMetrics returns the current learning metrics.
func (s *Server) handleGetMetrics(c *gin.Context) {
	metrics, err := s.aggregator.Metrics(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, domain.ErrCodeStoreError, "Failed to load metrics", err.Error())
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// handleGetInsights returns advisory observations over recent history.
func (s *Server) handleGetInsights(c *gin.Context) {
	ctx := c.Request.Context()

	records, err := s.loadHistory(c)
	if err != nil {
		return
	}

	insights, err := s.aggregator.GenerateInsights(ctx, records)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, domain.ErrCodeStoreError, "Failed to generate insights", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// handleGetTrends returns symptom, disease, and seasonal frequency patterns.
func (s *Server) handleGetTrends(c *gin.Context) {
	records, err := s.loadHistory(c)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, s.aggregator.AnalyzePatternTrends(records))
}

func (s *Server) handleListDiseases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"diseases": s.catalog.Diseases()})
}

func (s *Server) handleListMedicines(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"medicines": s.catalog.Medicines()})
}

func (s *Server) handleListClinics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"clinics": s.catalog.Clinics()})
}

func (s *Server) handleListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": s.catalog.Questions()})
}

// handleCreateRecord persists a medical record.
func (s *Server) handleCreateRecord(c *gin.Context) {
	var req createRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, domain.ErrCodeInvalidInput, "Invalid record request", err.Error())
		return
	}

	severity := req.Severity
	if severity == "" {
		severity = domain.SeverityLow
	}
	if severity.Rank() == 0 {
		s.respondError(c, http.StatusBadRequest, domain.ErrCodeInvalidInput, "Invalid record request", "unknown severity: "+string(severity))
		return
	}

	record := &domain.MedicalRecord{
		PatientID:        req.PatientID,
		Symptoms:         req.Symptoms,
		Diagnosis:        req.Diagnosis,
		Medicines:        req.Medicines,
		Date:             req.Date,
		Severity:         severity,
		FollowUpRequired: req.FollowUpRequired,
	}

	if err := s.records.Create(c.Request.Context(), record); err != nil {
		s.respondError(c, http.StatusInternalServerError, domain.ErrCodeDatabaseError, "Failed to create record", err.Error())
		return
	}

	c.JSON(http.StatusCreated, record)
}

// handleListRecords returns paginated records across all patients.
func (s *Server) handleListRecords(c *gin.Context) {
	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	records, err := s.records.List(c.Request.Context(), limit, offset)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, domain.ErrCodeDatabaseError, "Failed to list records", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// handleGetRecord returns one record by id.
func (s *Server) handleGetRecord(c *gin.Context) {
	record, err := s.records.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.respondError(c, http.StatusNotFound, domain.ErrCodeNotFound, "Record not found", "")
			return
		}
		s.respondError(c, http.StatusInternalServerError, domain.ErrCodeDatabaseError, "Failed to get record", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

// handleDeleteRecord removes one record by id. Feedback events referencing
// it are kept.
func (s *Server) handleDeleteRecord(c *gin.Context) {
	err := s.records.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.respondError(c, http.StatusNotFound, domain.ErrCodeNotFound, "Record not found", "")
			return
		}
		s.respondError(c, http.StatusInternalServerError, domain.ErrCodeDatabaseError, "Failed to delete record", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// handleListPatientRecords returns one patient's records, newest first.
func (s *Server) handleListPatientRecords(c *gin.Context) {
	records, err := s.records.ListByPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, domain.ErrCodeDatabaseError, "Failed to list patient records", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// loadHistory fetches the record history feeding trend and insight reports.
// On failure it writes the error response and returns a non-nil error.
func (s *Server) loadHistory(c *gin.Context) ([]domain.MedicalRecord, error) {
	stored, err := s.records.List(c.Request.Context(), insightHistoryLimit, 0)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, domain.ErrCodeDatabaseError, "Failed to load record history", err.Error())
		return nil, err
	}

	records := make([]domain.MedicalRecord, 0, len(stored))
	for _, record := range stored {
		records = append(records, *record)
	}
	return records, nil
}

func (s *Server) respondError(c *gin.Context, status int, code, message, details string) {
	c.AbortWithStatusJSON(status, domain.NewAPIError(code, message, details, c.GetString("request_id")))
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
