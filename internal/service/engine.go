package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/symptom-guidance-server/internal/domain"
)

// Probability bounds for retained disease matches. Probabilities are capped
// below 100 to reflect inherent diagnostic uncertainty.
const (
	probabilityFloor = 20.0
	probabilityCap   = 95.0
	maxDiseases      = 3
	maxMedicines     = 3
	maxClinics       = 3
)

// DiagnosisEngine maps a symptom questionnaire answer set to ranked condition
// matches, medicine suggestions, an urgency level, and guidance text. Analyze
// is a pure function of its input plus the static catalogs, so results for
// identical answer sets are memoized in a bounded LRU.
type DiagnosisEngine struct {
	logger  *logrus.Logger
	catalog domain.Catalog

	resultCache *lru.Cache[string, *domain.DiagnosisResult]
}

// NewDiagnosisEngine creates a new scoring engine over the given catalogs.
// A cacheSize of zero disables result memoization.
func NewDiagnosisEngine(catalog domain.Catalog, cacheSize int, logger *logrus.Logger) (*DiagnosisEngine, error) {
	e := &DiagnosisEngine{
		logger:  logger,
		catalog: catalog,
	}

	if cacheSize > 0 {
		cache, err := lru.New[string, *domain.DiagnosisResult](cacheSize)
		if err != nil {
			return nil, err
		}
		e.resultCache = cache
	}

	return e, nil
}

// Analyze produces a complete diagnosis result for one answer set.
// It never fails: ill-formed input degrades to an empty or low-severity
// result rather than an error.
func (e *DiagnosisEngine) Analyze(answers domain.AnswerSet) *domain.DiagnosisResult {
	key := answerKey(answers)
	if e.resultCache != nil && key != "" {
		if cached, ok := e.resultCache.Get(key); ok {
			e.logger.WithField("cache_key", key[:12]).Debug("Diagnosis result served from cache")
			return cached
		}
	}

	allSymptoms := collectSymptoms(answers)
	userSeverity := clampSeverity(answers.Severity)

	matches := e.scoreDiseases(allSymptoms, answers.Duration)
	severity := deriveSeverity(userSeverity, matches)
	urgency := deriveUrgency(severity)
	medicines := e.recommendMedicines(allSymptoms, answers.ChronicConditions)

	result := &domain.DiagnosisResult{
		PossibleDiseases:     matches,
		RecommendedMedicines: medicines,
		Severity:             severity,
		Urgency:              urgency,
		Recommendations:      buildRecommendations(urgency, matches),
		NearestClinics:       e.nearestClinics(),
	}

	if e.resultCache != nil && key != "" {
		e.resultCache.Add(key, result)
	}

	e.logger.WithFields(logrus.Fields{
		"symptom_count":   len(allSymptoms),
		"disease_matches": len(result.PossibleDiseases),
		"medicines":       len(result.RecommendedMedicines),
		"severity":        result.Severity,
		"urgency":         result.Urgency,
	}).Info("Diagnosis analysis completed")

	return result
}

// scoreDiseases computes the ranked disease matches for the user's symptoms.
func (e *DiagnosisEngine) scoreDiseases(userSymptoms []string, duration string) []domain.DiseaseMatch {
	matches := make([]domain.DiseaseMatch, 0, maxDiseases)

	for _, disease := range e.catalog.Diseases() {
		if len(disease.Symptoms) == 0 {
			continue
		}

		matching := matchingSymptoms(disease.Symptoms, userSymptoms)
		probability := float64(len(matching)) / float64(len(disease.Symptoms)) * 100

		// Common symptoms are the diagnostic subset; each hit boosts the score.
		probability += float64(countCommonMatches(disease.CommonSymptoms, userSymptoms)) * 10

		probability += durationAdjustment(duration, disease.Severity)

		if probability > probabilityCap {
			probability = probabilityCap
		}
		if probability <= probabilityFloor {
			continue
		}

		matches = append(matches, domain.DiseaseMatch{
			Disease:          disease,
			Probability:      probability,
			MatchingSymptoms: matching,
		})
	}

	// Stable sort keeps catalog order for ties.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Probability > matches[j].Probability
	})

	if len(matches) > maxDiseases {
		matches = matches[:maxDiseases]
	}
	return matches
}

// matchingSymptoms returns the disease symptoms that match any user symptom.
// The test is a bidirectional case-insensitive substring check, intentionally
// loose so partial phrasing still matches ("fever" vs "mild fever").
func matchingSymptoms(diseaseSymptoms, userSymptoms []string) []string {
	matched := make([]string, 0, len(diseaseSymptoms))
	for _, ds := range diseaseSymptoms {
		lower := strings.ToLower(ds)
		for _, us := range userSymptoms {
			userLower := strings.ToLower(us)
			if strings.Contains(lower, userLower) || strings.Contains(userLower, lower) {
				matched = append(matched, ds)
				break
			}
		}
	}
	return matched
}

// countCommonMatches counts common symptoms containing any user symptom.
// Unlike matchingSymptoms this test is single-direction.
func countCommonMatches(commonSymptoms, userSymptoms []string) int {
	count := 0
	for _, cs := range commonSymptoms {
		lower := strings.ToLower(cs)
		for _, us := range userSymptoms {
			if strings.Contains(lower, strings.ToLower(us)) {
				count++
				break
			}
		}
	}
	return count
}

// durationAdjustment nudges the score for short-lived mild conditions and
// lingering moderate ones. Other combinations get no adjustment.
func durationAdjustment(duration string, severity domain.Severity) float64 {
	switch {
	case duration == domain.DurationUnderOneDay && severity == domain.SeverityLow:
		return 10
	case duration == domain.DurationOverOneWeek && severity == domain.SeverityMedium:
		return 15
	}
	return 0
}

// deriveSeverity combines the self-reported severity with the highest
// catalog severity among retained diseases. With no retained diseases the
// catalog contribution is treated as below "low", so only the self-reported
// thresholds apply.
func deriveSeverity(userSeverity int, matches []domain.DiseaseMatch) domain.Severity {
	maxRank := 0
	for _, m := range matches {
		if r := m.Disease.Severity.Rank(); r > maxRank {
			maxRank = r
		}
	}

	switch {
	case userSeverity >= 8 || maxRank == 3:
		return domain.SeverityHigh
	case userSeverity >= 5 || maxRank == 2:
		return domain.SeverityMedium
	}
	return domain.SeverityLow
}

// deriveUrgency is a direct mapping from severity.
func deriveUrgency(severity domain.Severity) domain.Urgency {
	switch severity {
	case domain.SeverityHigh:
		return domain.UrgencyUrgent
	case domain.SeverityMedium:
		return domain.UrgencyModerate
	}
	return domain.UrgencyNotUrgent
}

// nearestClinics returns the first clinics in catalog order. No geolocation
// is performed; callers get a capped slice verbatim.
func (e *DiagnosisEngine) nearestClinics() []domain.Clinic {
	clinics := e.catalog.Clinics()
	if len(clinics) > maxClinics {
		clinics = clinics[:maxClinics]
	}
	return clinics
}

// collectSymptoms builds the full user symptom set from the answer set.
// Empty entries are excluded so an unanswered primary symptom cannot match
// everything via the substring test.
func collectSymptoms(answers domain.AnswerSet) []string {
	symptoms := make([]string, 0, 1+len(answers.AdditionalSymptoms))
	if strings.TrimSpace(answers.PrimarySymptom) != "" {
		symptoms = append(symptoms, answers.PrimarySymptom)
	}
	for _, s := range answers.AdditionalSymptoms {
		if strings.TrimSpace(s) != "" {
			symptoms = append(symptoms, s)
		}
	}
	return symptoms
}

// clampSeverity forces the self-reported severity into the 1-10 scale.
func clampSeverity(severity int) int {
	if severity < 1 {
		return 1
	}
	if severity > 10 {
		return 10
	}
	return severity
}

// answerKey derives a deterministic cache key for an answer set.
func answerKey(answers domain.AnswerSet) string {
	data, err := json.Marshal(answers)
	if err != nil {
		// Marshaling a plain struct cannot fail; keep the engine total anyway.
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
