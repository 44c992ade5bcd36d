package service

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/symptom-guidance-server/internal/domain"
)

// medicineRule maps a trigger symptom vocabulary to one OTC medicine.
// Triggers match user symptoms by case-insensitive exact comparison, not
// substring: the vocabulary is small and fixed, and loose matching here
// would over-recommend.
type medicineRule struct {
	medicineID       string
	triggers         []string
	contraindication string // chronic condition that suppresses the rule
}

// medicineRules is evaluated in order; each rule independently appends its
// medicine when triggered. Every medicine id appears in exactly one rule, so
// the result is duplicate-free by construction.
var medicineRules = []medicineRule{
	{
		medicineID: "paracetamol",
		triggers:   []string{"fever", "headache", "body aches"},
	},
	{
		medicineID:       "ibuprofen",
		triggers:         []string{"fever", "headache", "body aches"},
		contraindication: "Heart disease",
	},
	{
		medicineID: "cetirizine",
		triggers:   []string{"runny nose", "sneezing", "itchy eyes"},
	},
	{
		medicineID: "omeprazole",
		triggers:   []string{"stomach pain", "nausea", "heartburn"},
	},
	{
		medicineID: "dextromethorphan",
		triggers:   []string{"cough"},
	},
}

// recommendMedicines applies the rule table to the user's symptom set,
// honoring chronic-condition contraindications and capping the result.
func (e *DiagnosisEngine) recommendMedicines(symptoms, chronicConditions []string) []domain.Medicine {
	recommended := make([]domain.Medicine, 0, maxMedicines)

	for _, rule := range medicineRules {
		if !rule.triggered(symptoms) {
			continue
		}
		if rule.contraindication != "" && containsString(chronicConditions, rule.contraindication) {
			e.logger.WithFields(logrus.Fields{
				"medicine":  rule.medicineID,
				"condition": rule.contraindication,
			}).Debug("Medicine suppressed by chronic condition")
			continue
		}

		medicine, ok := e.catalog.MedicineByID(rule.medicineID)
		if !ok {
			e.logger.WithField("medicine", rule.medicineID).Warn("Rule references unknown medicine")
			continue
		}
		recommended = append(recommended, medicine)
	}

	if len(recommended) > maxMedicines {
		recommended = recommended[:maxMedicines]
	}
	return recommended
}

// triggered reports whether any user symptom equals a trigger,
// case-insensitively.
func (r medicineRule) triggered(symptoms []string) bool {
	for _, s := range symptoms {
		lower := strings.ToLower(s)
		for _, t := range r.triggers {
			if lower == t {
				return true
			}
		}
	}
	return false
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
