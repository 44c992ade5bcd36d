// Package catalog holds the static reference datasets: diseases, medicines,
// and clinics. The data is compiled in, loaded once, and read-only for the
// process lifetime.
package catalog

import (
	"github.com/sirupsen/logrus"

	"github.com/symptom-guidance-server/internal/domain"
)

// StaticCatalog serves the compiled-in reference tables with id lookups.
type StaticCatalog struct {
	diseases  []domain.Disease
	medicines []domain.Medicine
	clinics   []domain.Clinic
	questions []domain.Question

	diseaseIndex  map[string]int
	medicineIndex map[string]int
	clinicIndex   map[string]int
}

// New creates a catalog over the built-in reference data.
func New(logger *logrus.Logger) *StaticCatalog {
	c := newFrom(diseases, medicines, clinics, questions)

	logger.WithFields(logrus.Fields{
		"diseases":  len(c.diseases),
		"medicines": len(c.medicines),
		"clinics":   len(c.clinics),
		"questions": len(c.questions),
	}).Info("Reference catalogs loaded")

	return c
}

// newFrom builds a catalog over explicit datasets. Used by tests to inject
// small fixtures.
func newFrom(ds []domain.Disease, ms []domain.Medicine, cs []domain.Clinic, qs []domain.Question) *StaticCatalog {
	c := &StaticCatalog{
		diseases:      ds,
		medicines:     ms,
		clinics:       cs,
		questions:     qs,
		diseaseIndex:  make(map[string]int, len(ds)),
		medicineIndex: make(map[string]int, len(ms)),
		clinicIndex:   make(map[string]int, len(cs)),
	}
	for i, d := range ds {
		c.diseaseIndex[d.ID] = i
	}
	for i, m := range ms {
		c.medicineIndex[m.ID] = i
	}
	for i, cl := range cs {
		c.clinicIndex[cl.ID] = i
	}
	return c
}

// Diseases returns the disease catalog in declaration order.
func (c *StaticCatalog) Diseases() []domain.Disease {
	return c.diseases
}

// Medicines returns the medicine catalog in declaration order.
func (c *StaticCatalog) Medicines() []domain.Medicine {
	return c.medicines
}

// Clinics returns the clinic catalog in declaration order.
func (c *StaticCatalog) Clinics() []domain.Clinic {
	return c.clinics
}

// Questions returns the intake questionnaire definition.
func (c *StaticCatalog) Questions() []domain.Question {
	return c.questions
}

// DiseaseByID looks up a disease by its catalog id.
func (c *StaticCatalog) DiseaseByID(id string) (domain.Disease, bool) {
	i, ok := c.diseaseIndex[id]
	if !ok {
		return domain.Disease{}, false
	}
	return c.diseases[i], true
}

// MedicineByID looks up a medicine by its catalog id.
func (c *StaticCatalog) MedicineByID(id string) (domain.Medicine, bool) {
	i, ok := c.medicineIndex[id]
	if !ok {
		return domain.Medicine{}, false
	}
	return c.medicines[i], true
}

// ClinicByID looks up a clinic by its catalog id.
func (c *StaticCatalog) ClinicByID(id string) (domain.Clinic, bool) {
	i, ok := c.clinicIndex[id]
	if !ok {
		return domain.Clinic{}, false
	}
	return c.clinics[i], true
}
