package catalog

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symptom-guidance-server/internal/domain"
)

func TestNew_LoadsAllTables(t *testing.T) {
	c := New(logrus.New())

	assert.NotEmpty(t, c.Diseases())
	assert.NotEmpty(t, c.Medicines())
	assert.NotEmpty(t, c.Clinics())
	assert.NotEmpty(t, c.Questions())
}

func TestDiseaseByID(t *testing.T) {
	c := New(logrus.New())

	d, ok := c.DiseaseByID("common-cold")
	require.True(t, ok)
	assert.Equal(t, "Common Cold", d.Name)
	assert.Equal(t, domain.SeverityLow, d.Severity)

	_, ok = c.DiseaseByID("no-such-disease")
	assert.False(t, ok)
}

func TestMedicineByID(t *testing.T) {
	c := New(logrus.New())

	m, ok := c.MedicineByID("cetirizine")
	require.True(t, ok)
	assert.Equal(t, "Antihistamine", m.Category)
	assert.True(t, m.OverTheCounter)

	_, ok = c.MedicineByID("aspirin")
	assert.False(t, ok)
}

func TestClinicByID(t *testing.T) {
	c := New(logrus.New())

	cl, ok := c.ClinicByID("metro-medical")
	require.True(t, ok)
	assert.Equal(t, "Bangalore", cl.City)
	assert.True(t, cl.IsGovernmentApproved)
}

func TestCatalogOrder_IsStable(t *testing.T) {
	c := New(logrus.New())

	// Clinic order matters: the engine returns the first three verbatim.
	ids := make([]string, 0, len(c.Clinics()))
	for _, cl := range c.Clinics() {
		ids = append(ids, cl.ID)
	}
	assert.Equal(t, []string{"city-general", "care-clinic", "metro-medical"}, ids)
}

func TestCommonSymptoms_AreSubsetOfSymptoms(t *testing.T) {
	c := New(logrus.New())

	for _, d := range c.Diseases() {
		all := make(map[string]bool, len(d.Symptoms))
		for _, s := range d.Symptoms {
			all[s] = true
		}
		for _, s := range d.CommonSymptoms {
			assert.True(t, all[s], "disease %s: common symptom %q not in symptom list", d.ID, s)
		}
	}
}
