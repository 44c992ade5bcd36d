package catalog

import (
	"github.com/symptom-guidance-server/internal/domain"
)

var diseases = []domain.Disease{
	{
		ID:             "common-cold",
		Name:           "Common Cold",
		Description:    "A viral infection of the upper respiratory tract",
		Symptoms:       []string{"runny nose", "sneezing", "cough", "sore throat", "mild fever", "fatigue"},
		CommonSymptoms: []string{"runny nose", "sneezing", "cough"},
		RareSymptoms:   []string{"high fever", "body aches"},
		Severity:       domain.SeverityLow,
		Category:       "Respiratory",
		Prevalence:     85,
		AgeGroups:      []string{"all"},
		Prevention: []string{
			"Wash hands frequently",
			"Avoid close contact with sick people",
			"Don't touch face",
		},
		WhenToSeeDoctor: []string{
			"Fever above 101.5°F",
			"Symptoms last more than 10 days",
			"Difficulty breathing",
		},
	},
	{
		ID:             "flu",
		Name:           "Influenza (Flu)",
		Description:    "A viral infection that attacks the respiratory system",
		Symptoms:       []string{"high fever", "body aches", "chills", "cough", "sore throat", "runny nose", "fatigue", "headache"},
		CommonSymptoms: []string{"high fever", "body aches", "chills", "fatigue"},
		RareSymptoms:   []string{"vomiting", "diarrhea"},
		Severity:       domain.SeverityMedium,
		Category:       "Respiratory",
		Prevalence:     20,
		AgeGroups:      []string{"all"},
		Prevention: []string{
			"Get annual flu vaccine",
			"Wash hands frequently",
			"Avoid crowded places during flu season",
		},
		WhenToSeeDoctor: []string{
			"Fever above 103°F",
			"Difficulty breathing",
			"Chest pain",
			"Severe headache",
		},
	},
	{
		ID:             "headache",
		Name:           "Tension Headache",
		Description:    "The most common type of headache caused by muscle tension",
		Symptoms:       []string{"head pain", "neck tension", "scalp tenderness", "fatigue"},
		CommonSymptoms: []string{"head pain", "neck tension"},
		RareSymptoms:   []string{"nausea", "sensitivity to light"},
		Severity:       domain.SeverityLow,
		Category:       "Neurological",
		Prevalence:     70,
		AgeGroups:      []string{"adults", "teenagers"},
		Prevention: []string{
			"Manage stress",
			"Get adequate sleep",
			"Stay hydrated",
			"Regular exercise",
		},
		WhenToSeeDoctor: []string{
			"Sudden severe headache",
			"Headache with fever",
			"Changes in vision",
		},
	},
	{
		ID:             "gastritis",
		Name:           "Gastritis",
		Description:    "Inflammation of the stomach lining",
		Symptoms:       []string{"stomach pain", "nausea", "bloating", "loss of appetite", "heartburn"},
		CommonSymptoms: []string{"stomach pain", "nausea", "bloating"},
		RareSymptoms:   []string{"vomiting blood", "black stools"},
		Severity:       domain.SeverityMedium,
		Category:       "Gastrointestinal",
		Prevalence:     30,
		AgeGroups:      []string{"adults"},
		Prevention: []string{
			"Avoid spicy foods",
			"Limit alcohol",
			"Don't smoke",
			"Manage stress",
		},
		WhenToSeeDoctor: []string{
			"Severe abdominal pain",
			"Vomiting blood",
			"Black or tarry stools",
		},
	},
	{
		ID:             "allergic-rhinitis",
		Name:           "Allergic Rhinitis",
		Description:    "Allergic reaction causing inflammation in the nose",
		Symptoms:       []string{"sneezing", "runny nose", "itchy eyes", "nasal congestion", "postnasal drip"},
		CommonSymptoms: []string{"sneezing", "runny nose", "itchy eyes"},
		RareSymptoms:   []string{"ear fullness", "fatigue"},
		Severity:       domain.SeverityLow,
		Category:       "Allergic",
		Prevalence:     40,
		AgeGroups:      []string{"all"},
		Prevention: []string{
			"Avoid allergens",
			"Keep windows closed during high pollen days",
			"Use air purifiers",
		},
		WhenToSeeDoctor: []string{
			"Symptoms interfere with daily life",
			"Frequent sinus infections",
			"Asthma symptoms",
		},
	},
}
