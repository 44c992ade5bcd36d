package catalog

import (
	"github.com/symptom-guidance-server/internal/domain"
)

var medicines = []domain.Medicine{
	{
		ID:                "paracetamol",
		Name:              "Paracetamol",
		GenericName:       "Acetaminophen",
		Category:          "Pain Relief",
		Dosage:            "500mg every 6 hours (max 4g/day)",
		SideEffects:       []string{"Nausea", "Rash (rare)", "Liver damage (overdose)"},
		Contraindications: []string{"Severe liver disease", "Alcohol dependence"},
		Price:             15,
		Availability:      domain.AvailabilityAvailable,
		OverTheCounter:    true,
		Description:       "Effective pain reliever and fever reducer. Safe for most people when used as directed.",
	},
	{
		ID:                "ibuprofen",
		Name:              "Ibuprofen",
		GenericName:       "Ibuprofen",
		Category:          "Pain Relief",
		Dosage:            "200-400mg every 6-8 hours (max 1.2g/day)",
		SideEffects:       []string{"Stomach upset", "Heartburn", "Dizziness"},
		Contraindications: []string{"Stomach ulcers", "Heart disease", "Kidney problems"},
		Price:             25,
		Availability:      domain.AvailabilityAvailable,
		OverTheCounter:    true,
		Description:       "Anti-inflammatory drug that reduces pain, fever, and inflammation.",
	},
	{
		ID:                "cetirizine",
		Name:              "Cetirizine",
		GenericName:       "Cetirizine Hydrochloride",
		Category:          "Antihistamine",
		Dosage:            "10mg once daily",
		SideEffects:       []string{"Drowsiness", "Dry mouth", "Fatigue"},
		Contraindications: []string{"Severe kidney disease"},
		Price:             30,
		Availability:      domain.AvailabilityAvailable,
		OverTheCounter:    true,
		Description:       "Long-acting antihistamine for allergies and hay fever.",
	},
	{
		ID:                "omeprazole",
		Name:              "Omeprazole",
		GenericName:       "Omeprazole",
		Category:          "Antacid",
		Dosage:            "20mg once daily before breakfast",
		SideEffects:       []string{"Headache", "Nausea", "Abdominal pain"},
		Contraindications: []string{"Hypersensitivity to proton pump inhibitors"},
		Price:             45,
		Availability:      domain.AvailabilityAvailable,
		OverTheCounter:    true,
		Description:       "Proton pump inhibitor that reduces stomach acid production.",
	},
	{
		ID:                "dextromethorphan",
		Name:              "Dextromethorphan",
		GenericName:       "Dextromethorphan HBr",
		Category:          "Cough Suppressant",
		Dosage:            "15mg every 4 hours (max 120mg/day)",
		SideEffects:       []string{"Drowsiness", "Dizziness", "Nausea"},
		Contraindications: []string{"MAO inhibitors", "Severe liver disease"},
		Price:             20,
		Availability:      domain.AvailabilityAvailable,
		OverTheCounter:    true,
		Description:       "Effective cough suppressant for dry, non-productive coughs.",
	},
}
