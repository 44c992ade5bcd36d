package catalog

import (
	"github.com/symptom-guidance-server/internal/domain"
)

var questions = []domain.Question{
	{
		ID:       "q1",
		Text:     "What is your primary symptom?",
		Type:     "single",
		Options:  []string{"Fever", "Headache", "Cough", "Stomach pain", "Runny nose", "Body aches", "Nausea"},
		Required: true,
		Category: "primary",
	},
	{
		ID:       "q2",
		Text:     "How long have you been experiencing these symptoms?",
		Type:     "single",
		Options:  []string{domain.DurationUnderOneDay, domain.DurationOneToThree, domain.DurationFourToSeven, domain.DurationOverOneWeek},
		Required: true,
		Category: "duration",
	},
	{
		ID:       "q3",
		Text:     "Rate the severity of your symptoms (1-10)",
		Type:     "scale",
		Required: true,
		Category: "severity",
	},
	{
		ID:       "q4",
		Text:     "Do you have any of these additional symptoms?",
		Type:     "multiple",
		Options:  []string{"Chills", "Sweating", "Difficulty breathing", "Sore throat", "Fatigue", "Loss of appetite", "Dizziness"},
		Required: false,
		Category: "additional",
	},
	{
		ID:       "q5",
		Text:     "Have you taken any medication for these symptoms?",
		Type:     "boolean",
		Required: false,
		Category: "medication",
	},
	{
		ID:       "q6",
		Text:     "Do you have any chronic medical conditions?",
		Type:     "multiple",
		Options:  []string{"Diabetes", "High blood pressure", "Heart disease", "Asthma", "Kidney disease", "None"},
		Required: false,
		Category: "medical_history",
	},
	{
		ID:       "q7",
		Text:     "Are you currently taking any regular medications?",
		Type:     "boolean",
		Required: false,
		Category: "current_medication",
	},
}
