package service

import (
	"github.com/symptom-guidance-server/internal/domain"
)

const disclaimerLine = "⚠️ This is not a substitute for professional medical advice"

// Urgency-tiered opening guidance, exactly two lines per tier.
var urgencyAdvice = map[domain.Urgency][]string{
	domain.UrgencyUrgent: {
		"🚨 Seek immediate medical attention",
		"📞 Consider calling emergency services if symptoms worsen",
	},
	domain.UrgencyModerate: {
		"🏥 Schedule an appointment with your doctor within 24-48 hours",
		"📊 Monitor your symptoms closely",
	},
	domain.UrgencyNotUrgent: {
		"🏠 Rest and take care of yourself at home",
		"💧 Stay hydrated and get plenty of rest",
	},
}

// buildRecommendations produces the guidance text in fixed order: the urgency
// lines, then every prevention tip of the top-ranked disease, then the
// disclaimer.
func buildRecommendations(urgency domain.Urgency, matches []domain.DiseaseMatch) []string {
	recommendations := make([]string, 0, 8)
	recommendations = append(recommendations, urgencyAdvice[urgency]...)

	if len(matches) > 0 {
		for _, tip := range matches[0].Disease.Prevention {
			recommendations = append(recommendations, "🛡️ "+tip)
		}
	}

	return append(recommendations, disclaimerLine)
}
