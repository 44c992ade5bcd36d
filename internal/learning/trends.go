package learning

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/symptom-guidance-server/internal/domain"
)

const (
	maxTrendEntries = 10
	maxInsights     = 5

	recentActivityWindow = 7 * 24 * time.Hour
	recentActivityShare  = 0.3
	negativeWindow       = 24 * time.Hour
)

// AnalyzePatternTrends derives symptom, disease, and seasonal frequency
// patterns from the medical record history. Trend direction is reported as
// "stable" throughout; detecting movement would need a baseline period the
// record history does not carry.
func (a *Aggregator) AnalyzePatternTrends(records []domain.MedicalRecord) domain.TrendReport {
	symptomCounts := make(map[string]int)
	symptomOrder := make([]string, 0)
	diseaseCounts := make(map[string]int)
	diseaseOrder := make([]string, 0)
	seasonal := make(map[string]int)

	for _, record := range records {
		for _, symptom := range record.Symptoms {
			if symptomCounts[symptom] == 0 {
				symptomOrder = append(symptomOrder, symptom)
			}
			symptomCounts[symptom]++
		}
		if diseaseCounts[record.Diagnosis] == 0 {
			diseaseOrder = append(diseaseOrder, record.Diagnosis)
		}
		diseaseCounts[record.Diagnosis]++
		seasonal[season(record.Date)]++
	}

	sortByCount(symptomOrder, symptomCounts)
	sortByCount(diseaseOrder, diseaseCounts)

	report := domain.TrendReport{
		SymptomTrends:    make([]domain.SymptomTrend, 0, maxTrendEntries),
		DiseaseTrends:    make([]domain.DiseaseTrend, 0, maxTrendEntries),
		SeasonalPatterns: seasonal,
	}
	for _, symptom := range capStrings(symptomOrder, maxTrendEntries) {
		report.SymptomTrends = append(report.SymptomTrends, domain.SymptomTrend{
			Symptom:   symptom,
			Frequency: symptomCounts[symptom],
			Trend:     "stable",
		})
	}
	for _, disease := range capStrings(diseaseOrder, maxTrendEntries) {
		report.DiseaseTrends = append(report.DiseaseTrends, domain.DiseaseTrend{
			Disease:   disease,
			Frequency: diseaseCounts[disease],
			Trend:     "stable",
		})
	}
	return report
}

// GenerateInsights produces up to five human-readable observations from the
// record history, the feedback log, and the current metrics.
func (a *Aggregator) GenerateInsights(ctx context.Context, records []domain.MedicalRecord) ([]string, error) {
	metrics, err := a.Metrics(ctx)
	if err != nil {
		return nil, err
	}
	log, err := a.loadLog(ctx)
	if err != nil {
		return nil, err
	}

	now := a.now()
	insights := make([]string, 0, maxInsights)

	if metrics.AverageRating > 4 {
		insights = append(insights, "🎉 Excellent user satisfaction! System is performing well.")
	} else if metrics.AverageRating > 0 && metrics.AverageRating < 3 {
		insights = append(insights, "⚠️ Low user satisfaction detected. Review diagnostic accuracy.")
	}

	if len(records) > 0 {
		recentCount := 0
		for _, record := range records {
			if now.Sub(record.Date) < recentActivityWindow {
				recentCount++
			}
		}
		if float64(recentCount) > float64(len(records))*recentActivityShare {
			insights = append(insights, "📈 High recent activity - system usage is increasing.")
		}

		if common := mostCommonSymptoms(records, 3); len(common) > 0 {
			insights = append(insights, "🔍 Most common symptoms: "+strings.Join(common, ", "))
		}
	}

	if len(log) > 0 {
		for _, event := range log {
			if !event.Helpful && now.Sub(event.Timestamp) < negativeWindow {
				insights = append(insights, "❗ Recent negative feedback requires attention.")
				break
			}
		}
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights, nil
}

// season buckets a date into a northern-hemisphere meteorological season.
func season(date time.Time) string {
	switch date.Month() {
	case time.March, time.April, time.May:
		return "Spring"
	case time.June, time.July, time.August:
		return "Summer"
	case time.September, time.October, time.November:
		return "Autumn"
	}
	return "Winter"
}

// mostCommonSymptoms returns the n most frequent symptoms across the records,
// ties in first-seen order.
func mostCommonSymptoms(records []domain.MedicalRecord, n int) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, record := range records {
		for _, symptom := range record.Symptoms {
			if counts[symptom] == 0 {
				order = append(order, symptom)
			}
			counts[symptom]++
		}
	}
	sortByCount(order, counts)
	return capStrings(order, n)
}

// sortByCount orders keys by descending count, keeping insertion order for
// ties.
func sortByCount(keys []string, counts map[string]int) {
	sort.SliceStable(keys, func(i, j int) bool {
		return counts[keys[i]] > counts[keys[j]]
	})
}

func capStrings(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
