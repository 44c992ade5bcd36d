package learning

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symptom-guidance-server/internal/domain"
)

func record(id, diagnosis string, date time.Time, symptoms ...string) domain.MedicalRecord {
	return domain.MedicalRecord{
		ID:        id,
		PatientID: "patient-1",
		Symptoms:  symptoms,
		Diagnosis: diagnosis,
		Date:      date,
	}
}

func TestAnalyzePatternTrends(t *testing.T) {
	agg := newTestAggregator(t)

	march := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	july := time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC)
	december := time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)

	records := []domain.MedicalRecord{
		record("r1", "Common Cold", march, "Cough", "Runny nose"),
		record("r2", "Common Cold", december, "Cough", "Fever"),
		record("r3", "Flu", july, "Fever", "Cough"),
	}

	report := agg.AnalyzePatternTrends(records)

	require.NotEmpty(t, report.SymptomTrends)
	assert.Equal(t, domain.SymptomTrend{Symptom: "Cough", Frequency: 3, Trend: "stable"}, report.SymptomTrends[0])

	require.Len(t, report.DiseaseTrends, 2)
	assert.Equal(t, domain.DiseaseTrend{Disease: "Common Cold", Frequency: 2, Trend: "stable"}, report.DiseaseTrends[0])
	assert.Equal(t, domain.DiseaseTrend{Disease: "Flu", Frequency: 1, Trend: "stable"}, report.DiseaseTrends[1])

	assert.Equal(t, map[string]int{
		"Spring": 1,
		"Summer": 1,
		"Winter": 1,
	}, report.SeasonalPatterns)
}

func TestAnalyzePatternTrends_Empty(t *testing.T) {
	agg := newTestAggregator(t)

	report := agg.AnalyzePatternTrends(nil)
	assert.Empty(t, report.SymptomTrends)
	assert.Empty(t, report.DiseaseTrends)
	assert.Empty(t, report.SeasonalPatterns)
}

func TestSeason(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "Winter"},
		{time.February, "Winter"},
		{time.March, "Spring"},
		{time.May, "Spring"},
		{time.June, "Summer"},
		{time.August, "Summer"},
		{time.September, "Autumn"},
		{time.November, "Autumn"},
		{time.December, "Winter"},
	}

	for _, tt := range tests {
		date := time.Date(2026, tt.month, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.want, season(date), "month %s", tt.month)
	}
}

func TestGenerateInsights_Empty(t *testing.T) {
	agg := newTestAggregator(t)

	insights, err := agg.GenerateInsights(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, insights)
}

func TestGenerateInsights(t *testing.T) {
	agg := newTestAggregator(t)
	ctx := context.Background()

	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	agg.now = func() time.Time { return now }

	_, err := agg.SubmitFeedback(ctx, domain.FeedbackEvent{
		RecordID: "r1", Helpful: true, Rating: 5, Timestamp: now.Add(-time.Hour),
	})
	require.NoError(t, err)

	records := []domain.MedicalRecord{
		record("r1", "Common Cold", now.Add(-24*time.Hour), "Cough", "Runny nose"),
		record("r2", "Flu", now.Add(-48*time.Hour), "Fever", "Cough"),
		record("r3", "Headache", now.Add(-60*24*time.Hour), "Headache"),
	}

	insights, err := agg.GenerateInsights(ctx, records)
	require.NoError(t, err)

	assert.Contains(t, insights, "🎉 Excellent user satisfaction! System is performing well.")
	assert.Contains(t, insights, "📈 High recent activity - system usage is increasing.")
	assert.Contains(t, insights, "🔍 Most common symptoms: Cough, Runny nose, Fever")
	assert.LessOrEqual(t, len(insights), 5)
}

func TestGenerateInsights_RecentNegativeFeedback(t *testing.T) {
	agg := newTestAggregator(t)
	ctx := context.Background()

	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	agg.now = func() time.Time { return now }

	_, err := agg.SubmitFeedback(ctx, domain.FeedbackEvent{
		RecordID: "r1", Helpful: false, Rating: 2, Timestamp: now.Add(-2 * time.Hour),
	})
	require.NoError(t, err)

	insights, err := agg.GenerateInsights(ctx, nil)
	require.NoError(t, err)
	assert.Contains(t, insights, "❗ Recent negative feedback requires attention.")
	assert.Contains(t, insights, "⚠️ Low user satisfaction detected. Review diagnostic accuracy.")
}
