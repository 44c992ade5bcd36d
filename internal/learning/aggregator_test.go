package learning

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symptom-guidance-server/internal/domain"
	"github.com/symptom-guidance-server/internal/store"
)

func newTestAggregator(t *testing.T) *Aggregator {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return NewAggregator(store.NewMemoryStore(), logger)
}

func TestSubmitFeedback_RecomputesMetrics(t *testing.T) {
	agg := newTestAggregator(t)
	ctx := context.Background()

	events := []domain.FeedbackEvent{
		{RecordID: "rec-1", Helpful: true, Rating: 5},
		{RecordID: "rec-2", Helpful: false, Rating: 1, Comments: "completely wrong diagnosis"},
		{RecordID: "rec-3", Helpful: false, Rating: 2, Comments: "medicine suggestion was confusing"},
	}

	var metrics domain.LearningMetrics
	for _, event := range events {
		var err error
		metrics, err = agg.SubmitFeedback(ctx, event)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, metrics.TotalFeedback)
	assert.InDelta(t, 8.0/3.0, metrics.AverageRating, 0.001)
	assert.InDelta(t, 100.0/3.0, metrics.HelpfulPercentage, 0.001)

	// Each keyword hit once, first-seen order preserved.
	assert.Equal(t, []string{
		"Issues with wrong",
		"Issues with diagnosis",
		"Issues with medicine",
		"Issues with confusing",
	}, metrics.CommonIssues)

	// Average below 3 plus the extracted issues; truncated to five.
	assert.Equal(t, []string{
		"Improve overall diagnostic accuracy",
		"Enhance medicine recommendation algorithm",
		"Update disease database with latest medical research",
		"Implement more sophisticated symptom matching",
		"Expand medicine database with more options",
	}, metrics.ImprovementSuggestions)

	// The persisted snapshot matches what was returned.
	stored, err := agg.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, metrics, stored)

	log, err := agg.FeedbackLog(ctx)
	require.NoError(t, err)
	require.Len(t, log, 3)
	assert.Equal(t, "rec-1", log[0].RecordID)
	assert.False(t, log[0].Timestamp.IsZero(), "zero timestamps are filled in")
}

func TestSubmitFeedback_PositiveOnly(t *testing.T) {
	agg := newTestAggregator(t)
	ctx := context.Background()

	metrics, err := agg.SubmitFeedback(ctx, domain.FeedbackEvent{
		RecordID: "rec-1",
		Helpful:  true,
		Rating:   5,
		Comments: "great",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, metrics.TotalFeedback)
	assert.Equal(t, 5.0, metrics.AverageRating)
	assert.Equal(t, 100.0, metrics.HelpfulPercentage)
	assert.Empty(t, metrics.CommonIssues)
	assert.Equal(t, []string{
		"Continue monitoring system performance",
		"Regularly update medical knowledge base",
		"Enhance user experience based on feedback",
	}, metrics.ImprovementSuggestions)
}

func TestSubmitFeedback_NegativeWithoutCommentsIgnoredForIssues(t *testing.T) {
	agg := newTestAggregator(t)
	ctx := context.Background()

	metrics, err := agg.SubmitFeedback(ctx, domain.FeedbackEvent{
		RecordID: "rec-1",
		Helpful:  false,
		Rating:   1,
	})
	require.NoError(t, err)

	assert.Empty(t, metrics.CommonIssues)
}

func TestMetrics_EmptyLog(t *testing.T) {
	agg := newTestAggregator(t)

	metrics, err := agg.Metrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, metrics.TotalFeedback)
	assert.Zero(t, metrics.AverageRating)
	assert.Zero(t, metrics.HelpfulPercentage)
	assert.Empty(t, metrics.CommonIssues)
	assert.Empty(t, metrics.ImprovementSuggestions)
}

func TestMetrics_ComputedFromLogWhenSnapshotAbsent(t *testing.T) {
	agg := newTestAggregator(t)
	ctx := context.Background()

	// Seed the log directly, bypassing SubmitFeedback so no snapshot exists.
	log := []domain.FeedbackEvent{
		{RecordID: "rec-1", Helpful: true, Rating: 4, Timestamp: time.Now()},
		{RecordID: "rec-2", Helpful: true, Rating: 4, Timestamp: time.Now()},
	}
	require.NoError(t, agg.store.Set(ctx, feedbackLogKey, log))

	metrics, err := agg.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, metrics.TotalFeedback)
	assert.Equal(t, 4.0, metrics.AverageRating)
	assert.Equal(t, 100.0, metrics.HelpfulPercentage)
}

func TestExtractCommonIssues_RankedByFrequency(t *testing.T) {
	comments := []string{
		"the medicine was wrong",
		"wrong medicine again",
		"diagnosis seemed wrong",
	}

	issues := extractCommonIssues(comments)
	require.NotEmpty(t, issues)
	assert.Equal(t, "Issues with wrong", issues[0], "three hits should outrank the rest")
	assert.Contains(t, issues, "Issues with medicine")
	assert.Contains(t, issues, "Issues with diagnosis")
	assert.LessOrEqual(t, len(issues), 5)
}

func TestImprovementSuggestions_Truncated(t *testing.T) {
	issues := []string{
		"Issues with inaccurate",
		"Issues with medicine",
		"Issues with confusing",
		"Issues with slow",
	}

	suggestions := improvementSuggestions(issues, 2.0)
	assert.Len(t, suggestions, 5)
	assert.Equal(t, "Improve overall diagnostic accuracy", suggestions[0])
}
