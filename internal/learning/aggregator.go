// Package learning aggregates user feedback on past diagnoses into metrics,
// improvement suggestions, and usage insights. It stores raw events and
// derived metrics in a key-value store and recomputes metrics in full on
// every submission.
package learning

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/symptom-guidance-server/internal/domain"
)

const (
	feedbackLogKey = "learning:feedback_log"
	metricsKey     = "learning:metrics"

	maxCommonIssues = 5
	maxSuggestions  = 5
)

// issueKeywords is the fixed vocabulary scanned for in negative feedback
// comments. Each hit becomes an "Issues with <keyword>" entry.
var issueKeywords = []string{
	"inaccurate", "wrong", "incorrect", "medicine", "diagnosis",
	"symptoms", "not helpful", "confusing", "unclear", "slow",
}

// Aggregator owns the feedback log and derived learning metrics.
// All state lives in the injected store; the aggregator itself only
// serializes concurrent submissions.
type Aggregator struct {
	logger *logrus.Logger
	store  domain.Store

	mu  sync.Mutex
	now func() time.Time
}

// NewAggregator creates a feedback aggregator backed by the given store.
func NewAggregator(store domain.Store, logger *logrus.Logger) *Aggregator {
	return &Aggregator{
		logger: logger,
		store:  store,
		now:    time.Now,
	}
}

// SubmitFeedback appends one feedback event to the log, recomputes the
// learning metrics from the full log, persists both, and returns the fresh
// metrics. A zero timestamp is filled with the current time.
func (a *Aggregator) SubmitFeedback(ctx context.Context, event domain.FeedbackEvent) (domain.LearningMetrics, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = a.now()
	}

	log, err := a.loadLog(ctx)
	if err != nil {
		return domain.LearningMetrics{}, err
	}
	log = append(log, event)

	if err := a.store.Set(ctx, feedbackLogKey, log); err != nil {
		return domain.LearningMetrics{}, fmt.Errorf("failed to persist feedback log: %w", err)
	}

	metrics := calculateMetrics(log)
	if err := a.store.Set(ctx, metricsKey, metrics); err != nil {
		return domain.LearningMetrics{}, fmt.Errorf("failed to persist learning metrics: %w", err)
	}

	a.logger.WithFields(logrus.Fields{
		"record_id":      event.RecordID,
		"helpful":        event.Helpful,
		"rating":         event.Rating,
		"total_feedback": metrics.TotalFeedback,
	}).Info("Feedback submitted")

	return metrics, nil
}

// Metrics returns the stored learning metrics, computing them from the log
// when no snapshot has been persisted yet.
func (a *Aggregator) Metrics(ctx context.Context) (domain.LearningMetrics, error) {
	var metrics domain.LearningMetrics
	found, err := a.store.Get(ctx, metricsKey, &metrics)
	if err != nil {
		return domain.LearningMetrics{}, err
	}
	if found {
		return metrics, nil
	}

	log, err := a.loadLog(ctx)
	if err != nil {
		return domain.LearningMetrics{}, err
	}
	return calculateMetrics(log), nil
}

// FeedbackLog returns every stored feedback event in submission order.
func (a *Aggregator) FeedbackLog(ctx context.Context) ([]domain.FeedbackEvent, error) {
	return a.loadLog(ctx)
}

// loadLog reads the feedback log from the store. A missing key yields an
// empty log.
func (a *Aggregator) loadLog(ctx context.Context) ([]domain.FeedbackEvent, error) {
	var log []domain.FeedbackEvent
	found, err := a.store.Get(ctx, feedbackLogKey, &log)
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback log: %w", err)
	}
	if !found {
		return []domain.FeedbackEvent{}, nil
	}
	return log, nil
}

// calculateMetrics derives the full metrics block from the feedback log.
func calculateMetrics(log []domain.FeedbackEvent) domain.LearningMetrics {
	if len(log) == 0 {
		return domain.LearningMetrics{
			CommonIssues:           []string{},
			ImprovementSuggestions: []string{},
		}
	}

	total := len(log)
	ratingSum := 0
	helpfulCount := 0
	for _, event := range log {
		ratingSum += event.Rating
		if event.Helpful {
			helpfulCount++
		}
	}
	averageRating := float64(ratingSum) / float64(total)

	// Negative feedback drives issue extraction: unhelpful or poorly rated
	// events with a non-empty comment.
	negativeComments := make([]string, 0, total)
	for _, event := range log {
		if (!event.Helpful || event.Rating < 3) && event.Comments != "" {
			negativeComments = append(negativeComments, event.Comments)
		}
	}

	commonIssues := extractCommonIssues(negativeComments)

	return domain.LearningMetrics{
		TotalFeedback:          total,
		AverageRating:          averageRating,
		HelpfulPercentage:      float64(helpfulCount) / float64(total) * 100,
		CommonIssues:           commonIssues,
		ImprovementSuggestions: improvementSuggestions(commonIssues, averageRating),
	}
}

// extractCommonIssues scans comments for the issue keyword vocabulary and
// returns the top issues ranked by occurrence count. Ties keep first-seen
// order.
func extractCommonIssues(comments []string) []string {
	counts := make(map[string]int)
	order := make([]string, 0, len(issueKeywords))

	for _, comment := range comments {
		lower := strings.ToLower(comment)
		for _, keyword := range issueKeywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			issue := "Issues with " + keyword
			if counts[issue] == 0 {
				order = append(order, issue)
			}
			counts[issue]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxCommonIssues {
		order = order[:maxCommonIssues]
	}
	return order
}

// improvementSuggestions maps the extracted issues and overall rating to
// actionable suggestions. Rules are additive; with no specific findings a
// generic fallback set applies.
func improvementSuggestions(commonIssues []string, averageRating float64) []string {
	suggestions := make([]string, 0, maxSuggestions)

	if averageRating < 3 {
		suggestions = append(suggestions,
			"Improve overall diagnostic accuracy",
			"Enhance medicine recommendation algorithm")
	}

	if anyIssueContains(commonIssues, "inaccurate") || anyIssueContains(commonIssues, "wrong") {
		suggestions = append(suggestions,
			"Update disease database with latest medical research",
			"Implement more sophisticated symptom matching")
	}

	if anyIssueContains(commonIssues, "medicine") {
		suggestions = append(suggestions,
			"Expand medicine database with more options",
			"Improve drug interaction checking")
	}

	if anyIssueContains(commonIssues, "confusing") {
		suggestions = append(suggestions,
			"Simplify user interface and explanations",
			"Provide more detailed guidance")
	}

	if anyIssueContains(commonIssues, "slow") {
		suggestions = append(suggestions,
			"Optimize diagnostic processing speed",
			"Improve system performance")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Continue monitoring system performance",
			"Regularly update medical knowledge base",
			"Enhance user experience based on feedback")
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func anyIssueContains(issues []string, keyword string) bool {
	for _, issue := range issues {
		if strings.Contains(issue, keyword) {
			return true
		}
	}
	return false
}
