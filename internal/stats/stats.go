// Package stats computes presentation-ready numbers from check-in rows.
// Everything here is a pure function over its inputs; views recompute on
// every read rather than caching, which is fine at single-user volumes.
package stats

import (
	"time"

	"github.com/julianstephens/yakusoku/internal/constants"
	"github.com/julianstephens/yakusoku/internal/daykey"
	"github.com/julianstephens/yakusoku/internal/models"
)

// Score maps a rating onto the 0-100 weekly score scale.
func Score(r models.Rating) int {
	switch r {
	case models.RatingGood:
		return constants.ScoreGood
	case models.RatingMeh:
		return constants.ScoreMeh
	default:
		return constants.ScorePoor
	}
}

// DayRating returns the rating recorded for dayKey, if any. The ledger
// guarantees at most one match.
func DayRating(checkins []models.Checkin, dayKey string) (models.Rating, bool) {
	for _, c := range checkins {
		if c.DayKey == dayKey {
			return c.Rating, true
		}
	}
	return 0, false
}

// WindowDots builds the last-n-days strip ending at reference. Index 0 is
// the oldest day, index n-1 is the reference day itself. Days without a
// check-in are nil, which is distinct from an explicit poor rating.
func WindowDots(checkins []models.Checkin, n int, reference time.Time) []*models.Rating {
	dots := make([]*models.Rating, n)
	for i := 0; i < n; i++ {
		key := daykey.Key(daykey.DaysAgo(reference, n-1-i))
		if r, ok := DayRating(checkins, key); ok {
			rr := r
			dots[i] = &rr
		}
	}
	return dots
}

// WeeklyScore averages the score of the check-ins actually recorded in
// the window. It is a quality measure over logged days, not a completion
// rate; an empty window scores 0.
func WeeklyScore(checkins []models.Checkin) int {
	if len(checkins) == 0 {
		return 0
	}
	total := 0
	for _, c := range checkins {
		total += Score(c.Rating)
	}
	return total / len(checkins)
}

// SuccessRate is the fraction of recorded check-ins rated good.
func SuccessRate(checkins []models.Checkin) float64 {
	if len(checkins) == 0 {
		return 0
	}
	good := 0
	for _, c := range checkins {
		if c.Rating == models.RatingGood {
			good++
		}
	}
	return float64(good) / float64(len(checkins))
}

// CompletionRate is the fraction of possible (commitment x day) slots
// that have any check-in at all. Semantically distinct from WeeklyScore.
func CompletionRate(commitmentCount int, checkins []models.Checkin, days int) float64 {
	possible := commitmentCount * days
	if possible == 0 {
		return 0
	}
	return float64(len(checkins)) / float64(possible)
}

// WeeklySummary is the aggregate read surface for the report view and
// snapshot hosts.
type WeeklySummary struct {
	Score          int     `json:"score"`
	GoodCount      int     `json:"good_count"`
	MehCount       int     `json:"meh_count"`
	PoorCount      int     `json:"poor_count"`
	TotalCheckins  int     `json:"total_checkins"`
	SuccessRate    float64 `json:"success_rate"`
	CompletionRate float64 `json:"completion_rate"`
}

// Summarize computes the weekly summary over a window of days.
func Summarize(commitmentCount int, checkins []models.Checkin, days int) WeeklySummary {
	s := WeeklySummary{
		TotalCheckins:  len(checkins),
		Score:          WeeklyScore(checkins),
		SuccessRate:    SuccessRate(checkins),
		CompletionRate: CompletionRate(commitmentCount, checkins, days),
	}
	for _, c := range checkins {
		switch c.Rating {
		case models.RatingGood:
			s.GoodCount++
		case models.RatingMeh:
			s.MehCount++
		case models.RatingPoor:
			s.PoorCount++
		}
	}
	return s
}

// InsightBucket classifies a weekly summary into one of the canned
// insight messages.
type InsightBucket int

const (
	InsightEmpty InsightBucket = iota
	InsightGreat
	InsightGood
	InsightPoor
)

func Insight(s WeeklySummary) InsightBucket {
	switch {
	case s.TotalCheckins == 0:
		return InsightEmpty
	case s.Score >= constants.InsightGreatScore:
		return InsightGreat
	case s.Score >= constants.InsightGoodScore:
		return InsightGood
	default:
		return InsightPoor
	}
}

// InsightMessage renders the bucket as the report's reflection line.
func InsightMessage(b InsightBucket) string {
	switch b {
	case InsightEmpty:
		return "No check-ins this week. A small start makes a big change."
	case InsightGreat:
		return "Excellent! You kept your promises this week. Keep the momentum going."
	case InsightGood:
		return "Good progress. A little more effort gets you a better week."
	default:
		return "Rough week. Maybe revisit your if-then strategies?"
	}
}
