package stats

import (
	"testing"
	"time"

	"github.com/julianstephens/yakusoku/internal/daykey"
	"github.com/julianstephens/yakusoku/internal/models"
)

func checkinsWith(ratings ...models.Rating) []models.Checkin {
	var cs []models.Checkin
	for i, r := range ratings {
		cs = append(cs, models.Checkin{
			ID:           "c" + string(rune('a'+i)),
			CommitmentID: "commitment-1",
			DayKey:       daykey.Key(daykey.DaysAgo(time.Now(), i)),
			Rating:       r,
		})
	}
	return cs
}

func TestWeeklyScore(t *testing.T) {
	cases := []struct {
		name    string
		ratings []models.Rating
		want    int
	}{
		{"empty window", nil, 0},
		{"single good", []models.Rating{models.RatingGood}, 100},
		{"single poor", []models.Rating{models.RatingPoor}, 20},
		{"single meh", []models.Rating{models.RatingMeh}, 50},
		{"good and poor", []models.Rating{models.RatingGood, models.RatingPoor}, 60},
		{"mixed week", []models.Rating{models.RatingGood, models.RatingGood, models.RatingMeh, models.RatingPoor}, 67},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WeeklyScore(checkinsWith(tc.ratings...))
			if got != tc.want {
				t.Errorf("WeeklyScore = %d, want %d", got, tc.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("WeeklyScore = %d out of [0,100]", got)
			}
		})
	}
}

func TestSuccessRate(t *testing.T) {
	if got := SuccessRate(nil); got != 0 {
		t.Errorf("empty success rate = %f, want 0", got)
	}

	cs := checkinsWith(models.RatingGood, models.RatingGood, models.RatingPoor, models.RatingMeh)
	if got := SuccessRate(cs); got != 0.5 {
		t.Errorf("success rate = %f, want 0.5", got)
	}
}

func TestCompletionRate(t *testing.T) {
	if got := CompletionRate(0, nil, 7); got != 0 {
		t.Errorf("zero commitments completion = %f, want 0", got)
	}

	// 2 commitments x 7 days = 14 slots, 7 check-ins recorded.
	cs := checkinsWith(
		models.RatingGood, models.RatingGood, models.RatingGood, models.RatingGood,
		models.RatingMeh, models.RatingMeh, models.RatingPoor,
	)
	if got := CompletionRate(2, cs, 7); got != 0.5 {
		t.Errorf("completion rate = %f, want 0.5", got)
	}
}

func TestWindowDots(t *testing.T) {
	reference := time.Date(2024, 3, 15, 12, 0, 0, 0, daykey.Zone())

	good := models.RatingGood
	poor := models.RatingPoor
	checkins := []models.Checkin{
		{CommitmentID: "c1", DayKey: "2024-03-15", Rating: good},
		{CommitmentID: "c1", DayKey: "2024-03-13", Rating: poor},
		// Outside the 7-day window entirely.
		{CommitmentID: "c1", DayKey: "2024-03-01", Rating: good},
	}

	dots := WindowDots(checkins, 7, reference)
	if len(dots) != 7 {
		t.Fatalf("expected 7 dots, got %d", len(dots))
	}

	// Index 6 is the reference day.
	if dots[6] == nil || *dots[6] != good {
		t.Errorf("expected good at index 6, got %v", dots[6])
	}
	// 2024-03-13 is two days before reference: index 4.
	if dots[4] == nil || *dots[4] != poor {
		t.Errorf("expected poor at index 4, got %v", dots[4])
	}
	// Days without a check-in stay nil, never a default rating.
	for _, i := range []int{0, 1, 2, 3, 5} {
		if dots[i] != nil {
			t.Errorf("expected nil at index %d, got %v", i, *dots[i])
		}
	}
}

func TestWindowDotsLengths(t *testing.T) {
	reference := time.Date(2024, 3, 15, 12, 0, 0, 0, daykey.Zone())
	for _, n := range []int{7, 14} {
		dots := WindowDots(nil, n, reference)
		if len(dots) != n {
			t.Errorf("expected %d dots, got %d", n, len(dots))
		}
	}
}

func TestDayRating(t *testing.T) {
	cs := []models.Checkin{{CommitmentID: "c1", DayKey: "2024-03-15", Rating: models.RatingMeh}}

	r, ok := DayRating(cs, "2024-03-15")
	if !ok || r != models.RatingMeh {
		t.Errorf("expected meh, got %v (found=%v)", r, ok)
	}
	if _, ok := DayRating(cs, "2024-03-14"); ok {
		t.Error("expected no rating for day without a check-in")
	}
}

func TestSummarize(t *testing.T) {
	cs := checkinsWith(models.RatingGood, models.RatingMeh, models.RatingPoor)
	s := Summarize(2, cs, 7)

	if s.GoodCount != 1 || s.MehCount != 1 || s.PoorCount != 1 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if s.TotalCheckins != 3 {
		t.Errorf("expected 3 total, got %d", s.TotalCheckins)
	}
	// (100+50+20)/3 = 56
	if s.Score != 56 {
		t.Errorf("expected score 56, got %d", s.Score)
	}
}

func TestInsightBuckets(t *testing.T) {
	cases := []struct {
		name  string
		total int
		score int
		want  InsightBucket
	}{
		{"no data", 0, 0, InsightEmpty},
		{"great at threshold", 5, 80, InsightGreat},
		{"good at threshold", 5, 60, InsightGood},
		{"just below good", 5, 59, InsightPoor},
		{"perfect", 7, 100, InsightGreat},
		{"all poor", 7, 20, InsightPoor},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Insight(WeeklySummary{TotalCheckins: tc.total, Score: tc.score})
			if got != tc.want {
				t.Errorf("Insight = %v, want %v", got, tc.want)
			}
		})
	}
}
