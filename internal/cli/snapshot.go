package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/yakusoku/internal/daykey"
	"github.com/julianstephens/yakusoku/internal/models"
	"github.com/julianstephens/yakusoku/internal/stats"
)

// SnapshotCmd dumps the read surface consumed by widget-style hosts: one
// JSON document with today's state and the weekly aggregates. Ratings
// use their raw ordinal values; absent days are null.
type SnapshotCmd struct{}

type snapshotCommitment struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	TodayRating *models.Rating   `json:"today_rating"`
	WeekDots    []*models.Rating `json:"week_dots"`
}

type snapshotDocument struct {
	GeneratedAt string               `json:"generated_at"`
	Day         string               `json:"day"`
	Commitments []snapshotCommitment `json:"commitments"`
	Week        stats.WeeklySummary  `json:"week"`
}

func (c *SnapshotCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := ctx.Now()
	day := daykey.Key(now)

	commitments, err := ctx.Store.ListCommitments(false)
	if err != nil {
		return err
	}
	ratings, err := ctx.Ledger.TodayRatings(now)
	if err != nil {
		return err
	}
	summary, err := ctx.Ledger.Summary(7, 0, now)
	if err != nil {
		return err
	}

	doc := snapshotDocument{
		GeneratedAt: now.Format("2006-01-02T15:04:05Z07:00"),
		Day:         day,
		Commitments: make([]snapshotCommitment, 0, len(commitments)),
		Week:        summary,
	}
	for _, cm := range commitments {
		dots, err := ctx.Ledger.WindowDots(cm.ID, 7, now)
		if err != nil {
			return err
		}
		sc := snapshotCommitment{ID: cm.ID, Title: cm.Title, WeekDots: dots}
		if r, ok := ratings[cm.ID]; ok {
			sc.TodayRating = &r
		}
		doc.Commitments = append(doc.Commitments, sc)
	}

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
