package dto

import (
	"github.com/google/uuid"

	"github.com/iammeliaskhan/habit-tracker/internal/models"
)

// DailyPoint is one day's completion tally for a single profile.
type DailyPoint struct {
	Date    string `json:"date"`
	Done    int    `json:"done"`
	Total   int    `json:"total"`
	Percent int    `json:"percent"`
}

// ProfileSeries identifies one line on the multi-profile stats chart.
type ProfileSeries struct {
	ProfileID uuid.UUID `json:"profile_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
}

// StatsPoint holds one date's percent per profile, keyed by profile id,
// so chart lines share a single date axis.
type StatsPoint struct {
	Date     string         `json:"date"`
	Percents map[string]int `json:"percents"`
}

type StatsResponse struct {
	Start  string          `json:"start"`
	End    string          `json:"end"`
	Series []ProfileSeries `json:"series"`
	Data   []StatsPoint    `json:"data"`
}

// Summary holds the dashboard's unweighted window averages. Recomputed per
// view, never persisted.
type Summary struct {
	Today         DailyPoint `json:"today"`
	WeekPercent   int        `json:"week_percent"`
	Last30Percent int        `json:"last30_percent"`
}

// OverviewResponse is the tracker bootstrap payload: everything the
// today/week/history views need in one round trip.
type OverviewResponse struct {
	Today           string                 `json:"today"`
	WeekStart       string                 `json:"week_start"`
	ActiveProfileID uuid.UUID              `json:"active_profile_id"`
	Profiles        []models.Profile       `json:"profiles"`
	Habits          []models.Habit         `json:"habits"`
	CompletedByDate map[string][]uuid.UUID `json:"completed_by_date"`
	Summary         Summary                `json:"summary"`
}
