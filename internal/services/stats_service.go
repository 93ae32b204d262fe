package services

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/iammeliaskhan/habit-tracker/internal/dates"
	"github.com/iammeliaskhan/habit-tracker/internal/dto"
	"github.com/iammeliaskhan/habit-tracker/internal/models"
)

// Fallback palette for profiles without a color, so chart lines stay
// distinguishable.
var seriesColors = []string{
	"#0ea5e9", "#ef4444", "#22c55e", "#f97316",
	"#a855f7", "#ec4899", "#14b8a6", "#eab308",
	"#3b82f6", "#f43f5e", "#06b6d4", "#84cc16",
	"#8b5cf6", "#f59e0b", "#10b981", "#6366f1",
}

// Percent computes a completion percentage, rounding half up.
// A day with no habits counts as 0, not 100.
func Percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// HabitsForDate returns the profile's active habits plus the set of habit
// ids checked in on the given day.
func (s *StatsService) HabitsForDate(profileID uuid.UUID, date time.Time) ([]models.Habit, map[uuid.UUID]bool, error) {
	var habits []models.Habit
	err := s.db.Scopes(models.ActiveHabits).
		Where("profile_id = ?", profileID).
		Find(&habits).Error
	if err != nil {
		return nil, nil, err
	}

	completed := make(map[uuid.UUID]bool)
	if len(habits) == 0 {
		return habits, completed, nil
	}

	ids := make([]uuid.UUID, len(habits))
	for i, h := range habits {
		ids[i] = h.ID
	}

	var checkIns []models.CheckIn
	err = s.db.
		Where("habit_id IN ? AND date = ? AND completed = ?", ids, dates.Midnight(date), true).
		Find(&checkIns).Error
	if err != nil {
		return nil, nil, err
	}

	for _, c := range checkIns {
		completed[c.HabitID] = true
	}
	return habits, completed, nil
}

// CompletedByDate folds the profile's check-ins over [start, end] into a
// date-keyed map of completed habit ids.
func (s *StatsService) CompletedByDate(profileID uuid.UUID, start, end time.Time) (map[string][]uuid.UUID, error) {
	byDate := make(map[string][]uuid.UUID)

	var habits []models.Habit
	err := s.db.Scopes(models.ActiveHabits).
		Where("profile_id = ?", profileID).
		Find(&habits).Error
	if err != nil {
		return nil, err
	}
	if len(habits) == 0 {
		return byDate, nil
	}

	ids := make([]uuid.UUID, len(habits))
	for i, h := range habits {
		ids[i] = h.ID
	}

	var checkIns []models.CheckIn
	err = s.db.
		Where("habit_id IN ? AND completed = ? AND date >= ? AND date <= ?",
			ids, true, dates.Midnight(start), dates.Midnight(end)).
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}

	for _, c := range checkIns {
		key := dates.Format(c.Date)
		byDate[key] = append(byDate[key], c.HabitID)
	}
	return byDate, nil
}

// RangeSeries computes {done, total, percent} for each calendar day in
// [start, end], oldest to newest, for a single profile. Total is the
// profile's current active habit count; a day with no habits scores 0.
func (s *StatsService) RangeSeries(profileID uuid.UUID, start, end time.Time) ([]dto.DailyPoint, error) {
	var habits []models.Habit
	err := s.db.Scopes(models.ActiveHabits).
		Where("profile_id = ?", profileID).
		Find(&habits).Error
	if err != nil {
		return nil, err
	}
	total := len(habits)

	byDate, err := s.CompletedByDate(profileID, start, end)
	if err != nil {
		return nil, err
	}

	var points []dto.DailyPoint
	for day := dates.Midnight(start); !day.After(dates.Midnight(end)); day = dates.AddDays(day, 1) {
		key := dates.Format(day)
		done := len(byDate[key])
		points = append(points, dto.DailyPoint{
			Date:    key,
			Done:    done,
			Total:   total,
			Percent: Percent(done, total),
		})
	}
	return points, nil
}

// MultiProfileSeries emits one percent series per profile over [start, end],
// all sharing the same date axis. Check-ins are attributed to profiles via
// the owning habit.
func (s *StatsService) MultiProfileSeries(start, end time.Time) ([]dto.ProfileSeries, []dto.StatsPoint, error) {
	var profiles []models.Profile
	if err := s.db.Order("created_at ASC").Find(&profiles).Error; err != nil {
		return nil, nil, err
	}

	var habits []models.Habit
	if err := s.db.Scopes(models.ActiveHabits).Find(&habits).Error; err != nil {
		return nil, nil, err
	}

	totalByProfile := make(map[uuid.UUID]int, len(profiles))
	profileByHabit := make(map[uuid.UUID]uuid.UUID, len(habits))
	ids := make([]uuid.UUID, len(habits))
	for i, h := range habits {
		ids[i] = h.ID
		profileByHabit[h.ID] = h.ProfileID
		totalByProfile[h.ProfileID]++
	}

	// date -> profile -> completed habit ids
	byDateProfile := make(map[string]map[uuid.UUID]map[uuid.UUID]bool)
	if len(habits) > 0 {
		var checkIns []models.CheckIn
		err := s.db.
			Where("habit_id IN ? AND completed = ? AND date >= ? AND date <= ?",
				ids, true, dates.Midnight(start), dates.Midnight(end)).
			Find(&checkIns).Error
		if err != nil {
			return nil, nil, err
		}
		for _, c := range checkIns {
			profileID, ok := profileByHabit[c.HabitID]
			if !ok {
				continue
			}
			key := dates.Format(c.Date)
			if byDateProfile[key] == nil {
				byDateProfile[key] = make(map[uuid.UUID]map[uuid.UUID]bool)
			}
			if byDateProfile[key][profileID] == nil {
				byDateProfile[key][profileID] = make(map[uuid.UUID]bool)
			}
			byDateProfile[key][profileID][c.HabitID] = true
		}
	}

	var data []dto.StatsPoint
	for day := dates.Midnight(start); !day.After(dates.Midnight(end)); day = dates.AddDays(day, 1) {
		key := dates.Format(day)
		percents := make(map[string]int, len(profiles))
		for _, p := range profiles {
			done := len(byDateProfile[key][p.ID])
			percents[p.ID.String()] = Percent(done, totalByProfile[p.ID])
		}
		data = append(data, dto.StatsPoint{Date: key, Percents: percents})
	}

	series := make([]dto.ProfileSeries, len(profiles))
	for i, p := range profiles {
		color := seriesColors[i%len(seriesColors)]
		if p.Color != nil {
			color = *p.Color
		}
		series[i] = dto.ProfileSeries{ProfileID: p.ID, Name: p.Name, Color: color}
	}
	return series, data, nil
}

// Summary computes the dashboard's window averages for one profile:
// today's tally, the elapsed part of the current Monday-based week, and the
// last 30 days including today. Averages are unweighted over the daily
// percents and recomputed per view.
func (s *StatsService) Summary(profileID uuid.UUID, today time.Time) (dto.Summary, error) {
	day := dates.Midnight(today)
	start30 := dates.AddDays(day, -29)

	points, err := s.RangeSeries(profileID, start30, day)
	if err != nil {
		return dto.Summary{}, err
	}

	weekStart := dates.Format(dates.StartOfWeek(day, time.Monday))
	var weekPoints []dto.DailyPoint
	for _, p := range points {
		if p.Date >= weekStart {
			weekPoints = append(weekPoints, p)
		}
	}

	return dto.Summary{
		Today:         points[len(points)-1],
		WeekPercent:   averagePercent(weekPoints),
		Last30Percent: averagePercent(points),
	}, nil
}

func averagePercent(points []dto.DailyPoint) int {
	if len(points) == 0 {
		return 0
	}
	sum := 0
	for _, p := range points {
		sum += p.Percent
	}
	return int(math.Round(float64(sum) / float64(len(points))))
}
