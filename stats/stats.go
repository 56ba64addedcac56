// Package stats computes daily, weekly, and monthly statistics from stored
// sessions. Aggregates are always derived on demand from the store and are
// never cached persistently.
package stats

import (
	"time"

	"github.com/Tsuyoshi84/time-tracker/internal/models"
	"github.com/Tsuyoshi84/time-tracker/internal/timeutil"
	"github.com/Tsuyoshi84/time-tracker/store"
)

// Aggregator computes derived statistics over the session store.
type Aggregator struct {
	db store.DB
}

func New(db store.DB) *Aggregator {
	return &Aggregator{db: db}
}

// dayStatsFrom folds a date's session list into a DayStats value. Only
// completed sessions contribute to the total duration; the session count
// includes a running session as well.
func dayStatsFrom(date string, sessions []models.Session) models.DayStats {
	stats := models.DayStats{
		Date:         date,
		Sessions:     sessions,
		SessionCount: len(sessions),
	}

	for i := range sessions {
		if sessions[i].Completed() {
			stats.TotalDuration += sessions[i].Duration
		}
	}

	return stats
}

// Day computes the statistics for a single date.
func (a *Aggregator) Day(date string) (models.DayStats, error) {
	sessions, err := a.db.GetSessionsByDate(date)
	if err != nil {
		return models.DayStats{}, err
	}

	return dayStatsFrom(date, sessions), nil
}

// groupByDate partitions a range query result by its date key.
func groupByDate(sessions []models.Session) map[string][]models.Session {
	byDate := make(map[string][]models.Session)

	for i := range sessions {
		byDate[sessions[i].Date] = append(byDate[sessions[i].Date], sessions[i])
	}

	return byDate
}

// periodStats builds one DayStats entry per calendar day from first to last
// inclusive, using a single range query so that the whole period reflects
// one consistent snapshot of the store.
func (a *Aggregator) periodStats(first, last time.Time) ([]models.DayStats, error) {
	sessions, err := a.db.GetSessionsInRange(
		timeutil.ToDateString(first),
		timeutil.ToDateString(last),
	)
	if err != nil {
		return nil, err
	}

	byDate := groupByDate(sessions)

	var days []models.DayStats

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		date := timeutil.ToDateString(d)
		days = append(days, dayStatsFrom(date, byDate[date]))
	}

	return days, nil
}

func sumDays(days []models.DayStats) (total time.Duration, count int) {
	for i := range days {
		total += days[i].TotalDuration
		count += days[i].SessionCount
	}

	return total, count
}

// Week computes per-day statistics for the week containing the anchor time.
// Weeks run from Sunday 00:00:00 through Saturday 23:59:59.999 local time.
func (a *Aggregator) Week(anchor time.Time) (models.WeekStats, error) {
	weekStart := timeutil.StartOfWeek(anchor)
	weekEnd := timeutil.RoundToStart(timeutil.EndOfWeek(anchor))

	days, err := a.periodStats(weekStart, weekEnd)
	if err != nil {
		return models.WeekStats{}, err
	}

	total, count := sumDays(days)

	return models.WeekStats{
		Label: weekStart.Format("Jan 02") + " – " + weekEnd.Format(
			"Jan 02, 2006",
		),
		StartDate: timeutil.ToDateString(weekStart),
		EndDate:   timeutil.ToDateString(weekEnd),
		Days:      days,
		Total:     total,
		Count:     count,
	}, nil
}

// Months computes statistics for the trailing n calendar months including
// the current one, most recent first. Each month is computed independently
// from its own range query.
func (a *Aggregator) Months(n int) ([]models.MonthStats, error) {
	now := time.Now()

	var months []models.MonthStats

	for i := 0; i < n; i++ {
		anchor := time.Date(
			now.Year(),
			now.Month()-time.Month(i),
			1,
			0,
			0,
			0,
			0,
			now.Location(),
		)

		first := timeutil.StartOfMonth(anchor)
		last := timeutil.RoundToStart(timeutil.EndOfMonth(anchor))

		days, err := a.periodStats(first, last)
		if err != nil {
			return nil, err
		}

		total, count := sumDays(days)

		months = append(months, models.MonthStats{
			Label:     anchor.Format("January 2006"),
			StartDate: timeutil.ToDateString(first),
			EndDate:   timeutil.ToDateString(last),
			Days:      days,
			Total:     total,
			Count:     count,
		})
	}

	return months, nil
}
