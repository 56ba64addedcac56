package session

import (
	"time"

	"github.com/Tsuyoshi84/time-tracker/internal/models"
	"github.com/Tsuyoshi84/time-tracker/internal/timeutil"
)

// Overlapping returns the completed sessions whose intervals intersect the
// half-open candidate interval [start, end). Touching boundaries are not
// conflicts. Sessions are partitioned by their start date, so the check
// scans the partitions of the candidate's start and end dates plus the day
// before the start, which is where a session spanning midnight into the
// candidate's window is filed. A non-zero excludeID leaves the session
// being edited out of the check.
func (m *Manager) Overlapping(
	start, end time.Time,
	excludeID uint64,
) ([]models.Session, error) {
	dates := []string{
		timeutil.ToDateString(start.AddDate(0, 0, -1)),
		timeutil.ToDateString(start),
	}

	if endDate := timeutil.ToDateString(end); endDate != dates[1] {
		dates = append(dates, endDate)
	}

	var conflicts []models.Session

	seen := make(map[uint64]bool)

	for _, date := range dates {
		sessions, err := m.db.GetSessionsByDate(date)
		if err != nil {
			return nil, err
		}

		for i := range sessions {
			sess := sessions[i]

			if sess.ID == excludeID || seen[sess.ID] {
				continue
			}

			if !sess.Completed() {
				continue
			}

			if sess.Overlaps(start, end) {
				seen[sess.ID] = true

				conflicts = append(conflicts, sess)
			}
		}
	}

	return conflicts, nil
}
