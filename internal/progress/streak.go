package progress

import "time"

// WritingStreak counts the consecutive calendar days with at least one
// writing, walking back from today. The streak survives if the most
// recent writing day is today or yesterday — a learner who wrote last
// night hasn't broken the streak by not writing yet this morning.
func WritingStreak(times []time.Time, now time.Time) int {
	if len(times) == 0 {
		return 0
	}

	days := make(map[string]bool, len(times))
	for _, t := range times {
		days[dayKey(t)] = true
	}

	cursor := now
	if !days[dayKey(cursor)] {
		cursor = cursor.AddDate(0, 0, -1)
		if !days[dayKey(cursor)] {
			return 0
		}
	}

	streak := 0
	for days[dayKey(cursor)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
