package service

import "time"

// Calendar windows for the aggregation queries. All bounds are inclusive
// and computed in the injected location, never ambient process time.

// monthWindow returns [1st 00:00:00.000, last day 23:59:59.999] of the month.
func monthWindow(year, month int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	// Day zero of the following month normalizes to this month's last day.
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 999000000, loc)
	return start, end
}

// weekWindow returns [Monday 00:00:00.000, Sunday 23:59:59.999] of the given
// ISO week. Week 1 is the week containing January 4th, with Monday as the
// first day and Sunday treated as day 7.
func weekWindow(year, week int, loc *time.Location) (time.Time, time.Time) {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	dayNum := int(jan4.Weekday())
	if dayNum == 0 {
		dayNum = 7
	}

	monday := jan4.AddDate(0, 0, -dayNum+1+(week-1)*7)
	start := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, loc)
	end := time.Date(monday.Year(), monday.Month(), monday.Day()+6, 23, 59, 59, 999000000, loc)
	return start, end
}

// yearWindow returns [Jan 1 00:00:00.000, Dec 31 23:59:59.999] of the year.
func yearWindow(year int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := time.Date(year, time.December, 31, 23, 59, 59, 999000000, loc)
	return start, end
}

// endOfDay extends an upper bound through 23:59:59.999 of its calendar day.
func endOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999000000, loc)
}
