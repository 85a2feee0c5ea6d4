package onboarding

// AddWorkingDays returns the date reached by advancing n working days from d.
// Weekends are skipped and there is no holiday calendar. n <= 0 returns d.
func AddWorkingDays(d Date, n int) Date {
	cur := d
	for added := 0; added < n; {
		cur = cur.AddDays(1)
		if !cur.IsWeekend() {
			added++
		}
	}
	return cur
}

// WorkingDaysBetween counts working days in (start, end]: start is excluded,
// end is included. Returns 0 when end is not after start.
//
// The classifier and scheduled progress both use this convention, so
// WorkingDaysBetween(d, AddWorkingDays(d, n)) == n for every d and n >= 0.
func WorkingDaysBetween(start, end Date) int {
	if !end.After(start) {
		return 0
	}
	count := 0
	for cur := start.AddDays(1); !cur.After(end); cur = cur.AddDays(1) {
		if !cur.IsWeekend() {
			count++
		}
	}
	return count
}
