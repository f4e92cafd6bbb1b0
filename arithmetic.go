package jpdate

import "time"

// AddDate returns a new DateTime n calendar days after v in JST, keeping
// the time of day. n may be negative.
func (v DateTime) AddDate(n int) DateTime {
	return DateTime{t: v.Time().AddDate(0, 0, n)}
}

// SubtractDate returns a new DateTime n calendar days before v in JST.
func (v DateTime) SubtractDate(n int) DateTime {
	return v.AddDate(-n)
}

// AfterDay returns the "YYYY-MM-DD" form of the JST date n days after v.
func (v DateTime) AfterDay(n int) string {
	return v.AddDate(n).DateString()
}

// YearsLaterNewYearsDate returns "YYYY-01-01" for January 1st, n years after
// the current JST year. It is anchored to the clock, not to v.
func (v DateTime) YearsLaterNewYearsDate(n int) string {
	jt := now().In(jstZone)
	return time.Date(jt.Year()+n, time.January, 1, 0, 0, 0, 0, jstZone).Format(layoutDate)
}
