package jpdate

import "time"

// jstZone is the Asia/Tokyo timezone (UTC+9). Every zone-anchored format and
// every calendar operation projects the instant into this zone first.
var jstZone = time.FixedZone("Asia/Tokyo", 9*60*60)

// now is the clock used for every "current instant" default.
// It is a variable so tests can pin it.
var now = time.Now

// Location returns the fixed zone all formatting is anchored to.
func Location() *time.Location { return jstZone }

// date is a calendar date in JST, detached from any time of day.
type date struct {
	year  int
	month time.Month
	day   int
}

// dateFromTime converts a time.Time to a date by first normalizing to JST.
func dateFromTime(t time.Time) date {
	jt := t.In(jstZone)
	y, m, d := jt.Date()
	return date{year: y, month: m, day: d}
}

// at returns the JST instant for the given wall-clock time on d.
func (d date) at(hour, minute int) time.Time {
	return time.Date(d.year, d.month, d.day, hour, minute, 0, 0, jstZone)
}
