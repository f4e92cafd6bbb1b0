package jpdate

import (
	"fmt"
	"regexp"
	"time"
)

const (
	layoutDate           = "2006-01-02"
	layoutJPDate         = "2006年01月02日"
	layoutDateTime       = "2006-01-02 15:04"
	layoutDateTimeSecond = "2006-01-02 15:04:05"
	layoutFileName       = "20060102_150405"
)

// weekdayPlaceholder stands in for a weekday that cannot be resolved.
const weekdayPlaceholder = "ー"

// weekdayNames is indexed by time.Weekday (Sunday first).
var weekdayNames = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// clockPattern matches a locale time string that carries seconds.
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})$`)

func weekdayName(wd time.Weekday) string {
	if wd < 0 || int(wd) >= len(weekdayNames) {
		return weekdayPlaceholder
	}
	return weekdayNames[wd]
}

// JPString returns the Japanese long form, e.g. "2024年3月5日".
// Month and day are not zero-padded.
func (v DateTime) JPString() string {
	y, m, d := v.Time().Date()
	return fmt.Sprintf("%d年%d月%d日", y, int(m), d)
}

// JPStringWithWeekday returns the Japanese long form followed by the weekday
// in full-width parentheses, e.g. "2024年3月5日（火）".
func (v DateTime) JPStringWithWeekday() string {
	return v.JPString() + "（" + weekdayName(v.Weekday()) + "）"
}

// localeTimeString renders the time of day the way the Japanese locale does:
// hour without padding, minutes and seconds padded ("9:05:30").
func (v DateTime) localeTimeString() string {
	jt := v.Time()
	return fmt.Sprintf("%d:%02d:%02d", jt.Hour(), jt.Minute(), jt.Second())
}

// OnlyTime returns "HH:MM". Seconds are dropped from the locale time string
// and the hour is zero-padded; a locale string without seconds is returned
// unchanged.
func (v DateTime) OnlyTime() string {
	return trimSeconds(v.localeTimeString())
}

func trimSeconds(s string) string {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	if len(m[1]) == 1 {
		m[1] = "0" + m[1]
	}
	return m[1] + ":" + m[2]
}

// DateString returns "YYYY-MM-DD".
func (v DateTime) DateString() string { return v.Time().Format(layoutDate) }

// JPDateString returns "YYYY年MM月DD日" with month and day zero-padded.
func (v DateTime) JPDateString() string { return v.Time().Format(layoutJPDate) }

// DateTimeString returns "YYYY-MM-DD HH:mm".
func (v DateTime) DateTimeString() string { return v.Time().Format(layoutDateTime) }

// DateTimeSecondString returns "YYYY-MM-DD HH:mm:ss".
func (v DateTime) DateTimeSecondString() string {
	return v.Time().Format(layoutDateTimeSecond)
}

// FileNameString returns "YYYYMMDD_HHmmss", safe for use in file names.
func (v DateTime) FileNameString() string { return v.Time().Format(layoutFileName) }
