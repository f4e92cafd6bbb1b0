package jpdate

import (
	"strings"
	"testing"
	"time"
)

func TestFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		v      DateTime
		format func(DateTime) string
		want   string
	}{
		{"JPString", New(jst(2024, time.March, 5, 9, 5, 30)), DateTime.JPString, "2024年3月5日"},
		{"JPString two-digit", New(jst(2024, time.December, 25, 0, 0, 0)), DateTime.JPString, "2024年12月25日"},
		{"JPStringWithWeekday", New(jst(2024, time.March, 5, 9, 5, 30)), DateTime.JPStringWithWeekday, "2024年3月5日（火）"},
		{"JPStringWithWeekday Sunday", New(jst(2024, time.March, 3, 0, 0, 0)), DateTime.JPStringWithWeekday, "2024年3月3日（日）"},
		{"JPStringWithWeekday Saturday", New(jst(2024, time.March, 9, 0, 0, 0)), DateTime.JPStringWithWeekday, "2024年3月9日（土）"},
		{"OnlyTime", New(jst(2024, time.March, 5, 9, 5, 30)), DateTime.OnlyTime, "09:05"},
		{"OnlyTime midnight", New(jst(2024, time.March, 5, 0, 0, 0)), DateTime.OnlyTime, "00:00"},
		{"OnlyTime evening", New(jst(2024, time.March, 5, 23, 59, 59)), DateTime.OnlyTime, "23:59"},
		{"DateString", New(jst(2024, time.March, 5, 9, 5, 30)), DateTime.DateString, "2024-03-05"},
		{"JPDateString", New(jst(2024, time.March, 5, 9, 5, 30)), DateTime.JPDateString, "2024年03月05日"},
		{"DateTimeString", New(jst(2024, time.March, 5, 9, 5, 30)), DateTime.DateTimeString, "2024-03-05 09:05"},
		{"DateTimeSecondString", New(jst(2024, time.March, 5, 9, 5, 30)), DateTime.DateTimeSecondString, "2024-03-05 09:05:30"},
		{"FileNameString", New(jst(2024, time.March, 5, 9, 5, 30)), DateTime.FileNameString, "20240305_090530"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format(tt.v); got != tt.want {
				t.Errorf("%s() = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestFormats_ZoneAnchored(t *testing.T) {
	t.Parallel()

	// 2024-03-04 15:00:00 UTC = 2024-03-05 00:00:00 JST (Tuesday)
	v := New(time.Date(2024, time.March, 4, 15, 0, 0, 0, time.UTC))

	checks := []struct {
		got, want string
	}{
		{v.JPStringWithWeekday(), "2024年3月5日（火）"},
		{v.DateString(), "2024-03-05"},
		{v.JPDateString(), "2024年03月05日"},
		{v.DateTimeString(), "2024-03-05 00:00"},
		{v.DateTimeSecondString(), "2024-03-05 00:00:00"},
		{v.FileNameString(), "20240305_000000"},
		{v.OnlyTime(), "00:00"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}

func TestJPStringWithWeekday_EveryDay(t *testing.T) {
	t.Parallel()

	// 2024-03-03 is a Sunday.
	want := []string{"日", "月", "火", "水", "木", "金", "土"}
	for i, w := range want {
		v := New(jst(2024, time.March, 3+i, 12, 0, 0))
		if got := v.JPStringWithWeekday(); !strings.HasSuffix(got, "（"+w+"）") {
			t.Errorf("%s: JPStringWithWeekday() = %q, want suffix （%s）", v.DateString(), got, w)
		}
	}
}

func TestWeekdayName_Placeholder(t *testing.T) {
	t.Parallel()

	for _, wd := range []time.Weekday{-1, 7, 100} {
		if got := weekdayName(wd); got != weekdayPlaceholder {
			t.Errorf("weekdayName(%d) = %q, want %q", wd, got, weekdayPlaceholder)
		}
	}
}

func TestTrimSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"9:05:30", "09:05"},
		{"19:05:30", "19:05"},
		{"0:00:00", "00:00"},
		{"9:05", "9:05"},
		{"午前9:05", "午前9:05"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := trimSeconds(tt.in); got != tt.want {
			t.Errorf("trimSeconds(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLocaleTimeString(t *testing.T) {
	t.Parallel()

	if got := New(jst(2024, time.March, 5, 9, 5, 3)).localeTimeString(); got != "9:05:03" {
		t.Errorf("localeTimeString() = %q, want 9:05:03", got)
	}
}
