package jpdate

import (
	"strings"
	"time"
)

// layout pairs a time layout with the location used for inputs that carry
// no offset of their own.
type layout struct {
	format string
	loc    *time.Location
}

// isoLayouts are the strict ISO 8601 shapes. Date-only forms are read as
// UTC midnight and date-time forms without an offset as JST, which is how
// a browser engine reads them.
var isoLayouts = []layout{
	{"2006", time.UTC},
	{"2006-01", time.UTC},
	{"2006-01-02", time.UTC},
	{"2006-01-02T15:04", jstZone},
	{"2006-01-02T15:04:05", jstZone},
	{"2006-01-02T15:04Z07:00", jstZone},
	{"2006-01-02T15:04:05Z07:00", jstZone},
}

var (
	slashLayouts = legacyLayouts("/")
	dashLayouts  = legacyLayouts("-")
)

// legacyLayouts builds the loose "year sep month sep day [time]" shapes,
// read as JST unless an offset is present. Fractional seconds are accepted
// by time.Parse after any seconds field.
func legacyLayouts(sep string) []layout {
	ymd := "2006" + sep + "1" + sep + "2"
	out := []layout{
		{"2006" + sep + "1", jstZone},
		{ymd, jstZone},
	}
	for _, clock := range []string{" 15:04", " 15:04:05", "T15:04", "T15:04:05"} {
		out = append(out,
			layout{ymd + clock, jstZone},
			layout{ymd + clock + "Z07:00", jstZone},
		)
	}
	return out
}

func parseWith(s string, layouts []layout) (time.Time, bool) {
	for _, l := range layouts {
		if t, err := time.ParseInLocation(l.format, s, l.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeSeparators rewrites every "-" to "/" so "2024-03-01" and
// "2024/03/01" name the same JST midnight.
func normalizeSeparators(s string) string {
	return strings.ReplaceAll(s, "-", "/")
}

// parseNormalized reads s the way the constructor does: separators are
// rewritten first, then the loose layouts are tried before the strict ones.
func parseNormalized(s string) (time.Time, bool) {
	s = normalizeSeparators(strings.TrimSpace(s))
	if t, ok := parseWith(s, slashLayouts); ok {
		return t, true
	}
	return parseWith(s, isoLayouts)
}

// parseOrNow is the fail-open construction policy: any input that cannot be
// read as a date yields the current instant.
func parseOrNow(s string) time.Time {
	if t, ok := parseNormalized(s); ok {
		return t
	}
	return now()
}

// parseRaw reads s without the separator rewrite: strict ISO first, then the
// loose layouts with either separator.
func parseRaw(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, ok := parseWith(s, isoLayouts); ok {
		return t, true
	}
	if t, ok := parseWith(s, slashLayouts); ok {
		return t, true
	}
	return parseWith(s, dashLayouts)
}
