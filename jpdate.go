// Package jpdate provides an immutable date/time value anchored to Japan
// Standard Time, with a fixed catalogue of Japanese and ISO-style string
// forms, day arithmetic, comparisons and appointment slot generation.
//
// Construction never fails. Strings are read after rewriting every "-" to
// "/", so "2024-03-01" and "2024/03/01" name the same JST midnight; input
// that cannot be read as a date falls back to the current instant.
//
// All formatting projects the instant into Asia/Tokyo (UTC+9) first, so the
// output is the same regardless of the zone the input carried:
//
//	v := jpdate.Parse("2024-03-05 09:05:30")
//	v.JPStringWithWeekday() // "2024年3月5日（火）"
//	v.OnlyTime()            // "09:05"
//	v.FileNameString()      // "20240305_090530"
//
// Every method returns a new value or a primitive; a DateTime is safe for
// concurrent use.
package jpdate

import "time"

// DateTime is an immutable instant rendered in Japan Standard Time.
// The zero value is not useful; build one with [From], [New], [Parse] or [Now].
type DateTime struct {
	t time.Time
}

// From builds a DateTime from a time.Time, a *time.Time, a DateTime, a
// *DateTime, a string or a *string. Nil pointers, nil and values of any
// other type yield the current instant, as does a string that cannot be
// read as a date.
func From(v any) DateTime {
	switch x := v.(type) {
	case time.Time:
		return New(x)
	case *time.Time:
		if x != nil {
			return New(*x)
		}
	case DateTime:
		return x
	case *DateTime:
		if x != nil {
			return *x
		}
	case string:
		return Parse(x)
	case *string:
		if x != nil {
			return Parse(*x)
		}
	}
	return Now()
}

// New wraps t verbatim.
func New(t time.Time) DateTime { return DateTime{t: t} }

// Parse reads s with the separator rewrite applied and falls back to the
// current instant when s is not a date.
func Parse(s string) DateTime { return DateTime{t: parseOrNow(s)} }

// ParseStrict reads s like [Parse] but reports whether s was a date instead
// of falling back to the current instant.
func ParseStrict(s string) (DateTime, bool) {
	t, ok := parseNormalized(s)
	if !ok {
		return DateTime{}, false
	}
	return DateTime{t: t}, true
}

// Now returns the current instant.
func Now() DateTime { return DateTime{t: now()} }

// Time returns the instant projected into JST.
func (v DateTime) Time() time.Time { return v.t.In(jstZone) }

// Weekday returns the JST day of the week.
func (v DateTime) Weekday() time.Weekday { return v.Time().Weekday() }

// Unix returns the instant as Unix seconds.
func (v DateTime) Unix() int64 { return v.t.Unix() }

// String returns the same text as [DateTime.DateTimeSecondString].
func (v DateTime) String() string { return v.DateTimeSecondString() }

// MarshalText implements encoding.TextMarshaler with the
// "YYYY-MM-DD HH:mm:ss" form, which [Parse] reads back.
func (v DateTime) MarshalText() ([]byte, error) {
	return []byte(v.DateTimeSecondString()), nil
}
