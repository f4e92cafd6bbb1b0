package jpdate

const msPerDay = 24 * 60 * 60 * 1000

// IsBefore reports whether v is strictly earlier than other. other is read
// without the separator rewrite, so "2024-03-01" is UTC midnight while
// "2024/03/01" is JST midnight. An unreadable other compares false.
func (v DateTime) IsBefore(other string) bool {
	t, ok := parseRaw(other)
	if !ok {
		return false
	}
	return v.t.Before(t)
}

// DaysDiff returns other minus v in whole days, counted from millisecond
// timestamps and truncated toward zero; it is positive when other is later.
// other is read like [DateTime.IsBefore]. The boolean is false, and the
// count meaningless, when other is unreadable.
func (v DateTime) DaysDiff(other string) (int, bool) {
	t, ok := parseRaw(other)
	if !ok {
		return 0, false
	}
	return int((t.UnixMilli() - v.t.UnixMilli()) / msPerDay), true
}

// IsSameDate reports whether other, built through [From], names exactly the
// same instant as v. Unlike [DateTime.IsBefore] the separator rewrite and
// the fail-open default apply to other.
func (v DateTime) IsSameDate(other any) bool {
	return v.t.Equal(From(other).t)
}
