package jpdate

import (
	"testing"
	"time"
)

func BenchmarkParse_Slash(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Parse("2024/03/01 10:15:00")
	}
}

func BenchmarkParse_Dash(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Parse("2024-03-01T10:15:00Z")
	}
}

func BenchmarkJPStringWithWeekday(b *testing.B) {
	v := New(jst(2024, time.March, 5, 9, 5, 30))
	for i := 0; i < b.N; i++ {
		v.JPStringWithWeekday()
	}
}

func BenchmarkOnlyTime(b *testing.B) {
	v := New(jst(2024, time.March, 5, 9, 5, 30))
	for i := 0; i < b.N; i++ {
		v.OnlyTime()
	}
}

func BenchmarkDaysDiff(b *testing.B) {
	v := New(jst(2024, time.March, 1, 0, 0, 0))
	for i := 0; i < b.N; i++ {
		v.DaysDiff("2024/12/31")
	}
}

func BenchmarkGenerateSlots(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateSlots("2024-03-01")
	}
}
