package jpdate

import (
	"testing"
	"time"
)

func TestGenerateSlots(t *testing.T) {
	t.Parallel()

	slots := GenerateSlots("2024-03-01 10:15:00")

	if len(slots) != 24 || SlotCount != 24 {
		t.Fatalf("len(slots) = %d, SlotCount = %d, want 24", len(slots), SlotCount)
	}
	if slots[0] != "2024-03-01 08:00:00" {
		t.Errorf("first slot = %q", slots[0])
	}
	if slots[1] != "2024-03-01 08:30:00" {
		t.Errorf("second slot = %q", slots[1])
	}
	if slots[23] != "2024-03-01 19:30:00" {
		t.Errorf("last slot = %q", slots[23])
	}
	for i := 1; i < len(slots); i++ {
		if slots[i] <= slots[i-1] {
			t.Errorf("slots[%d] = %q is not after %q", i, slots[i], slots[i-1])
		}
	}
}

func TestGenerateSlots_EveryHalfHour(t *testing.T) {
	t.Parallel()

	slots := GenerateSlots("2024/03/01")
	start := jst(2024, time.March, 1, 8, 0, 0)
	for i, s := range slots {
		want := start.Add(time.Duration(i) * 30 * time.Minute).Format("2006-01-02 15:04:05")
		if s != want {
			t.Errorf("slots[%d] = %q, want %q", i, s, want)
		}
	}
}

func TestGenerateSlots_SeparatorInvariance(t *testing.T) {
	t.Parallel()

	a := GenerateSlots("2024-03-01 23:59:59")
	b := GenerateSlots("2024/03/01")
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("slot %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestGenerateSlots_UTCInputUsesJSTDate(t *testing.T) {
	t.Parallel()

	// 2024-02-29 16:00 UTC = 2024-03-01 01:00 JST
	slots := GenerateSlots("2024-02-29T16:00:00Z")
	if slots[0] != "2024-03-01 08:00:00" {
		t.Errorf("first slot = %q, want 2024-03-01 08:00:00", slots[0])
	}
}

func TestGenerateSlots_UnreadableUsesToday(t *testing.T) {
	pinClock(t, jst(2026, time.October, 16, 21, 0, 0))

	slots := GenerateSlots("whenever")
	if slots[0] != "2026-10-16 08:00:00" || slots[23] != "2026-10-16 19:30:00" {
		t.Errorf("slots = %q .. %q, want 2026-10-16 window", slots[0], slots[23])
	}
}
