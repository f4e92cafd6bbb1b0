package jpdate

// Appointment slots run every 30 minutes from 08:00 through 19:30.
const (
	slotFirstHour = 8
	slotLastHour  = 19
	slotStep      = 30
)

// SlotCount is the number of slots GenerateSlots returns for any date.
const SlotCount = (slotLastHour - slotFirstHour + 1) * (60 / slotStep)

// GenerateSlots returns the appointment slots for the JST date of s as
// "YYYY-MM-DD HH:mm:ss" strings in ascending order. s is read like [Parse];
// its time of day is discarded.
func GenerateSlots(s string) []string {
	d := dateFromTime(parseOrNow(s))
	slots := make([]string, 0, SlotCount)
	for h := slotFirstHour; h <= slotLastHour; h++ {
		for m := 0; m < 60; m += slotStep {
			slots = append(slots, d.at(h, m).Format(layoutDateTimeSecond))
		}
	}
	return slots
}
