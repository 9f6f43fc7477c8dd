package conversation

import (
	"fmt"
	"time"

	"bookline/models"
)

// WorkingHours is the daily window slots are generated within.
type WorkingHours struct {
	StartHour int
	EndHour   int
}

// DefaultWorkingHours is the 09:00-17:00 window.
var DefaultWorkingHours = WorkingHours{StartHour: 9, EndHour: 17}

const (
	dateLabelLayout = "Monday, January 02, 2006"
	timeLabelLayout = "03:04 PM"
)

func newSlot(start, end time.Time, durationLabel string) models.Slot {
	return models.Slot{
		Start:         start,
		End:           end,
		DateLabel:     start.Format(dateLabelLayout),
		TimeLabel:     start.Format(timeLabelLayout),
		DurationLabel: durationLabel,
	}
}

func durationLabel(minutes int) string {
	if minutes%60 == 0 {
		hours := minutes / 60
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d minutes", minutes)
}

// SlotsForDay generates fixed one-hour candidate slots between 09:00 and
// 17:00 on the given day, dropping candidates a busy interval starts inside.
//
// The conflict rule is asymmetric: only a busy interval whose *start* falls
// within [candidate, candidateEnd) rejects the candidate. A busy interval
// whose tail runs into a candidate does not block it. FreeSlots below uses
// true interval overlap instead; the two rules are kept distinct.
func SlotsForDay(busy []models.BusyInterval, day time.Time) []models.Slot {
	workStart := time.Date(day.Year(), day.Month(), day.Day(), DefaultWorkingHours.StartHour, 0, 0, 0, day.Location())
	workEnd := time.Date(day.Year(), day.Month(), day.Day(), DefaultWorkingHours.EndHour, 0, 0, 0, day.Location())

	var slots []models.Slot
	for cur := workStart; cur.Before(workEnd); cur = cur.Add(time.Hour) {
		slotEnd := cur.Add(time.Hour)

		conflict := false
		for _, b := range busy {
			if !b.Start.Before(cur) && b.Start.Before(slotEnd) {
				conflict = true
				break
			}
		}
		if !conflict {
			slots = append(slots, newSlot(cur, slotEnd, "1 hour"))
		}
	}
	return slots
}

// FreeSlots scans each calendar day in [windowStart, windowEnd] and emits
// every durationMinutes-wide candidate inside the working-hour window that
// does not truly overlap a busy interval. On a conflict the cursor jumps to
// the busy interval's end rather than stepping linearly, so already-blocked
// sub-ranges are not re-tested. The scan never crosses the working window's
// end into the next day.
func FreeSlots(busy []models.BusyInterval, windowStart, windowEnd time.Time, durationMinutes int, hours WorkingHours) []models.Slot {
	if durationMinutes <= 0 {
		return nil
	}
	step := time.Duration(durationMinutes) * time.Minute
	label := durationLabel(durationMinutes)

	var slots []models.Slot
	lastDay := time.Date(windowEnd.Year(), windowEnd.Month(), windowEnd.Day(), 0, 0, 0, 0, windowEnd.Location())
	day := time.Date(windowStart.Year(), windowStart.Month(), windowStart.Day(), 0, 0, 0, 0, windowStart.Location())

	for ; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), hours.StartHour, 0, 0, 0, day.Location())
		dayEnd := time.Date(day.Year(), day.Month(), day.Day(), hours.EndHour, 0, 0, 0, day.Location())

		cursor := dayStart
		for !cursor.Add(step).After(dayEnd) {
			candidateEnd := cursor.Add(step)

			var blocking *models.BusyInterval
			for i := range busy {
				if cursor.Before(busy[i].End) && candidateEnd.After(busy[i].Start) {
					blocking = &busy[i]
					break
				}
			}
			if blocking != nil {
				// blocking.End is strictly after cursor, so progress is guaranteed.
				cursor = blocking.End
				continue
			}

			slots = append(slots, newSlot(cursor, candidateEnd, label))
			cursor = candidateEnd
		}
	}
	return slots
}

// MockSlots produces five deterministic placeholder slots, used whenever the
// calendar provider is unreachable: availability degrades, the conversation
// never aborts. Slots start at 10:00 from the now reference, staggered one
// day apart with an hour offset cycling through {0,1,2}.
func MockSlots(now time.Time) []models.Slot {
	base := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, now.Location())

	slots := make([]models.Slot, 0, 5)
	for i := 0; i < 5; i++ {
		start := base.AddDate(0, 0, i).Add(time.Duration(i%3) * time.Hour)
		slots = append(slots, newSlot(start, start.Add(time.Hour), "1 hour"))
	}
	return slots
}
