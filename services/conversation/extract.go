package conversation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"bookline/models"
)

const dateLayout = "2006-01-02"

var weekdayIndex = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var weekdayPattern = regexp.MustCompile(`monday|tuesday|wednesday|thursday|friday|saturday|sunday`)

// timePatterns are tried in order; the first match wins and its raw text is
// kept verbatim as a hint, never normalised to an instant.
var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}:\d{2}\s*(am|pm)`),
	regexp.MustCompile(`\d{1,2}\s*(am|pm)`),
	regexp.MustCompile(`\d{1,2}-\d{1,2}\s*(pm|am)`),
	regexp.MustCompile(`morning|afternoon|evening`),
}

var durationPattern = regexp.MustCompile(`(\d+)\s*(hour|minute)`)

// ExtractInfo parses temporal hints out of an utterance and merges them into
// the prior turn's info: a field detected this turn overwrites, a field not
// detected keeps its prior value. Date math is relative to the caller's now
// reference, never the wall clock.
func ExtractInfo(utterance string, prior models.ExtractedInfo, now time.Time) models.ExtractedInfo {
	out := prior
	lower := strings.ToLower(utterance)

	if date, ok := extractDate(lower, now); ok {
		out.PreferredDate = date
	}

	for _, p := range timePatterns {
		if m := p.FindString(lower); m != "" {
			out.TimePreference = m
			break
		}
	}

	if m := durationPattern.FindStringSubmatch(lower); m != nil {
		out.Duration = fmt.Sprintf("%s %ss", m[1], m[2])
	} else if out.Duration == "" {
		out.Duration = "1 hour"
	}

	return out
}

// extractDate checks the date phrases in a fixed priority order; the first
// phrase found wins and no further phrase is considered.
func extractDate(lower string, now time.Time) (string, bool) {
	switch {
	case strings.Contains(lower, "tomorrow"):
		return now.AddDate(0, 0, 1).Format(dateLayout), true
	case strings.Contains(lower, "today"):
		return now.Format(dateLayout), true
	case strings.Contains(lower, "next week"):
		return now.AddDate(0, 0, 7).Format(dateLayout), true
	}
	if name := weekdayPattern.FindString(lower); name != "" {
		return nextWeekday(now, weekdayIndex[name]).Format(dateLayout), true
	}
	return "", false
}

// nextWeekday resolves a weekday name to its next future occurrence. When now
// already falls on that weekday the result rolls a full week forward; a named
// weekday never resolves to the same calendar day.
func nextWeekday(now time.Time, target time.Weekday) time.Time {
	ahead := int(target-now.Weekday()+7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return now.AddDate(0, 0, ahead)
}

// DurationMinutes converts an extracted duration phrase into minutes,
// defaulting to 60 when the phrase is absent or unintelligible.
func DurationMinutes(duration string) int {
	m := durationPattern.FindStringSubmatch(strings.ToLower(duration))
	if m == nil {
		return 60
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 60
	}
	if m[2] == "hour" {
		return n * 60
	}
	return n
}
