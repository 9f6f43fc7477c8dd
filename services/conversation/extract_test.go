package conversation

import (
	"testing"
	"time"

	"bookline/models"

	"github.com/stretchr/testify/assert"
)

// Monday, 2 March 2026.
var refNow = time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)

func TestExtractInfoDates(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      string
	}{
		{"tomorrow", "let's meet tomorrow", "2026-03-03"},
		{"today", "anything today?", "2026-03-02"},
		{"next week", "how about next week", "2026-03-09"},
		{"future weekday", "friday would be great", "2026-03-06"},
		{"past weekday rolls forward", "sunday works", "2026-03-08"},
		{"no date", "whenever suits", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractInfo(tt.utterance, models.ExtractedInfo{}, refNow)
			assert.Equal(t, tt.want, got.PreferredDate)
		})
	}
}

func TestExtractInfoDatePriority(t *testing.T) {
	// "tomorrow" is checked before weekday names; the first matching
	// pattern wins and no second match is considered.
	got := ExtractInfo("tomorrow or friday, either way", models.ExtractedInfo{}, refNow)
	assert.Equal(t, "2026-03-03", got.PreferredDate)
}

func TestExtractInfoSameWeekdayRollsForward(t *testing.T) {
	// A weekday name never resolves to the reference day itself.
	wednesday := time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)
	got := ExtractInfo("wednesday please", models.ExtractedInfo{}, wednesday)
	assert.Equal(t, "2026-03-11", got.PreferredDate)
}

func TestExtractInfoTimePreference(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      string
	}{
		{"clock time", "meet at 3:30 pm", "3:30 pm"},
		{"bare hour", "how about 10 am", "10 am"},
		// The bare-hour pattern fires on the tail of a range before the
		// range pattern is consulted, so only "4 pm" is captured.
		{"range captures tail hour", "somewhere 2-4 pm", "4 pm"},
		{"afternoon", "tomorrow afternoon works", "afternoon"},
		{"morning", "morning is better", "morning"},
		{"none", "whenever", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractInfo(tt.utterance, models.ExtractedInfo{}, refNow)
			// The raw matched text is kept verbatim, not parsed to an instant.
			assert.Equal(t, tt.want, got.TimePreference)
		})
	}
}

func TestExtractInfoDuration(t *testing.T) {
	got := ExtractInfo("I need 2 hours", models.ExtractedInfo{}, refNow)
	assert.Equal(t, "2 hours", got.Duration)

	got = ExtractInfo("just 30 minutes", models.ExtractedInfo{}, refNow)
	assert.Equal(t, "30 minutes", got.Duration)

	// Default when nothing matches.
	got = ExtractInfo("sometime tomorrow", models.ExtractedInfo{}, refNow)
	assert.Equal(t, "1 hour", got.Duration)
}

func TestExtractInfoMerge(t *testing.T) {
	prior := models.ExtractedInfo{
		PreferredDate:  "2026-03-06",
		TimePreference: "morning",
		Duration:       "2 hours",
	}

	// A turn with no matches keeps every prior field.
	got := ExtractInfo("hmm let me think", prior, refNow)
	assert.Equal(t, prior, got)

	// A newly detected field overwrites only itself.
	got = ExtractInfo("make it 30 minutes", prior, refNow)
	assert.Equal(t, "30 minutes", got.Duration)
	assert.Equal(t, "2026-03-06", got.PreferredDate)
	assert.Equal(t, "morning", got.TimePreference)
}

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, 60, DurationMinutes("1 hour"))
	assert.Equal(t, 120, DurationMinutes("2 hours"))
	assert.Equal(t, 30, DurationMinutes("30 minutes"))
	assert.Equal(t, 60, DurationMinutes(""))
	assert.Equal(t, 60, DurationMinutes("a while"))
}
