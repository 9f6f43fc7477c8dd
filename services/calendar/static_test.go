package calendar

import (
	"context"
	"testing"
	"time"

	"bookline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProviderWindowFilter(t *testing.T) {
	busy := []models.BusyInterval{
		{Start: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), End: time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)},
		{Start: time.Date(2026, 3, 3, 14, 0, 0, 0, time.UTC), End: time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC)},
		{Start: time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC), End: time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)},
	}
	p := &StaticProvider{Busy: busy}

	got, err := p.BusyIntervals(context.Background(),
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = p.BusyIntervalsForDay(context.Background(), time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, busy[1], got[0])
}

func TestStaticProviderEmpty(t *testing.T) {
	p := &StaticProvider{}
	got, err := p.BusyIntervalsForDay(context.Background(), time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProviderError(t *testing.T) {
	err := NewProviderError("boom")
	require.Error(t, err)
	assert.Equal(t, "providerError: boom", err.Error())

	var pe *ProviderError
	assert.ErrorAs(t, err, &pe)
}
