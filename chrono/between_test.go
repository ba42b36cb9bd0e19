package chrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustIn(t *testing.T, v time.Time, zone string) Chrono {
	t.Helper()
	c, err := In(v, zone)
	require.NoError(t, err)
	return c
}

func TestBetweenTruncatesTowardZero(t *testing.T) {
	a := mustIn(t, time.Date(2024, time.January, 1, 23, 0, 0, 0, time.UTC), "UTC")
	b := mustIn(t, time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), "UTC")

	// one hour gap: zero whole days, minus one whole hour
	assert.Equal(t, int64(0), a.BetweenDays(b))
	assert.Equal(t, int64(-1), a.BetweenHours(b))
	assert.Equal(t, int64(1), b.BetweenHours(a))
	assert.Equal(t, int64(0), b.BetweenDays(a))
}

func TestBetweenAntisymmetry(t *testing.T) {
	a := refUTC(t)
	b, err := a.PlusHours(50)
	require.NoError(t, err)

	assert.Equal(t, -b.BetweenDays(a), a.BetweenDays(b))
	assert.Equal(t, -b.BetweenHours(a), a.BetweenHours(b))
	ab, err := a.BetweenNanos(b)
	require.NoError(t, err)
	ba, err := b.BetweenNanos(a)
	require.NoError(t, err)
	assert.Equal(t, -ba, ab)
	assert.Equal(t, int64(2), b.BetweenDays(a))
}

func TestBetweenInstantUnits(t *testing.T) {
	a := refUTC(t)
	b, err := a.PlusDays(15)
	require.NoError(t, err)
	ns, err := b.BetweenNanos(a)
	require.NoError(t, err)
	ms, err := b.BetweenMillis(a)
	require.NoError(t, err)

	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"nanos", ns, 15 * 24 * 3600 * 1e9},
		{"millis", ms, 15 * 24 * 3600 * 1e3},
		{"seconds", b.BetweenSeconds(a), 15 * 24 * 3600},
		{"minutes", b.BetweenMinutes(a), 15 * 24 * 60},
		{"hours", b.BetweenHours(a), 15 * 24},
		{"days", b.BetweenDays(a), 15},
		{"weeks", b.BetweenWeeks(a), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestBetweenMonths(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int64 // a minus b in whole months
	}{
		{
			name: "full month",
			a:    time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "one day short of a month",
			a:    time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "one hour short of a month",
			a:    time.Date(2024, time.February, 1, 22, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.January, 1, 23, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "negative direction",
			a:    time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			want: -1,
		},
		{
			name: "calendar months not 30-day blocks",
			a:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustIn(t, tt.a, "UTC")
			b := mustIn(t, tt.b, "UTC")
			assert.Equal(t, tt.want, a.BetweenMonths(b))
			assert.Equal(t, -tt.want, b.BetweenMonths(a))
		})
	}
}

func TestBetweenYears(t *testing.T) {
	a := mustIn(t, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), "UTC")
	b := mustIn(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), "UTC")

	assert.Equal(t, int64(1), a.BetweenYears(b)) // 23 months
	assert.Equal(t, int64(-1), b.BetweenYears(a))
}

func TestBetweenTimeOperand(t *testing.T) {
	a := refUTC(t)
	legacy := time.UnixMilli(refMillis).Add(-36 * time.Hour)

	assert.Equal(t, int64(1), a.BetweenDaysTime(legacy))
	assert.Equal(t, int64(36), a.BetweenHoursTime(legacy))
	assert.Equal(t, int64(0), a.BetweenMonthsTime(legacy))
	want, err := a.BetweenNanos(From(legacy))
	require.NoError(t, err)
	got, err := a.BetweenNanosTime(legacy)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBetweenAcrossZonesUsesInstant(t *testing.T) {
	a := refUTC(t)
	ny, err := a.WithZone("America/New_York")
	require.NoError(t, err)

	ns, err := a.BetweenNanos(ny)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ns)
	b, err := ny.PlusHours(3)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), a.BetweenHours(b))
}

func TestBetweenCenturySpans(t *testing.T) {
	a := mustIn(t, time.Date(1600, time.January, 1, 0, 0, 0, 0, time.UTC), "UTC")
	b := mustIn(t, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), "UTC")

	// 400 Gregorian years are exactly 146097 days
	assert.Equal(t, int64(146097), b.BetweenDays(a))
	assert.Equal(t, int64(-146097), a.BetweenDays(b))
	assert.Equal(t, int64(146097*24), b.BetweenHours(a))
	assert.Equal(t, int64(146097/7), b.BetweenWeeks(a))
	assert.Equal(t, int64(146097)*86400, b.BetweenSeconds(a))

	ms, err := b.BetweenMillis(a)
	require.NoError(t, err)
	assert.Equal(t, int64(146097)*86400*1000, ms)

	// the nanosecond count of four centuries does not fit in int64
	_, err = b.BetweenNanos(a)
	assert.ErrorIs(t, err, ErrTemporalOverflow)
	_, err = a.BetweenNanos(b)
	assert.ErrorIs(t, err, ErrTemporalOverflow)
}

func TestBetweenMillisOverflow(t *testing.T) {
	a := mustIn(t, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), "UTC")
	b, err := a.PlusYears(300_000_000)
	require.NoError(t, err)

	_, err = b.BetweenMillis(a)
	assert.ErrorIs(t, err, ErrTemporalOverflow)

	// calendar-frame counts stay exact over the same span
	assert.Equal(t, int64(300_000_000), b.BetweenYears(a))
}
