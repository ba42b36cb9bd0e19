package chrono

import "time"

// Calendar is the full operation set of a zone-aware calendar value:
// zone conversion, unit-granular arithmetic and difference computation,
// component extraction and pattern formatting. Chrono is its only
// implementation; the interface exists so callers can stub the value
// behind their own seams.
type Calendar interface {
	// zone conversion and projections
	WithZone(zoneID string) (Chrono, error)
	WithLocation(loc *time.Location) Chrono
	Zoned() time.Time
	ZoneID() string
	Location() *time.Location
	UnixMilli() int64
	Time() time.Time
	DateOnly() time.Time
	DateTime() time.Time

	// arithmetic
	PlusNanos(n int) (Chrono, error)
	PlusMillis(n int) (Chrono, error)
	PlusSeconds(n int) (Chrono, error)
	PlusMinutes(n int) (Chrono, error)
	PlusHours(n int) (Chrono, error)
	PlusDays(n int) (Chrono, error)
	PlusWeeks(n int) (Chrono, error)
	PlusMonths(n int) (Chrono, error)
	PlusYears(n int) (Chrono, error)
	MinusNanos(n int) (Chrono, error)
	MinusMillis(n int) (Chrono, error)
	MinusSeconds(n int) (Chrono, error)
	MinusMinutes(n int) (Chrono, error)
	MinusHours(n int) (Chrono, error)
	MinusDays(n int) (Chrono, error)
	MinusWeeks(n int) (Chrono, error)
	MinusMonths(n int) (Chrono, error)
	MinusYears(n int) (Chrono, error)

	// differences, receiver minus operand, truncated toward zero;
	// nano and milli counts can exceed int64 and report the overflow
	BetweenNanos(other Chrono) (int64, error)
	BetweenMillis(other Chrono) (int64, error)
	BetweenSeconds(other Chrono) int64
	BetweenMinutes(other Chrono) int64
	BetweenHours(other Chrono) int64
	BetweenDays(other Chrono) int64
	BetweenWeeks(other Chrono) int64
	BetweenMonths(other Chrono) int64
	BetweenYears(other Chrono) int64
	BetweenNanosTime(t time.Time) (int64, error)
	BetweenMillisTime(t time.Time) (int64, error)
	BetweenSecondsTime(t time.Time) int64
	BetweenMinutesTime(t time.Time) int64
	BetweenHoursTime(t time.Time) int64
	BetweenDaysTime(t time.Time) int64
	BetweenWeeksTime(t time.Time) int64
	BetweenMonthsTime(t time.Time) int64
	BetweenYearsTime(t time.Time) int64

	// component extraction
	Nano() int
	Milli() int
	Second() int
	Minute() int
	Hour() int
	DayOfWeek() int
	DayOfMonth() int
	DayOfYear() int
	WeekOfMonth() int
	WeekOfYear() int
	Month() int
	Year() int

	// formatting
	Format() string
	FormatPattern(pattern string) (string, error)
}

var _ Calendar = Chrono{}
