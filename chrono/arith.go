package chrono

import (
	"fmt"
	"time"
)

// nanos per granularity, day-level and finer arithmetic is an instant shift
const (
	nsPerMilli  = int64(time.Millisecond)
	nsPerSecond = int64(time.Second)
	nsPerMinute = int64(time.Minute)
	nsPerHour   = int64(time.Hour)
	nsPerDay    = 24 * nsPerHour
	nsPerWeek   = 7 * nsPerDay
)

// PlusNanos returns a new value shifted by n nanoseconds.
// A negative n subtracts. Applies to every Plus method below.
func (c Chrono) PlusNanos(n int) (Chrono, error) { return c.shift(int64(n), 1) }

// PlusMillis returns a new value shifted by n milliseconds.
func (c Chrono) PlusMillis(n int) (Chrono, error) { return c.shift(int64(n), nsPerMilli) }

// PlusSeconds returns a new value shifted by n seconds.
func (c Chrono) PlusSeconds(n int) (Chrono, error) { return c.shift(int64(n), nsPerSecond) }

// PlusMinutes returns a new value shifted by n minutes.
func (c Chrono) PlusMinutes(n int) (Chrono, error) { return c.shift(int64(n), nsPerMinute) }

// PlusHours returns a new value shifted by n hours.
func (c Chrono) PlusHours(n int) (Chrono, error) { return c.shift(int64(n), nsPerHour) }

// PlusDays returns a new value shifted by n days of 24 hours.
func (c Chrono) PlusDays(n int) (Chrono, error) { return c.shift(int64(n), nsPerDay) }

// PlusWeeks returns a new value shifted by n weeks of 7 days.
func (c Chrono) PlusWeeks(n int) (Chrono, error) { return c.shift(int64(n), nsPerWeek) }

// PlusMonths returns a new value shifted by n calendar months in the
// zoned frame. The day-of-month is clamped to the last valid day of
// the target month.
func (c Chrono) PlusMonths(n int) (Chrono, error) { return c.addMonths(int64(n)) }

// PlusYears returns a new value shifted by n calendar years in the
// zoned frame, with the same day clamping as PlusMonths.
func (c Chrono) PlusYears(n int) (Chrono, error) { return c.addYears(int64(n)) }

// MinusNanos is PlusNanos(-n).
func (c Chrono) MinusNanos(n int) (Chrono, error) { return c.shift(-int64(n), 1) }

// MinusMillis is PlusMillis(-n).
func (c Chrono) MinusMillis(n int) (Chrono, error) { return c.shift(-int64(n), nsPerMilli) }

// MinusSeconds is PlusSeconds(-n).
func (c Chrono) MinusSeconds(n int) (Chrono, error) { return c.shift(-int64(n), nsPerSecond) }

// MinusMinutes is PlusMinutes(-n).
func (c Chrono) MinusMinutes(n int) (Chrono, error) { return c.shift(-int64(n), nsPerMinute) }

// MinusHours is PlusHours(-n).
func (c Chrono) MinusHours(n int) (Chrono, error) { return c.shift(-int64(n), nsPerHour) }

// MinusDays is PlusDays(-n).
func (c Chrono) MinusDays(n int) (Chrono, error) { return c.shift(-int64(n), nsPerDay) }

// MinusWeeks is PlusWeeks(-n).
func (c Chrono) MinusWeeks(n int) (Chrono, error) { return c.shift(-int64(n), nsPerWeek) }

// MinusMonths is PlusMonths(-n).
func (c Chrono) MinusMonths(n int) (Chrono, error) { return c.addMonths(-int64(n)) }

// MinusYears is PlusYears(-n).
func (c Chrono) MinusYears(n int) (Chrono, error) { return c.addYears(-int64(n)) }

// unix-second bounds of the representable year range
var (
	minInstantSec = time.Date(MinYear, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxInstantSec = time.Date(MaxYear+1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
)

// shift moves the instant by n units of unit nanoseconds. The span is
// carried as whole seconds plus a sub-second remainder so shifts longer
// than time.Duration can represent still land exactly.
func (c Chrono) shift(n, unit int64) (Chrono, error) {
	var secs, nsec int64
	if unit >= nsPerSecond {
		mult := unit / nsPerSecond
		secs = n * mult
		if n != 0 && secs/n != mult {
			return Chrono{}, fmt.Errorf("%w: %d x %dns", ErrTemporalOverflow, n, unit)
		}
	} else {
		per := nsPerSecond / unit
		secs = n / per
		nsec = n % per * unit
	}
	base := c.t.Unix()
	sum := base + secs
	if (secs > 0 && sum < base) || (secs < 0 && sum > base) ||
		sum < minInstantSec || sum >= maxInstantSec {
		return Chrono{}, fmt.Errorf("%w: %d x %dns", ErrTemporalOverflow, n, unit)
	}
	t := time.Unix(sum, int64(c.t.Nanosecond())+nsec).In(c.t.Location())
	return checkRange(t, c.zone)
}

func (c Chrono) addMonths(n int64) (Chrono, error) {
	t, err := addMonths(c.t, n)
	if err != nil {
		return Chrono{}, err
	}
	return checkRange(t, c.zone)
}

func (c Chrono) addYears(n int64) (Chrono, error) {
	y, m, d := c.t.Date()
	ny := int64(y) + n
	if ny < MinYear || ny > MaxYear {
		return Chrono{}, fmt.Errorf("%w: year %d out of range", ErrTemporalOverflow, ny)
	}
	if dim := daysIn(int(ny), m); d > dim {
		d = dim
	}
	t := time.Date(int(ny), m, d,
		c.t.Hour(), c.t.Minute(), c.t.Second(), c.t.Nanosecond(), c.t.Location())
	return checkRange(t, c.zone)
}

// addMonths performs calendar-frame month arithmetic with day clamping.
func addMonths(t time.Time, n int64) (time.Time, error) {
	y, m, d := t.Date()
	total := int64(y)*12 + int64(m) - 1 + n
	ny := floorDiv(total, 12)
	nm := time.Month(floorMod(total, 12) + 1)
	if ny < MinYear || ny > MaxYear {
		return time.Time{}, fmt.Errorf("%w: year %d out of range", ErrTemporalOverflow, ny)
	}
	if dim := daysIn(int(ny), nm); d > dim {
		d = dim
	}
	return time.Date(int(ny), nm, d,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()), nil
}

// daysIn returns the number of days in the month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
