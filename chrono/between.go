package chrono

import (
	"fmt"
	"time"
)

// Differences are receiver minus operand, reported in whole units and
// truncated toward zero. A 23-hour gap in days is 0; when the operand
// is later the count is negative. Second-and-coarser units are counted
// in the seconds domain so any span inside the representable year
// range stays exact; only nanosecond and millisecond counts can exceed
// int64, and those report the overflow instead of wrapping.

const (
	secPerMinute = int64(60)
	secPerHour   = 60 * secPerMinute
	secPerDay    = 24 * secPerHour
	secPerWeek   = 7 * secPerDay
)

// BetweenNanos returns c minus other in whole nanoseconds.
// Spans beyond what int64 nanoseconds can hold fail with ErrTemporalOverflow.
func (c Chrono) BetweenNanos(other Chrono) (int64, error) { return nanosBetween(c.t, other.t) }

// BetweenMillis returns c minus other in whole milliseconds, with the
// same overflow reporting as BetweenNanos.
func (c Chrono) BetweenMillis(other Chrono) (int64, error) { return millisBetween(c.t, other.t) }

// BetweenSeconds returns c minus other in whole seconds.
func (c Chrono) BetweenSeconds(other Chrono) int64 { return wholeSeconds(c.t, other.t) }

// BetweenMinutes returns c minus other in whole minutes.
func (c Chrono) BetweenMinutes(other Chrono) int64 { return wholeSeconds(c.t, other.t) / secPerMinute }

// BetweenHours returns c minus other in whole hours.
func (c Chrono) BetweenHours(other Chrono) int64 { return wholeSeconds(c.t, other.t) / secPerHour }

// BetweenDays returns c minus other in whole 24-hour days.
func (c Chrono) BetweenDays(other Chrono) int64 { return wholeSeconds(c.t, other.t) / secPerDay }

// BetweenWeeks returns c minus other in whole 7-day weeks.
func (c Chrono) BetweenWeeks(other Chrono) int64 { return wholeSeconds(c.t, other.t) / secPerWeek }

// BetweenMonths returns c minus other in whole calendar months,
// computed in the receiver's zoned frame.
func (c Chrono) BetweenMonths(other Chrono) int64 {
	return monthsBetween(other.t.In(c.t.Location()), c.t)
}

// BetweenYears returns c minus other in whole calendar years.
func (c Chrono) BetweenYears(other Chrono) int64 { return c.BetweenMonths(other) / 12 }

// Legacy-operand spellings, the operand is a bare absolute-time value
// interpreted in the receiver's zone.

// BetweenNanosTime returns c minus t in whole nanoseconds.
func (c Chrono) BetweenNanosTime(t time.Time) (int64, error) { return nanosBetween(c.t, t) }

// BetweenMillisTime returns c minus t in whole milliseconds.
func (c Chrono) BetweenMillisTime(t time.Time) (int64, error) { return millisBetween(c.t, t) }

// BetweenSecondsTime returns c minus t in whole seconds.
func (c Chrono) BetweenSecondsTime(t time.Time) int64 { return wholeSeconds(c.t, t) }

// BetweenMinutesTime returns c minus t in whole minutes.
func (c Chrono) BetweenMinutesTime(t time.Time) int64 { return wholeSeconds(c.t, t) / secPerMinute }

// BetweenHoursTime returns c minus t in whole hours.
func (c Chrono) BetweenHoursTime(t time.Time) int64 { return wholeSeconds(c.t, t) / secPerHour }

// BetweenDaysTime returns c minus t in whole 24-hour days.
func (c Chrono) BetweenDaysTime(t time.Time) int64 { return wholeSeconds(c.t, t) / secPerDay }

// BetweenWeeksTime returns c minus t in whole 7-day weeks.
func (c Chrono) BetweenWeeksTime(t time.Time) int64 { return wholeSeconds(c.t, t) / secPerWeek }

// BetweenMonthsTime returns c minus t in whole calendar months.
func (c Chrono) BetweenMonthsTime(t time.Time) int64 {
	return monthsBetween(t.In(c.t.Location()), c.t)
}

// BetweenYearsTime returns c minus t in whole calendar years.
func (c Chrono) BetweenYearsTime(t time.Time) int64 { return c.BetweenMonthsTime(t) / 12 }

// secondsBetween splits a minus b into whole seconds truncated toward
// zero and a sub-second nanosecond remainder carrying the same sign.
func secondsBetween(a, b time.Time) (secs, rem int64) {
	secs = a.Unix() - b.Unix()
	rem = int64(a.Nanosecond()) - int64(b.Nanosecond())
	if secs > 0 && rem < 0 {
		secs--
		rem += nsPerSecond
	}
	if secs < 0 && rem > 0 {
		secs++
		rem -= nsPerSecond
	}
	return secs, rem
}

func wholeSeconds(a, b time.Time) int64 {
	secs, _ := secondsBetween(a, b)
	return secs
}

func nanosBetween(a, b time.Time) (int64, error) {
	secs, rem := secondsBetween(a, b)
	v := secs * nsPerSecond
	if secs != 0 && v/secs != nsPerSecond {
		return 0, fmt.Errorf("%w: span exceeds int64 nanoseconds", ErrTemporalOverflow)
	}
	total := v + rem
	if (rem > 0 && total < v) || (rem < 0 && total > v) {
		return 0, fmt.Errorf("%w: span exceeds int64 nanoseconds", ErrTemporalOverflow)
	}
	return total, nil
}

func millisBetween(a, b time.Time) (int64, error) {
	secs, rem := secondsBetween(a, b)
	const msPerSecond = nsPerSecond / nsPerMilli
	v := secs * msPerSecond
	if secs != 0 && v/secs != msPerSecond {
		return 0, fmt.Errorf("%w: span exceeds int64 milliseconds", ErrTemporalOverflow)
	}
	total := v + rem/nsPerMilli
	if (rem > 0 && total < v) || (rem < 0 && total > v) {
		return 0, fmt.Errorf("%w: span exceeds int64 milliseconds", ErrTemporalOverflow)
	}
	return total, nil
}

// monthsBetween counts whole calendar months from a to b,
// truncated toward zero. Both operands must share a location.
func monthsBetween(a, b time.Time) int64 {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	total := (int64(by)-int64(ay))*12 + int64(bm) - int64(am)
	if total == 0 {
		return 0
	}
	cmp := cmpDayTime(bd, timeOfDay(b), ad, timeOfDay(a))
	if total > 0 && cmp < 0 {
		total--
	}
	if total < 0 && cmp > 0 {
		total++
	}
	return total
}

func timeOfDay(t time.Time) int64 {
	return int64(t.Hour())*nsPerHour +
		int64(t.Minute())*nsPerMinute +
		int64(t.Second())*nsPerSecond +
		int64(t.Nanosecond())
}

func cmpDayTime(d1 int, n1 int64, d2 int, n2 int64) int {
	switch {
	case d1 != d2 && d1 < d2:
		return -1
	case d1 != d2:
		return 1
	case n1 < n2:
		return -1
	case n1 > n2:
		return 1
	}
	return 0
}
