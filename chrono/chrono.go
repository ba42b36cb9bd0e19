// Package chrono provides an immutable, zone-aware calendar value
// with unit-granular arithmetic, difference computation,
// component extraction and pattern formatting.
package chrono

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Year bounds for representable instants, java.time alike
const (
	MinYear = -999999999
	MaxYear = 999999999
)

// Chrono is an absolute instant paired with a time zone.
// The zero value is the epoch in UTC. Values are immutable:
// every operation returns a new Chrono and never mutates the receiver,
// so values are safe to share between goroutines without coordination.
type Chrono struct {
	t    time.Time
	zone string
}

// Now captures the current instant in the default zone.
func Now() Chrono {
	loc := DefaultLocation()
	return Chrono{t: readClock().In(loc), zone: loc.String()}
}

// NowIn captures the current instant in the given zone.
func NowIn(zoneID string) (Chrono, error) {
	loc, err := ResolveZone(zoneID)
	if err != nil {
		return Chrono{}, err
	}
	return Chrono{t: readClock().In(loc), zone: loc.String()}, nil
}

// From wraps a legacy absolute-time value in the default zone.
func From(t time.Time) Chrono {
	loc := DefaultLocation()
	return Chrono{t: t.In(loc), zone: loc.String()}
}

// FromMillis wraps an epoch-milliseconds instant in the default zone.
func FromMillis(ms int64) Chrono {
	return From(time.UnixMilli(ms))
}

// In wraps a legacy absolute-time value in the given zone.
func In(t time.Time, zoneID string) (Chrono, error) {
	loc, err := ResolveZone(zoneID)
	if err != nil {
		return Chrono{}, err
	}
	return Chrono{t: t.In(loc), zone: loc.String()}, nil
}

// WithZone projects the same instant into another zone.
// The instant does not change, only the calendar interpretation.
func (c Chrono) WithZone(zoneID string) (Chrono, error) {
	loc, err := ResolveZone(zoneID)
	if err != nil {
		return Chrono{}, err
	}
	return c.WithLocation(loc), nil
}

// WithLocation projects the same instant into a resolved location.
func (c Chrono) WithLocation(loc *time.Location) Chrono {
	if loc == nil {
		loc = DefaultLocation()
	}
	return Chrono{t: c.t.In(loc), zone: loc.String()}
}

// Zoned returns the zone-qualified calendar projection already held.
func (c Chrono) Zoned() time.Time { return c.t }

// ZoneID returns the associated zone identifier.
func (c Chrono) ZoneID() string { return c.zone }

// Location returns the associated zone rules.
func (c Chrono) Location() *time.Location { return c.t.Location() }

// UnixMilli returns the absolute instant as epoch milliseconds,
// zone-independent.
func (c Chrono) UnixMilli() int64 { return c.t.UnixMilli() }

// Time drops the zone association and returns the bare absolute value.
func (c Chrono) Time() time.Time { return c.t }

// DateOnly drops time-of-day and zone: the civil date at midnight UTC.
// The projection is lossy, the original zone cannot be reconstructed.
func (c Chrono) DateOnly() time.Time {
	y, m, d := c.t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateTime drops sub-second and zone info: the civil date-time
// at second precision in UTC.
func (c Chrono) DateTime() time.Time {
	y, m, d := c.t.Date()
	return time.Date(y, m, d, c.t.Hour(), c.t.Minute(), c.t.Second(), 0, time.UTC)
}

// Equal reports whether both values hold the same instant,
// regardless of zone.
func (c Chrono) Equal(other Chrono) bool { return c.t.Equal(other.t) }

func (c Chrono) String() string { return fmt.Sprintf("%s[%s]", c.Format(), c.zone) }

// MarshalJSON implements json.Marshaler, epoch millis as string.
func (c Chrono) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 16)
	b = append(b, '"')
	b = strconv.AppendInt(b, c.t.UnixMilli(), 10)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements json.Unmarshaler.
// It accepts epoch millis, quoted or bare; the zone falls back to the
// process default as it is not part of the wire form.
func (c *Chrono) UnmarshalJSON(input []byte) error {
	s := string(bytes.Trim(input, `"`))
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parse epoch millis: %w", err)
	}
	*c = FromMillis(ms)
	return nil
}

// checkRange guards the representable year range.
func checkRange(t time.Time, zone string) (Chrono, error) {
	if y := t.Year(); y < MinYear || y > MaxYear {
		return Chrono{}, fmt.Errorf("%w: year %d out of range", ErrTemporalOverflow, y)
	}
	return Chrono{t: t, zone: zone}, nil
}
