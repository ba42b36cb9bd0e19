package chrono

import (
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// ZoneCache memoizes resolved IANA zone identifiers,
// tzdata lookups hit the filesystem on some platforms
var ZoneCache = cache.New(cache.NoExpiration, 0)

// ResolveZone resolves an IANA zone identifier to a location.
// It fails with ErrInvalidZone when the identifier is not resolvable.
func ResolveZone(zoneID string) (*time.Location, error) {
	if zoneID == "" {
		return nil, fmt.Errorf("%w: empty zone id", ErrNilInput)
	}
	if v, ok := ZoneCache.Get(zoneID); ok {
		return v.(*time.Location), nil
	}
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidZone, zoneID)
	}
	ZoneCache.Set(zoneID, loc, cache.NoExpiration)
	return loc, nil
}

var (
	defaultZoneMu sync.RWMutex
	defaultZone   = time.Local
)

// DefaultLocation returns the zone used when none is supplied at construction.
// It is time.Local unless overridden by SetDefaultZone.
func DefaultLocation() *time.Location {
	defaultZoneMu.RLock()
	defer defaultZoneMu.RUnlock()
	return defaultZone
}

// SetDefaultZone overrides the process default zone for Now and From.
func SetDefaultZone(zoneID string) error {
	loc, err := ResolveZone(zoneID)
	if err != nil {
		return err
	}
	defaultZoneMu.Lock()
	defaultZone = loc
	defaultZoneMu.Unlock()
	return nil
}

// SetDefaultLocation overrides the process default zone with a resolved location.
func SetDefaultLocation(loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}
	defaultZoneMu.Lock()
	defaultZone = loc
	defaultZoneMu.Unlock()
}
