package chrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveZone(t *testing.T) {
	loc, err := ResolveZone("Europe/Paris")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", loc.String())

	// second lookup is served from the cache
	cached, err := ResolveZone("Europe/Paris")
	require.NoError(t, err)
	assert.Same(t, loc, cached)
}

func TestResolveZoneErrors(t *testing.T) {
	_, err := ResolveZone("Not/AZone")
	assert.ErrorIs(t, err, ErrInvalidZone)

	_, err = ResolveZone("")
	assert.ErrorIs(t, err, ErrNilInput)
}

func TestZoneProjectionPreservesInstant(t *testing.T) {
	c := refUTC(t)
	for _, zone := range []string{"UTC", "America/New_York", "Asia/Tokyo", "Australia/Eucla"} {
		z, err := c.WithZone(zone)
		require.NoError(t, err, zone)
		assert.Equal(t, c.UnixMilli(), z.UnixMilli(), zone)
	}
}
