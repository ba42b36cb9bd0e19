package chrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDefaultPattern(t *testing.T) {
	c := refUTC(t)
	assert.Equal(t, "2023-11-14 22:13:20", c.Format())
}

func TestFormatPattern(t *testing.T) {
	c := refUTC(t)

	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"default tokens", "yyyy-MM-dd HH:mm:ss", "2023-11-14 22:13:20"},
		{"date only", "yyyy/MM/dd", "2023/11/14"},
		{"time only", "HH:mm", "22:13"},
		{"compact", "yyyyMMddHHmmss", "20231114221320"},
		{"unknown tokens pass through", "yyyy-QQ-dd", "2023-QQ-14"},
		{"quoted literal", "yyyy 'yyyy' MM", "2023 yyyy 11"},
		{"doubled quote", "HH''mm", "22'13"},
		{"non letters verbatim", "dd.MM.yyyy +", "14.11.2023 +"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.FormatPattern(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPatternErrors(t *testing.T) {
	c := refUTC(t)

	_, err := c.FormatPattern("yyyy 'oops")
	assert.ErrorIs(t, err, ErrInvalidPattern)

	_, err = c.FormatPattern("")
	assert.ErrorIs(t, err, ErrNilInput)
}

func TestFormatInZone(t *testing.T) {
	ny, err := refUTC(t).WithZone("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "2023-11-14 17:13:20", ny.Format())
}
