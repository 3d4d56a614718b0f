package link

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorp5438/articles-app/internal/errors"
)

func TestRoundTrip(t *testing.T) {
	l := Generate(24)
	require.NotEmpty(t, l.Random)

	parsed, err := Parse(l.String())
	require.NoError(t, err)
	assert.Equal(t, l.Random, parsed.Random)
	assert.Equal(t, l.CreatedAt.Unix(), parsed.CreatedAt.Unix())
	assert.Equal(t, l.TTLHours, parsed.TTLHours)
}

func TestExpiryBoundary(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := Link{Random: "abc", CreatedAt: created, TTLHours: 2}
	expires := created.Add(2 * time.Hour)

	assert.False(t, l.ExpiredAt(expires.Add(-time.Nanosecond)), "valid strictly before expiry")
	assert.True(t, l.ExpiredAt(expires), "invalid at the expiry instant")
	assert.True(t, l.ExpiredAt(expires.Add(time.Second)), "invalid after expiry")
}

func TestParseMalformed(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no separators", "abcdef"},
		{"too few parts", "abc_123"},
		{"too many parts", "a_b_c_d"},
		{"empty random", "_123_24"},
		{"non numeric timestamp", "abc_xyz_24"},
		{"non numeric ttl", "abc_123_xyz"},
		{"zero ttl", "abc_123_0"},
		{"negative ttl", "abc_123_-1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.in)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, errors.StatusCode(err))
		})
	}
}
