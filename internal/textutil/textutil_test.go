package textutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "09:30", TimeAgo(now.Add(-150*time.Minute), now))
	assert.Equal(t, "12:00", TimeAgo(now.Add(-24*time.Hour), now))
	assert.Equal(t, "Mar 9, 2026", TimeAgo(now.Add(-25*time.Hour), now))
}

func TestFormatInputDate(t *testing.T) {
	d := time.Date(2026, 1, 5, 7, 3, 0, 0, time.UTC)

	assert.Equal(t, "2026-01-05", FormatInputDate(d, false))
	assert.Equal(t, "2026-01-05T07:03", FormatInputDate(d, true))
}

func TestParseInputDate(t *testing.T) {
	got, err := ParseInputDate("2026-01-05", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseInputDate("2026-01-05T07:03", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Hour())

	_, err = ParseInputDate("soon", time.UTC)
	assert.Error(t, err)
}

func TestDefaultExpiration(t *testing.T) {
	now := time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2027-01-01", DefaultExpiration(now))
}

func TestRandomHex(t *testing.T) {
	assert.Len(t, RandomHex(0), 40)
	assert.Len(t, RandomHex(10), 10)
	assert.Regexp(t, "^[0-9a-f]+$", RandomHex(16))
	assert.NotEqual(t, RandomHex(32), RandomHex(32))
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []int
	}{
		{"to front", 3, 0, []int{4, 1, 2, 3}},
		{"to back", 0, 3, []int{2, 3, 4, 1}},
		{"same index", 2, 2, []int{1, 2, 3, 4}},
		{"out of range", 5, 0, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := []int{1, 2, 3, 4}
			assert.Equal(t, tt.want, Move(s, tt.from, tt.to))
		})
	}

	t.Run("single element", func(t *testing.T) {
		assert.Equal(t, []string{"a"}, Move([]string{"a"}, 0, 0))
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hell…", Truncate("hello world", 5))
	assert.Equal(t, "héllo…", Truncate("héllo wörld", 6))
}
