package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer()
	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)

	t.Run("empty input", func(t *testing.T) {
		assert.True(t, n.Normalize("", base).IsZero())
		assert.True(t, n.Normalize("   ", base).IsZero())
	})

	t.Run("classifier timestamp layout", func(t *testing.T) {
		ts := n.Normalize("2026-08-28 16:00:00", base)
		assert.Equal(t, time.Date(2026, 8, 28, 16, 0, 0, 0, time.Local), ts)
	})

	t.Run("classifier date layout", func(t *testing.T) {
		ts := n.Normalize("2026-08-29", base)
		assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.Local), ts)
	})

	t.Run("natural language tomorrow", func(t *testing.T) {
		ts := n.Normalize("tomorrow at 5pm", base)
		require.False(t, ts.IsZero())
		assert.Equal(t, base.AddDate(0, 0, 1).Day(), ts.Day())
		assert.Equal(t, 17, ts.Hour())
	})

	t.Run("weekday names resolve to the future", func(t *testing.T) {
		ts := n.Normalize("next friday", base)
		require.False(t, ts.IsZero())
		assert.True(t, ts.After(base))
		assert.Equal(t, time.Friday, ts.Weekday())
	})

	t.Run("unparsable input", func(t *testing.T) {
		assert.True(t, n.Normalize("certainly not a date", base).IsZero())
	})
}
