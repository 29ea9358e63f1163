package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_ReturnsUTC(t *testing.T) {
	t.Parallel()

	now := New().Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}

func TestNewFixed(t *testing.T) {
	t.Parallel()

	pinned := time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC)
	c := NewFixed(pinned)
	assert.Equal(t, pinned, c.Now())
	assert.Equal(t, pinned, c.Now())
}
