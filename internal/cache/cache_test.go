package cache

import (
	"testing"
	"time"

	"github.com/jdlms/aws-costs/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryCache_SetGet(t *testing.T) {
	c := New(time.Minute)
	key := Key("2025-03-01", "2025-04-01")

	_, ok := c.Get(key)
	assert.False(t, ok)

	c.Set(key, types.CostSummary{Period: "March 2025", TotalCost: 42})

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, "March 2025", got.Period)
	assert.Equal(t, 1, c.Len())
}

func TestSummaryCache_Expiry(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Set(Key("a", "b"), types.CostSummary{})

	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get(Key("a", "b"))
	assert.False(t, ok)
}
