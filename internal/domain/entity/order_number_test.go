package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderNumberPrefix_UsesUTCDay(t *testing.T) {
	t.Parallel()

	kst := time.FixedZone("KST", 9*60*60)
	// 2025-02-06 01:00 KST is still 2025-02-05 in UTC.
	at := time.Date(2025, 2, 6, 1, 0, 0, 0, kst)

	assert.Equal(t, "ORD-20250205-", OrderNumberPrefix(at))
}

func TestNextOrderNumber_SequentialWithinDay(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC)

	first, err := NextOrderNumber(day, "")
	require.NoError(t, err)
	assert.Equal(t, "ORD-20250205-0001", first)

	second, err := NextOrderNumber(day, first)
	require.NoError(t, err)
	assert.Equal(t, "ORD-20250205-0002", second)

	tenth, err := NextOrderNumber(day, "ORD-20250205-0009")
	require.NoError(t, err)
	assert.Equal(t, "ORD-20250205-0010", tenth)
}

func TestNextOrderNumber_Errors(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC)

	_, err := NextOrderNumber(day, "ORD-20250204-0003")
	assert.Error(t, err)

	_, err = NextOrderNumber(day, "ORD-20250205-ABCD")
	assert.Error(t, err)

	_, err = NextOrderNumber(day, "ORD-20250205-9999")
	assert.ErrorIs(t, err, ErrOrderNumberExhausted)
}
