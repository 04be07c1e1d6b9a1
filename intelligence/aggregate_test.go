package intelligence

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateDualKey(t *testing.T) {
	byID, byEmail := Aggregate([]OrderRecord{
		{ID: "o1", CustomerID: "c1", CustomerEmail: "a@b.com", Total: "20"},
	})

	require.Contains(t, byID, "c1")
	require.Contains(t, byEmail, "a@b.com")
	assert.Equal(t, 1, byID["c1"].OrdersCount)
	assert.Equal(t, 1, byEmail["a@b.com"].OrdersCount)
}

func TestAggregateNormalisesEmail(t *testing.T) {
	_, byEmail := Aggregate([]OrderRecord{
		{ID: "o1", CustomerEmail: "  Ana@Example.COM ", Total: "10"},
		{ID: "o2", CustomerEmail: "ana@example.com", Total: "5.5"},
	})

	require.Len(t, byEmail, 1)
	assert.Equal(t, 2, byEmail["ana@example.com"].OrdersCount)
	assert.Equal(t, 15.5, byEmail["ana@example.com"].LifetimeValue)
}

func TestAggregateBadTotalsStillCount(t *testing.T) {
	byID, _ := Aggregate([]OrderRecord{
		{ID: "o1", CustomerID: "c1", Total: "abc"},
		{ID: "o2", CustomerID: "c1", Total: "NaN"},
		{ID: "o3", CustomerID: "c1", Total: "+Inf"},
		{ID: "o4", CustomerID: "c1", Total: ""},
		{ID: "o5", CustomerID: "c1", Total: " 12.25 "},
	})

	assert.Equal(t, 5, byID["c1"].OrdersCount)
	assert.Equal(t, 12.25, byID["c1"].LifetimeValue)
}

func TestAggregateLastOrderIgnoresBadTimestamps(t *testing.T) {
	byID, _ := Aggregate([]OrderRecord{
		{ID: "o1", CustomerID: "c1", Total: "1", CreatedAt: "2025-01-05T10:00:00Z"},
		{ID: "o2", CustomerID: "c1", Total: "1", CreatedAt: "yesterday"},
		{ID: "o3", CustomerID: "c1", Total: "1", CreatedAt: "2025-02-01 08:00:00+00"},
	})

	agg := byID["c1"]
	assert.Equal(t, 3, agg.OrdersCount)
	require.NotNil(t, agg.LastOrderAt)
	assert.Equal(t, time.Date(2025, time.February, 1, 8, 0, 0, 0, time.UTC), *agg.LastOrderAt)
}

func TestAggregateNoTimestampLeavesLastOrderNil(t *testing.T) {
	byID, _ := Aggregate([]OrderRecord{{ID: "o1", CustomerID: "c1", Total: "3"}})
	assert.Nil(t, byID["c1"].LastOrderAt)
}

func TestAggregateSkipsMissingKeys(t *testing.T) {
	byID, byEmail := Aggregate([]OrderRecord{
		{ID: "o1", CustomerID: "  ", CustomerEmail: "", Total: "9"},
	})
	assert.Empty(t, byID)
	assert.Empty(t, byEmail)

	_, ok := byID["missing"]
	assert.False(t, ok)
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	orders := []OrderRecord{
		{ID: "o1", CustomerID: "c1", CustomerEmail: "a@b.com", Total: "0.1", CreatedAt: "2025-01-01T00:00:00Z"},
		{ID: "o2", CustomerID: "c1", Total: "0.2", CreatedAt: "2025-01-03T00:00:00Z"},
		{ID: "o3", CustomerEmail: "A@B.com", Total: "0.3", CreatedAt: "2025-01-02T00:00:00Z"},
		{ID: "o4", CustomerID: "c2", Total: "19.99", CreatedAt: "bad"},
		{ID: "o5", CustomerID: "c2", CustomerEmail: "z@y.com", Total: "1e3"},
		{ID: "o6", CustomerID: "c1", Total: "7.77", CreatedAt: "2024-12-31"},
		{ID: "o7", CustomerID: "c3", Total: "x", CreatedAt: "2025-03-01T12:00:00+02:00"},
	}
	wantID, wantEmail := Aggregate(orders)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		shuffled := append([]OrderRecord(nil), orders...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		gotID, gotEmail := Aggregate(shuffled)
		require.Equal(t, wantID, gotID)
		require.Equal(t, wantEmail, gotEmail)
	}

	assert.Equal(t, 8.07, wantID["c1"].LifetimeValue)
	assert.Equal(t, 1019.99, wantID["c2"].LifetimeValue)
}

func TestAggregateRoundsEachTotalToCents(t *testing.T) {
	byID, _ := Aggregate([]OrderRecord{
		{ID: "o1", CustomerID: "c1", Total: "0.004"},
		{ID: "o2", CustomerID: "c1", Total: "0.004"},
		{ID: "o3", CustomerID: "c1", Total: "0.004"},
		{ID: "o4", CustomerID: "c2", Total: "10.11"},
		{ID: "o5", CustomerID: "c2", Total: "0.1"},
		{ID: "o6", CustomerID: "c2", Total: "0.2"},
	})

	assert.Equal(t, 3, byID["c1"].OrdersCount)
	assert.Equal(t, 0.0, byID["c1"].LifetimeValue)
	assert.Equal(t, 10.41, byID["c2"].LifetimeValue)
}
