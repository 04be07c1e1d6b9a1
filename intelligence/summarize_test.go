package intelligence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeMetricsEmpty(t *testing.T) {
	m := SummarizeMetrics(nil)
	assert.Equal(t, MetricsSummary{}, m)
	assert.False(t, math.IsNaN(m.AvgOrders))
	assert.False(t, math.IsNaN(m.AvgLifetimeValue))
}

func TestSummarizeMetrics(t *testing.T) {
	customers := []EnrichedCustomer{
		{CustomerRecord: CustomerRecord{IsVip: true}, OrdersCount: 4, LifetimeValue: 300},
		{OrdersCount: 1, LifetimeValue: math.NaN()},
		{OrdersCount: 1, LifetimeValue: 60},
	}

	m := SummarizeMetrics(customers)
	assert.Equal(t, 3, m.Total)
	assert.Equal(t, 1, m.VipCount)
	assert.Equal(t, 2.0, m.AvgOrders)
	assert.Equal(t, 120.0, m.AvgLifetimeValue)
}

func TestSegmentsPartitionStatuses(t *testing.T) {
	for _, status := range AllStatuses() {
		owners := 0
		for _, s := range Segments() {
			for _, member := range s.Statuses {
				if member == status {
					owners++
				}
			}
		}
		assert.Equal(t, 1, owners, "status %q must belong to exactly one segment", status)
	}

	total := 0
	for _, s := range Segments() {
		total += len(s.Statuses)
	}
	assert.Equal(t, len(AllStatuses()), total)
}

func TestSummarizeSegmentsOrderAndCounts(t *testing.T) {
	customers := []EnrichedCustomer{
		{Status: StatusVIP},
		{Status: StatusActive},
		{Status: StatusEngaged},
		{Status: StatusAtRisk},
		{Status: StatusInactive},
		{Status: StatusProspect},
		{Status: StatusProspect},
		{Status: StatusBlacklisted},
	}

	buckets := SummarizeSegments(customers)
	require.Len(t, buckets, 5)

	names := make([]string, 0, len(buckets))
	counts := make([]int, 0, len(buckets))
	sum := 0
	for _, b := range buckets {
		names = append(names, b.Name)
		counts = append(counts, b.Count)
		sum += b.Count
	}
	assert.Equal(t, []string{"VIP Advocates", "Active Guests", "At-Risk", "Dormant", "Blacklisted"}, names)
	assert.Equal(t, []int{1, 2, 1, 3, 1}, counts)
	assert.Equal(t, len(customers), sum)
	assert.Equal(t, 38, buckets[3].Percent)
	assert.Equal(t, 13, buckets[0].Percent)
}

func TestSummarizeSegmentsPercentRounding(t *testing.T) {
	buckets := SummarizeSegments([]EnrichedCustomer{
		{Status: StatusVIP},
		{Status: StatusActive},
		{Status: StatusEngaged},
	})
	assert.Equal(t, 33, buckets[0].Percent)
	assert.Equal(t, 67, buckets[1].Percent)
	assert.Equal(t, 0, buckets[2].Percent)
}

func TestSummarizeSegmentsEmpty(t *testing.T) {
	buckets := SummarizeSegments(nil)
	require.Len(t, buckets, 5)
	for _, b := range buckets {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.Percent)
	}
}

func TestPercentOfRoundsHalfUp(t *testing.T) {
	assert.Equal(t, 50, percentOf(1, 2))
	assert.Equal(t, 13, percentOf(1, 8))
	assert.Equal(t, 100, percentOf(3, 3))
}

func TestSegmentsReturnsCopy(t *testing.T) {
	s := Segments()
	s[0].Statuses[0] = StatusProspect
	assert.Equal(t, StatusVIP, Segments()[0].Statuses[0])
}
