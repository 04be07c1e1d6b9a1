package intelligence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, time.March, 20, 15, 30, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := testNow.Add(-time.Duration(n) * day)
	return &t
}

func TestClassifyPrecedence(t *testing.T) {
	c := EnrichedCustomer{
		CustomerRecord: CustomerRecord{IsBlacklisted: true, IsVip: true},
		LastOrderAt:    daysAgo(1),
	}
	assert.Equal(t, StatusBlacklisted, Classify(c, testNow))

	c.IsBlacklisted = false
	assert.Equal(t, StatusVIP, Classify(c, testNow))

	c.IsVip = false
	assert.Equal(t, StatusActive, Classify(c, testNow))
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		days   int
		orders int
		want   Status
	}{
		{0, 0, StatusActive},
		{14, 0, StatusActive},
		{15, 0, StatusEngaged},
		{45, 0, StatusEngaged},
		{46, 0, StatusAtRisk},
		{120, 0, StatusAtRisk},
		{121, 1, StatusInactive},
		{121, 0, StatusProspect},
	}
	for _, tc := range cases {
		c := EnrichedCustomer{LastOrderAt: daysAgo(tc.days), OrdersCount: tc.orders}
		assert.Equal(t, tc.want, Classify(c, testNow), "days=%d orders=%d", tc.days, tc.orders)
	}
}

func TestClassifyPartialDaysFloor(t *testing.T) {
	last := testNow.Add(-(14*day + 23*time.Hour))
	assert.Equal(t, StatusActive, Classify(EnrichedCustomer{LastOrderAt: &last}, testNow))

	last = testNow.Add(-15 * day)
	assert.Equal(t, StatusEngaged, Classify(EnrichedCustomer{LastOrderAt: &last}, testNow))
}

func TestClassifyVisitsKeepOldCustomerInactive(t *testing.T) {
	c := EnrichedCustomer{
		CustomerRecord: CustomerRecord{TotalVisits: 2},
		LastOrderAt:    daysAgo(300),
	}
	assert.Equal(t, StatusInactive, Classify(c, testNow))
}

func TestClassifyActivityFallbacks(t *testing.T) {
	visit := NewTimestamp(testNow.Add(-20 * day))
	created := NewTimestamp(testNow.Add(-60 * day))

	c := EnrichedCustomer{CustomerRecord: CustomerRecord{LastVisitDate: visit, CreatedAt: created}}
	assert.Equal(t, StatusEngaged, Classify(c, testNow))

	c.LastVisitDate = "not a date"
	assert.Equal(t, StatusAtRisk, Classify(c, testNow))

	c.CreatedAt = "31/02/2024"
	assert.Equal(t, StatusProspect, Classify(c, testNow))
}

func TestClassifyNoActivityIsProspect(t *testing.T) {
	assert.Equal(t, StatusProspect, Classify(EnrichedCustomer{}, testNow))
	assert.Equal(t, StatusProspect, Classify(EnrichedCustomer{OrdersCount: 4}, testNow))
}

func TestClassifyFutureActivityIsActive(t *testing.T) {
	future := testNow.Add(3 * day)
	assert.Equal(t, StatusActive, Classify(EnrichedCustomer{LastOrderAt: &future}, testNow))
}

func TestDaysBetweenFloorsNegative(t *testing.T) {
	assert.Equal(t, -1, daysBetween(testNow.Add(time.Hour), testNow))
	assert.Equal(t, 0, daysBetween(testNow.Add(-time.Hour), testNow))
	assert.Equal(t, 2, daysBetween(testNow.Add(-49*time.Hour), testNow))
}
