package intelligence

import "math"

// Segment is a named group of lifecycle statuses shown in the dashboard breakdown.
type Segment struct {
	Key      string
	Name     string
	Statuses []Status
}

// The five segments partition AllStatuses.
var segments = []Segment{
	{Key: "vip", Name: "VIP Advocates", Statuses: []Status{StatusVIP}},
	{Key: "active", Name: "Active Guests", Statuses: []Status{StatusActive, StatusEngaged}},
	{Key: "at-risk", Name: "At-Risk", Statuses: []Status{StatusAtRisk}},
	{Key: "dormant", Name: "Dormant", Statuses: []Status{StatusInactive, StatusProspect}},
	{Key: "blacklisted", Name: "Blacklisted", Statuses: []Status{StatusBlacklisted}},
}

// Segments returns a copy of the fixed segment definitions, in display order.
func Segments() []Segment {
	out := make([]Segment, len(segments))
	for i, s := range segments {
		out[i] = Segment{Key: s.Key, Name: s.Name, Statuses: append([]Status(nil), s.Statuses...)}
	}
	return out
}

// SummarizeMetrics computes totals and averages. An empty set yields all zeros.
func SummarizeMetrics(customers []EnrichedCustomer) MetricsSummary {
	m := MetricsSummary{Total: len(customers)}
	if m.Total == 0 {
		return m
	}

	var orders int
	var ltv float64
	for _, c := range customers {
		if c.IsVip {
			m.VipCount++
		}
		orders += c.OrdersCount
		ltv += finiteOrZero(c.LifetimeValue)
	}

	m.AvgOrders = float64(orders) / float64(m.Total)
	m.AvgLifetimeValue = ltv / float64(m.Total)
	return m
}

// SummarizeSegments counts customers per segment.
func SummarizeSegments(customers []EnrichedCustomer) []SegmentBucket {
	counts := make(map[Status]int, len(AllStatuses()))
	for _, c := range customers {
		counts[c.Status]++
	}

	total := len(customers)
	out := make([]SegmentBucket, 0, len(segments))
	for _, s := range Segments() {
		count := 0
		for _, status := range s.Statuses {
			count += counts[status]
		}
		out = append(out, SegmentBucket{
			Key:      s.Key,
			Name:     s.Name,
			Statuses: s.Statuses,
			Count:    count,
			Percent:  percentOf(count, total),
		})
	}
	return out
}

// percentOf rounds half up.
func percentOf(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(count)/float64(total)*100 + 0.5))
}
