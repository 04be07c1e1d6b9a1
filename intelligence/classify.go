package intelligence

import "time"

// Recency thresholds, in whole days since the last known activity.
const (
	ActiveWithinDays  = 14
	EngagedWithinDays = 45
	AtRiskWithinDays  = 120
)

const day = 24 * time.Hour

// Classify assigns exactly one lifecycle status. Blacklist beats VIP, VIP beats recency.
func Classify(c EnrichedCustomer, now time.Time) Status {
	if c.IsBlacklisted {
		return StatusBlacklisted
	}
	if c.IsVip {
		return StatusVIP
	}

	last, ok := lastActivity(c)
	if !ok {
		return StatusProspect
	}

	days := daysBetween(last, now)
	switch {
	case days <= ActiveWithinDays:
		return StatusActive
	case days <= EngagedWithinDays:
		return StatusEngaged
	case days <= AtRiskWithinDays:
		return StatusAtRisk
	case c.OrdersCount > 0 || c.TotalVisits > 0:
		return StatusInactive
	default:
		return StatusProspect
	}
}

// lastActivity resolves lastOrderAt, then lastVisitDate, then createdAt.
func lastActivity(c EnrichedCustomer) (time.Time, bool) {
	if c.LastOrderAt != nil && !c.LastOrderAt.IsZero() {
		return *c.LastOrderAt, true
	}
	if t, ok := c.LastVisitDate.Time(); ok {
		return t, true
	}
	return c.CreatedAt.Time()
}

// daysBetween returns the whole days elapsed from -> to, floored.
func daysBetween(from, to time.Time) int {
	d := to.Sub(from)
	days := d / day
	if d < 0 && d%day != 0 {
		days--
	}
	return int(days)
}
