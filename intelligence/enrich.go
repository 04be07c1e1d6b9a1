package intelligence

import (
	"strings"
	"time"
)

// Enrich joins customers with their order aggregates and classifies them.
// Aggregates are looked up by id first and by normalised email only when the id misses.
// Output order follows the input order.
func Enrich(customers []CustomerRecord, byID, byEmail map[string]OrderAggregate, now time.Time) []EnrichedCustomer {
	out := make([]EnrichedCustomer, 0, len(customers))
	for _, c := range customers {
		agg := lookupAggregate(c, byID, byEmail)

		e := EnrichedCustomer{
			CustomerRecord: c,
			DisplayName:    DisplayName(c),
			OrdersCount:    agg.OrdersCount,
			LifetimeValue:  agg.LifetimeValue,
			LastOrderAt:    agg.LastOrderAt,
			Location:       ExtractLocation(c.Preferences, c.Notes),
		}
		if c.TotalSpent != nil {
			e.LifetimeValue = *c.TotalSpent
		}
		if e.LastOrderAt == nil {
			if t, ok := c.LastVisitDate.Time(); ok {
				e.LastOrderAt = &t
			}
		}
		e.Status = Classify(e, now)

		out = append(out, e)
	}
	return out
}

func lookupAggregate(c CustomerRecord, byID, byEmail map[string]OrderAggregate) OrderAggregate {
	if c.ID != "" {
		if agg, ok := byID[c.ID]; ok {
			return agg
		}
	}
	if email := NormalizeEmail(c.Email); email != "" {
		if agg, ok := byEmail[email]; ok {
			return agg
		}
	}
	return OrderAggregate{}
}

var locationPreferenceKeys = []string{"city", "location"}

const notesCityPrefix = "city:"

// ExtractLocation reads the city from structured preferences, falling back to the first
// "City: ..." line of the free-text notes. Returns nil when neither source has one.
func ExtractLocation(preferences map[string]interface{}, notes string) *string {
	for _, key := range locationPreferenceKeys {
		if s, ok := preferences[key].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return &s
			}
		}
	}

	for _, line := range strings.Split(notes, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < len(notesCityPrefix) || !strings.EqualFold(line[:len(notesCityPrefix)], notesCityPrefix) {
			continue
		}
		city := strings.TrimSpace(line[len(notesCityPrefix):])
		if city == "" {
			return nil
		}
		return &city
	}
	return nil
}
