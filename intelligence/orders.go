package intelligence

import (
	"sort"
	"time"
)

// RecentOrders returns the customer's orders, matched by id or normalised email,
// newest first. Orders with unparseable timestamps sort last. limit <= 0 means no limit.
func RecentOrders(orders []OrderRecord, c CustomerRecord, limit int) []OrderRecord {
	email := NormalizeEmail(c.Email)

	out := make([]OrderRecord, 0)
	for _, o := range orders {
		byID := c.ID != "" && o.CustomerID == c.ID
		byEmail := email != "" && NormalizeEmail(o.CustomerEmail) == email
		if byID || byEmail {
			out = append(out, o)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return orderTime(out[i]).After(orderTime(out[j]))
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func orderTime(o OrderRecord) time.Time {
	t, _ := o.CreatedAt.Time()
	return t
}
