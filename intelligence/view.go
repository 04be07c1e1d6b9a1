package intelligence

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SegmentFilter narrows the view to a named audience.
type SegmentFilter string

const (
	SegmentAll     SegmentFilter = "all"
	SegmentVIP     SegmentFilter = "vip"
	SegmentHighLTV SegmentFilter = "highLtv"
	SegmentRepeat  SegmentFilter = "repeat"
	SegmentNew     SegmentFilter = "new"
	SegmentDormant SegmentFilter = "dormant"
)

// SortKey orders the view.
type SortKey string

const (
	SortRecent SortKey = "recent"
	SortLTV    SortKey = "ltv"
	SortOrders SortKey = "orders"
	SortName   SortKey = "name"
)

// StatusAll passes every status through the status filter.
const StatusAll = "all"

const (
	HighLTVThreshold = 500.0
	RepeatThreshold  = 3
	DormantAfterDays = 90
)

// ViewOptions are the dashboard table controls. Zero values pass everything through and
// sort by most recent activity.
type ViewOptions struct {
	Search  string
	Status  string
	Segment SegmentFilter
	Sort    SortKey
}

// ParseStatusFilter accepts "", "all" or a known status.
func ParseStatusFilter(raw string) (string, bool) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" || raw == StatusAll {
		return StatusAll, true
	}
	for _, s := range AllStatuses() {
		if string(s) == raw {
			return raw, true
		}
	}
	return "", false
}

// ParseSegmentFilter accepts "" or a known segment filter.
func ParseSegmentFilter(raw string) (SegmentFilter, bool) {
	switch f := SegmentFilter(strings.TrimSpace(raw)); f {
	case "", SegmentAll:
		return SegmentAll, true
	case SegmentVIP, SegmentHighLTV, SegmentRepeat, SegmentNew, SegmentDormant:
		return f, true
	}
	return "", false
}

// ParseSortKey accepts "" or a known sort key.
func ParseSortKey(raw string) (SortKey, bool) {
	switch k := SortKey(strings.TrimSpace(strings.ToLower(raw))); k {
	case "":
		return SortRecent, true
	case SortRecent, SortLTV, SortOrders, SortName:
		return k, true
	}
	return "", false
}

// View applies search, then the status filter, then the segment filter, then a stable
// sort. The input slice is not modified.
func View(customers []EnrichedCustomer, opts ViewOptions, now time.Time) []EnrichedCustomer {
	out := filter(customers, searchMatcher(opts.Search))

	if status := strings.TrimSpace(opts.Status); status != "" && status != StatusAll {
		out = filter(out, func(c EnrichedCustomer) bool { return string(c.Status) == status })
	}

	if match := segmentMatcher(opts.Segment, now); match != nil {
		out = filter(out, match)
	}

	sortCustomers(out, opts.Sort)
	return out
}

func filter(in []EnrichedCustomer, keep func(EnrichedCustomer) bool) []EnrichedCustomer {
	out := make([]EnrichedCustomer, 0, len(in))
	for _, c := range in {
		if keep == nil || keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func searchMatcher(search string) func(EnrichedCustomer) bool {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return nil
	}
	return func(c EnrichedCustomer) bool {
		if strings.Contains(strings.ToLower(c.FullName), q) || strings.Contains(strings.ToLower(c.Email), q) {
			return true
		}
		for _, tag := range c.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	}
}

func segmentMatcher(segment SegmentFilter, now time.Time) func(EnrichedCustomer) bool {
	switch segment {
	case SegmentVIP:
		return func(c EnrichedCustomer) bool { return c.IsVip }
	case SegmentHighLTV:
		return func(c EnrichedCustomer) bool { return finiteOrZero(c.LifetimeValue) >= HighLTVThreshold }
	case SegmentRepeat:
		return func(c EnrichedCustomer) bool {
			return c.OrdersCount >= RepeatThreshold || c.TotalVisits >= RepeatThreshold
		}
	case SegmentNew:
		return func(c EnrichedCustomer) bool {
			t, ok := c.CreatedAt.Time()
			if !ok {
				return false
			}
			t = t.In(now.Location())
			return t.Year() == now.Year() && t.Month() == now.Month()
		}
	case SegmentDormant:
		return func(c EnrichedCustomer) bool {
			var ref time.Time
			switch {
			case c.LastOrderAt != nil:
				ref = *c.LastOrderAt
			default:
				t, ok := c.LastVisitDate.Time()
				if !ok {
					return false
				}
				ref = t
			}
			return daysBetween(ref, now) >= DormantAfterDays
		}
	}
	return nil
}

var epoch = time.Unix(0, 0).UTC()

// recentActivity is lastOrderAt, then lastVisitDate, then createdAt, else the epoch.
func recentActivity(c EnrichedCustomer) time.Time {
	if c.LastOrderAt != nil {
		return *c.LastOrderAt
	}
	if t, ok := c.LastVisitDate.Time(); ok {
		return t
	}
	if t, ok := c.CreatedAt.Time(); ok {
		return t
	}
	return epoch
}

func sortCustomers(out []EnrichedCustomer, key SortKey) {
	var less func(a, b EnrichedCustomer) bool

	switch key {
	case SortLTV:
		less = func(a, b EnrichedCustomer) bool {
			return finiteOrZero(a.LifetimeValue) > finiteOrZero(b.LifetimeValue)
		}
	case SortOrders:
		less = func(a, b EnrichedCustomer) bool { return a.OrdersCount > b.OrdersCount }
	case SortName:
		col := collate.New(language.English)
		less = func(a, b EnrichedCustomer) bool {
			return col.CompareString(a.DisplayName, b.DisplayName) < 0
		}
	default:
		less = func(a, b EnrichedCustomer) bool {
			return recentActivity(a).After(recentActivity(b))
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
}
