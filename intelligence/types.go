// Package intelligence derives guest lifecycle status, order aggregates, dashboard
// metrics and segment breakdowns from raw customer and order rows.
//
// Everything in this package is a pure function of its inputs and an explicit "now".
// Malformed input never produces an error: dates that cannot be parsed are treated as
// absent and totals that cannot be parsed contribute zero.
package intelligence

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Status is the lifecycle label assigned to a customer.
type Status string

const (
	StatusVIP         Status = "vip"
	StatusBlacklisted Status = "blacklisted"
	StatusActive      Status = "active"
	StatusEngaged     Status = "engaged"
	StatusAtRisk      Status = "at-risk"
	StatusInactive    Status = "inactive"
	StatusProspect    Status = "prospect"
)

// AllStatuses lists every value Classify can return.
func AllStatuses() []Status {
	return []Status{
		StatusVIP,
		StatusBlacklisted,
		StatusActive,
		StatusEngaged,
		StatusAtRisk,
		StatusInactive,
		StatusProspect,
	}
}

var statusLabels = map[Status]string{
	StatusVIP:         "VIP",
	StatusBlacklisted: "Blacklisted",
	StatusActive:      "Active",
	StatusEngaged:     "Engaged",
	StatusAtRisk:      "At risk",
	StatusInactive:    "Inactive",
	StatusProspect:    "Prospect",
}

// StatusLabel returns the human readable label for a status.
func StatusLabel(s Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ════════════════════════════════════════════════════════════
// Raw values from the store
// ════════════════════════════════════════════════════════════

// Timestamp is a timestamp as it arrived from the store or a change payload.
// It keeps the raw text so that unparseable values degrade to "absent" instead of
// failing the whole fetch.
type Timestamp string

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NewTimestamp wraps a time value.
func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return ""
	}
	return Timestamp(t.UTC().Format(time.RFC3339Nano))
}

// Time parses the timestamp. ok is false for empty, malformed or zero values.
func (ts Timestamp) Time() (time.Time, bool) {
	raw := strings.TrimSpace(string(ts))
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if t.IsZero() {
			return time.Time{}, false
		}
		return t.UTC(), true
	}
	return time.Time{}, false
}

// Scan implements sql.Scanner.
func (ts *Timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
	case time.Time:
		*ts = NewTimestamp(v)
	case string:
		*ts = Timestamp(v)
	case []byte:
		*ts = Timestamp(string(v))
	default:
		return fmt.Errorf("intelligence: cannot scan %T into Timestamp", src)
	}
	return nil
}

// Value implements driver.Valuer. Unparseable text is written as NULL.
func (ts Timestamp) Value() (driver.Value, error) {
	t, ok := ts.Time()
	if !ok {
		return nil, nil
	}
	return t, nil
}

// Amount is a monetary total that may arrive as a number or a numeric string.
type Amount string

// NewAmount wraps a float value.
func NewAmount(v float64) Amount {
	return Amount(strconv.FormatFloat(v, 'f', -1, 64))
}

// Float parses the amount. ok is false when it is empty, unparseable or non-finite.
func (a Amount) Float() (float64, bool) {
	raw := strings.TrimSpace(string(a))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// UnmarshalJSON accepts numbers, numeric strings and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*a = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
	default:
		*a = Amount(raw)
	}
	return nil
}

// MarshalJSON writes a number, or null when the amount is not a finite number.
func (a Amount) MarshalJSON() ([]byte, error) {
	v, ok := a.Float()
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = ""
	case float64:
		*a = NewAmount(v)
	case float32:
		*a = NewAmount(float64(v))
	case int64:
		*a = Amount(strconv.FormatInt(v, 10))
	case string:
		*a = Amount(v)
	case []byte:
		*a = Amount(string(v))
	default:
		return fmt.Errorf("intelligence: cannot scan %T into Amount", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (a Amount) Value() (driver.Value, error) {
	v, ok := a.Float()
	if !ok {
		return nil, nil
	}
	return v, nil
}

// ════════════════════════════════════════════════════════════
// Records
// ════════════════════════════════════════════════════════════

// CustomerRecord is a customer row as fetched from the store.
type CustomerRecord struct {
	ID                  string                 `json:"id"`
	Email               string                 `json:"email,omitempty"`
	FullName            string                 `json:"full_name,omitempty"`
	CreatedAt           Timestamp              `json:"created_at,omitempty"`
	IsVip               bool                   `json:"is_vip"`
	IsBlacklisted       bool                   `json:"is_blacklisted"`
	BlacklistReason     string                 `json:"blacklist_reason,omitempty"`
	Tags                []string               `json:"tags"`
	TotalSpent          *float64               `json:"total_spent"`
	TotalVisits         int                    `json:"total_visits"`
	LastVisitDate       Timestamp              `json:"last_visit_date,omitempty"`
	DietaryRestrictions []string               `json:"dietary_restrictions"`
	Preferences         map[string]interface{} `json:"preferences,omitempty"`
	Notes               string                 `json:"notes,omitempty"`
}

// OrderRecord is an order row as fetched from the store.
type OrderRecord struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id,omitempty"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	Total         Amount    `json:"total"`
	Status        string    `json:"status"`
	CreatedAt     Timestamp `json:"created_at,omitempty"`
}

// OrderAggregate summarises the orders attributed to one customer identity.
type OrderAggregate struct {
	OrdersCount   int        `json:"orders_count"`
	LifetimeValue float64    `json:"lifetime_value"`
	LastOrderAt   *time.Time `json:"last_order_at"`
}

// EnrichedCustomer is a CustomerRecord plus everything derived from orders and time.
type EnrichedCustomer struct {
	CustomerRecord
	DisplayName   string     `json:"display_name"`
	LifetimeValue float64    `json:"lifetime_value"`
	OrdersCount   int        `json:"orders_count"`
	LastOrderAt   *time.Time `json:"last_order_at"`
	Location      *string    `json:"location"`
	Status        Status     `json:"status"`
}

// MetricsSummary holds the headline dashboard numbers.
type MetricsSummary struct {
	Total            int     `json:"total"`
	VipCount         int     `json:"vip_count"`
	AvgOrders        float64 `json:"avg_orders"`
	AvgLifetimeValue float64 `json:"avg_lifetime_value"`
}

// SegmentBucket is the population of one named segment.
type SegmentBucket struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Statuses []Status `json:"statuses"`
	Count    int      `json:"count"`
	Percent  int      `json:"percent"`
}

const guestPlaceholder = "Guest"

// DisplayName returns the full name, falling back to the email and then a placeholder.
func DisplayName(c CustomerRecord) string {
	if name := strings.TrimSpace(c.FullName); name != "" {
		return name
	}
	if email := strings.TrimSpace(c.Email); email != "" {
		return email
	}
	return guestPlaceholder
}

// NormalizeEmail trims and lower-cases an email for identity matching.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
