package intelligence

import (
	"math"
	"strings"
	"time"
)

// maxCents bounds a single contribution so the int64 accumulator cannot overflow.
const maxCents = 1 << 53

type orderAccumulator struct {
	count int
	cents int64
	last  *time.Time
}

func (acc *orderAccumulator) add(o OrderRecord) {
	acc.count++
	if v, ok := o.Total.Float(); ok {
		if cents := math.Round(v * 100); math.Abs(cents) < maxCents {
			acc.cents += int64(cents)
		}
	}
	if t, ok := o.CreatedAt.Time(); ok {
		if acc.last == nil || t.After(*acc.last) {
			acc.last = &t
		}
	}
}

func (acc *orderAccumulator) aggregate() OrderAggregate {
	return OrderAggregate{
		OrdersCount:   acc.count,
		LifetimeValue: float64(acc.cents) / 100,
		LastOrderAt:   acc.last,
	}
}

// Aggregate folds orders into per-customer summaries, keyed once by customer id and once
// by normalised customer email. An order carrying both keys updates both maps.
// Order totals are assumed to be whole cents (the store keeps numeric(12,2)); each one
// is rounded to the cent before summing so the result does not depend on input order.
func Aggregate(orders []OrderRecord) (byID, byEmail map[string]OrderAggregate) {
	ids := make(map[string]*orderAccumulator)
	emails := make(map[string]*orderAccumulator)

	for _, o := range orders {
		if id := o.CustomerID; strings.TrimSpace(id) != "" {
			bucket(ids, id).add(o)
		}
		if email := NormalizeEmail(o.CustomerEmail); email != "" {
			bucket(emails, email).add(o)
		}
	}

	return collapse(ids), collapse(emails)
}

func bucket(m map[string]*orderAccumulator, key string) *orderAccumulator {
	acc, ok := m[key]
	if !ok {
		acc = &orderAccumulator{}
		m[key] = acc
	}
	return acc
}

func collapse(m map[string]*orderAccumulator) map[string]OrderAggregate {
	out := make(map[string]OrderAggregate, len(m))
	for key, acc := range m {
		out[key] = acc.aggregate()
	}
	return out
}
