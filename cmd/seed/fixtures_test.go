package main

import (
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/intelligence"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedNow = time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)

func TestDefaultFixturesCoverEveryStatus(t *testing.T) {
	f, err := parseFixtures(defaultFixtures)
	require.NoError(t, err)

	customers, orders, err := f.build(seedNow)
	require.NoError(t, err)
	require.Len(t, customers, 9)
	require.Len(t, orders, 11)

	records := make([]intelligence.CustomerRecord, 0, len(customers))
	for i := range customers {
		records = append(records, customers[i].ToRecord())
	}
	orderRecords := make([]intelligence.OrderRecord, 0, len(orders))
	for i := range orders {
		orderRecords = append(orderRecords, orders[i].ToRecord())
	}

	byID, byEmail := intelligence.Aggregate(orderRecords)
	enriched := intelligence.Enrich(records, byID, byEmail, seedNow)

	seen := map[intelligence.Status]bool{}
	for _, c := range enriched {
		seen[c.Status] = true
	}
	for _, s := range intelligence.AllStatuses() {
		assert.True(t, seen[s], "no seeded customer is %s", s)
	}
}

func TestFixturesGuestOrdersKeepOnlyEmail(t *testing.T) {
	f, err := parseFixtures([]byte(`
customers:
  - {email: Ana@Example.com, joined_days_ago: 10}
orders:
  - {customer: ana@example.com, total: 10, days_ago: 1}
  - {customer: walkin@example.com, guest: true, total: 5, days_ago: 2}
`))
	require.NoError(t, err)

	customers, orders, err := f.build(seedNow)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "ana@example.com", *customers[0].Email)
	require.NotNil(t, orders[0].CustomerID)
	assert.Equal(t, customers[0].ID, *orders[0].CustomerID)
	assert.Equal(t, "completed", orders[0].Status)
	assert.Nil(t, orders[1].CustomerID)

	ts, ok := orders[1].CreatedAt.Time()
	require.True(t, ok)
	assert.Equal(t, seedNow.Add(-48*time.Hour), ts)
}

func TestFixturesRejectBadInput(t *testing.T) {
	for name, doc := range map[string]string{
		"missing email":      "customers: [{full_name: X}]",
		"duplicate email":    "customers: [{email: a@x.io}, {email: A@x.io}]",
		"blacklist w/o why":  "customers: [{email: a@x.io, blacklisted: true}]",
		"unknown customer":   "orders: [{customer: ghost@x.io, total: 3}]",
		"order without link": "orders: [{total: 3}]",
	} {
		f, err := parseFixtures([]byte(doc))
		require.NoError(t, err, name)
		_, _, err = f.build(seedNow)
		assert.Error(t, err, name)
	}

	_, err := parseFixtures([]byte("customers: {not: a list}"))
	assert.Error(t, err)
}

func TestFixturePreferencesRoundTrip(t *testing.T) {
	f, err := parseFixtures(defaultFixtures)
	require.NoError(t, err)
	customers, _, err := f.build(seedNow)
	require.NoError(t, err)

	var ana models.Customer
	for _, c := range customers {
		if *c.Email == "ana.sousa@example.com" {
			ana = c
		}
	}
	rec := ana.ToRecord()
	assert.Equal(t, "Lisbon", rec.Preferences["city"])
	assert.Equal(t, []string{"wine-club", "birthday-march"}, rec.Tags)
	assert.Equal(t, []string{"pescatarian"}, rec.DietaryRestrictions)
}
