package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/intelligence"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
)

// Dates are relative (days before the seed run) so a fresh seed always covers
// every lifecycle status.
type fixtureFile struct {
	Customers []customerFixture `yaml:"customers"`
	Orders    []orderFixture    `yaml:"orders"`
}

type customerFixture struct {
	Email               string                 `yaml:"email"`
	FullName            string                 `yaml:"full_name"`
	Vip                 bool                   `yaml:"vip"`
	Blacklisted         bool                   `yaml:"blacklisted"`
	BlacklistReason     string                 `yaml:"blacklist_reason"`
	Tags                []string               `yaml:"tags"`
	TotalSpent          *float64               `yaml:"total_spent"`
	TotalVisits         int                    `yaml:"total_visits"`
	LastVisitDaysAgo    *int                   `yaml:"last_visit_days_ago"`
	JoinedDaysAgo       int                    `yaml:"joined_days_ago"`
	DietaryRestrictions []string               `yaml:"dietary_restrictions"`
	Preferences         map[string]interface{} `yaml:"preferences"`
	Notes               string                 `yaml:"notes"`
}

type orderFixture struct {
	Customer string  `yaml:"customer"`
	Guest    bool    `yaml:"guest"`
	Total    float64 `yaml:"total"`
	Status   string  `yaml:"status"`
	DaysAgo  int     `yaml:"days_ago"`
}

func parseFixtures(data []byte) (*fixtureFile, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seed: parse fixtures: %w", err)
	}
	return &f, nil
}

// build turns fixtures into rows. Orders reference customers by email; guest orders
// keep only the email, the rest also carry the customer id.
func (f *fixtureFile) build(now time.Time) ([]models.Customer, []models.Order, error) {
	ago := func(days int) intelligence.Timestamp {
		return intelligence.NewTimestamp(now.Add(-time.Duration(days) * 24 * time.Hour))
	}

	customers := make([]models.Customer, 0, len(f.Customers))
	ids := make(map[string]uuid.UUID, len(f.Customers))

	for i, c := range f.Customers {
		email := intelligence.NormalizeEmail(c.Email)
		if email == "" {
			return nil, nil, fmt.Errorf("seed: customer %d has no email", i)
		}
		if _, dup := ids[email]; dup {
			return nil, nil, fmt.Errorf("seed: duplicate customer email %s", email)
		}
		if c.Blacklisted && strings.TrimSpace(c.BlacklistReason) == "" {
			return nil, nil, fmt.Errorf("seed: blacklisted customer %s needs a blacklist_reason", email)
		}

		id := uuid.Must(uuid.NewV7())
		ids[email] = id

		row := models.Customer{
			ID:                  id,
			Email:               &email,
			FullName:            optional(c.FullName),
			IsVip:               c.Vip,
			IsBlacklisted:       c.Blacklisted,
			BlacklistReason:     optional(c.BlacklistReason),
			Tags:                models.StringsJSON(c.Tags),
			TotalSpent:          c.TotalSpent,
			TotalVisits:         c.TotalVisits,
			DietaryRestrictions: models.StringsJSON(c.DietaryRestrictions),
			Preferences:         datatypes.JSON("{}"),
			Notes:               optional(c.Notes),
			CreatedAt:           ago(c.JoinedDaysAgo),
		}
		if c.LastVisitDaysAgo != nil {
			row.LastVisitDate = ago(*c.LastVisitDaysAgo)
		}
		if len(c.Preferences) > 0 {
			prefs, err := json.Marshal(c.Preferences)
			if err != nil {
				return nil, nil, fmt.Errorf("seed: preferences for %s: %w", email, err)
			}
			row.Preferences = datatypes.JSON(prefs)
		}
		customers = append(customers, row)
	}

	orders := make([]models.Order, 0, len(f.Orders))
	for i, o := range f.Orders {
		email := intelligence.NormalizeEmail(o.Customer)
		if email == "" {
			return nil, nil, fmt.Errorf("seed: order %d has no customer", i)
		}

		row := models.Order{
			ID:            uuid.Must(uuid.NewV7()),
			CustomerEmail: &email,
			Total:         intelligence.NewAmount(o.Total),
			Status:        orDefault(o.Status, "completed"),
			CreatedAt:     ago(o.DaysAgo),
		}
		if !o.Guest {
			id, ok := ids[email]
			if !ok {
				return nil, nil, fmt.Errorf("seed: order %d references unknown customer %s", i, email)
			}
			row.CustomerID = &id
		}
		orders = append(orders, row)
	}

	return customers, orders, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
