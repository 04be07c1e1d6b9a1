package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	customer_cache "github.com/Modeva-Ecommerce/modeva-restaurant-cms/cache"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/intelligence"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/google/uuid"
)

var (
	ErrBlacklistReasonRequired = errors.New("blacklist_reason is required when blacklisting a customer")
	ErrNoFieldsToUpdate        = errors.New("no fields to update")
)

// CustomerSnapshot is the enriched customer set computed for one request.
type CustomerSnapshot struct {
	Customers   []intelligence.EnrichedCustomer
	Orders      []intelligence.OrderRecord
	FetchedAt   time.Time
	GeneratedAt time.Time
}

// Find returns the enriched customer with the given id.
func (s *CustomerSnapshot) Find(id string) (intelligence.EnrichedCustomer, bool) {
	for _, c := range s.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return intelligence.EnrichedCustomer{}, false
}

// CustomerService serves enriched customer snapshots on top of the raw row cache.
type CustomerService struct {
	source CustomerSource
	now    func() time.Time
}

func NewCustomerService(source CustomerSource, clock func() time.Time) *CustomerService {
	if clock == nil {
		clock = time.Now
	}
	return &CustomerService{source: source, now: clock}
}

var customerService *CustomerService

func InitCustomerService(source CustomerSource) {
	customerService = NewCustomerService(source, time.Now)
}

// SetCustomerService replaces the shared service, mostly for handler tests.
func SetCustomerService(s *CustomerService) {
	customerService = s
}

func GetCustomerService() *CustomerService {
	if customerService == nil {
		panic("customer service not initialised")
	}
	return customerService
}

func (s *CustomerService) Now() time.Time {
	return s.now()
}

// Snapshot enriches the cached rows, fetching them first when the cache is cold.
// Classification always uses the current clock.
func (s *CustomerService) Snapshot(ctx context.Context) (*CustomerSnapshot, error) {
	customers, orders, fetchedAt, ok := customer_cache.Get()
	if !ok {
		gen := customer_cache.Generation()

		var err error
		customers, err = s.source.FetchCustomers(ctx)
		if err != nil {
			return nil, err
		}
		orders, err = s.source.FetchOrders(ctx)
		if err != nil {
			return nil, err
		}
		fetchedAt = s.now()

		if !customer_cache.SetIfCurrent(gen, customers, orders) {
			log.Printf("[customers.snapshot] invalidated during fetch, not caching customers=%d", len(customers))
		}
	}

	now := s.now()
	byID, byEmail := intelligence.Aggregate(orders)
	return &CustomerSnapshot{
		Customers:   intelligence.Enrich(customers, byID, byEmail, now),
		Orders:      orders,
		FetchedAt:   fetchedAt,
		GeneratedAt: now,
	}, nil
}

// UpdateCustomer applies the admin patch and returns the re-enriched customer.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input models.UpdateCustomerRequest) (intelligence.EnrichedCustomer, error) {
	fields, err := customerUpdates(input)
	if err != nil {
		return intelligence.EnrichedCustomer{}, err
	}

	if _, err := s.source.PatchCustomer(ctx, id, fields); err != nil {
		return intelligence.EnrichedCustomer{}, err
	}
	customer_cache.Invalidate()
	log.Printf("[customers.update] id=%s fields=%d cache invalidated", id, len(fields))

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return intelligence.EnrichedCustomer{}, fmt.Errorf("reload after update: %w", err)
	}
	updated, ok := snap.Find(id.String())
	if !ok {
		return intelligence.EnrichedCustomer{}, ErrCustomerNotFound
	}
	return updated, nil
}

// customerUpdates turns the request into column updates. The blacklist reason is
// only read when blacklisting; lifting a blacklist clears it.
func customerUpdates(input models.UpdateCustomerRequest) (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if input.IsVip != nil {
		updates["is_vip"] = *input.IsVip
	}

	if input.IsBlacklisted != nil {
		updates["is_blacklisted"] = *input.IsBlacklisted
		if *input.IsBlacklisted {
			if input.BlacklistReason == nil || strings.TrimSpace(*input.BlacklistReason) == "" {
				return nil, ErrBlacklistReasonRequired
			}
			updates["blacklist_reason"] = strings.TrimSpace(*input.BlacklistReason)
		} else {
			updates["blacklist_reason"] = nil
		}
	}

	if input.Tags != nil {
		updates["tags"] = models.StringsJSON(cleanTags(*input.Tags))
	}

	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}
	return updates, nil
}

func cleanTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		key := strings.ToLower(tag)
		if tag == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}
