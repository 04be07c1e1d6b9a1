package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/intelligence"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

// CustomerSource reads raw customer and order rows and writes admin flags.
type CustomerSource interface {
	FetchCustomers(ctx context.Context) ([]intelligence.CustomerRecord, error)
	FetchOrders(ctx context.Context) ([]intelligence.OrderRecord, error)
	PatchCustomer(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (intelligence.CustomerRecord, error)
}

// GormCustomerSource reads the customers and orders tables through gorm.
type GormCustomerSource struct {
	db *gorm.DB
}

func NewGormCustomerSource(db *gorm.DB) *GormCustomerSource {
	return &GormCustomerSource{db: db}
}

func (s *GormCustomerSource) FetchCustomers(ctx context.Context) ([]intelligence.CustomerRecord, error) {
	var rows []models.Customer
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch customers: %w", err)
	}

	out := make([]intelligence.CustomerRecord, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToRecord())
	}
	return out, nil
}

func (s *GormCustomerSource) FetchOrders(ctx context.Context) ([]intelligence.OrderRecord, error) {
	var rows []models.Order
	if err := s.db.WithContext(ctx).
		Select("id", "customer_id", "customer_email", "total", "status", "created_at").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	out := make([]intelligence.OrderRecord, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToRecord())
	}
	return out, nil
}

func (s *GormCustomerSource) PatchCustomer(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (intelligence.CustomerRecord, error) {
	result := s.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return intelligence.CustomerRecord{}, fmt.Errorf("update customer %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return intelligence.CustomerRecord{}, ErrCustomerNotFound
	}

	var updated models.Customer
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&updated).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return intelligence.CustomerRecord{}, ErrCustomerNotFound
		}
		return intelligence.CustomerRecord{}, fmt.Errorf("reload customer %s: %w", id, err)
	}
	return updated.ToRecord(), nil
}
