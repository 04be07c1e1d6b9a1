package models

import (
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/intelligence"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is a restaurant order. Guest checkouts carry only the email; orders by
// registered guests carry the customer id and usually the email too.
type Order struct {
	ID            uuid.UUID              `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID    *uuid.UUID             `json:"customer_id" gorm:"type:uuid;index"`
	CustomerEmail *string                `json:"customer_email" gorm:"type:varchar(255);index"`
	Total         intelligence.Amount    `json:"total" gorm:"type:numeric(12,2)"`
	Status        string                 `json:"status" gorm:"type:varchar(30);default:'pending';index"`
	CreatedAt     intelligence.Timestamp `json:"created_at" gorm:"column:created_at;type:timestamptz;default:now();index"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// ToRecord converts the row into the engine's input shape.
func (o *Order) ToRecord() intelligence.OrderRecord {
	rec := intelligence.OrderRecord{
		ID:            o.ID.String(),
		CustomerEmail: deref(o.CustomerEmail),
		Total:         o.Total,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
	if o.CustomerID != nil {
		rec.CustomerID = o.CustomerID.String()
	}
	return rec
}
