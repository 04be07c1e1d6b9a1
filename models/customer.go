package models

import (
	"encoding/json"
	"log"
	"time"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/intelligence"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Customer is a guest profile row in the restaurant database.
type Customer struct {
	ID                  uuid.UUID              `json:"id" gorm:"type:uuid;primaryKey"`
	Email               *string                `json:"email" gorm:"type:varchar(255);index"`
	FullName            *string                `json:"full_name" gorm:"column:full_name;type:varchar(255)"`
	IsVip               bool                   `json:"is_vip" gorm:"column:is_vip;default:false;index"`
	IsBlacklisted       bool                   `json:"is_blacklisted" gorm:"column:is_blacklisted;default:false;index"`
	BlacklistReason     *string                `json:"blacklist_reason" gorm:"column:blacklist_reason;type:text"`
	Tags                datatypes.JSON         `json:"tags" gorm:"type:jsonb;default:'[]'"`
	TotalSpent          *float64               `json:"total_spent" gorm:"column:total_spent;type:numeric(12,2)"`
	TotalVisits         int                    `json:"total_visits" gorm:"column:total_visits;default:0"`
	LastVisitDate       intelligence.Timestamp `json:"last_visit_date" gorm:"column:last_visit_date;type:timestamptz"`
	DietaryRestrictions datatypes.JSON         `json:"dietary_restrictions" gorm:"column:dietary_restrictions;type:jsonb;default:'[]'"`
	Preferences         datatypes.JSON         `json:"preferences" gorm:"type:jsonb;default:'{}'"`
	Notes               *string                `json:"notes" gorm:"type:text"`
	CreatedAt           intelligence.Timestamp `json:"created_at" gorm:"column:created_at;type:timestamptz;default:now();index"`
	UpdatedAt           time.Time              `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// ToRecord converts the row into the engine's input shape. Malformed JSON columns are
// logged and read as empty.
func (c *Customer) ToRecord() intelligence.CustomerRecord {
	return intelligence.CustomerRecord{
		ID:                  c.ID.String(),
		Email:               deref(c.Email),
		FullName:            deref(c.FullName),
		CreatedAt:           c.CreatedAt,
		IsVip:               c.IsVip,
		IsBlacklisted:       c.IsBlacklisted,
		BlacklistReason:     deref(c.BlacklistReason),
		Tags:                decodeStrings(c.ID, "tags", c.Tags),
		TotalSpent:          c.TotalSpent,
		TotalVisits:         c.TotalVisits,
		LastVisitDate:       c.LastVisitDate,
		DietaryRestrictions: decodeStrings(c.ID, "dietary_restrictions", c.DietaryRestrictions),
		Preferences:         decodePreferences(c.ID, c.Preferences),
		Notes:               deref(c.Notes),
	}
}

// UpdateCustomerRequest is the admin patch for guest flags and tags.
type UpdateCustomerRequest struct {
	IsVip           *bool     `json:"is_vip"`
	IsBlacklisted   *bool     `json:"is_blacklisted"`
	BlacklistReason *string   `json:"blacklist_reason" binding:"omitempty,max=500"`
	Tags            *[]string `json:"tags" binding:"omitempty,max=20,dive,min=1,max=40"`
}

// CustomerIntelligenceStats is the dashboard header: metrics plus segment breakdown.
type CustomerIntelligenceStats struct {
	Metrics     intelligence.MetricsSummary  `json:"metrics"`
	Segments    []intelligence.SegmentBucket `json:"segments"`
	GeneratedAt time.Time                    `json:"generated_at"`
}

// CustomerDetailResponse is a single enriched guest with their latest orders.
type CustomerDetailResponse struct {
	Customer     intelligence.EnrichedCustomer `json:"customer"`
	RecentOrders []intelligence.OrderRecord    `json:"recent_orders"`
}

// StringsJSON encodes a string list for a jsonb column.
func StringsJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

func decodeStrings(id uuid.UUID, column string, raw datatypes.JSON) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("[models.customer] WARN malformed %s id=%s err=%v", column, id, err)
		return []string{}
	}
	return out
}

func decodePreferences(id uuid.UUID, raw datatypes.JSON) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("[models.customer] WARN malformed preferences id=%s err=%v", id, err)
		return nil
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
