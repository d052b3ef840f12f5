package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/Gothsec/centro-digital/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// Contact holds the optional social/messaging handles of a business.
type Contact struct {
	WhatsApp  string `json:"whatsapp,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Location is a geocoordinate pair resolved from the business address.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PhotoList []string

// ═══════════════════════════════════════════════════════════
// Main Business Model (GORM)
// ═══════════════════════════════════════════════════════════

type Business struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"not null;index"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null;index"`
	Department  string    `json:"department"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	OpensAt     string    `json:"opens_at" gorm:"type:varchar(5)"`  // 24h HH:MM
	ClosesAt    string    `json:"closes_at" gorm:"type:varchar(5)"` // 24h HH:MM
	Hours       string    `json:"hours" gorm:"-"`                   // derived, never stored
	Active      bool      `json:"active" gorm:"not null;default:true;index"`
	Contact     Contact   `json:"contact" gorm:"type:jsonb;not null;default:'{}'"`
	Location    *Location `json:"location,omitempty" gorm:"type:jsonb"`
	ImageURL    string    `json:"image_url" gorm:"type:text"` // Cloudinary URL
	Photos      PhotoList `json:"photos" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// AfterFind hook - derive the display hours from the raw HH:MM pair
func (b *Business) AfterFind(tx *gorm.DB) error {
	b.Hours = utils.FormatHours(b.OpensAt, b.ClosesAt)
	return nil
}

// TableName specifies the table name
func (Business) TableName() string {
	return "businesses"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type RegisterBusinessRequest struct {
	Name        string `form:"name" json:"name" binding:"required" example:"Café Luna"`
	Description string `form:"description" json:"description" binding:"required"`
	Category    string `form:"category" json:"category" binding:"required" example:"Cafés"`
	Department  string `form:"department" json:"department" binding:"required"`
	City        string `form:"city" json:"city" binding:"required"`
	Address     string `form:"address" json:"address"`
	OpensAt     string `form:"opens_at" json:"opens_at" binding:"required" example:"08:00"`
	ClosesAt    string `form:"closes_at" json:"closes_at" binding:"required" example:"18:00"`
	WhatsApp    string `form:"whatsapp" json:"whatsapp"`
	Facebook    string `form:"facebook" json:"facebook"`
	Instagram   string `form:"instagram" json:"instagram"`
}

type UpdateBusinessRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Department  *string  `json:"department"`
	City        *string  `json:"city"`
	Address     *string  `json:"address"`
	OpensAt     *string  `json:"opens_at"`
	ClosesAt    *string  `json:"closes_at"`
	Active      *bool    `json:"active"`
	Contact     *Contact `json:"contact"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type BusinessStatsResponse struct {
	TotalBusinesses    int            `json:"total_businesses"`
	ActiveBusinesses   int            `json:"active_businesses"`
	InactiveBusinesses int            `json:"inactive_businesses"`
	PercentageActive   float64        `json:"percentage_active"`
	ByCategory         map[string]int `json:"by_category"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM
// ═══════════════════════════════════════════════════════════

// Contact methods
func (c *Contact) Scan(value interface{}) error {
	if value == nil {
		*c = Contact{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Contact")
	}
	return json.Unmarshal(bytes, c)
}

func (c Contact) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Location methods
func (l *Location) Scan(value interface{}) error {
	if value == nil {
		*l = Location{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Location")
	}
	return json.Unmarshal(bytes, l)
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// PhotoList methods
func (p *PhotoList) Scan(value interface{}) error {
	if value == nil {
		*p = make(PhotoList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PhotoList")
	}
	return json.Unmarshal(bytes, p)
}

func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(p)
}
