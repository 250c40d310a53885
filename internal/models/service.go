package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	DurationMin int             `gorm:"not null" json:"duration_min"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
