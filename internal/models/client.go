package models

import "time"

// Cliente do prestador de serviços, sem login
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string    `gorm:"size:100;not null" json:"name"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	TaxID     string    `gorm:"size:20;not null" json:"tax_id"`
	Address   string    `gorm:"size:255;not null" json:"address"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	BirthDate time.Time `gorm:"type:date" json:"birth_date"`
	Notes     string    `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
