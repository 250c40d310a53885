package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lançamento financeiro. Date guarda apenas o dia do lançamento;
// Kind é "income" ou "expense" (ver domain/ledger).
type LedgerEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date        time.Time       `gorm:"type:date;not null" json:"date"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Kind        string          `gorm:"size:10;not null" json:"kind"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`

	Category      string `gorm:"size:100;not null" json:"category"`
	PaymentMethod string `gorm:"size:50;not null" json:"payment_method"`
	Note          string `gorm:"size:255" json:"note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
