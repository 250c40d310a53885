package dto

import "github.com/sipslabs/sips-api/internal/domain/ledger"

type LedgerSummaryDTO struct {
	Summary        ledger.Summary           `json:"summary"`
	Categories     []ledger.CategorySummary `json:"categories"`
	RunningBalance []ledger.BalancePoint    `json:"running_balance"`
	EntryCount     int                      `json:"entry_count"`
}
