package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sipslabs/sips-api/internal/audit"
	domain "github.com/sipslabs/sips-api/internal/domain/ledger"
	"github.com/sipslabs/sips-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateEntryInput struct {
	Date          time.Time
	Description   string
	Kind          string
	Amount        decimal.Decimal
	Category      string
	PaymentMethod string
	Note          string
}

// ======================================================
// USE CASE
// ======================================================

type CreateEntry struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateEntry(
	repo domain.Repository,
	audit audit.Sink,
) *CreateEntry {
	return &CreateEntry{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateEntry) Execute(
	ctx context.Context,
	in CreateEntryInput,
) (*models.LedgerEntry, error) {

	entry := &models.LedgerEntry{
		Date:          in.Date,
		Description:   in.Description,
		Kind:          in.Kind,
		Amount:        in.Amount,
		Category:      in.Category,
		PaymentMethod: in.PaymentMethod,
		Note:          in.Note,
	}

	if err := domain.Validate(entry); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "ledger_entry_created",
		Entity:   "ledger_entry",
		EntityID: &entry.ID,
	})

	return entry, nil
}
