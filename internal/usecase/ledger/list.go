package ledger

import (
	"context"

	domain "github.com/sipslabs/sips-api/internal/domain/ledger"
	"github.com/sipslabs/sips-api/internal/models"
)

type ListEntries struct {
	repo domain.Repository
}

func NewListEntries(repo domain.Repository) *ListEntries {
	return &ListEntries{repo: repo}
}

func (uc *ListEntries) Execute(
	ctx context.Context,
	filter domain.Filter,
) ([]models.LedgerEntry, error) {
	return uc.repo.List(ctx, filter)
}
