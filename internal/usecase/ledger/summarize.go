package ledger

import (
	"context"

	domain "github.com/sipslabs/sips-api/internal/domain/ledger"
	"github.com/sipslabs/sips-api/internal/dto"
)

// SummarizeEntries calcula os agregados sobre a mesma visão filtrada
// que a listagem devolve.
type SummarizeEntries struct {
	repo domain.Repository
}

func NewSummarizeEntries(repo domain.Repository) *SummarizeEntries {
	return &SummarizeEntries{repo: repo}
}

func (uc *SummarizeEntries) Execute(
	ctx context.Context,
	filter domain.Filter,
) (*dto.LedgerSummaryDTO, error) {

	entries, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.LedgerSummaryDTO{
		Summary:        domain.Summarize(entries),
		Categories:     domain.SummarizeByCategory(entries),
		RunningBalance: domain.RunningBalance(entries),
		EntryCount:     len(entries),
	}, nil
}
