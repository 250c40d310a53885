package ledger

import (
	"context"

	"github.com/sipslabs/sips-api/internal/audit"
	domain "github.com/sipslabs/sips-api/internal/domain/ledger"
	"github.com/sipslabs/sips-api/internal/httperr"
)

// DeleteEntry remove um lançamento pelo id estável, nunca por posição
// na listagem exibida.
type DeleteEntry struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewDeleteEntry(
	repo domain.Repository,
	audit audit.Sink,
) *DeleteEntry {
	return &DeleteEntry{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteEntry) Execute(
	ctx context.Context,
	id uint,
) error {

	entry, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("entry_not_found")
	}

	if err := uc.repo.Delete(ctx, entry.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "ledger_entry_deleted",
		Entity:   "ledger_entry",
		EntityID: &entry.ID,
	})

	return nil
}
