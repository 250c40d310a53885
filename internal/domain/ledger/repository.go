package ledger

import (
	"context"
	"time"

	"github.com/sipslabs/sips-api/internal/models"
)

// Filter delimita a listagem: período inclusivo [Start, End] sobre a
// data do lançamento e busca por trecho da descrição (sem distinção
// de maiúsculas).
type Filter struct {
	Start  *time.Time
	End    *time.Time
	Search string
}

type Repository interface {
	Create(
		ctx context.Context,
		entry *models.LedgerEntry,
	) error

	// List devolve os lançamentos do filtro em ordem de data decrescente.
	List(
		ctx context.Context,
		filter Filter,
	) ([]models.LedgerEntry, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.LedgerEntry, error)

	Delete(
		ctx context.Context,
		id uint,
	) error
}
