package ledger

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	domain "github.com/sipslabs/sips-api/internal/domain/ledger"
)

// ExportEntries serializa a visão filtrada em CSV, uma linha por
// lançamento, com cabeçalho.
type ExportEntries struct {
	repo domain.Repository
}

func NewExportEntries(repo domain.Repository) *ExportEntries {
	return &ExportEntries{repo: repo}
}

func (uc *ExportEntries) Execute(
	ctx context.Context,
	filter domain.Filter,
) ([]byte, error) {

	entries, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"id", "date", "description", "kind",
		"amount", "category", "payment_method", "note",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range entries {
		e := &entries[i]
		record := []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.Date.Format("2006-01-02"),
			e.Description,
			e.Kind,
			e.Amount.StringFixed(2),
			e.Category,
			e.PaymentMethod,
			e.Note,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
