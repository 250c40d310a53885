package ledger

import (
	"strings"

	"github.com/sipslabs/sips-api/internal/httperr"
	"github.com/sipslabs/sips-api/internal/models"
)

// ===============================
// Validations
// ===============================

// Validate confere os campos obrigatórios de um lançamento e devolve
// o primeiro que falhar como BusinessError.
func Validate(e *models.LedgerEntry) error {
	if e.Date.IsZero() {
		return httperr.ErrBusiness("missing_date")
	}
	if !Kind(e.Kind).Valid() {
		return httperr.ErrBusiness("invalid_kind")
	}
	if strings.TrimSpace(e.Category) == "" {
		return httperr.ErrBusiness("missing_category")
	}
	if strings.TrimSpace(e.PaymentMethod) == "" {
		return httperr.ErrBusiness("missing_payment_method")
	}
	if strings.TrimSpace(e.Description) == "" {
		return httperr.ErrBusiness("missing_description")
	}
	if !e.Amount.IsPositive() {
		return httperr.ErrBusiness("invalid_amount")
	}
	return nil
}
