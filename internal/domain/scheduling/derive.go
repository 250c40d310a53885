package scheduling

import (
	"fmt"
	"time"

	"github.com/sipslabs/sips-api/internal/domain/ledger"
	"github.com/sipslabs/sips-api/internal/models"
)

// DisplayWindow é a janela fixa usada pelo calendário para exibir um
// agendamento. A duração cadastrada do serviço não é consultada aqui.
const DisplayWindow = 30 * time.Minute

// DerivedPaymentMethod marca lançamentos gerados por agendamento, cuja
// forma de pagamento ainda não é conhecida na hora da reserva.
const DerivedPaymentMethod = "A definir"

// DeriveEntry monta o lançamento financeiro gerado por um agendamento:
// entrada com o preço do serviço no momento da reserva, categoria igual
// ao nome do serviço e data igual ao dia do agendamento.
func DeriveEntry(service *models.Service, start time.Time) models.LedgerEntry {
	day := time.Date(
		start.Year(), start.Month(), start.Day(),
		0, 0, 0, 0,
		start.Location(),
	)

	return models.LedgerEntry{
		Date:          day,
		Description:   fmt.Sprintf("Agendamento automático: %s", service.Name),
		Kind:          string(ledger.KindIncome),
		Amount:        service.Price,
		Category:      service.Name,
		PaymentMethod: DerivedPaymentMethod,
	}
}
