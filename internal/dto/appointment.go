package dto

import (
	"time"

	"github.com/sipslabs/sips-api/internal/models"
)

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
	Notes       string    `json:"notes"`
}

// AppointmentCreatedDTO devolve o agendamento criado junto com o
// lançamento financeiro derivado e o link de confirmação.
type AppointmentCreatedDTO struct {
	Appointment  models.Appointment `json:"appointment"`
	LedgerEntry  models.LedgerEntry `json:"ledger_entry"`
	WhatsAppLink string             `json:"whatsapp_link"`
}
