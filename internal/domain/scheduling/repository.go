package scheduling

import (
	"context"
	"time"

	"github.com/sipslabs/sips-api/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment + derived entry --------

	// CreateAppointmentWithEntry persiste o agendamento e o lançamento
	// financeiro derivado na mesma transação: ou os dois entram, ou nenhum.
	CreateAppointmentWithEntry(
		ctx context.Context,
		ap *models.Appointment,
		entry *models.LedgerEntry,
	) error

	// ListAppointments devolve agendamentos com cliente e serviço
	// carregados, em ordem de início. Start/End são opcionais.
	ListAppointments(
		ctx context.Context,
		start *time.Time,
		end *time.Time,
	) ([]models.Appointment, error)
}
