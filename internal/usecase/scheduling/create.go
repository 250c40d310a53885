package scheduling

import (
	"context"

	"github.com/sipslabs/sips-api/internal/audit"
	domain "github.com/sipslabs/sips-api/internal/domain/scheduling"
	"github.com/sipslabs/sips-api/internal/dto"
	"github.com/sipslabs/sips-api/internal/httperr"
	"github.com/sipslabs/sips-api/internal/models"
	"github.com/sipslabs/sips-api/internal/timezone"
	"github.com/sipslabs/sips-api/internal/whatsapp"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  uint
	ServiceID uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo        domain.Repository
	audit       audit.Sink
	countryCode string
}

func NewCreateAppointment(
	repo domain.Repository,
	audit audit.Sink,
	countryCode string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:        repo,
		audit:       audit,
		countryCode: countryCode,
	}
}

// Execute registra o agendamento e, na mesma transação, o lançamento
// financeiro derivado. Datas passadas são aceitas (lançamento
// retroativo é uso legítimo).
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*dto.AppointmentCreatedDTO, error) {

	start, err := timezone.ParseDateTime(in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	ap := &models.Appointment{
		ClientID:  client.ID,
		ServiceID: service.ID,
		StartTime: start,
		Notes:     in.Notes,
	}

	entry := domain.DeriveEntry(service, start)

	if err := uc.repo.CreateAppointmentWithEntry(ctx, ap, &entry); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"ledger_entry_id": entry.ID,
		},
	})

	ap.Client = *client
	ap.Service = *service

	return &dto.AppointmentCreatedDTO{
		Appointment: *ap,
		LedgerEntry: entry,
		WhatsAppLink: whatsapp.ConfirmationLink(
			uc.countryCode,
			client.Phone,
			service.Name,
			start,
		),
	}, nil
}
