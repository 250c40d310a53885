package scheduling

import (
	"context"
	"time"

	domain "github.com/sipslabs/sips-api/internal/domain/scheduling"
	"github.com/sipslabs/sips-api/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lista agendamentos em ordem de início, com a janela fixa de
// exibição usada pelo calendário.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	start *time.Time,
	end *time.Time,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointments(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			StartTime:   ap.StartTime,
			EndTime:     ap.StartTime.Add(domain.DisplayWindow),
			ClientName:  ap.Client.Name,
			ServiceName: ap.Service.Name,
			Notes:       ap.Notes,
		})
	}

	return out, nil
}
