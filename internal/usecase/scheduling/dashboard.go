package scheduling

import (
	"context"
	"sort"

	ledgerdomain "github.com/sipslabs/sips-api/internal/domain/ledger"
	domain "github.com/sipslabs/sips-api/internal/domain/scheduling"
	"github.com/sipslabs/sips-api/internal/dto"
)

const topServicesLimit = 10

// Dashboard reúne os agregados do painel: resumo financeiro geral,
// totais por categoria, agendamentos por dia e serviços mais agendados.
type Dashboard struct {
	repo       domain.Repository
	ledgerRepo ledgerdomain.Repository
}

func NewDashboard(
	repo domain.Repository,
	ledgerRepo ledgerdomain.Repository,
) *Dashboard {
	return &Dashboard{
		repo:       repo,
		ledgerRepo: ledgerRepo,
	}
}

func (uc *Dashboard) Execute(ctx context.Context) (*dto.DashboardDTO, error) {

	entries, err := uc.ledgerRepo.List(ctx, ledgerdomain.Filter{})
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointments(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	perDay := make(map[string]int)
	perService := make(map[string]int)
	for _, ap := range appointments {
		perDay[ap.StartTime.Format("2006-01-02")]++
		perService[ap.Service.Name]++
	}

	days := make([]dto.DayCountDTO, 0, len(perDay))
	for day, count := range perDay {
		days = append(days, dto.DayCountDTO{Date: day, Count: count})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	services := make([]dto.ServiceCountDTO, 0, len(perService))
	for name, count := range perService {
		services = append(services, dto.ServiceCountDTO{
			ServiceName: name,
			Count:       count,
		})
	}
	sort.Slice(services, func(i, j int) bool {
		if services[i].Count != services[j].Count {
			return services[i].Count > services[j].Count
		}
		return services[i].ServiceName < services[j].ServiceName
	})
	if len(services) > topServicesLimit {
		services = services[:topServicesLimit]
	}

	return &dto.DashboardDTO{
		Finance:            ledgerdomain.Summarize(entries),
		FinanceByCategory:  ledgerdomain.SummarizeByCategory(entries),
		AppointmentsPerDay: days,
		TopServices:        services,
	}, nil
}
