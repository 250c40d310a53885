package dto

import "github.com/sipslabs/sips-api/internal/domain/ledger"

type DayCountDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ServiceCountDTO struct {
	ServiceName string `json:"service_name"`
	Count       int    `json:"count"`
}

type DashboardDTO struct {
	Finance            ledger.Summary           `json:"finance"`
	FinanceByCategory  []ledger.CategorySummary `json:"finance_by_category"`
	AppointmentsPerDay []DayCountDTO            `json:"appointments_per_day"`
	TopServices        []ServiceCountDTO        `json:"top_services"`
}
