package scheduling_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sipslabs/sips-api/internal/audit"
	domain "github.com/sipslabs/sips-api/internal/domain/scheduling"
	"github.com/sipslabs/sips-api/internal/httperr"
	"github.com/sipslabs/sips-api/internal/models"
	ucscheduling "github.com/sipslabs/sips-api/internal/usecase/scheduling"
)

// --- Mock Repository ---

type MockSchedulingRepository struct {
	mock.Mock
}

func (m *MockSchedulingRepository) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockSchedulingRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockSchedulingRepository) CreateAppointmentWithEntry(ctx context.Context, ap *models.Appointment, entry *models.LedgerEntry) error {
	args := m.Called(ctx, ap, entry)
	return args.Error(0)
}

func (m *MockSchedulingRepository) ListAppointments(ctx context.Context, start *time.Time, end *time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

var _ domain.Repository = (*MockSchedulingRepository)(nil)

// --- Fixtures ---

func ana() *models.Client {
	return &models.Client{ID: 1, Name: "Ana", Phone: "(11) 98888-7777"}
}

func haircut() *models.Service {
	return &models.Service{
		ID:          2,
		Name:        "Haircut",
		DurationMin: 45,
		Price:       decimal.RequireFromString("50.00"),
	}
}

// sink de auditoria que apenas acumula eventos
type auditSink struct {
	events []audit.Event
}

func (s *auditSink) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

// --- Tests ---

func TestCreateAppointmentDerivesLedgerEntry(t *testing.T) {
	repo := new(MockSchedulingRepository)
	repo.On("GetClient", mock.Anything, uint(1)).Return(ana(), nil)
	repo.On("GetService", mock.Anything, uint(2)).Return(haircut(), nil)

	var gotAp *models.Appointment
	var gotEntry *models.LedgerEntry
	repo.On("CreateAppointmentWithEntry", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotAp = args.Get(1).(*models.Appointment)
			gotEntry = args.Get(2).(*models.LedgerEntry)
			gotAp.ID = 10
			gotEntry.ID = 20
		}).
		Return(nil)

	sink := &auditSink{}
	uc := ucscheduling.NewCreateAppointment(repo, sink, "55")

	out, err := uc.Execute(context.Background(), ucscheduling.CreateAppointmentInput{
		ClientID:  1,
		ServiceID: 2,
		Date:      "2024-01-10",
		Time:      "10:00",
		Notes:     "primeira visita",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// agendamento e lançamento viajam na mesma chamada de repositório
	require.NotNil(t, gotAp)
	require.NotNil(t, gotEntry)
	assert.Equal(t, uint(1), gotAp.ClientID)
	assert.Equal(t, uint(2), gotAp.ServiceID)

	assert.Equal(t, "income", gotEntry.Kind)
	assert.Equal(t, "50.00", gotEntry.Amount.StringFixed(2))
	assert.Equal(t, "Haircut", gotEntry.Category)
	assert.Contains(t, gotEntry.Description, "Haircut")
	assert.Equal(t, "2024-01-10", gotEntry.Date.Format("2006-01-02"))

	assert.Equal(t, uint(10), out.Appointment.ID)
	assert.Equal(t, uint(20), out.LedgerEntry.ID)
	assert.Contains(t, out.WhatsAppLink, "https://wa.me/5511988887777")
	assert.Contains(t, out.WhatsAppLink, "text=")

	require.Len(t, sink.events, 1)
	assert.Equal(t, "appointment_created", sink.events[0].Action)
}

func TestCreateAppointmentAllowsPastDates(t *testing.T) {
	repo := new(MockSchedulingRepository)
	repo.On("GetClient", mock.Anything, uint(1)).Return(ana(), nil)
	repo.On("GetService", mock.Anything, uint(2)).Return(haircut(), nil)
	repo.On("CreateAppointmentWithEntry", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	uc := ucscheduling.NewCreateAppointment(repo, &auditSink{}, "55")

	_, err := uc.Execute(context.Background(), ucscheduling.CreateAppointmentInput{
		ClientID:  1,
		ServiceID: 2,
		Date:      "2001-06-15",
		Time:      "08:00",
	})
	assert.NoError(t, err)
}

func TestCreateAppointmentRejectsInvalidDate(t *testing.T) {
	repo := new(MockSchedulingRepository)
	uc := ucscheduling.NewCreateAppointment(repo, &auditSink{}, "55")

	_, err := uc.Execute(context.Background(), ucscheduling.CreateAppointmentInput{
		ClientID:  1,
		ServiceID: 2,
		Date:      "10/01/2024",
		Time:      "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
	repo.AssertNotCalled(t, "CreateAppointmentWithEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAppointmentUnknownClient(t *testing.T) {
	repo := new(MockSchedulingRepository)
	repo.On("GetClient", mock.Anything, uint(99)).Return(nil, errors.New("record not found"))

	uc := ucscheduling.NewCreateAppointment(repo, &auditSink{}, "55")

	_, err := uc.Execute(context.Background(), ucscheduling.CreateAppointmentInput{
		ClientID:  99,
		ServiceID: 2,
		Date:      "2024-01-10",
		Time:      "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))
	repo.AssertNotCalled(t, "CreateAppointmentWithEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAppointmentUnknownService(t *testing.T) {
	repo := new(MockSchedulingRepository)
	repo.On("GetClient", mock.Anything, uint(1)).Return(ana(), nil)
	repo.On("GetService", mock.Anything, uint(99)).Return(nil, errors.New("record not found"))

	uc := ucscheduling.NewCreateAppointment(repo, &auditSink{}, "55")

	_, err := uc.Execute(context.Background(), ucscheduling.CreateAppointmentInput{
		ClientID:  1,
		ServiceID: 99,
		Date:      "2024-01-10",
		Time:      "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateAppointmentPropagatesWriteFailure(t *testing.T) {
	repo := new(MockSchedulingRepository)
	repo.On("GetClient", mock.Anything, uint(1)).Return(ana(), nil)
	repo.On("GetService", mock.Anything, uint(2)).Return(haircut(), nil)
	repo.On("CreateAppointmentWithEntry", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("tx failed"))

	uc := ucscheduling.NewCreateAppointment(repo, &auditSink{}, "55")

	out, err := uc.Execute(context.Background(), ucscheduling.CreateAppointmentInput{
		ClientID:  1,
		ServiceID: 2,
		Date:      "2024-01-10",
		Time:      "10:00",
	})
	assert.Error(t, err)
	assert.Nil(t, out)
}
