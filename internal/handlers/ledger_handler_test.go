package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sipslabs/sips-api/internal/audit"
	domain "github.com/sipslabs/sips-api/internal/domain/ledger"
	"github.com/sipslabs/sips-api/internal/handlers"
	"github.com/sipslabs/sips-api/internal/models"
	ucledger "github.com/sipslabs/sips-api/internal/usecase/ledger"
)

// --- Mock Repository ---

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Create(ctx context.Context, entry *models.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) List(ctx context.Context, filter domain.Filter) ([]models.LedgerEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) GetByID(ctx context.Context, id uint) (*models.LedgerEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ domain.Repository = (*MockLedgerRepository)(nil)

type noopSink struct{}

func (noopSink) Dispatch(audit.Event) {}

// --- Setup ---

func newLedgerRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := handlers.NewLedgerHandler(
		ucledger.NewCreateEntry(repo, noopSink{}),
		ucledger.NewListEntries(repo),
		ucledger.NewDeleteEntry(repo, noopSink{}),
		ucledger.NewSummarizeEntries(repo),
		ucledger.NewExportEntries(repo),
	)

	r := gin.New()
	r.POST("/api/ledger", h.Create)
	r.GET("/api/ledger", h.List)
	r.DELETE("/api/ledger/:id", h.Delete)
	r.GET("/api/ledger/summary", h.Summary)
	r.GET("/api/ledger/export", h.Export)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Tests ---

func TestLedgerCreateReturnsEntry(t *testing.T) {
	repo := new(MockLedgerRepository)
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.LedgerEntry).ID = 1
		}).
		Return(nil)

	r := newLedgerRouter(repo)

	w := doRequest(r, http.MethodPost, "/api/ledger", `{
		"date": "2024-01-10",
		"description": "Corte de cabelo",
		"kind": "income",
		"amount": "50.00",
		"category": "Corte",
		"payment_method": "Pix"
	}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var entry models.LedgerEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, uint(1), entry.ID)
	assert.Equal(t, "income", entry.Kind)
	assert.Equal(t, "50.00", entry.Amount.StringFixed(2))
}

func TestLedgerCreateRejectsPlaceholderKind(t *testing.T) {
	repo := new(MockLedgerRepository)
	r := newLedgerRouter(repo)

	w := doRequest(r, http.MethodPost, "/api/ledger", `{
		"date": "2024-01-10",
		"description": "Corte de cabelo",
		"kind": "",
		"amount": "50.00",
		"category": "Corte",
		"payment_method": "Pix"
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_kind")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLedgerListPassesFilter(t *testing.T) {
	repo := new(MockLedgerRepository)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.Filter) bool {
		return f.Search == "corte" &&
			f.Start != nil && f.Start.Format("2006-01-02") == "2024-01-01" &&
			f.End != nil && f.End.Format("2006-01-02") == "2024-01-31"
	})).Return([]models.LedgerEntry{{ID: 1}}, nil)

	r := newLedgerRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/ledger?start=2024-01-01&end=2024-01-31&q=corte", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data  []models.LedgerEntry `json:"data"`
		Total int                  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
}

func TestLedgerListRejectsBadDate(t *testing.T) {
	repo := new(MockLedgerRepository)
	r := newLedgerRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/ledger?start=10-01-2024", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_start")
}

func TestLedgerDeleteNotFound(t *testing.T) {
	repo := new(MockLedgerRepository)
	repo.On("GetByID", mock.Anything, uint(99)).
		Return(nil, gorm.ErrRecordNotFound)

	r := newLedgerRouter(repo)

	w := doRequest(r, http.MethodDelete, "/api/ledger/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "entry_not_found")
}

func TestLedgerDeleteByID(t *testing.T) {
	repo := new(MockLedgerRepository)
	repo.On("GetByID", mock.Anything, uint(5)).
		Return(&models.LedgerEntry{ID: 5}, nil)
	repo.On("Delete", mock.Anything, uint(5)).Return(nil)

	r := newLedgerRouter(repo)

	w := doRequest(r, http.MethodDelete, "/api/ledger/5", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLedgerSummaryEmptyViewIsZero(t *testing.T) {
	repo := new(MockLedgerRepository)
	repo.On("List", mock.Anything, mock.Anything).Return([]models.LedgerEntry{}, nil)

	r := newLedgerRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/ledger/summary", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Summary struct {
			Balance    decimal.Decimal `json:"balance"`
			MaxIncome  decimal.Decimal `json:"max_income"`
			MaxExpense decimal.Decimal `json:"max_expense"`
		} `json:"summary"`
		EntryCount int `json:"entry_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Summary.Balance.IsZero())
	assert.True(t, resp.Summary.MaxIncome.IsZero())
	assert.True(t, resp.Summary.MaxExpense.IsZero())
	assert.Equal(t, 0, resp.EntryCount)
}

func TestLedgerExportContentType(t *testing.T) {
	repo := new(MockLedgerRepository)
	repo.On("List", mock.Anything, mock.Anything).Return([]models.LedgerEntry{
		{
			ID:            1,
			Date:          time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Description:   "Corte",
			Kind:          "income",
			Amount:        decimal.RequireFromString("50.00"),
			Category:      "Corte",
			PaymentMethod: "Pix",
		},
	}, nil)

	r := newLedgerRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/ledger/export", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "lancamentos_financeiros.csv")
	assert.True(t, strings.HasPrefix(w.Body.String(), "id,date,description,kind,amount,category,payment_method,note"))
}
