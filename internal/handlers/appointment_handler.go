package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sipslabs/sips-api/internal/httperr"
	"github.com/sipslabs/sips-api/internal/httpresp"
	"github.com/sipslabs/sips-api/internal/timezone"
	ucscheduling "github.com/sipslabs/sips-api/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucscheduling.CreateAppointment
	listUC   *ucscheduling.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucscheduling.CreateAppointment,
	listUC *ucscheduling.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID  uint   `json:"client_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucscheduling.CreateAppointmentInput{
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		respondBusiness(c, err, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var start, end *time.Time

	if raw := strings.TrimSpace(c.Query("start")); raw != "" {
		t, err := timezone.ParseDate(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_start", "Data inválida.")
			return
		}
		start = &t
	}

	if raw := strings.TrimSpace(c.Query("end")); raw != "" {
		t, err := timezone.ParseDate(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_end", "Data inválida.")
			return
		}
		// fim inclusivo: o filtro do repositório é start_time < end
		next := t.Add(24 * time.Hour)
		end = &next
	}

	appointments, err := h.listUC.Execute(c.Request.Context(), start, end)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, appointments)
}
