package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sipslabs/sips-api/internal/httperr"
	"github.com/sipslabs/sips-api/internal/models"
	"github.com/sipslabs/sips-api/internal/timezone"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	TaxID     string `json:"tax_id" binding:"required"`
	Address   string `json:"address" binding:"required"`
	Email     string `json:"email" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"`
	Notes     string `json:"notes"`
}

type UpdateClientRequest struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	TaxID     *string `json:"tax_id,omitempty"`
	Address   *string `json:"address,omitempty"`
	Email     *string `json:"email,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// --------- Handlers ---------

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	birth, err := timezone.ParseDate(req.BirthDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
		return
	}

	client := models.Client{
		Name:      req.Name,
		Phone:     req.Phone,
		TaxID:     req.TaxID,
		Address:   req.Address,
		Email:     req.Email,
		BirthDate: birth,
		Notes:     req.Notes,
	}

	if err := h.db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_client"})
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Client{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed_to_list_clients",
		})
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_client"})
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.TaxID != nil {
		client.TaxID = *req.TaxID
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.BirthDate != nil {
		birth, err := timezone.ParseDate(*req.BirthDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
			return
		}
		client.BirthDate = birth
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	if err := h.db.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_client"})
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_client"})
		return
	}

	if err := h.db.Delete(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_client"})
		return
	}

	c.Status(http.StatusNoContent)
}
