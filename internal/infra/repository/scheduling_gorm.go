package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sipslabs/sips-api/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *SchedulingGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *SchedulingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Appointment + derived entry
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateAppointmentWithEntry(
	ctx context.Context,
	ap *models.Appointment,
	entry *models.LedgerEntry,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ap).Error; err != nil {
			return err
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *SchedulingGormRepository) ListAppointments(
	ctx context.Context,
	start *time.Time,
	end *time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service")

	if start != nil {
		q = q.Where("start_time >= ?", *start)
	}
	if end != nil {
		q = q.Where("start_time < ?", *end)
	}

	var appointments []models.Appointment
	if err := q.
		Order("start_time ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}

	return appointments, nil
}
