package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/sipslabs/sips-api/internal/domain/ledger"
	"github.com/sipslabs/sips-api/internal/models"
)

type LedgerGormRepository struct {
	db *gorm.DB
}

func NewLedgerGormRepository(db *gorm.DB) *LedgerGormRepository {
	return &LedgerGormRepository{db: db}
}

func (r *LedgerGormRepository) Create(
	ctx context.Context,
	entry *models.LedgerEntry,
) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *LedgerGormRepository) List(
	ctx context.Context,
	filter domain.Filter,
) ([]models.LedgerEntry, error) {

	q := r.db.WithContext(ctx).Model(&models.LedgerEntry{})

	if filter.Start != nil {
		q = q.Where("date >= ?", *filter.Start)
	}
	if filter.End != nil {
		q = q.Where("date <= ?", *filter.End)
	}

	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		q = q.Where("LOWER(description) LIKE ?", "%"+search+"%")
	}

	var entries []models.LedgerEntry
	if err := q.
		Order("date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *LedgerGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.LedgerEntry, error) {

	var entry models.LedgerEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *LedgerGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.LedgerEntry{}, id).Error
}
