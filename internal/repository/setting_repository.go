package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/openglucose/glucose-tracker/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	Upsert(ctx context.Context, entry *domain.SettingEntry) error
	List(ctx context.Context, userID uuid.UUID, filter domain.SettingFilter) ([]domain.SettingEntry, error)
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// Upsert inserts a breakpoint, or overwrites its value when the same
// (kind, effective_from, offset_hours) breakpoint already exists for the user.
func (r *settingRepository) Upsert(ctx context.Context, entry *domain.SettingEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "kind"},
			{Name: "effective_from"},
			{Name: "offset_hours"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(entry).Error
}

func (r *settingRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SettingFilter) ([]domain.SettingEntry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("kind ASC, effective_from ASC, offset_hours ASC")

	if filter.Kind != nil {
		query = query.Where("kind = ?", *filter.Kind)
	}

	var entries []domain.SettingEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
