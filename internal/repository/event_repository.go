package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/openglucose/glucose-tracker/internal/domain"
	"github.com/openglucose/glucose-tracker/pkg/pagination"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, record *domain.EventRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.EventRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.EventRecord, error)
	ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.EventRecord, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, record *domain.EventRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.EventRecord, error) {
	var record domain.EventRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *eventRepository) List(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.EventRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_at DESC")

	// Apply time filters
	if filter.From != nil {
		query = query.Where("start_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("start_at <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with start_at < cursor.StartAt
			// or same start_at but id < cursor.ID
			query = query.Where(
				"(start_at < ?) OR (start_at = ? AND id < ?)",
				cursor.StartAt, cursor.StartAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.EventRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// ListInRange returns every event that can contribute to glucose change
// inside [from, to): events starting before `to` whose decay tail may still
// be active at `from`. The caller widens `from` by the longest action
// duration it cares about.
func (r *eventRepository) ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.EventRecord, error) {
	var records []domain.EventRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("start_at < ?", to).
		Where("start_at >= ?", from).
		Order("start_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
