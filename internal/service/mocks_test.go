package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/openglucose/glucose-tracker/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockSettingRepository is a mock implementation of SettingRepository
type MockSettingRepository struct {
	entries []domain.SettingEntry
	err     error
}

func NewMockSettingRepository() *MockSettingRepository {
	return &MockSettingRepository{}
}

func (m *MockSettingRepository) Upsert(ctx context.Context, entry *domain.SettingEntry) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.entries {
		e := &m.entries[i]
		if e.UserID == entry.UserID && e.Kind == entry.Kind &&
			e.EffectiveFrom.Equal(entry.EffectiveFrom) && e.OffsetHours == entry.OffsetHours {
			e.Value = entry.Value
			entry.ID = e.ID
			return nil
		}
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *MockSettingRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SettingFilter) ([]domain.SettingEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SettingEntry
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		if filter.Kind != nil && e.Kind != *filter.Kind {
			continue
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if !a.EffectiveFrom.Equal(b.EffectiveFrom) {
			return a.EffectiveFrom.Before(b.EffectiveFrom)
		}
		return a.OffsetHours < b.OffsetHours
	})
	return result, nil
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	records    []domain.EventRecord
	listResult []domain.EventRecord
	err        error
}

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{}
}

func (m *MockEventRepository) Create(ctx context.Context, record *domain.EventRecord) error {
	if m.err != nil {
		return m.err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()
	m.records = append(m.records, *record)
	return nil
}

func (m *MockEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.EventRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.records {
		if m.records[i].ID == id {
			return &m.records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockEventRepository) List(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.EventRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.EventRecord, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.EventRecord
	for _, r := range m.records {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartAt.After(result[j].StartAt)
	})
	return result, nil
}

func (m *MockEventRepository) ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.EventRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.EventRecord
	for _, r := range m.records {
		if r.UserID == userID && r.StartAt.Before(to) && !r.StartAt.Before(from) {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartAt.Before(result[j].StartAt)
	})
	return result, nil
}

// Helper functions
func floatPtr(f float64) *float64 {
	return &f
}

func timePtr(t time.Time) *time.Time {
	return &t
}
