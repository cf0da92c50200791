package repository

import (
	"context"                         // Request-scoped queries
	"event_ticketing/internal/domain" // Event model and errors

	"gorm.io/gorm" // GORM ORM library
)

// EventRepository stores events in MySQL through GORM
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates an event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts an event and fills its ID
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// List returns every event ordered by date, never nil
func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	events := []domain.Event{} // Encode as [] rather than null
	if err := r.db.WithContext(ctx).Order("event_date asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// FindByID returns domain.ErrEventNotFound for an unknown id
func (r *EventRepository) FindByID(ctx context.Context, id uint) (*domain.Event, error) {
	var event domain.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, notFound(err, domain.ErrEventNotFound)
	}
	return &event, nil
}

// Like bumps the counter with likes = likes + 1 so concurrent likes add up
func (r *EventRepository) Like(ctx context.Context, id uint) (*domain.Event, error) {
	var event domain.Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Event{}).Where("id = ?", id).Update("likes", gorm.Expr("likes + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 { // No such event
			return domain.ErrEventNotFound
		}
		return tx.First(&event, id).Error // Read back the incremented row
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}
