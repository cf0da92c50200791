package repository

import (
	"context"                         // Request-scoped queries
	"event_ticketing/internal/domain" // Ticket model and errors

	"gorm.io/gorm" // GORM ORM library
)

// TicketRepository stores tickets in MySQL through GORM
type TicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a ticket repository
func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create inserts a ticket and fills its ID
func (r *TicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

// FindByID returns domain.ErrTicketNotFound for an unknown id
func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := r.db.WithContext(ctx).First(&ticket, id).Error; err != nil {
		return nil, notFound(err, domain.ErrTicketNotFound)
	}
	return &ticket, nil
}

// ListByUser returns a user's tickets, newest first, never nil
func (r *TicketRepository) ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error) {
	tickets := []domain.Ticket{} // Encode as [] rather than null
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// Delete is idempotent: removing a missing ticket is not an error
func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Ticket{}, id).Error
}
