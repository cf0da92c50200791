package domain

import (
	"context"
	"time"
)

// Ticket Model
type Ticket struct {
	ID          uint      `gorm:"primaryKey" json:"_id"`
	UserID      string    `gorm:"size:64;index" json:"userid"`
	EventID     uint      `gorm:"index" json:"eventid"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	EventName   string    `json:"eventname"`
	EventDate   string    `json:"eventdate"`
	EventTime   string    `json:"eventtime"`
	TicketPrice float64   `json:"ticketprice"`
	QR          string    `gorm:"type:text" json:"qr"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TicketStore is the persistence collaborator for tickets
type TicketStore interface {
	Create(ctx context.Context, ticket *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	ListByUser(ctx context.Context, userID string) ([]Ticket, error)
	Delete(ctx context.Context, id uint) error
}
