package domain

import (
	"context"
	"time"
)

// Event Model
type Event struct {
	ID           uint      `gorm:"primaryKey" json:"_id"`
	Owner        string    `gorm:"size:255;index" json:"owner"`
	Title        string    `json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	OrganizedBy  string    `json:"organizedBy"`
	EventDate    time.Time `json:"eventDate"`
	EventTime    string    `json:"eventTime"`
	Location     string    `json:"location"`
	Participants int       `json:"Participants"`
	Count        int       `json:"Count"`
	Income       float64   `json:"Income"`
	TicketPrice  float64   `json:"ticketPrice"`
	Quantity     int       `json:"Quantity"`
	Image        string    `json:"image"`
	Likes        int       `gorm:"not null;default:0" json:"likes"`
	Comments     []string  `gorm:"serializer:json;type:text" json:"Comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EventStore is the persistence collaborator for events
type EventStore interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context) ([]Event, error)
	FindByID(ctx context.Context, id uint) (*Event, error)
	// Like increments the like counter in place and returns the updated event
	Like(ctx context.Context, id uint) (*Event, error)
}
