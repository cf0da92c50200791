package api

import (
	"event_ticketing/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TicketRequest represents a ticket purchase
type TicketRequest struct {
	UserID      string  `json:"userid" binding:"required"`
	EventID     uint    `json:"eventid" binding:"required"`
	Name        string  `json:"name"`
	Email       string  `json:"email" binding:"omitempty,email"`
	EventName   string  `json:"eventname"`
	EventDate   string  `json:"eventdate"`
	EventTime   string  `json:"eventtime"`
	TicketPrice float64 `json:"ticketprice" binding:"gte=0,finite"`
	QR          string  `json:"qr"`
}

// CreateTicketHandler issues a ticket
func CreateTicketHandler(tickets domain.TicketStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid ticket")
			return
		}
		ticket := domain.Ticket{
			UserID:      req.UserID,
			EventID:     req.EventID,
			Name:        req.Name,
			Email:       req.Email,
			EventName:   req.EventName,
			EventDate:   req.EventDate,
			EventTime:   req.EventTime,
			TicketPrice: req.TicketPrice,
			QR:          req.QR,
		}
		if err := tickets.Create(c.Request.Context(), &ticket); err != nil {
			logrus.WithFields(logrus.Fields{"user_id": req.UserID, "error": err.Error()}).Error("Error creating ticket")
			respondError(c, domain.NewPersistenceError("Failed to create ticket", err))
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ticket": ticket})
	}
}

// GetTicketHandler returns one ticket
func GetTicketHandler(tickets domain.TicketStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		ticket, err := tickets.FindByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, persistenceUnlessDomain(err, "Failed to fetch ticket"))
			return
		}
		c.JSON(http.StatusOK, ticket)
	}
}

// ListUserTicketsHandler returns the tickets held by :userId
func ListUserTicketsHandler(tickets domain.TicketStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := tickets.ListByUser(c.Request.Context(), c.Param("userId"))
		if err != nil {
			respondError(c, domain.NewPersistenceError("Failed to fetch user tickets", err))
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// DeleteTicketHandler removes a ticket
func DeleteTicketHandler(tickets domain.TicketStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := tickets.Delete(c.Request.Context(), id); err != nil {
			respondError(c, domain.NewPersistenceError("Failed to delete ticket", err))
			return
		}
		c.Status(http.StatusNoContent)
	}
}
