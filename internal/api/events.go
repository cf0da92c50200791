package api

import (
	"context"                             // Cache context
	"event_ticketing/internal/domain"     // Importing domain models
	"event_ticketing/internal/middleware" // Context keys
	"event_ticketing/internal/utils"      // Cache helpers
	"net/http"                            // HTTP status codes
	"path/filepath"                       // Upload paths
	"strconv"                             // ID parsing
	"time"                                // Dates and cache TTL

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Upload file names
	"github.com/sirupsen/logrus" // Logging library
)

const (
	eventsCacheKey = "events:all"     // Cached event list
	eventsCacheTTL = 60 * time.Second // Event list freshness
)

// EventForm is the multipart form accepted by event creation
type EventForm struct {
	Owner        string   `form:"owner"`
	Title        string   `form:"title" binding:"required,max=200"`
	Description  string   `form:"description"`
	OrganizedBy  string   `form:"organizedBy"`
	EventDate    string   `form:"eventDate" binding:"required"`
	EventTime    string   `form:"eventTime"`
	Location     string   `form:"location"`
	Participants int      `form:"Participants" binding:"gte=0"`
	Count        int      `form:"Count" binding:"gte=0"`
	Income       float64  `form:"Income" binding:"finite"`
	TicketPrice  float64  `form:"ticketPrice" binding:"gte=0,finite"`
	Quantity     int      `form:"Quantity" binding:"gte=0"`
	Comments     []string `form:"Comment"`
}

// parseEventDate accepts a calendar date or a full RFC 3339 timestamp
func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// parseID reads a numeric path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// invalidateEvents drops the cached event list after a write
func invalidateEvents(ctx context.Context, cache utils.Cache) {
	if err := cache.Delete(ctx, eventsCacheKey); err != nil {
		logrus.WithFields(logrus.Fields{"error": err.Error()}).Warn("Failed to invalidate events cache")
	}
}

// CreateEventHandler stores an event and its optional image upload
func CreateEventHandler(events domain.EventStore, cache utils.Cache, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form EventForm // Bind multipart form to struct
		if err := c.ShouldBind(&form); err != nil {
			badRequest(c, "Invalid event")
			return
		}
		date, err := parseEventDate(form.EventDate)
		if err != nil {
			badRequest(c, "Invalid event date")
			return
		}
		owner := form.Owner
		if owner == "" {
			owner = c.GetString(middleware.ContextUserID) // Default to the signed-in user
		}
		event := domain.Event{
			Owner:        owner,
			Title:        form.Title,
			Description:  form.Description,
			OrganizedBy:  form.OrganizedBy,
			EventDate:    date,
			EventTime:    form.EventTime,
			Location:     form.Location,
			Participants: form.Participants,
			Count:        form.Count,
			Income:       form.Income,
			TicketPrice:  form.TicketPrice,
			Quantity:     form.Quantity,
			Comments:     form.Comments,
		}
		// Save the image under a unique name so uploads never overwrite each other
		if file, err := c.FormFile("image"); err == nil {
			name := uuid.NewString() + "-" + filepath.Base(file.Filename)
			if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
				logrus.WithFields(logrus.Fields{"file": file.Filename, "error": err.Error()}).Error("Failed to save upload")
				respondError(c, domain.NewPersistenceError("Failed to save the event image", err))
				return
			}
			event.Image = "uploads/" + name
		}
		if err := events.Create(c.Request.Context(), &event); err != nil {
			logrus.WithFields(logrus.Fields{"title": event.Title, "error": err.Error()}).Error("Failed to create event")
			respondError(c, domain.NewPersistenceError("Failed to save the event", err))
			return
		}
		invalidateEvents(c.Request.Context(), cache)
		logrus.WithFields(logrus.Fields{"event_id": event.ID, "owner": event.Owner}).Info("Event created")
		c.JSON(http.StatusCreated, event)
	}
}

// ListEventsHandler returns all events, served from Redis when fresh
func ListEventsHandler(events domain.EventStore, cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []domain.Event
		found, err := cache.Get(ctx, eventsCacheKey, &cached) // Try to get from cache
		if err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		list, err := events.List(ctx)
		if err != nil {
			respondError(c, domain.NewPersistenceError("Failed to fetch events", err))
			return
		}
		if err := cache.Set(ctx, eventsCacheKey, list, eventsCacheTTL); err != nil {
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Warn("Failed to cache events")
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetEventHandler returns one event; also serves the order and payment summaries
func GetEventHandler(events domain.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		event, err := events.FindByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, persistenceUnlessDomain(err, "Failed to fetch event"))
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

// LikeEventHandler adds one like to an event
func LikeEventHandler(events domain.EventStore, cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		event, err := events.Like(c.Request.Context(), id)
		if err != nil {
			respondError(c, persistenceUnlessDomain(err, "Failed to like event"))
			return
		}
		invalidateEvents(c.Request.Context(), cache)
		c.JSON(http.StatusOK, event)
	}
}
