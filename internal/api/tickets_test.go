package api

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"event_ticketing/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryTicketStore struct {
	mu      sync.Mutex
	nextID  uint
	tickets map[uint]domain.Ticket
}

func newMemoryTicketStore() *memoryTicketStore {
	return &memoryTicketStore{tickets: map[uint]domain.Ticket{}}
}

func (s *memoryTicketStore) Create(_ context.Context, t *domain.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	t.ID = s.nextID
	s.tickets[t.ID] = *t
	return nil
}

func (s *memoryTicketStore) FindByID(_ context.Context, id uint) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	return &t, nil
}

func (s *memoryTicketStore) ListByUser(_ context.Context, userID string) ([]domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Ticket{}
	for _, t := range s.tickets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *memoryTicketStore) Delete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tickets, id)
	return nil
}

func TestTicketLifecycle(t *testing.T) {
	env := newTestEnv(t, true)

	w := env.do(http.MethodPost, "/tickets", map[string]any{
		"userid":      "u1",
		"eventid":     3,
		"name":        "Ada",
		"email":       "ada@example.com",
		"eventname":   "Go Meetup",
		"ticketprice": 15,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[struct {
		Ticket domain.Ticket `json:"ticket"`
	}](t, w).Ticket
	assert.Equal(t, "u1", created.UserID)
	assert.NotZero(t, created.ID)

	w = env.do(http.MethodGet, "/tickets/user/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Ticket](t, w), 1)

	w = env.do(http.MethodGet, "/tickets/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Go Meetup", decode[domain.Ticket](t, w).EventName)

	w = env.do(http.MethodDelete, "/tickets/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(http.MethodGet, "/tickets/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTicket_Invalid(t *testing.T) {
	env := newTestEnv(t, true)

	w := env.do(http.MethodPost, "/tickets", map[string]any{"name": "no user or event"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/tickets", map[string]any{"userid": "u1", "eventid": 1, "ticketprice": -5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
