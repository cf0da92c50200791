package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"event_ticketing/internal/mocks"
	"event_ticketing/internal/service"
	"event_ticketing/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// memoryCache is an in-process utils.Cache
type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	hits int
}

func newMemoryCache() *memoryCache { return &memoryCache{data: map[string][]byte{}} }

func (m *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	m.hits++
	return true, json.Unmarshal(b, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = b
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

type memoryDenylist struct {
	mu      sync.Mutex
	revoked map[string]bool
	err     error // Returned by IsRevoked when set
}

func (d *memoryDenylist) Revoke(_ context.Context, id string, _ time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[id] = true
	return nil
}

func (d *memoryDenylist) IsRevoked(_ context.Context, id string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return false, d.err
	}
	return d.revoked[id], nil
}

// memoryCooldown claims keys like SET NX; blocked rejects every claim
type memoryCooldown struct {
	mu      sync.Mutex
	blocked bool
	claimed map[string]bool
}

func (m *memoryCooldown) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blocked || m.claimed[key] {
		return false, nil
	}
	m.claimed[key] = true
	return true, nil
}

func (m *memoryCooldown) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.claimed, key)
	return nil
}

type testEnv struct {
	router   *gin.Engine
	users    *mocks.UserStore
	mailer   *mocks.Mailer
	wallets  *testutil.MemoryWalletStore
	events   *memoryEventStore
	tickets  *memoryTicketStore
	cache    *memoryCache
	deny     *memoryDenylist
	cooldown *memoryCooldown
}

func newTestEnv(t *testing.T, cooldownAllows bool) *testEnv {
	t.Helper()
	testutil.SilenceLogs(t)
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:    &mocks.UserStore{},
		mailer:   &mocks.Mailer{},
		wallets:  testutil.NewMemoryWalletStore(),
		events:   newMemoryEventStore(),
		tickets:  newMemoryTicketStore(),
		cache:    newMemoryCache(),
		deny:     &memoryDenylist{revoked: map[string]bool{}},
		cooldown: &memoryCooldown{blocked: !cooldownAllows, claimed: map[string]bool{}},
	}
	router, err := NewRouter(Dependencies{
		Users:       env.users,
		Events:      env.events,
		Tickets:     env.tickets,
		Ledger:      service.NewLedger(env.wallets),
		OTP:         service.NewOTPManager(env.users, env.mailer, 10*time.Minute),
		Sessions:    &Sessions{Secret: testSecret, TTL: time.Hour, Denylist: env.deny},
		Cache:       env.cache,
		OTPCooldown: env.cooldown,
		UploadDir:   t.TempDir(),
		CORSOrigins: []string{"http://localhost:5173"},
	})
	require.NoError(t, err)
	env.router = router
	return env
}

func (e *testEnv) do(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func tokenCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	t.Fatal("no token cookie in response")
	return nil
}
