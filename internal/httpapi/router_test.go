package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"iter"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/filevault/internal/domain"
	"github.com/rise-and-shine/filevault/internal/httpapi"
	"github.com/rise-and-shine/filevault/internal/usecase/identity"
	"github.com/rise-and-shine/filevault/internal/usecase/uploads"
	"github.com/rise-and-shine/filevault/pkg/logger"
	"github.com/rise-and-shine/filevault/pkg/server"
	"github.com/rise-and-shine/filevault/pkg/server/middleware"
	"github.com/rise-and-shine/filevault/pkg/val"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.SetGlobal(logger.Config{Disable: true})
	os.Exit(m.Run())
}

// memDirectory is an in-memory credential directory.
type memDirectory struct {
	mu         sync.Mutex
	byID       map[string]domain.Principal
	byUsername map[string]string
}

func newMemDirectory() *memDirectory {
	return &memDirectory{
		byID:       make(map[string]domain.Principal),
		byUsername: make(map[string]string),
	}
}

func (d *memDirectory) Create(_ context.Context, p *domain.Principal) (*domain.Principal, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, taken := d.byUsername[p.Username]; taken {
		return nil, errx.New(
			"unique constraint violation",
			errx.WithCode(domain.CodeUsernameTaken),
			errx.WithType(errx.T_Conflict),
		)
	}

	stored := *p
	stored.CreatedAt = time.Now()
	d.byID[stored.ID] = stored
	d.byUsername[stored.Username] = stored.ID

	out := stored
	return &out, nil
}

func (d *memDirectory) GetByID(_ context.Context, id string) (*domain.Principal, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.byID[id]
	if !ok {
		return nil, errx.New(
			"principal not found",
			errx.WithCode(domain.CodeUserNotFound),
			errx.WithType(errx.T_NotFound),
		)
	}
	out := p
	return &out, nil
}

func (d *memDirectory) FindByUsername(_ context.Context, username string) (*domain.Principal, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id, ok := d.byUsername[username]
	if !ok {
		return nil, nil
	}
	p := d.byID[id]
	return &p, nil
}

// memStorage is an in-memory bucket backend implementing both the
// provisioning and the listing side.
type memStorage struct {
	mu      sync.Mutex
	buckets map[string][]domain.ObjectRecord
}

func newMemStorage() *memStorage {
	return &memStorage{buckets: make(map[string][]domain.ObjectRecord)}
}

func (s *memStorage) Provision(_ context.Context, namespaceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buckets[namespaceID]; !ok {
		s.buckets[namespaceID] = []domain.ObjectRecord{}
	}
	return nil
}

func (s *memStorage) put(namespaceID, key string, size int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buckets[namespaceID] = append(s.buckets[namespaceID], domain.ObjectRecord{
		NamespaceID: namespaceID,
		Key:         key,
		Size:        size,
	})
}

func (s *memStorage) Objects(_ context.Context, namespaceID string) iter.Seq2[domain.ObjectRecord, error] {
	s.mu.Lock()
	records := append([]domain.ObjectRecord(nil), s.buckets[namespaceID]...)
	s.mu.Unlock()

	return func(yield func(domain.ObjectRecord, error) bool) {
		for _, rec := range records {
			if !yield(rec, nil) {
				return
			}
		}
	}
}

func newTestApp(t *testing.T, dir *memDirectory, storage *memStorage) *fiber.App {
	t.Helper()

	log, err := logger.New(logger.Config{Disable: true})
	require.NoError(t, err)

	srv := server.NewHTTPServer(server.Config{
		Host:          "127.0.0.1",
		Port:          0,
		ReadTimeout:   5 * time.Second,
		WriteTimeout:  5 * time.Second,
		IdleTimeout:   time.Minute,
		HandleTimeout: 5 * time.Second,
		BodyLimit:     4 << 20,
	}, []server.Middleware{
		middleware.NewRecoveryMW(log),
		middleware.NewMetaInjectMW("filevault", "test"),
		middleware.NewErrorHandlerMW(false),
	})

	srv.RegisterRouter(func(r fiber.Router) {
		httpapi.RegisterRoutes(r, httpapi.UseCases{
			Register:     identity.NewRegister(dir, storage, log),
			Authenticate: identity.NewAuthenticate(dir),
			GetUser:      identity.NewGetUser(dir),
			ListUploads:  uploads.NewList(storage),
		})
	})

	return srv.App()
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

// errCode extracts the error code from the standard error envelope.
func errCode(t *testing.T, body map[string]any) string {
	t.Helper()

	envelope, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error envelope, got: %v", body)
	code, _ := envelope["code"].(string)
	return code
}

func TestRegisterAuthenticateListFlow(t *testing.T) {
	dir := newMemDirectory()
	storage := newMemStorage()
	app := newTestApp(t, dir, storage)

	// Register a new principal.
	status, body := doJSON(t, app, http.MethodPost, "/v1/auth/register", map[string]string{
		"username": "alice",
		"secret":   "pw123",
	})
	require.Equal(t, http.StatusOK, status)
	userID, _ := body["user_id"].(string)
	require.NotEmpty(t, userID)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, true, body["storage_ready"])

	// Registering the same username again is a conflict.
	status, body = doJSON(t, app, http.MethodPost, "/v1/auth/register", map[string]string{
		"username": "alice",
		"secret":   "another",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, domain.CodeUsernameTaken, errCode(t, body))

	// A wrong secret is rejected without saying why.
	status, body = doJSON(t, app, http.MethodPost, "/v1/auth/authenticate", map[string]string{
		"username": "alice",
		"secret":   "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, domain.CodeInvalidCredentials, errCode(t, body))

	// An unknown username gets the same code.
	status, body = doJSON(t, app, http.MethodPost, "/v1/auth/authenticate", map[string]string{
		"username": "mallory",
		"secret":   "pw123",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, domain.CodeInvalidCredentials, errCode(t, body))

	// The right secret authenticates to the registered principal.
	status, body = doJSON(t, app, http.MethodPost, "/v1/auth/authenticate", map[string]string{
		"username": "alice",
		"secret":   "pw123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, userID, body["user_id"])

	// A fresh principal sees an empty upload list, not an error.
	status, body = doJSON(t, app, http.MethodGet, "/v1/users/"+userID+"/uploads", nil)
	require.Equal(t, http.StatusOK, status)
	uploadsList, ok := body["uploads"].([]any)
	require.True(t, ok)
	assert.Empty(t, uploadsList)
}

func TestListUploadsIsNamespaceScoped(t *testing.T) {
	dir := newMemDirectory()
	storage := newMemStorage()
	app := newTestApp(t, dir, storage)

	_, aliceBody := doJSON(t, app, http.MethodPost, "/v1/auth/register", map[string]string{
		"username": "alice", "secret": "pw123",
	})
	_, bobBody := doJSON(t, app, http.MethodPost, "/v1/auth/register", map[string]string{
		"username": "bob", "secret": "pw456",
	})

	aliceID := aliceBody["user_id"].(string)
	bobID := bobBody["user_id"].(string)

	storage.put(aliceID, "photo.jpg", 1024)
	storage.put(aliceID, "notes.txt", 42)
	storage.put(bobID, "secret.pdf", 2048)

	status, body := doJSON(t, app, http.MethodGet, "/v1/users/"+aliceID+"/uploads", nil)
	require.Equal(t, http.StatusOK, status)

	records, ok := body["uploads"].([]any)
	require.True(t, ok)
	require.Len(t, records, 2)
	for _, raw := range records {
		rec := raw.(map[string]any)
		assert.Equal(t, aliceID, rec["namespace_id"])
		assert.NotEqual(t, "secret.pdf", rec["key"])
	}
}

func TestGetUserEndpoint(t *testing.T) {
	dir := newMemDirectory()
	storage := newMemStorage()
	app := newTestApp(t, dir, storage)

	_, created := doJSON(t, app, http.MethodPost, "/v1/auth/register", map[string]string{
		"username": "alice", "secret": "pw123",
	})
	userID := created["user_id"].(string)

	status, body := doJSON(t, app, http.MethodGet, "/v1/users/"+userID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, userID, body["user_id"])

	status, body = doJSON(t, app, http.MethodGet, "/v1/users/b7a6e2a0-0000-4000-8000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, domain.CodeUserNotFound, errCode(t, body))
}

func TestValidationErrors(t *testing.T) {
	app := newTestApp(t, newMemDirectory(), newMemStorage())

	// Username below the minimum length.
	status, body := doJSON(t, app, http.MethodPost, "/v1/auth/register", map[string]string{
		"username": "ab", "secret": "pw123",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, val.CodeValidationFailed, errCode(t, body))

	// Path parameter must be a UUID.
	status, body = doJSON(t, app, http.MethodGet, "/v1/users/not-a-uuid/uploads", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, val.CodeValidationFailed, errCode(t, body))
}
