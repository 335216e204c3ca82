package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store/memory"
	"github.com/itlaf/fotostudio/internal/utils"
)

const testSecret = "test-secret"

type testEnv struct {
	users   *memory.UserStore
	clients *memory.ClientStore
	quotes  *memory.QuoteStore
	configs *memory.SystemConfigStore

	uploadDir string
	router    http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	users := memory.NewUserStore()
	clients := memory.NewClientStore()
	sessions := memory.NewSessionStore()
	clients.Sessions = sessions
	sessions.Clients = clients
	quotes := memory.NewQuoteStore()
	quotes.Clients = clients
	equipments := memory.NewEquipmentStore()
	transactions := memory.NewTransactionStore()
	configs := memory.NewSystemConfigStore()

	stores := Stores{
		Users:        users,
		Clients:      clients,
		Sessions:     sessions,
		Quotes:       quotes,
		Equipments:   equipments,
		Transactions: transactions,
		Configs:      configs,
	}

	dir := t.TempDir()
	h := NewHandler(stores, testSecret, time.Hour, dir, logger)
	r := NewRouter(h, RouterOptions{
		Secret:         testSecret,
		UploadDir:      dir,
		Users:          users,
		LoginRate:      100,
		LoginRateBurst: 100,
		Logger:         logger,
	})

	return &testEnv{
		users:     users,
		clients:   clients,
		quotes:    quotes,
		configs:   configs,
		uploadDir: dir,
		router:    r,
	}
}

// seedUser inserts a user directly into the store and returns a valid token.
func (env *testEnv) seedUser(t *testing.T, name, email, password string, role models.Role) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := models.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, env.users.Create(context.Background(), &u))

	token, err := utils.GenerateToken(u.ID, testSecret, time.Hour)
	require.NoError(t, err)
	return u, token
}

func (env *testEnv) seedClient(t *testing.T, name string) models.Client {
	t.Helper()
	c := models.Client{ID: uuid.New().String(), Name: name}
	require.NoError(t, env.clients.Create(context.Background(), &c))
	return c
}

// do sends a JSON request through the full router.
func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
