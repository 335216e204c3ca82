package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itlaf/fotostudio/internal/models"
)

func TestRegisterLoginMe(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Maria Silva",
		"email":    "maria@example.com",
		"password": "senha123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	reg := decodeBody[map[string]string](t, rec)
	require.NotEmpty(t, reg["token"])

	rec = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "maria@example.com",
		"password": "senha123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	login := decodeBody[map[string]string](t, rec)
	require.NotEmpty(t, login["token"])

	rec = env.do(t, http.MethodGet, "/api/users/me", login["token"], nil)
	require.Equal(t, http.StatusOK, rec.Code)

	me := decodeBody[models.User](t, rec)
	assert.Equal(t, "Maria Silva", me.Name)
	assert.Equal(t, models.RoleUser, me.Role)

	// the hash must never appear in any serialized form
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "Maria", "maria@example.com", "senha123", models.RoleUser)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Outra Maria",
		"email":    "maria@example.com",
		"password": "senha456",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email já cadastrado")
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "M",
		"email":    "not-an-email",
		"password": "123",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody[map[string][]map[string]string](t, rec)
	require.Len(t, body["errors"], 3)

	// nothing was written
	users, err := env.users.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "Maria", "maria@example.com", "senha123", models.RoleUser)

	t.Run("wrong password", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "maria@example.com",
			"password": "errada",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Credenciais inválidas")
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "ninguem@example.com",
			"password": "senha123",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Credenciais inválidas")
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/clients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token não fornecido")

	rec = env.do(t, http.MethodGet, "/api/clients", "nonsense", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token inválido")
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}
