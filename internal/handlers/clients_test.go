package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itlaf/fotostudio/internal/models"
)

func TestClientCRUD(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "Ana", "ana@example.com", "senha123", models.RoleUser)

	rec := env.do(t, http.MethodPost, "/api/clients", token, map[string]any{
		"name":  "Cliente Um",
		"email": "cliente@example.com",
		"phone": "11999990000",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Client](t, rec)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Cliente Um", created.Name)

	rec = env.do(t, http.MethodGet, "/api/clients/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.Client](t, rec)
	assert.Equal(t, created.ID, got.ID)

	rec = env.do(t, http.MethodPut, "/api/clients/"+created.ID, token, map[string]any{
		"name": "Cliente Renomeado",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[models.Client](t, rec)
	assert.Equal(t, "Cliente Renomeado", updated.Name)

	rec = env.do(t, http.MethodGet, "/api/clients", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]models.Client](t, rec)
	require.Len(t, list, 1)

	rec = env.do(t, http.MethodDelete, "/api/clients/"+created.ID, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/clients/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cliente não encontrado")
}

func TestClientCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "Ana", "ana@example.com", "senha123", models.RoleUser)

	rec := env.do(t, http.MethodPost, "/api/clients", token, map[string]any{
		"email": "invalido",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	clients, err := env.clients.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestClientGetEmbedsSessions(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "Ana", "ana@example.com", "senha123", models.RoleUser)
	client := env.seedClient(t, "Cliente Um")

	rec := env.do(t, http.MethodPost, "/api/sessions", token, map[string]any{
		"client_id": client.ID,
		"date":      "2026-09-15T14:00:00Z",
		"type":      "Ensaio externo",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/clients/"+client.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.Client](t, rec)
	require.Len(t, got.Sessions, 1)
	assert.Equal(t, client.ID, got.Sessions[0].ClientID)
}
