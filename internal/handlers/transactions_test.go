package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itlaf/fotostudio/internal/models"
)

func TestTransactionCRUD(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "Ana", "ana@example.com", "senha123", models.RoleUser)
	client := env.seedClient(t, "Cliente Um")

	rec := env.do(t, http.MethodPost, "/api/transactions", token, map[string]any{
		"description": "Sinal do casamento",
		"amount":      1500.00,
		"type":        "INCOME",
		"date":        "2026-09-01T00:00:00Z",
		"client_id":   client.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Transaction](t, rec)
	assert.Equal(t, models.TransactionPending, created.Status)
	require.NotNil(t, created.ClientID)
	assert.Equal(t, client.ID, *created.ClientID)

	rec = env.do(t, http.MethodPut, "/api/transactions/"+created.ID, token, map[string]any{
		"status": "COMPLETED",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[models.Transaction](t, rec)
	assert.Equal(t, models.TransactionCompleted, updated.Status)
	// untouched fields survive the partial update
	assert.Equal(t, 1500.00, updated.Amount)

	rec = env.do(t, http.MethodPost, "/api/transactions", token, map[string]any{
		"description": "Valor negativo",
		"amount":      -10,
		"type":        "EXPENSE",
		"date":        "2026-09-01T00:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/transactions/"+created.ID, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/transactions/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Transação não encontrada")
}
