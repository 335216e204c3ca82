package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itlaf/fotostudio/internal/models"
)

func createQuote(t *testing.T, env *testEnv, token, clientID string) models.Quote {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/api/quotes", token, map[string]any{
		"client_id":   clientID,
		"title":       "Pacote casamento",
		"valid_until": "2026-12-31T23:59:59Z",
		"status":      "DRAFT",
		"items": []map[string]any{
			{"description": "Cobertura do evento", "quantity": 2, "unit_price": 100},
			{"description": "Álbum impresso", "quantity": 1, "unit_price": 50},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody[models.Quote](t, rec)
}

func TestQuoteTotalsComputedServerSide(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "Ana", "ana@example.com", "senha123", models.RoleUser)
	client := env.seedClient(t, "Cliente Um")

	quote := createQuote(t, env, token, client.ID)

	require.Len(t, quote.Items, 2)
	assert.Equal(t, 200.0, quote.Items[0].Total)
	assert.Equal(t, 50.0, quote.Items[1].Total)
	assert.Equal(t, 250.0, quote.Total)
}

func TestQuoteUpdateReplacesItems(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "Ana", "ana@example.com", "senha123", models.RoleUser)
	client := env.seedClient(t, "Cliente Um")

	quote := createQuote(t, env, token, client.ID)
	before := env.quotes.ItemRows()
	require.Len(t, before, 2)

	rec := env.do(t, http.MethodPut, "/api/quotes/"+quote.ID, token, map[string]any{
		"client_id":   client.ID,
		"title":       "Pacote revisado",
		"valid_until": "2026-12-31T23:59:59Z",
		"status":      "DRAFT",
		"items": []map[string]any{
			{"description": "Cobertura reduzida", "quantity": 1, "unit_price": 80},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[models.Quote](t, rec)
	assert.Equal(t, 80.0, updated.Total)
	require.Len(t, updated.Items, 1)

	// the old item rows are gone, the new one has a fresh id
	after := env.quotes.ItemRows()
	require.Len(t, after, 1)
	assert.NotContains(t, before, after[0])
}

func TestQuoteValidation(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "Ana", "ana@example.com", "senha123", models.RoleUser)
	client := env.seedClient(t, "Cliente Um")

	// a quote needs at least one item
	rec := env.do(t, http.MethodPost, "/api/quotes", token, map[string]any{
		"client_id":   client.ID,
		"title":       "Sem itens",
		"valid_until": "2026-12-31T23:59:59Z",
		"status":      "DRAFT",
		"items":       []map[string]any{},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// item quantity must be positive
	rec = env.do(t, http.MethodPost, "/api/quotes", token, map[string]any{
		"client_id":   client.ID,
		"title":       "Quantidade zero",
		"valid_until": "2026-12-31T23:59:59Z",
		"status":      "DRAFT",
		"items": []map[string]any{
			{"description": "Item", "quantity": 0, "unit_price": 10},
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, env.quotes.ItemRows())
}

func TestQuoteStatusAndSend(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "Ana", "ana@example.com", "senha123", models.RoleUser)
	client := env.seedClient(t, "Cliente Um")
	quote := createQuote(t, env, token, client.ID)

	rec := env.do(t, http.MethodPatch, "/api/quotes/"+quote.ID+"/status", token, map[string]string{
		"status": "APPROVED",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.Quote](t, rec)
	assert.Equal(t, models.QuoteApproved, got.Status)

	rec = env.do(t, http.MethodPatch, "/api/quotes/"+quote.ID+"/status", token, map[string]string{
		"status": "BOGUS",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/quotes/"+quote.ID+"/send", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sent := decodeBody[models.Quote](t, rec)
	assert.Equal(t, models.QuoteSent, sent.Status)
}

func TestQuoteDeleteCascadesItems(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "Ana", "ana@example.com", "senha123", models.RoleUser)
	client := env.seedClient(t, "Cliente Um")
	quote := createQuote(t, env, token, client.ID)

	rec := env.do(t, http.MethodDelete, "/api/quotes/"+quote.ID, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, env.quotes.ItemRows())

	rec = env.do(t, http.MethodGet, "/api/quotes/"+quote.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Orçamento não encontrado")
}
