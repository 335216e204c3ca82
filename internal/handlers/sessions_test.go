package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itlaf/fotostudio/internal/models"
)

func createSession(t *testing.T, env *testEnv, token, clientID string) models.Session {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/api/sessions", token, map[string]any{
		"client_id": clientID,
		"date":      "2026-09-15T14:00:00Z",
		"type":      "Casamento",
		"location":  "Praia do Rosa",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody[models.Session](t, rec)
}

func TestSessionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "Ana", "ana@example.com", "senha123", models.RoleUser)
	client := env.seedClient(t, "Cliente Um")

	sess := createSession(t, env, token, client.ID)
	assert.Equal(t, models.SessionScheduled, sess.Status)

	rec := env.do(t, http.MethodGet, "/api/sessions/"+sess.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.Session](t, rec)
	require.NotNil(t, got.Client)
	assert.Equal(t, client.ID, got.Client.ID)

	rec = env.do(t, http.MethodPut, "/api/sessions/"+sess.ID, token, map[string]any{
		"notes": "Levar refletor",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[models.Session](t, rec)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "Levar refletor", *updated.Notes)
	// untouched fields survive a partial update
	assert.Equal(t, "Casamento", updated.Type)

	rec = env.do(t, http.MethodDelete, "/api/sessions/"+sess.ID, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/sessions/"+sess.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionStatusUpdate(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "Ana", "ana@example.com", "senha123", models.RoleUser)
	client := env.seedClient(t, "Cliente Um")
	sess := createSession(t, env, token, client.ID)

	rec := env.do(t, http.MethodPatch, "/api/sessions/"+sess.ID+"/status", token, map[string]string{
		"status": "COMPLETED",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.Session](t, rec)
	assert.Equal(t, models.SessionCompleted, got.Status)

	rec = env.do(t, http.MethodPatch, "/api/sessions/"+sess.ID+"/status", token, map[string]string{
		"status": "WHATEVER",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Status inválido")
}

func TestSessionPhotos(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "Ana", "ana@example.com", "senha123", models.RoleUser)
	client := env.seedClient(t, "Cliente Um")
	sess := createSession(t, env, token, client.ID)

	rec := env.do(t, http.MethodPost, "/api/sessions/"+sess.ID+"/photos", token, map[string]any{
		"url":      "https://cdn.example.com/p1.jpg",
		"filename": "p1.jpg",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	photo := decodeBody[models.Photo](t, rec)
	assert.Equal(t, sess.ID, photo.SessionID)

	rec = env.do(t, http.MethodPost, "/api/sessions/"+sess.ID+"/photos", token, map[string]any{
		"url":      "not a url",
		"filename": "p2.jpg",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/sessions/"+sess.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.Session](t, rec)
	require.Len(t, got.Photos, 1)

	rec = env.do(t, http.MethodDelete, "/api/sessions/"+sess.ID+"/photos/"+photo.ID, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/sessions/"+sess.ID+"/photos/"+photo.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Foto não encontrada")
}
