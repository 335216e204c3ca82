package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itlaf/fotostudio/internal/models"
)

func TestEquipmentCRUD(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "Ana", "ana@example.com", "senha123", models.RoleUser)

	rec := env.do(t, http.MethodPost, "/api/equipments", token, map[string]any{
		"name":         "Canon R6",
		"category":     "CAMERA",
		"brand":        "Canon",
		"quantity":     2,
		"min_quantity": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Equipment](t, rec)
	assert.Equal(t, models.EquipmentAvailable, created.Status)
	assert.Equal(t, models.CategoryCamera, created.Category)

	rec = env.do(t, http.MethodPost, "/api/equipments", token, map[string]any{
		"name":     "Tripé",
		"category": "FURNITURE",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/equipments/"+created.ID, token, map[string]any{
		"status":   "MAINTENANCE",
		"quantity": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[models.Equipment](t, rec)
	assert.Equal(t, models.EquipmentMaintenance, updated.Status)
	assert.Equal(t, 1, updated.Quantity)
	require.NotNil(t, updated.Brand)
	assert.Equal(t, "Canon", *updated.Brand)

	rec = env.do(t, http.MethodGet, "/api/equipments", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]models.Equipment](t, rec)
	require.Len(t, list, 1)

	rec = env.do(t, http.MethodDelete, "/api/equipments/"+created.ID, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/equipments/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Equipamento não encontrado")
}
