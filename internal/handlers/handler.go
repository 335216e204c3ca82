package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/itlaf/fotostudio/internal/store"
	"github.com/itlaf/fotostudio/internal/utils"
)

// Stores bundles every persistence interface the handlers need.
type Stores struct {
	Users        store.UserStore
	Clients      store.ClientStore
	Sessions     store.SessionStore
	Quotes       store.QuoteStore
	Equipments   store.EquipmentStore
	Transactions store.TransactionStore
	Configs      store.SystemConfigStore
}

type Handler struct {
	Auth         *AuthHandler
	Users        *UserHandler
	Clients      *ClientHandler
	Sessions     *SessionHandler
	Quotes       *QuoteHandler
	Equipments   *EquipmentHandler
	Transactions *TransactionHandler
	System       *SystemHandler
}

func NewHandler(s Stores, secret string, tokenTTL time.Duration, uploadDir string, logger *slog.Logger) *Handler {
	return &Handler{
		Auth:         &AuthHandler{Users: s.Users, Secret: secret, TokenTTL: tokenTTL, Logger: logger},
		Users:        &UserHandler{Users: s.Users, UploadDir: uploadDir, Logger: logger},
		Clients:      &ClientHandler{Clients: s.Clients, Logger: logger},
		Sessions:     &SessionHandler{Sessions: s.Sessions, Logger: logger},
		Quotes:       &QuoteHandler{Quotes: s.Quotes, Logger: logger},
		Equipments:   &EquipmentHandler{Equipments: s.Equipments, Logger: logger},
		Transactions: &TransactionHandler{Transactions: s.Transactions, Logger: logger},
		System:       &SystemHandler{Configs: s.Configs, Logger: logger},
	}
}

// storeError maps store sentinels to the API error taxonomy. Unexpected
// failures become a generic 500; the detail goes to the log only.
func storeError(w http.ResponseWriter, logger *slog.Logger, err error, notFoundMsg, conflictMsg, serverMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.JSONError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, store.ErrDuplicate):
		utils.JSONError(w, http.StatusConflict, conflictMsg)
	default:
		logger.Error(serverMsg, "error", err)
		utils.JSONError(w, http.StatusInternalServerError, serverMsg)
	}
}

// Health reports service liveness.
// GET /api/health
func Health(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
