package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
	"github.com/itlaf/fotostudio/internal/utils"
)

type AuthHandler struct {
	Users    store.UserStore
	Secret   string
	TokenTTL time.Duration
	Logger   *slog.Logger
}

// ----------- Request/Response DTOs -------------

type registerReq struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}

// -------------- REGISTER ----------------------

// Register creates a user with the USER role and returns a session token.
// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Logger.Error("hash password", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao criar usuário")
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleUser,
	}

	if err := h.Users.Create(r.Context(), &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.JSONError(w, http.StatusConflict, "Email já cadastrado")
			return
		}
		h.Logger.Error("create user", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao criar usuário")
		return
	}

	token, err := utils.GenerateToken(user.ID, h.Secret, h.TokenTTL)
	if err != nil {
		h.Logger.Error("generate token", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao criar usuário")
		return
	}

	utils.JSON(w, http.StatusCreated, tokenResp{Token: token})
}

// -------------- LOGIN ------------------------

// Login verifies credentials and issues a token. Unknown email and wrong
// password return the same message so callers cannot enumerate users; the
// distinguishing reason is only logged.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.Logger.Info("login failed", "reason", "user not found", "email", req.Email)
			utils.JSONError(w, http.StatusUnauthorized, "Credenciais inválidas")
			return
		}
		h.Logger.Error("lookup user", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao fazer login")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		h.Logger.Info("login failed", "reason", "password mismatch", "email", req.Email)
		utils.JSONError(w, http.StatusUnauthorized, "Credenciais inválidas")
		return
	}

	token, err := utils.GenerateToken(user.ID, h.Secret, h.TokenTTL)
	if err != nil {
		h.Logger.Error("generate token", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao fazer login")
		return
	}

	utils.JSON(w, http.StatusOK, tokenResp{Token: token})
}
