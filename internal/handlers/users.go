package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/itlaf/fotostudio/internal/middleware"
	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
	"github.com/itlaf/fotostudio/internal/utils"
)

// maxAvatarSize caps avatar uploads at 5MB.
const maxAvatarSize = 5 << 20

type UserHandler struct {
	Users     store.UserStore
	UploadDir string
	Logger    *slog.Logger
}

// ----------- Request DTOs -------------

type createUserReq struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=ADMIN USER PHOTOGRAPHER"`
}

type updateUserReq struct {
	Name  *string `json:"name" validate:"omitempty,min=2"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role" validate:"omitempty,oneof=ADMIN USER PHOTOGRAPHER"`
}

type updateProfileReq struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" validate:"omitempty,min=6"`
}

// ---------------------- ME ----------------------

// Me returns the authenticated user; the password hash never leaves the server.
// GET /api/users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Usuário não autenticado")
		return
	}

	user, err := h.Users.GetByID(r.Context(), uid)
	if err != nil {
		storeError(w, h.Logger, err, "Usuário não encontrado", "", "Erro ao obter usuário atual")
		return
	}

	utils.JSON(w, http.StatusOK, user)
}

// ---------------------- LIST (admin) ----------------------

// GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		h.Logger.Error("list users", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao listar usuários")
		return
	}
	utils.JSON(w, http.StatusOK, users)
}

// ---------------------- CREATE (admin) ----------------------

// POST /api/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserReq
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
		Role:     models.Role(req.Role),
	}
	if err := h.Users.Create(r.Context(), &user); err != nil {
		storeError(w, h.Logger, err, "Usuário não encontrado", "Email já cadastrado", "Erro ao criar usuário")
		return
	}

	utils.JSON(w, http.StatusCreated, user)
}

// ---------------------- UPDATE (admin) ----------------------

// Update edits name/email/role. Password changes go through the profile
// route only, where the current password is verified.
// PUT /api/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateUserReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	user, err := h.Users.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, h.Logger, err, "Usuário não encontrado", "", "Erro ao atualizar usuário")
		return
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := h.Users.EmailTaken(r.Context(), *req.Email, id)
		if err != nil {
			h.Logger.Error("check email", "error", err)
			utils.JSONError(w, http.StatusInternalServerError, "Erro ao atualizar usuário")
			return
		}
		if taken {
			utils.JSONError(w, http.StatusConflict, "Email já cadastrado")
			return
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = models.Role(*req.Role)
	}

	if err := h.Users.Update(r.Context(), user); err != nil {
		storeError(w, h.Logger, err, "Usuário não encontrado", "Email já cadastrado", "Erro ao atualizar usuário")
		return
	}

	utils.JSON(w, http.StatusOK, user)
}

// ---------------------- DELETE (admin) ----------------------

// DELETE /api/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Users.Delete(r.Context(), id); err != nil {
		storeError(w, h.Logger, err, "Usuário não encontrado", "", "Erro ao excluir usuário")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------- PROFILE ----------------------

// GET /api/users/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	h.Me(w, r)
}

// UpdateProfile edits the caller's own name/email and, optionally, password.
// Changing the password requires the current one. The role cannot be changed
// here; that is an ADMIN-only mutation.
// PUT /api/users/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Usuário não autenticado")
		return
	}

	var req updateProfileReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	user, err := h.Users.GetByID(r.Context(), uid)
	if err != nil {
		storeError(w, h.Logger, err, "Usuário não encontrado", "", "Erro ao atualizar perfil")
		return
	}

	if req.Email != user.Email {
		taken, err := h.Users.EmailTaken(r.Context(), req.Email, uid)
		if err != nil {
			h.Logger.Error("check email", "error", err)
			utils.JSONError(w, http.StatusInternalServerError, "Erro ao atualizar perfil")
			return
		}
		if taken {
			utils.JSONError(w, http.StatusConflict, "Email já está em uso")
			return
		}
	}

	if req.NewPassword != "" {
		if req.CurrentPassword == "" {
			utils.JSONError(w, http.StatusBadRequest, "Senha atual é necessária para alterar a senha")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "Senha atual incorreta")
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			h.Logger.Error("hash password", "error", err)
			utils.JSONError(w, http.StatusInternalServerError, "Erro ao atualizar perfil")
			return
		}
		user.Password = string(hash)
	}

	user.Name = req.Name
	user.Email = req.Email

	if err := h.Users.Update(r.Context(), user); err != nil {
		storeError(w, h.Logger, err, "Usuário não encontrado", "Email já está em uso", "Erro ao atualizar perfil")
		return
	}

	utils.JSON(w, http.StatusOK, user)
}

// ---------------------- AVATAR ----------------------

// UpdateAvatar stores a multipart image upload (field "avatar", ≤5MB) under
// the upload dir and records its public path on the user.
// PUT /api/users/avatar
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Usuário não autenticado")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize)
	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Arquivo muito grande ou inválido")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Nenhum arquivo enviado")
		return
	}
	defer file.Close()

	// sniff the real content type instead of trusting the client header
	head := make([]byte, 512)
	n, _ := io.ReadFull(file, head)
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		utils.JSONError(w, http.StatusBadRequest, "Apenas imagens são permitidas")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		h.Logger.Error("rewind upload", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao atualizar avatar")
		return
	}

	user, err := h.Users.GetByID(r.Context(), uid)
	if err != nil {
		storeError(w, h.Logger, err, "Usuário não encontrado", "", "Erro ao atualizar avatar")
		return
	}

	ext := filepath.Ext(header.Filename)
	name := fmt.Sprintf("avatar-%s%s", uuid.New().String(), ext)
	dir := filepath.Join(h.UploadDir, "avatars")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		h.Logger.Error("create upload dir", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao atualizar avatar")
		return
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		h.Logger.Error("create avatar file", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao atualizar avatar")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.Logger.Error("write avatar file", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao atualizar avatar")
		return
	}

	avatarPath := "/uploads/avatars/" + name
	user.Avatar = &avatarPath

	if err := h.Users.Update(r.Context(), user); err != nil {
		storeError(w, h.Logger, err, "Usuário não encontrado", "", "Erro ao atualizar avatar")
		return
	}

	utils.JSON(w, http.StatusOK, user)
}
