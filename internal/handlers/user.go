package handlers

import (
	"SwapMarket/internal/middleware"
	"SwapMarket/internal/model"
	"SwapMarket/internal/service"
	"encoding/json"
	"net/http"
)

// UserHandler регистрация, вход и профиль.
type UserHandler struct {
	responder
	UserService *service.UserService
}

func NewUserHandler(userService *service.UserService, rs responder) *UserHandler {
	return &UserHandler{responder: rs, UserService: userService}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse ответ на регистрацию и вход: токен дублируется в cookie.
type authResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register регистрация пользователя
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err, op{internal: "Failed to register user"})
		return
	}
	h.login(w, r, user, http.StatusCreated)
}

// Login аутентификация пользователя
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err, op{internal: "Failed to log in"})
		return
	}
	h.login(w, r, user, http.StatusOK)
}

// Profile данные текущего пользователя
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())
	user, err := h.UserService.Profile(r.Context(), uid)
	if err != nil {
		h.fail(w, r, err, op{notFound: "User not found", internal: "Failed to fetch profile"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) login(w http.ResponseWriter, r *http.Request, user *model.User, status int) {
	token, err := middleware.SetLoginCookieTTL(w, user.ID, h.Config.AuthSecret, h.Config.TokenTTL)
	if err != nil {
		h.fail(w, r, err, op{internal: "Failed to issue token"})
		return
	}
	h.Logger.Infow("user authenticated", "user_id", user.ID)
	writeJSON(w, status, authResponse{User: user, Token: token})
}
