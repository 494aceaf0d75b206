package handlers

import (
	"SwapMarket/internal/middleware"
	"SwapMarket/internal/model"
	"SwapMarket/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ItemHandler CRUD вещей.
type ItemHandler struct {
	responder
	ItemService *service.ItemService
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, rs responder) *ItemHandler {
	return &ItemHandler{responder: rs, ItemService: itemService}
}

type createItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Condition   string `json:"condition"`
}

// updateItemRequest: nil — поле не передано и не меняется.
type updateItemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Category    *string `json:"category"`
	Condition   *string `json:"condition"`
}

func (req updateItemRequest) patch() model.ItemPatch {
	p := model.ItemPatch{Title: req.Title, Description: req.Description, ImageURL: req.ImageURL}
	if req.Category != nil {
		c := model.ParseCategory(*req.Category)
		p.Category = &c
	}
	if req.Condition != nil {
		c := model.ParseCondition(*req.Condition)
		p.Condition = &c
	}
	return p
}

// Create создаёт вещь текущего пользователя
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	uid, _ := middleware.GetUserIDFromContext(r.Context())

	it, err := h.ItemService.Create(r.Context(), uid, service.CreateItemInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Condition:   req.Condition,
	})
	if err != nil {
		h.fail(w, r, err, op{internal: "Failed to create item"})
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

// List все вещи. Параметры: category, q (нечёткий поиск по названию).
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context(), service.ListQuery{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	})
	if err != nil {
		h.fail(w, r, err, op{internal: "Failed to fetch items"})
		return
	}
	writeJSON(w, http.StatusOK, nonNil(items))
}

// Get вещь по id
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	it, err := h.ItemService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, op{notFound: "Item not found", internal: "Failed to fetch item"})
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// ListMine вещи текущего пользователя
func (h *ItemHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())
	items, err := h.ItemService.ListMine(r.Context(), uid)
	if err != nil {
		h.fail(w, r, err, op{internal: "Failed to fetch your items"})
		return
	}
	writeJSON(w, http.StatusOK, nonNil(items))
}

// Update частичное обновление вещи владельцем
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	uid, _ := middleware.GetUserIDFromContext(r.Context())

	it, err := h.ItemService.Update(r.Context(), chi.URLParam(r, "id"), uid, req.patch())
	if err != nil {
		h.fail(w, r, err, op{notFound: "Item not found", forbidden: "Unauthorized", internal: "Failed to update item"})
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// Delete удаление вещи владельцем
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())
	if err := h.ItemService.Delete(r.Context(), chi.URLParam(r, "id"), uid); err != nil {
		h.fail(w, r, err, op{notFound: "Item not found", forbidden: "Unauthorized", internal: "Failed to delete item"})
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Item deleted successfully"})
}

// nonNil чтобы пустой список сериализовался как [], а не null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
