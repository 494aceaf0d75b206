package handlers

import (
	"SwapMarket/internal/middleware"
	"SwapMarket/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SwapHandler заявки на обмен.
type SwapHandler struct {
	responder
	SwapService *service.SwapService
}

func NewSwapHandler(swapService *service.SwapService, rs responder) *SwapHandler {
	return &SwapHandler{responder: rs, SwapService: swapService}
}

type swapRequest struct {
	OfferedItemID   string `json:"offeredItemId"`
	RequestedItemID string `json:"requestedItemId"`
}

// Request создаёт заявку на обмен
func (h *SwapHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req swapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	uid, _ := middleware.GetUserIDFromContext(r.Context())

	sw, err := h.SwapService.Request(r.Context(), uid, req.OfferedItemID, req.RequestedItemID)
	if err != nil {
		h.fail(w, r, err, op{
			notFound:  "One or both items not found",
			forbidden: "You do not own the offered item",
			internal:  "Failed to request swap",
		})
		return
	}
	writeJSON(w, http.StatusCreated, sw)
}

// List обмены текущего пользователя
func (h *SwapHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())
	list, err := h.SwapService.ListForUser(r.Context(), uid)
	if err != nil {
		h.fail(w, r, err, op{internal: "Failed to fetch swaps"})
		return
	}
	writeJSON(w, http.StatusOK, nonNil(list))
}

// Get обмен по id
func (h *SwapHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())
	sw, err := h.SwapService.Get(r.Context(), chi.URLParam(r, "id"), uid)
	if err != nil {
		h.fail(w, r, err, op{notFound: "Swap not found", internal: "Failed to get swap"})
		return
	}
	writeJSON(w, http.StatusOK, sw)
}

// Accept принятие обмена владельцем запрошенной вещи
func (h *SwapHandler) Accept(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())
	sw, err := h.SwapService.Accept(r.Context(), chi.URLParam(r, "id"), uid)
	if err != nil {
		h.fail(w, r, err, op{
			notFound:  "Swap not found",
			forbidden: "Not authorized to accept this swap",
			internal:  "Failed to accept swap",
		})
		return
	}
	writeJSON(w, http.StatusOK, sw)
}

// Reject отклонение обмена владельцем запрошенной вещи
func (h *SwapHandler) Reject(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())
	sw, err := h.SwapService.Reject(r.Context(), chi.URLParam(r, "id"), uid)
	if err != nil {
		h.fail(w, r, err, op{
			notFound:  "Swap not found",
			forbidden: "Not authorized to reject this swap",
			internal:  "Failed to reject swap",
		})
		return
	}
	writeJSON(w, http.StatusOK, sw)
}

// Delete удаление обмена инициатором
func (h *SwapHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())
	if err := h.SwapService.Delete(r.Context(), chi.URLParam(r, "id"), uid); err != nil {
		h.fail(w, r, err, op{
			notFound:  "Swap not found",
			forbidden: "Not authorized to delete this swap",
			internal:  "Failed to delete swap",
		})
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Swap deleted"})
}
