package handlers

import (
	"SwapMarket/internal/apperr"
	"SwapMarket/internal/config"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// errorResponse тело ответа с ошибкой. Stack не отдаётся в production.
type errorResponse struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// op — сообщения об ошибках конкретной операции.
// Пустые поля заменяются текстом самой ошибки.
type op struct {
	notFound  string
	forbidden string
	internal  string
}

// responder общий код записи ответов для всех хендлеров.
type responder struct {
	Logger *zap.SugaredLogger
	Config *config.Config
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor сопоставляет доменную ошибку HTTP-статусу.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail пишет ошибку операции o в едином формате.
func (rs responder) fail(w http.ResponseWriter, r *http.Request, err error, o op) {
	status := statusFor(err)
	msg := err.Error()
	switch status {
	case http.StatusNotFound:
		if o.notFound != "" {
			msg = o.notFound
		}
	case http.StatusForbidden:
		if o.forbidden != "" {
			msg = o.forbidden
		}
	case http.StatusInternalServerError:
		msg = o.internal
		rs.Logger.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	if status < http.StatusInternalServerError {
		rs.Logger.Warnw("request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	rs.writeError(w, status, msg)
}

func (rs responder) writeError(w http.ResponseWriter, status int, msg string) {
	body := errorResponse{Message: msg}
	if rs.Config == nil || !rs.Config.IsProduction() {
		body.Stack = zap.Stack("stack").String
	}
	writeJSON(w, status, body)
}

// badRequest — тело запроса не разобралось.
func (rs responder) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	rs.Logger.Warnw("invalid request body", "method", r.Method, "path", r.URL.Path, "error", err)
	rs.writeError(w, http.StatusBadRequest, "invalid request body")
}

func (rs responder) unauthorized(w http.ResponseWriter, r *http.Request) {
	rs.writeError(w, http.StatusUnauthorized, "Not authorized, no token")
}

func (rs responder) notFound(w http.ResponseWriter, r *http.Request) {
	rs.writeError(w, http.StatusNotFound, "Not Found - "+r.URL.Path)
}

func (rs responder) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	rs.writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed - "+r.Method+" "+r.URL.Path)
}

func (rs responder) health(check HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r.Context()); err != nil {
				rs.Logger.Errorw("health check failed", "error", err)
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
