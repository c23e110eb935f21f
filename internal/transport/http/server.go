// transport/http содержит HTTP-эндпоинты token-сервиса.
// Здесь выполняется только маппинг данных и ошибок доменного слоя (service)
// в HTTP. Вся валидация и бизнес-логика находятся в пакете service.
//
// Принципы:
//   - Контекст запроса прокидывается в сервис без потерь;
//   - Ошибки сервиса явно транслируются в HTTP-коды:
//   - ErrInvalidEmail/ErrInvalidScopes -> 400;
//   - ErrInvalidToken/ErrTokenExpired/ErrTokenRevoked -> 401, единое тело
//     ответа для всех трёх: причина отказа аутентификации наружу не утекает;
//   - ErrPermissionDenied -> 403;
//   - ErrNotFound -> 404;
//   - ErrRequestNotPending/ErrGrantConflict -> 409;
//   - иные ошибки -> 500 c единым безопасным сообщением.
//
// Безопасность:
//   - Для 500 наружу не утекают детали внутренних ошибок; подробности должны
//     попадать в логи через middleware на уровне сервера;
//   - Plaintext refresh-секрета появляется только в телах ответов
//     approve/refresh и нигде не логируется.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/service"
)

type ctxKey int

const identityKey ctxKey = iota

// IdentityFrom возвращает Identity аутентифицированного запроса.
func IdentityFrom(r *http.Request) (*models.Identity, bool) {
	identity, ok := r.Context().Value(identityKey).(*models.Identity)
	return identity, ok
}

func contextWithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// Server — HTTP-сервер token-сервиса поверх сервисного слоя.
type Server struct {
	service *service.Service
	router  *mux.Router
}

// NewServer создаёт HTTP-сервер и регистрирует маршруты.
func NewServer(svc *service.Service) *Server {
	s := &Server{
		service: svc,
		router:  mux.NewRouter(),
	}

	api := s.router.PathPrefix("/api/v1/auth").Subrouter()

	api.HandleFunc("/request", s.handleSubmitRequest).Methods(http.MethodPost)
	api.HandleFunc("/token/refresh", s.handleRefresh).Methods(http.MethodPost)
	api.HandleFunc("/me", s.requireAuth(s.handleMe)).Methods(http.MethodGet)

	api.HandleFunc("/requests", s.requireAdmin(s.handleListRequests)).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id}/approve", s.requireAdmin(s.handleApprove)).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id}/reject", s.requireAdmin(s.handleReject)).Methods(http.MethodPost)
	api.HandleFunc("/grants/{id}/revoke", s.requireAdmin(s.handleRevokeGrant)).Methods(http.MethodPost)

	return s
}

// Router возвращает корневой обработчик сервера.
func (s *Server) Router() http.Handler {
	return s.router
}

// bearerToken извлекает значение из Authorization: Bearer <...>.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}

	return ""
}

// requireAuth аутентифицирует запрос и кладёт Identity в контекст.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := s.service.Authenticate(r.Context(), bearerToken(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		ctx := contextWithIdentity(r.Context(), identity)
		next(w, r.WithContext(ctx))
	}
}

// requireAdmin — requireAuth + проверка admin-прав разрешённой Identity.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return s.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		identity, _ := IdentityFrom(r)
		if err := s.service.RequireAdmin(identity); err != nil {
			writeServiceError(w, err)
			return
		}

		next(w, r)
	})
}

type submitRequestBody struct {
	Email  string   `json:"email"`
	Scopes []string `json:"scopes"`
}

type tokenRequestResponse struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	Scopes    []string `json:"scopes"`
	Status    string   `json:"status"`
	AdminNote string   `json:"admin_note,omitempty"`
	GrantID   string   `json:"grant_id,omitempty"`
	CreatedAt int64    `json:"created_at"`
	UpdatedAt int64    `json:"updated_at"`
}

func toTokenRequestResponse(req *models.TokenRequest) tokenRequestResponse {
	out := tokenRequestResponse{
		ID:        req.ID.String(),
		UserID:    req.UserID.String(),
		Scopes:    req.Scopes,
		Status:    string(req.Status),
		AdminNote: req.AdminNote,
		CreatedAt: req.CreatedAt.Unix(),
		UpdatedAt: req.UpdatedAt.Unix(),
	}
	if req.GrantID != nil {
		out.GrantID = req.GrantID.String()
	}

	return out
}

// handleSubmitRequest принимает заявку на доступ.
// POST /api/v1/auth/request
func (s *Server) handleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	var body submitRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := s.service.SubmitRequest(r.Context(), body.Email, body.Scopes)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTokenRequestResponse(request))
}

// handleListRequests возвращает заявки, опционально фильтруя по ?status=.
// GET /api/v1/auth/requests
func (s *Server) handleListRequests(w http.ResponseWriter, r *http.Request) {
	var status *models.TokenRequestStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := models.TokenRequestStatus(raw)
		if !st.Valid() {
			writeError(w, http.StatusBadRequest, "invalid status filter")
			return
		}
		status = &st
	}

	requests, err := s.service.ListRequests(r.Context(), status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]tokenRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, toTokenRequestResponse(&requests[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

type decideRequestBody struct {
	Note string `json:"note"`
}

type approveResponse struct {
	Request         tokenRequestResponse `json:"request"`
	AccessToken     string               `json:"access_token"`
	RefreshSecret   string               `json:"refresh_secret"`
	AccessExpiresAt int64                `json:"access_expires_at"`
}

// handleApprove одобряет заявку и возвращает свежую пару учётных данных.
// POST /api/v1/auth/requests/{id}/approve
func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var body decideRequestBody
	if r.Body != nil {
		// Пустое тело допустимо: заметка опциональна.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	result, err := s.service.ApproveRequest(r.Context(), id, body.Note)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, approveResponse{
		Request:         toTokenRequestResponse(result.Request),
		AccessToken:     result.Tokens.AccessToken,
		RefreshSecret:   result.Tokens.RefreshSecret,
		AccessExpiresAt: result.Tokens.AccessExpiresAt.Unix(),
	})
}

// handleReject отклоняет заявку.
// POST /api/v1/auth/requests/{id}/reject
func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var body decideRequestBody
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	request, err := s.service.RejectRequest(r.Context(), id, body.Note)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTokenRequestResponse(request))
}

type refreshBody struct {
	RefreshSecret string `json:"refresh_secret"`
}

type tokenPairResponse struct {
	AccessToken     string `json:"access_token"`
	RefreshSecret   string `json:"refresh_secret"`
	AccessExpiresAt int64  `json:"access_expires_at"`
}

// handleRefresh обменивает refresh-секрет на новую пару учётных данных.
// POST /api/v1/auth/token/refresh
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var body refreshBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := s.service.Rotate(r.Context(), body.RefreshSecret)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenPairResponse{
		AccessToken:     pair.AccessToken,
		RefreshSecret:   pair.RefreshSecret,
		AccessExpiresAt: pair.AccessExpiresAt.Unix(),
	})
}

// handleRevokeGrant отзывает грант и его refresh-линию.
// POST /api/v1/auth/grants/{id}/revoke
func (s *Server) handleRevokeGrant(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid grant id")
		return
	}

	if err := s.service.RevokeGrant(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type identityResponse struct {
	UserID  string   `json:"user_id,omitempty"`
	Email   string   `json:"email,omitempty"`
	GrantID string   `json:"grant_id,omitempty"`
	Scopes  []string `json:"scopes"`
	IsAdmin bool     `json:"is_admin"`
}

// handleMe возвращает Identity предъявленного токена; полезен интеграторам
// для самопроверки выданных учётных данных.
// GET /api/v1/auth/me
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out := identityResponse{
		Scopes:  identity.Scopes,
		IsAdmin: identity.IsAdmin,
	}
	if identity.UserID != uuid.Nil {
		out.UserID = identity.UserID.String()
		out.Email = identity.Email
		out.GrantID = identity.GrantID.String()
	}

	writeJSON(w, http.StatusOK, out)
}

type envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Status: "ok", Data: data})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Status: "error", Message: msg})
}

// writeServiceError транслирует ошибки сервисного слоя в HTTP-коды.
// Все отказы аутентификации дают один и тот же ответ 401.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrTokenRevoked):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, service.ErrPermissionDenied):
		writeError(w, http.StatusForbidden, "permission denied")
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidScopes):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrRequestNotPending),
		errors.Is(err, service.ErrGrantConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
