package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/pkg/log"
	"github.com/pribylovaa/go-token-service/internal/pkg/redact"
	"github.com/pribylovaa/go-token-service/internal/storage"
)

// ApprovalResult — результат одобрения заявки: решённая заявка, грант
// и свежая пара учётных данных (plaintext refresh-секрета — только здесь).
type ApprovalResult struct {
	Request *models.TokenRequest
	Grant   *models.Grant
	Tokens  *models.TokenPair
}

// SubmitRequest принимает заявку пользователя на доступ к API.
// Пользователь создаётся при первом обращении по email. Заявка всегда
// создаётся новой в статусе pending: дубликаты не схлопываются,
// их разбирает администратор.
func (s *Service) SubmitRequest(ctx context.Context, email string, scopes []string) (*models.TokenRequest, error) {
	const op = "service.requests.SubmitRequest"

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	normScopes, err := normalizeScopes(scopes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.findOrCreateUser(ctx, normEmail)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	request := &models.TokenRequest{
		ID:        uuid.New(),
		UserID:    user.ID,
		Scopes:    normScopes,
		Status:    models.RequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveTokenRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("token_request_submitted",
		slog.String("op", op),
		slog.String("request_id", request.ID.String()),
		slog.String("email", redact.Email(normEmail)),
	)

	return request, nil
}

// ListRequests возвращает заявки от новых к старым; status == nil — все.
func (s *Service) ListRequests(ctx context.Context, status *models.TokenRequestStatus) ([]models.TokenRequest, error) {
	const op = "service.requests.ListRequests"

	requests, err := s.storage.ListTokenRequests(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return requests, nil
}

// ApproveRequest одобряет pending-заявку: обновляет или создаёт грант,
// выпускает access-токен и refresh-секрет и решает заявку ровно один раз.
//
// Порядок шагов не случаен: сначала вся работа над грантом, затем CAS-переход
// статуса. Падение между ними оставляет заявку pending с уже существующим
// грантом — повторный approve идемпотентно переиспользует грант через upsert,
// а не создаёт второй.
func (s *Service) ApproveRequest(ctx context.Context, requestID uuid.UUID, note string) (*ApprovalResult, error) {
	const op = "service.requests.ApproveRequest"

	lg := log.From(ctx)

	request, err := s.storage.TokenRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if request.Status != models.RequestPending {
		return nil, fmt.Errorf("%s: %w", op, ErrRequestNotPending)
	}

	scopes, err := normalizeScopes(request.Scopes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()

	grant, err := s.upsertGrant(ctx, request.UserID, scopes, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	accessToken, err := s.signAccessToken(ctx, grant.UserID, grant.JTI, grant.Scopes, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Сохранение нового секрета атомарно гасит прежнюю refresh-линию
	// гранта: живым остаётся только секрет, выданный этим одобрением.
	refreshPlain, err := s.issueRefreshSecret(ctx, grant.UserID, grant.ID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	decided, err := s.storage.DecideTokenRequest(ctx, request.ID, models.RequestApproved, note, &grant.ID, now)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !decided {
		// Параллельный администратор успел первым.
		return nil, fmt.Errorf("%s: %w", op, ErrRequestNotPending)
	}

	s.cacheGrant(ctx, grant, now)

	lg.Info("token_request_approved",
		slog.String("op", op),
		slog.String("request_id", request.ID.String()),
		slog.String("grant_id", grant.ID.String()),
	)

	request.Status = models.RequestApproved
	request.AdminNote = note
	request.GrantID = &grant.ID
	request.UpdatedAt = now

	return &ApprovalResult{
		Request: request,
		Grant:   grant,
		Tokens: &models.TokenPair{
			AccessToken:     accessToken,
			RefreshSecret:   refreshPlain,
			AccessExpiresAt: now.Add(s.cfg.AccessTokenTTL),
		},
	}, nil
}

// RejectRequest отклоняет pending-заявку с заметкой администратора.
func (s *Service) RejectRequest(ctx context.Context, requestID uuid.UUID, note string) (*models.TokenRequest, error) {
	const op = "service.requests.RejectRequest"

	request, err := s.storage.TokenRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if request.Status != models.RequestPending {
		return nil, fmt.Errorf("%s: %w", op, ErrRequestNotPending)
	}

	now := time.Now().UTC()

	decided, err := s.storage.DecideTokenRequest(ctx, request.ID, models.RequestRejected, note, nil, now)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !decided {
		return nil, fmt.Errorf("%s: %w", op, ErrRequestNotPending)
	}

	request.Status = models.RequestRejected
	request.AdminNote = note
	request.UpdatedAt = now

	return request, nil
}

// upsertGrant реализует «не более одного активного гранта на пользователя».
// Существующий активный грант обновляется на месте: scopes заменяются, отзыв
// снимается, jti и id стабильны — уже выданные access-токены с этим jti
// подхватят новые scopes при следующей проверке, а один отзыв погасит всё,
// что когда-либо выпускалось под этим jti. Иначе создаётся новый грант
// со свежим jti; проигравший гонку INSERT превращается в ErrGrantConflict.
func (s *Service) upsertGrant(ctx context.Context, userID uuid.UUID, scopes []string, now time.Time) (*models.Grant, error) {
	const op = "service.requests.upsertGrant"

	expiresAt := now.Add(s.cfg.EffectiveRefreshTTL())

	existing, err := s.storage.ActiveGrantByUser(ctx, userID)
	if err == nil {
		existing.Scopes = scopes
		existing.Active = true
		existing.RevokedAt = nil
		existing.ExpiresAt = expiresAt

		if err := s.storage.UpdateGrant(ctx, existing); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return existing, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	grant := &models.Grant{
		ID:        uuid.New(),
		UserID:    userID,
		JTI:       uuid.NewString(),
		Scopes:    scopes,
		Active:    true,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}

	if err := s.storage.SaveGrant(ctx, grant); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrGrantConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return grant, nil
}

// findOrCreateUser находит пользователя по email или создаёт нового.
// Гонка двух первых заявок разрешается повторным чтением после
// unique violation по email.
func (s *Service) findOrCreateUser(ctx context.Context, email string) (*models.User, error) {
	const op = "service.requests.findOrCreateUser"

	user, err := s.storage.UserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user = &models.User{
		ID:        uuid.New(),
		Email:     email,
		IsAdmin:   false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			user, err = s.storage.UserByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}

			return user, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// validateEmail проверяет базовый формат email и обрезает пробелы снаружи.
func validateEmail(raw string) (string, error) {
	const op = "service.requests.validateEmail"

	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	return strings.ToLower(email), nil
}

// normalizeScopes приводит список scope к множеству: обрезает пробелы,
// выбрасывает пустые строки и дубликаты с сохранением порядка.
func normalizeScopes(scopes []string) ([]string, error) {
	const op = "service.requests.normalizeScopes"

	seen := make(map[string]struct{}, len(scopes))
	out := make([]string, 0, len(scopes))
	for _, raw := range scopes {
		scope := strings.TrimSpace(raw)
		if scope == "" {
			continue
		}
		if _, ok := seen[scope]; ok {
			continue
		}

		seen[scope] = struct{}{}
		out = append(out, scope)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidScopes)
	}

	return out, nil
}
