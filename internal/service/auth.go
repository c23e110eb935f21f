package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-token-service/internal/cache"
	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/pkg/log"
	"github.com/pribylovaa/go-token-service/internal/storage"
)

// Authenticate разрешает bearer-значение в Identity.
//
// Порядок проверок:
//  1. сервисный admin-ключ (constant-time сравнение) — непрозрачный
//     статический токен вне грантовой схемы;
//  2. подпись и срок самодостаточного access-токена;
//  3. живость гранта по jti в хранилище — подписанный токен лишь ускоряет
//     проверку, источником истины остаётся БД: отзыв гранта действует
//     немедленно, не дожидаясь истечения токена.
//
// Любой отказ неразличим для вызывающего: транспорт отдаёт единый 401.
func (s *Service) Authenticate(ctx context.Context, bearer string) (*models.Identity, error) {
	const op = "service.auth.Authenticate"

	lg := log.From(ctx)

	if bearer == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if s.cfg.AdminKey != "" &&
		subtle.ConstantTimeCompare([]byte(bearer), []byte(s.cfg.AdminKey)) == 1 {
		return &models.Identity{
			Scopes:  []string{models.ScopeAll},
			IsAdmin: true,
		}, nil
	}

	userID, jti, _, err := s.parseAccessToken(bearer)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Быстрый отсекатель: отзыв, уже доехавший до кэша, экономит поход в БД.
	if s.gcache != nil {
		entry, ok, cerr := s.gcache.Get(ctx, jti)
		if cerr != nil {
			lg.Warn("grant_cache_get_failed",
				slog.String("op", op),
				slog.String("err", cerr.Error()),
			)
		} else if ok && entry.Revoked {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
		}
	}

	grant, err := s.storage.GrantByJTI(ctx, jti)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	if now.After(grant.ExpiresAt) {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	if grant.UserID != userID {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	user, err := s.storage.UserByID(ctx, grant.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Метка последнего использования — best-effort, отказ не валит запрос.
	if err := s.storage.TouchGrant(ctx, grant.ID, now); err != nil {
		lg.Warn("grant_touch_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	return &models.Identity{
		UserID:  user.ID,
		Email:   user.Email,
		GrantID: grant.ID,
		JTI:     grant.JTI,
		Scopes:  grant.Scopes,
		IsAdmin: user.IsAdmin,
	}, nil
}

// Authorize проверяет, что Identity покрывает требуемый scope
// (wildcard «*» либо точное совпадение).
func (s *Service) Authorize(identity *models.Identity, scope string) error {
	const op = "service.auth.Authorize"

	if identity == nil || !identity.HasScope(scope) {
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	return nil
}

// RequireAdmin проверяет admin-права уже разрешённой Identity.
// Заголовки запроса здесь не перечитываются никогда.
func (s *Service) RequireAdmin(identity *models.Identity) error {
	const op = "service.auth.RequireAdmin"

	if identity == nil || !identity.IsAdmin {
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	return nil
}

// Rotate обменивает refresh-секрет на новую пару учётных данных.
//
// Протокол ротации: каждое погашение одноразово. Conditional-update в
// хранилище выбирает ровно одного победителя при конкурентном предъявлении
// одного секрета; повтор уже погашенного секрета неотличим от невалидного.
// bcrypt-сравнение выполняется вне каких-либо блокировок.
func (s *Service) Rotate(ctx context.Context, refreshPlain string) (*models.TokenPair, error) {
	const op = "service.auth.Rotate"

	lg := log.From(ctx)

	if refreshPlain == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	secret, err := s.storage.RefreshSecretByLookup(ctx, refreshLookupHash(refreshPlain))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("refresh_lookup_not_found",
				slog.String("op", op),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	if now.After(secret.ExpiresAt) {
		lg.Warn("refresh_expired",
			slog.String("op", op),
			slog.String("user_id", secret.UserID.String()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	if !matchesRefreshSecret(refreshPlain, secret.SecretHash) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	consumed, err := s.storage.ConsumeRefreshSecret(ctx, secret.ID, now)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !consumed {
		lg.Warn("refresh_replayed",
			slog.String("op", op),
			slog.String("user_id", secret.UserID.String()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	grant, err := s.storage.GrantByID(ctx, secret.GrantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !grant.Active {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}
	if now.After(grant.ExpiresAt) {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	accessToken, err := s.signAccessToken(ctx, grant.UserID, grant.JTI, grant.Scopes, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshNew, err := s.issueRefreshSecret(ctx, grant.UserID, grant.ID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:     accessToken,
		RefreshSecret:   refreshNew,
		AccessExpiresAt: now.Add(s.cfg.AccessTokenTTL),
	}, nil
}

// RevokeGrant отзывает грант и всю его refresh-линию. Идемпотентна:
// повторный отзыв не ошибка.
func (s *Service) RevokeGrant(ctx context.Context, grantID uuid.UUID) error {
	const op = "service.auth.RevokeGrant"

	lg := log.From(ctx)

	grant, err := s.storage.GrantByID(ctx, grantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()

	if err := s.storage.RevokeGrant(ctx, grant.ID, now); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.RevokeRefreshSecretsForGrant(ctx, grant.ID, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.gcache != nil {
		if err := s.gcache.MarkRevoked(ctx, grant.JTI); err != nil {
			lg.Warn("grant_cache_mark_revoked_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	lg.Info("grant_revoked",
		slog.String("op", op),
		slog.String("grant_id", grant.ID.String()),
	)

	return nil
}

// cacheGrant кладёт запись о живом гранте в кэш отзыва (best-effort).
func (s *Service) cacheGrant(ctx context.Context, grant *models.Grant, now time.Time) {
	if s.gcache == nil {
		return
	}

	ttl := grant.ExpiresAt.Sub(now)
	if ttl <= 0 {
		return
	}

	entry := &cache.GrantEntry{
		GrantID:   grant.ID,
		UserID:    grant.UserID,
		Revoked:   false,
		ExpiresAt: grant.ExpiresAt,
	}

	if err := s.gcache.Set(ctx, grant.JTI, entry, ttl); err != nil {
		log.From(ctx).Warn("grant_cache_set_failed",
			slog.String("err", err.Error()),
		)
	}
}
