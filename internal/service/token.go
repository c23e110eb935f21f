package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/pkg/log"
	"github.com/pribylovaa/go-token-service/internal/storage"
)

type accessClaims struct {
	Scopes []string `json:"scopes"`
	jwt.RegisteredClaims
}

// signAccessToken подписывает access-токен: sub — пользователь,
// jti — стабильный идентификатор гранта, scopes — текущие разрешения.
func (s *Service) signAccessToken(ctx context.Context, userID uuid.UUID, jti string, scopes []string, now time.Time) (string, error) {
	const op = "service.token.signAccessToken"

	lg := log.From(ctx)

	claims := accessClaims{
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.cfg.Issuer,
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings(s.cfg.Audience),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	// kid — задел под версионирование ключей.
	if s.cfg.JWTKeyID != "" {
		token.Header["kid"] = s.cfg.JWTKeyID
	}

	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		lg.Error("access_token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// parseAccessToken валидирует access-токен и возвращает sub, jti и scopes.
func (s *Service) parseAccessToken(tokenStr string) (uuid.UUID, string, []string, error) {
	const op = "service.token.parseAccessToken"

	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience...),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, "", nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return uuid.Nil, "", nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return uuid.Nil, "", nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.ID == "" {
		return uuid.Nil, "", nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return uid, claims.ID, claims.Scopes, nil
}

// refreshLookupHash — детерминированный lookup-тег секрета (sha256 → base64url).
// Не секретный, необратимый; нужен только для O(1)-поиска строки в БД,
// проверка подлинности — отдельным bcrypt-хэшем.
func refreshLookupHash(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// hashRefreshSecret хэширует refresh-секрет с помощью bcrypt.
// Секрет долгоживущий, поэтому хэш-функция адаптивной стоимости, как у паролей.
func hashRefreshSecret(plain string) (string, error) {
	const op = "service.token.hashRefreshSecret"

	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// matchesRefreshSecret сравнивает секрет с bcrypt-хэшем.
func matchesRefreshSecret(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// issueRefreshSecret создает новый refresh-секрет для гранта и сохраняет
// в БД только его хэши. Plaintext возвращается ровно один раз.
func (s *Service) issueRefreshSecret(ctx context.Context, userID, grantID uuid.UUID, now time.Time) (string, error) {
	const (
		op          = "service.token.issueRefreshSecret"
		maxAttempts = 5
	)

	lg := log.From(ctx)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			lg.Error("refresh_rand_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}
		plain := base64.RawURLEncoding.EncodeToString(b)

		secretHash, err := hashRefreshSecret(plain)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}

		secret := &models.RefreshSecret{
			ID:         uuid.New(),
			UserID:     userID,
			GrantID:    grantID,
			LookupHash: refreshLookupHash(plain),
			SecretHash: secretHash,
			CreatedAt:  now,
			ExpiresAt:  now.Add(s.cfg.EffectiveRefreshTTL()),
		}

		if err := s.storage.SaveRefreshSecret(ctx, secret); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				// Редкая коллизия lookup-хэша — пробуем сгенерировать заново.
				continue
			}

			lg.Error("save_refresh_secret_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}

		return plain, nil
	}

	lg.Error("refresh_collision_exceeded",
		slog.String("op", op),
	)

	return "", fmt.Errorf("%s: %w", op, ErrRefreshSecretCollision)
}
