package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/storage"
)

// SaveGrant создает новый грант.
// Частичный уникальный индекс grants(user_id) WHERE active гарантирует,
// что при гонке двух одобрений второй INSERT вернёт ErrAlreadyExists.
func (s *Storage) SaveGrant(ctx context.Context, grant *models.Grant) error {
	const op = "storage.postgres.SaveGrant"

	query := `
		INSERT INTO grants(id, user_id, jti, scopes, active, created_at, expires_at, revoked_at, last_used_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.Exec(ctx, query,
		grant.ID,
		grant.UserID,
		grant.JTI,
		grant.Scopes,
		grant.Active,
		grant.CreatedAt,
		grant.ExpiresAt,
		grant.RevokedAt,
		grant.LastUsedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ActiveGrantByUser возвращает активный грант пользователя (самый свежий).
func (s *Storage) ActiveGrantByUser(ctx context.Context, userID uuid.UUID) (*models.Grant, error) {
	const op = "storage.postgres.ActiveGrantByUser"

	query := `
		SELECT id, user_id, jti, scopes, active, created_at, expires_at, revoked_at, last_used_at
		FROM grants
		WHERE user_id = $1 AND active
		ORDER BY created_at DESC
		LIMIT 1
	`

	grant, err := scanGrant(s.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return grant, nil
}

// GrantByJTI находит грант по jti; только active=true.
func (s *Storage) GrantByJTI(ctx context.Context, jti string) (*models.Grant, error) {
	const op = "storage.postgres.GrantByJTI"

	query := `
		SELECT id, user_id, jti, scopes, active, created_at, expires_at, revoked_at, last_used_at
		FROM grants
		WHERE jti = $1 AND active
	`

	grant, err := scanGrant(s.db.QueryRow(ctx, query, jti))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return grant, nil
}

// GrantByID находит грант по ID независимо от состояния.
func (s *Storage) GrantByID(ctx context.Context, id uuid.UUID) (*models.Grant, error) {
	const op = "storage.postgres.GrantByID"

	query := `
		SELECT id, user_id, jti, scopes, active, created_at, expires_at, revoked_at, last_used_at
		FROM grants
		WHERE id = $1
	`

	grant, err := scanGrant(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return grant, nil
}

// UpdateGrant перезаписывает изменяемые поля гранта, сохраняя id и jti.
func (s *Storage) UpdateGrant(ctx context.Context, grant *models.Grant) error {
	const op = "storage.postgres.UpdateGrant"

	query := `
		UPDATE grants
		SET scopes = $2, active = $3, expires_at = $4, revoked_at = $5
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query,
		grant.ID,
		grant.Scopes,
		grant.Active,
		grant.ExpiresAt,
		grant.RevokedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// RevokeGrant деактивирует грант. Идемпотентна: повторный отзыв не ошибка,
// метка времени первого отзыва сохраняется.
func (s *Storage) RevokeGrant(ctx context.Context, id uuid.UUID, now time.Time) error {
	const op = "storage.postgres.RevokeGrant"

	query := `
		UPDATE grants
		SET active = FALSE, revoked_at = COALESCE(revoked_at, $2)
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query, id, now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// TouchGrant обновляет last_used_at.
func (s *Storage) TouchGrant(ctx context.Context, id uuid.UUID, now time.Time) error {
	const op = "storage.postgres.TouchGrant"

	query := `
		UPDATE grants
		SET last_used_at = $2
		WHERE id = $1
	`

	if _, err := s.db.Exec(ctx, query, id, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// scanGrant читает строку grants в модель.
func scanGrant(row pgx.Row) (*models.Grant, error) {
	var grant models.Grant
	err := row.Scan(
		&grant.ID,
		&grant.UserID,
		&grant.JTI,
		&grant.Scopes,
		&grant.Active,
		&grant.CreatedAt,
		&grant.ExpiresAt,
		&grant.RevokedAt,
		&grant.LastUsedAt,
	)
	if err != nil {
		return nil, err
	}

	return &grant, nil
}
