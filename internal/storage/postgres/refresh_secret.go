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

// SaveRefreshSecret атомарно заменяет живую refresh-линию гранта: в одной
// транзакции берёт блокировку строки гранта, отзывает его прежние живые
// секреты и вставляет новый. Блокировка сериализует конкурентные вставки
// по одному гранту — без неё два параллельных одобрения могут пройти
// отзыв до вставок друг друга и оставить два живых секрета.
func (s *Storage) SaveRefreshSecret(ctx context.Context, secret *models.RefreshSecret) error {
	const op = "storage.postgres.SaveRefreshSecret"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const lock = `
		SELECT id
		FROM grants
		WHERE id = $1
		FOR UPDATE
	`

	if _, err := tx.Exec(ctx, lock, secret.GrantID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	const revoke = `
		UPDATE refresh_secrets
		SET revoked_at = $2
		WHERE grant_id = $1 AND revoked_at IS NULL
	`

	if _, err := tx.Exec(ctx, revoke, secret.GrantID, secret.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	const insert = `
        INSERT INTO refresh_secrets(id, user_id, grant_id, lookup_hash, secret_hash, created_at, expires_at, revoked_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `

	_, err = tx.Exec(ctx, insert,
		secret.ID,
		secret.UserID,
		secret.GrantID,
		secret.LookupHash,
		secret.SecretHash,
		secret.CreatedAt,
		secret.ExpiresAt,
		secret.RevokedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RefreshSecretByLookup находит неотозванный секрет по lookup-хэшу.
// Поиск по индексированному детерминированному тегу — O(1) вместо
// перебора всех кандидатов с дорогим bcrypt-сравнением.
func (s *Storage) RefreshSecretByLookup(ctx context.Context, lookup string) (*models.RefreshSecret, error) {
	const op = "storage.postgres.RefreshSecretByLookup"

	query := `
        SELECT id, user_id, grant_id, lookup_hash, secret_hash, created_at, expires_at, revoked_at
        FROM refresh_secrets
        WHERE lookup_hash = $1 AND revoked_at IS NULL
    `

	var secret models.RefreshSecret
	err := s.db.QueryRow(ctx, query, lookup).Scan(
		&secret.ID,
		&secret.UserID,
		&secret.GrantID,
		&secret.LookupHash,
		&secret.SecretHash,
		&secret.CreatedAt,
		&secret.ExpiresAt,
		&secret.RevokedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &secret, nil
}

// ConsumeRefreshSecret атомарно помечает секрет отозванным.
// Условие revoked_at IS NULL и счётчик затронутых строк дают ровно одного
// победителя при конкурентном погашении одного и того же секрета.
// Возвращает:
//
//	(true, nil)  — секрет был жив и отозван сейчас;
//	(false, nil) — секрет существует, но уже был отозван;
//	(false, ErrNotFound) — секрет не найден.
func (s *Storage) ConsumeRefreshSecret(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	const op = "storage.postgres.ConsumeRefreshSecret"

	const upd = `
		UPDATE refresh_secrets
		SET revoked_at = $2
		WHERE id = $1 AND revoked_at IS NULL
		RETURNING user_id
	`

	var userID string
	err := s.db.QueryRow(ctx, upd, id, now).Scan(&userID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	const sel = `
		SELECT revoked_at IS NOT NULL
		FROM refresh_secrets
		WHERE id = $1
	`

	var revoked bool
	err = s.db.QueryRow(ctx, sel, id).Scan(&revoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return false, fmt.Errorf("%s: %w", op, err)
	}

	return false, nil
}

// RevokeRefreshSecretsForGrant отзывает все живые секреты гранта.
// Используется при отзыве гранта: его refresh-линия гаснет целиком.
// При переподтверждении прежнюю линию гасит сам SaveRefreshSecret.
func (s *Storage) RevokeRefreshSecretsForGrant(ctx context.Context, grantID uuid.UUID, now time.Time) error {
	const op = "storage.postgres.RevokeRefreshSecretsForGrant"

	query := `
        UPDATE refresh_secrets
        SET revoked_at = $2
        WHERE grant_id = $1 AND revoked_at IS NULL
    `

	if _, err := s.db.Exec(ctx, query, grantID, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteExpiredRefreshSecrets удаляет все просроченные секреты.
func (s *Storage) DeleteExpiredRefreshSecrets(ctx context.Context, now time.Time) error {
	const op = "storage.postgres.DeleteExpiredRefreshSecrets"

	query := `
        DELETE FROM refresh_secrets
        WHERE expires_at <= $1
    `

	if _, err := s.db.Exec(ctx, query, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
