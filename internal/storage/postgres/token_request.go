package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/storage"
)

// SaveTokenRequest создает новую заявку.
func (s *Storage) SaveTokenRequest(ctx context.Context, request *models.TokenRequest) error {
	const op = "storage.postgres.SaveTokenRequest"

	query := `
		INSERT INTO token_requests(id, user_id, scopes, status, admin_note, grant_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.Exec(ctx, query,
		request.ID,
		request.UserID,
		request.Scopes,
		request.Status,
		request.AdminNote,
		request.GrantID,
		request.CreatedAt,
		request.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// TokenRequestByID находит заявку по ID.
func (s *Storage) TokenRequestByID(ctx context.Context, id uuid.UUID) (*models.TokenRequest, error) {
	const op = "storage.postgres.TokenRequestByID"

	query := `
		SELECT id, user_id, scopes, status, admin_note, grant_id, created_at, updated_at
		FROM token_requests
		WHERE id = $1
	`

	var request models.TokenRequest
	err := s.db.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.UserID,
		&request.Scopes,
		&request.Status,
		&request.AdminNote,
		&request.GrantID,
		&request.CreatedAt,
		&request.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &request, nil
}

// ListTokenRequests возвращает заявки от новых к старым; status == nil — все.
func (s *Storage) ListTokenRequests(ctx context.Context, status *models.TokenRequestStatus) ([]models.TokenRequest, error) {
	const op = "storage.postgres.ListTokenRequests"

	query := `
		SELECT id, user_id, scopes, status, admin_note, grant_id, created_at, updated_at
		FROM token_requests
		WHERE $1::text IS NULL OR status = $1
		ORDER BY created_at DESC
	`

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := s.db.Query(ctx, query, statusArg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var requests []models.TokenRequest
	for rows.Next() {
		var request models.TokenRequest
		if err := rows.Scan(
			&request.ID,
			&request.UserID,
			&request.Scopes,
			&request.Status,
			&request.AdminNote,
			&request.GrantID,
			&request.CreatedAt,
			&request.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return requests, nil
}

// DecideTokenRequest — compare-and-swap статуса pending -> status.
// Слепой записи нет: условие status = 'pending' и счётчик строк
// гарантируют, что заявка решается ровно один раз.
// Возвращает:
//
//	(true, nil)  — заявка была pending и решена сейчас;
//	(false, nil) — заявка существует, но уже решена;
//	(false, ErrNotFound) — заявка не найдена.
func (s *Storage) DecideTokenRequest(ctx context.Context, id uuid.UUID, status models.TokenRequestStatus, note string, grantID *uuid.UUID, now time.Time) (bool, error) {
	const op = "storage.postgres.DecideTokenRequest"

	const upd = `
		UPDATE token_requests
		SET status = $2, admin_note = $3, grant_id = $4, updated_at = $5
		WHERE id = $1 AND status = 'pending'
		RETURNING user_id
	`

	var userID string
	err := s.db.QueryRow(ctx, upd, id, status, note, grantID, now).Scan(&userID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	const sel = `
		SELECT status
		FROM token_requests
		WHERE id = $1
	`

	var current string
	err = s.db.QueryRow(ctx, sel, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return false, fmt.Errorf("%s: %w", op, err)
	}

	return false, nil
}
