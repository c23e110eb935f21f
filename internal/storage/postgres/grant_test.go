package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/storage"
)

// mustGrant — создаёт активный грант для пользователя.
func mustGrant(t *testing.T, st *Storage, userID uuid.UUID) *models.Grant {
	t.Helper()

	now := time.Now().UTC()
	g := &models.Grant{
		ID:        uuid.New(),
		UserID:    userID,
		JTI:       uuid.NewString(),
		Scopes:    []string{"genkit", "media"},
		Active:    true,
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
	}
	require.NoError(t, st.SaveGrant(context.Background(), g))
	return g
}

// TestIntegration_SaveGrant_And_Lookups_OK — happy-path: сохранение гранта
// и поиск по jti, id и владельцу; scopes возвращаются как есть.
func TestIntegration_SaveGrant_And_Lookups_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := mustUser(t, st, "grants@example.com")
	g := mustGrant(t, st, u.ID)

	byJTI, err := st.GrantByJTI(context.Background(), g.JTI)
	require.NoError(t, err)
	require.Equal(t, g.ID, byJTI.ID)
	require.Equal(t, g.Scopes, byJTI.Scopes)
	require.True(t, byJTI.Active)
	require.Nil(t, byJTI.RevokedAt)

	byID, err := st.GrantByID(context.Background(), g.ID)
	require.NoError(t, err)
	require.Equal(t, g.JTI, byID.JTI)

	byUser, err := st.ActiveGrantByUser(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, g.ID, byUser.ID)
}

// TestIntegration_SaveGrant_OneActivePerUser_Violation — второй активный грант
// того же пользователя нарушает частичный уникальный индекс.
func TestIntegration_SaveGrant_OneActivePerUser_Violation(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := mustUser(t, st, "conflict@example.com")
	mustGrant(t, st, u.ID)

	now := time.Now().UTC()
	second := &models.Grant{
		ID:        uuid.New(),
		UserID:    u.ID,
		JTI:       uuid.NewString(),
		Scopes:    []string{"a"},
		Active:    true,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	err := st.SaveGrant(context.Background(), second)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

// TestIntegration_RevokeGrant_ThenSaveNew_OK — после отзыва гранта новый
// активный грант для того же пользователя создаётся без конфликта.
func TestIntegration_RevokeGrant_ThenSaveNew_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := mustUser(t, st, "rotate@example.com")
	g := mustGrant(t, st, u.ID)

	require.NoError(t, st.RevokeGrant(context.Background(), g.ID, time.Now().UTC()))

	revoked, err := st.GrantByID(context.Background(), g.ID)
	require.NoError(t, err)
	require.False(t, revoked.Active)
	require.NotNil(t, revoked.RevokedAt)

	// По jti отозванный грант больше не находится.
	_, err = st.GrantByJTI(context.Background(), g.JTI)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)

	mustGrant(t, st, u.ID)
}

// TestIntegration_RevokeGrant_Idempotent_KeepsFirstTimestamp — повторный отзыв
// не ошибка и не сдвигает метку первого отзыва.
func TestIntegration_RevokeGrant_Idempotent_KeepsFirstTimestamp(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := mustUser(t, st, "idem@example.com")
	g := mustGrant(t, st, u.ID)

	first := time.Now().UTC()
	require.NoError(t, st.RevokeGrant(context.Background(), g.ID, first))
	require.NoError(t, st.RevokeGrant(context.Background(), g.ID, first.Add(time.Hour)))

	got, err := st.GrantByID(context.Background(), g.ID)
	require.NoError(t, err)
	require.NotNil(t, got.RevokedAt)
	require.WithinDuration(t, first, *got.RevokedAt, time.Second)
}

// TestIntegration_UpdateGrant_ReplacesScopes_KeepsJTI — UpdateGrant меняет
// scopes/сроки на месте, id и jti стабильны.
func TestIntegration_UpdateGrant_ReplacesScopes_KeepsJTI(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := mustUser(t, st, "update@example.com")
	g := mustGrant(t, st, u.ID)

	g.Scopes = []string{"only:this"}
	g.ExpiresAt = g.ExpiresAt.Add(time.Hour)
	require.NoError(t, st.UpdateGrant(context.Background(), g))

	got, err := st.GrantByJTI(context.Background(), g.JTI)
	require.NoError(t, err)
	require.Equal(t, g.ID, got.ID)
	require.Equal(t, []string{"only:this"}, got.Scopes)
}

// TestIntegration_UpdateGrant_NotFound — обновление несуществующего гранта.
func TestIntegration_UpdateGrant_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	now := time.Now().UTC()
	ghost := &models.Grant{
		ID:        uuid.New(),
		Scopes:    []string{"a"},
		Active:    true,
		ExpiresAt: now.Add(time.Hour),
	}

	err := st.UpdateGrant(context.Background(), ghost)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_TouchGrant_SetsLastUsed — best-effort метка использования.
func TestIntegration_TouchGrant_SetsLastUsed(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := mustUser(t, st, "touch@example.com")
	g := mustGrant(t, st, u.ID)

	now := time.Now().UTC()
	require.NoError(t, st.TouchGrant(context.Background(), g.ID, now))

	got, err := st.GrantByID(context.Background(), g.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastUsedAt)
	require.WithinDuration(t, now, *got.LastUsedAt, time.Second)
}

// TestIntegration_ActiveGrantByUser_NotFound — у пользователя нет активного гранта.
func TestIntegration_ActiveGrantByUser_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := mustUser(t, st, "empty@example.com")

	_, err := st.ActiveGrantByUser(context.Background(), u.ID)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
