package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-token-service/internal/config"
	"github.com/pribylovaa/go-token-service/internal/storage"
	"github.com/pribylovaa/go-token-service/mocks"
)

func testCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "unit-secret",
		JWTKeyID:        "v1",
		AdminKey:        "unit-admin-key",
		AccessTokenTTL:  30 * time.Second,
		RefreshTokenTTL: 24 * time.Hour,
		Issuer:          "token-service",
		Audience:        []string{"api-gateway"},
	}
}

func newSvc(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := New(st, testCfg())
	return svc, st, ctrl
}

func TestSignAccessToken_And_Parse_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	jti := uuid.NewString()
	scopes := []string{"genkit", "media"}
	now := time.Now().UTC()

	signed, err := svc.signAccessToken(context.Background(), uid, jti, scopes, now)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	gotUID, gotJTI, gotScopes, err := svc.parseAccessToken(signed)
	require.NoError(t, err)
	require.Equal(t, uid, gotUID)
	require.Equal(t, jti, gotJTI)
	require.Equal(t, scopes, gotScopes)
}

func TestParseAccessToken_Expired(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Подписываем токен в прошлом так, чтобы он истёк с учётом leeway.
	past := time.Now().UTC().Add(-time.Hour)
	signed, err := svc.signAccessToken(context.Background(), uuid.New(), uuid.NewString(), []string{"a"}, past)
	require.NoError(t, err)

	_, _, _, err = svc.parseAccessToken(signed)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	other := New(nil, config.AuthConfig{
		JWTSecret:      "other-secret",
		AccessTokenTTL: time.Minute,
		Issuer:         "token-service",
		Audience:       []string{"api-gateway"},
	})

	signed, err := other.signAccessToken(context.Background(), uuid.New(), uuid.NewString(), []string{"a"}, time.Now().UTC())
	require.NoError(t, err)

	_, _, _, err = svc.parseAccessToken(signed)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_WrongIssuerOrAudience(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	foreign := New(nil, config.AuthConfig{
		JWTSecret:      "unit-secret",
		AccessTokenTTL: time.Minute,
		Issuer:         "someone-else",
		Audience:       []string{"other-gateway"},
	})

	signed, err := foreign.signAccessToken(context.Background(), uuid.New(), uuid.NewString(), []string{"a"}, time.Now().UTC())
	require.NoError(t, err)

	_, _, _, err = svc.parseAccessToken(signed)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, _, _, err := svc.parseAccessToken("not-a-jwt")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_MissingJTI(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Токен без jti подписан нашим же секретом, но не привязан к гранту.
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		Issuer:    "token-service",
		Audience:  jwt.ClaimStrings{"api-gateway"},
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Minute)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-secret"))
	require.NoError(t, err)

	_, _, _, err = svc.parseAccessToken(signed)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshLookupHash_DeterministicAndDistinct(t *testing.T) {
	t.Parallel()

	a := refreshLookupHash("secret-a")
	require.Equal(t, a, refreshLookupHash("secret-a"))
	require.NotEqual(t, a, refreshLookupHash("secret-b"))
	require.NotEmpty(t, a)
}

func TestHashRefreshSecret_MatchAndMismatch(t *testing.T) {
	t.Parallel()

	hash, err := hashRefreshSecret("top-secret")
	require.NoError(t, err)
	require.NotEqual(t, "top-secret", hash)

	require.True(t, matchesRefreshSecret("top-secret", hash))
	require.False(t, matchesRefreshSecret("wrong", hash))
}

func TestIssueRefreshSecret_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid, gid := uuid.New(), uuid.New()
	now := time.Now().UTC()

	st.EXPECT().SaveRefreshSecret(gomock.Any(), gomock.Any()).Return(nil)

	plain, err := svc.issueRefreshSecret(context.Background(), uid, gid, now)
	require.NoError(t, err)
	require.NotEmpty(t, plain)
}

func TestIssueRefreshSecret_RetriesOnCollision(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	gomock.InOrder(
		st.EXPECT().SaveRefreshSecret(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists),
		st.EXPECT().SaveRefreshSecret(gomock.Any(), gomock.Any()).Return(nil),
	)

	plain, err := svc.issueRefreshSecret(context.Background(), uuid.New(), uuid.New(), time.Now().UTC())
	require.NoError(t, err)
	require.NotEmpty(t, plain)
}

func TestIssueRefreshSecret_CollisionsExhausted(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().SaveRefreshSecret(gomock.Any(), gomock.Any()).
		Return(storage.ErrAlreadyExists).Times(5)

	_, err := svc.issueRefreshSecret(context.Background(), uuid.New(), uuid.New(), time.Now().UTC())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrRefreshSecretCollision)
}
