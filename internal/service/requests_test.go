package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/storage"
)

func TestSubmitRequest_OK_NewUser(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().SaveTokenRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.TokenRequest) error {
			require.Equal(t, models.RequestPending, req.Status)
			require.Equal(t, []string{"genkit"}, req.Scopes)
			return nil
		})

	req, err := svc.SubmitRequest(context.Background(), "User@Example.com", []string{"genkit"})
	require.NoError(t, err)
	require.Equal(t, models.RequestPending, req.Status)
	require.NotEqual(t, uuid.Nil, req.ID)
}

func TestSubmitRequest_OK_ExistingUser(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Email: "user@example.com"}
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(user, nil)
	st.EXPECT().SaveTokenRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.TokenRequest) error {
			require.Equal(t, user.ID, req.UserID)
			return nil
		})

	_, err := svc.SubmitRequest(context.Background(), "user@example.com", []string{"a"})
	require.NoError(t, err)
}

func TestSubmitRequest_UserCreateRace_RefetchesByEmail(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	winner := &models.User{ID: uuid.New(), Email: "user@example.com"}

	gomock.InOrder(
		st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(nil, storage.ErrNotFound),
		st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists),
		st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(winner, nil),
	)
	st.EXPECT().SaveTokenRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.TokenRequest) error {
			require.Equal(t, winner.ID, req.UserID)
			return nil
		})

	_, err := svc.SubmitRequest(context.Background(), "user@example.com", []string{"a"})
	require.NoError(t, err)
}

func TestSubmitRequest_InvalidEmail(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.SubmitRequest(context.Background(), "not-an-email", []string{"a"})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestSubmitRequest_EmptyScopes(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.SubmitRequest(context.Background(), "u@e.com", nil)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidScopes)

	_, err = svc.SubmitRequest(context.Background(), "u@e.com", []string{"  ", ""})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidScopes)
}

func TestSubmitRequest_ScopesNormalized(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).
		Return(&models.User{ID: uuid.New()}, nil)
	st.EXPECT().SaveTokenRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.TokenRequest) error {
			require.Equal(t, []string{"a", "b"}, req.Scopes)
			return nil
		})

	_, err := svc.SubmitRequest(context.Background(), "u@e.com", []string{" a ", "b", "a", ""})
	require.NoError(t, err)
}

func TestListRequests_PassesFilter(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	pending := models.RequestPending
	want := []models.TokenRequest{{ID: uuid.New(), Status: pending}}

	st.EXPECT().ListTokenRequests(gomock.Any(), &pending).Return(want, nil)

	got, err := svc.ListRequests(context.Background(), &pending)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func pendingRequest(userID uuid.UUID) *models.TokenRequest {
	now := time.Now().UTC()
	return &models.TokenRequest{
		ID:        uuid.New(),
		UserID:    userID,
		Scopes:    []string{"genkit"},
		Status:    models.RequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestApproveRequest_OK_NewGrant(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()
	req := pendingRequest(userID)

	st.EXPECT().TokenRequestByID(gomock.Any(), req.ID).Return(req, nil)
	st.EXPECT().ActiveGrantByUser(gomock.Any(), userID).Return(nil, storage.ErrNotFound)

	var savedGrant *models.Grant
	st.EXPECT().SaveGrant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *models.Grant) error {
			require.True(t, g.Active)
			require.Equal(t, req.Scopes, g.Scopes)
			savedGrant = g
			return nil
		})
	st.EXPECT().SaveRefreshSecret(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().DecideTokenRequest(gomock.Any(), req.ID, models.RequestApproved, "ok", gomock.Any(), gomock.Any()).
		Return(true, nil)

	result, err := svc.ApproveRequest(context.Background(), req.ID, "ok")
	require.NoError(t, err)
	require.Equal(t, models.RequestApproved, result.Request.Status)
	require.Equal(t, savedGrant.ID, *result.Request.GrantID)
	require.NotEmpty(t, result.Tokens.AccessToken)
	require.NotEmpty(t, result.Tokens.RefreshSecret)

	// Выданный access-токен валиден и несёт jti гранта.
	_, jti, scopes, err := svc.parseAccessToken(result.Tokens.AccessToken)
	require.NoError(t, err)
	require.Equal(t, savedGrant.JTI, jti)
	require.Equal(t, req.Scopes, scopes)
}

func TestApproveRequest_ReusesActiveGrant_KeepsIDAndJTI(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()
	req := pendingRequest(userID)
	req.Scopes = []string{"media"}

	existing := &models.Grant{
		ID:     uuid.New(),
		UserID: userID,
		JTI:    uuid.NewString(),
		Scopes: []string{"genkit"},
		Active: true,
	}

	st.EXPECT().TokenRequestByID(gomock.Any(), req.ID).Return(req, nil)
	st.EXPECT().ActiveGrantByUser(gomock.Any(), userID).Return(existing, nil)
	st.EXPECT().UpdateGrant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *models.Grant) error {
			require.Equal(t, existing.ID, g.ID)
			require.Equal(t, existing.JTI, g.JTI)
			require.Equal(t, []string{"media"}, g.Scopes)
			require.True(t, g.Active)
			require.Nil(t, g.RevokedAt)
			return nil
		})
	st.EXPECT().SaveRefreshSecret(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().DecideTokenRequest(gomock.Any(), req.ID, models.RequestApproved, "", &existing.ID, gomock.Any()).
		Return(true, nil)

	result, err := svc.ApproveRequest(context.Background(), req.ID, "")
	require.NoError(t, err)
	require.Equal(t, existing.ID, result.Grant.ID)
	require.Equal(t, existing.JTI, result.Grant.JTI)
}

func TestApproveRequest_NotFound(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	id := uuid.New()
	st.EXPECT().TokenRequestByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)

	_, err := svc.ApproveRequest(context.Background(), id, "")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestApproveRequest_AlreadyDecided(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	req := pendingRequest(uuid.New())
	req.Status = models.RequestRejected

	st.EXPECT().TokenRequestByID(gomock.Any(), req.ID).Return(req, nil)

	_, err := svc.ApproveRequest(context.Background(), req.ID, "")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrRequestNotPending)
}

func TestApproveRequest_LosesDecideRace(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()
	req := pendingRequest(userID)

	st.EXPECT().TokenRequestByID(gomock.Any(), req.ID).Return(req, nil)
	st.EXPECT().ActiveGrantByUser(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveGrant(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().SaveRefreshSecret(gomock.Any(), gomock.Any()).Return(nil)
	// Пока мы готовили грант, второй администратор решил заявку.
	st.EXPECT().DecideTokenRequest(gomock.Any(), req.ID, models.RequestApproved, "", gomock.Any(), gomock.Any()).
		Return(false, nil)

	_, err := svc.ApproveRequest(context.Background(), req.ID, "")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrRequestNotPending)
}

func TestApproveRequest_GrantRace_MapsToConflict(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()
	req := pendingRequest(userID)

	st.EXPECT().TokenRequestByID(gomock.Any(), req.ID).Return(req, nil)
	st.EXPECT().ActiveGrantByUser(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveGrant(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	_, err := svc.ApproveRequest(context.Background(), req.ID, "")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrGrantConflict)
}

func TestApproveRequest_SecondApproval_MintsSecretOnSameGrant(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()
	req := pendingRequest(userID)

	existing := &models.Grant{
		ID:     uuid.New(),
		UserID: userID,
		JTI:    uuid.NewString(),
		Scopes: []string{"genkit"},
		Active: true,
	}

	st.EXPECT().TokenRequestByID(gomock.Any(), req.ID).Return(req, nil)
	st.EXPECT().ActiveGrantByUser(gomock.Any(), userID).Return(existing, nil)
	st.EXPECT().UpdateGrant(gomock.Any(), gomock.Any()).Return(nil)
	// Новый секрет выпускается под прежним грантом: его сохранение
	// атомарно заменяет refresh-линию на стороне хранилища.
	st.EXPECT().SaveRefreshSecret(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sec *models.RefreshSecret) error {
			require.Equal(t, existing.ID, sec.GrantID)
			require.Nil(t, sec.RevokedAt)
			return nil
		})
	st.EXPECT().DecideTokenRequest(gomock.Any(), req.ID, models.RequestApproved, "", &existing.ID, gomock.Any()).
		Return(true, nil)

	_, err := svc.ApproveRequest(context.Background(), req.ID, "")
	require.NoError(t, err)
}

func TestRejectRequest_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	req := pendingRequest(uuid.New())

	st.EXPECT().TokenRequestByID(gomock.Any(), req.ID).Return(req, nil)
	st.EXPECT().DecideTokenRequest(gomock.Any(), req.ID, models.RequestRejected, "nope", nil, gomock.Any()).
		Return(true, nil)

	got, err := svc.RejectRequest(context.Background(), req.ID, "nope")
	require.NoError(t, err)
	require.Equal(t, models.RequestRejected, got.Status)
	require.Equal(t, "nope", got.AdminNote)
	require.Nil(t, got.GrantID)
}

func TestRejectRequest_AlreadyDecided(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	req := pendingRequest(uuid.New())
	req.Status = models.RequestApproved

	st.EXPECT().TokenRequestByID(gomock.Any(), req.ID).Return(req, nil)

	_, err := svc.RejectRequest(context.Background(), req.ID, "")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrRequestNotPending)
}

func TestRejectRequest_LosesDecideRace(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	req := pendingRequest(uuid.New())

	st.EXPECT().TokenRequestByID(gomock.Any(), req.ID).Return(req, nil)
	st.EXPECT().DecideTokenRequest(gomock.Any(), req.ID, models.RequestRejected, "", nil, gomock.Any()).
		Return(false, nil)

	_, err := svc.RejectRequest(context.Background(), req.ID, "")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrRequestNotPending)
}

func TestApproveRequest_StorageError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	id := uuid.New()
	st.EXPECT().TokenRequestByID(gomock.Any(), id).Return(nil, errors.New("db down"))

	_, err := svc.ApproveRequest(context.Background(), id, "")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}
