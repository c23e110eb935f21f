// storage задаёт контракты персистентного слоя token-сервиса и общие
// сентинел-ошибки. Конкретные реализации живут в подпакетах (postgres).
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-token-service/internal/models"
)

//go:generate mockgen -source=storage.go -destination=../../mocks/mock_storage.go -package=mocks

var (
	// ErrNotFound — запись не найдена (пользователь/грант/секрет/заявка).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email/jti/lookup-хэш/активный грант).
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создает нового пользователя в БД.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByEmail находит пользователя по email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// GrantStorage выполняет операции над грантами доступа.
//
// Инвариант «не более одного активного гранта на пользователя» обеспечивается
// частичным уникальным индексом в БД: проигравший гонку SaveGrant получает
// ErrAlreadyExists, а не второй активный грант.
type GrantStorage interface {
	// SaveGrant создает новый грант.
	SaveGrant(ctx context.Context, grant *models.Grant) error
	// ActiveGrantByUser возвращает активный грант пользователя (самый свежий).
	ActiveGrantByUser(ctx context.Context, userID uuid.UUID) (*models.Grant, error)
	// GrantByJTI находит грант по jti; только active=true.
	GrantByJTI(ctx context.Context, jti string) (*models.Grant, error)
	// GrantByID находит грант по ID независимо от состояния.
	GrantByID(ctx context.Context, id uuid.UUID) (*models.Grant, error)
	// UpdateGrant перезаписывает scopes/active/expires_at/revoked_at гранта,
	// сохраняя его id и jti. Единственный путь мутации scopes.
	UpdateGrant(ctx context.Context, grant *models.Grant) error
	// RevokeGrant деактивирует грант; идемпотентна (повторный отзыв — no-op).
	RevokeGrant(ctx context.Context, id uuid.UUID, now time.Time) error
	// TouchGrant обновляет last_used_at; best-effort.
	TouchGrant(ctx context.Context, id uuid.UUID, now time.Time) error
}

// RefreshSecretStorage выполняет операции над refresh-секретами.
type RefreshSecretStorage interface {
	// SaveRefreshSecret атомарно заменяет живую refresh-линию гранта:
	// отзывает его прежние неотозванные секреты и сохраняет новый в одной
	// транзакции. У гранта в любой момент не более одного живого секрета.
	SaveRefreshSecret(ctx context.Context, secret *models.RefreshSecret) error
	// RefreshSecretByLookup находит неотозванный секрет по lookup-хэшу.
	RefreshSecretByLookup(ctx context.Context, lookup string) (*models.RefreshSecret, error)
	// ConsumeRefreshSecret атомарно помечает секрет отозванным.
	// Возвращает:
	//
	//	(true, nil)  — секрет был жив и отозван сейчас (ровно один победитель);
	//	(false, nil) — секрет существует, но уже был отозван;
	//	(false, ErrNotFound) — секрет не найден.
	ConsumeRefreshSecret(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	// RevokeRefreshSecretsForGrant отзывает все живые секреты гранта.
	RevokeRefreshSecretsForGrant(ctx context.Context, grantID uuid.UUID, now time.Time) error
	// DeleteExpiredRefreshSecrets удаляет давно истёкшие секреты.
	DeleteExpiredRefreshSecrets(ctx context.Context, now time.Time) error
}

// TokenRequestStorage выполняет операции над заявками на доступ.
type TokenRequestStorage interface {
	// SaveTokenRequest создает новую заявку.
	SaveTokenRequest(ctx context.Context, request *models.TokenRequest) error
	// TokenRequestByID находит заявку по ID.
	TokenRequestByID(ctx context.Context, id uuid.UUID) (*models.TokenRequest, error)
	// ListTokenRequests возвращает заявки от новых к старым; status == nil — все.
	ListTokenRequests(ctx context.Context, status *models.TokenRequestStatus) ([]models.TokenRequest, error)
	// DecideTokenRequest — compare-and-swap pending -> status.
	// Возвращает:
	//
	//	(true, nil)  — заявка была pending и решена сейчас;
	//	(false, nil) — заявка существует, но уже решена;
	//	(false, ErrNotFound) — заявка не найдена.
	DecideTokenRequest(ctx context.Context, id uuid.UUID, status models.TokenRequestStatus, note string, grantID *uuid.UUID, now time.Time) (bool, error)
}

// Storage задает контракт работы с БД.
type Storage interface {
	UserStorage
	GrantStorage
	RefreshSecretStorage
	TokenRequestStorage
	Close()
}
