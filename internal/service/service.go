// service содержит бизнес-логику token-сервиса:
// приём и решение заявок на доступ, выпуск/проверку/ротацию токенов
// и работу с хранилищем через интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Сериализация конкурентных одобрений по пользователю обеспечивается
//     уникальными ограничениями хранилища, а не локами в процессе.
//   - Ошибки возвращаются и далее маппятся транспортом
//     на HTTP-коды (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/pribylovaa/go-token-service/internal/cache"
	"github.com/pribylovaa/go-token-service/internal/config"
	"github.com/pribylovaa/go-token-service/internal/storage"
)

var (
	// ErrInvalidToken — bearer-значение (access/refresh) некорректно по
	// формату/подписи или отсутствует в хранилище. Транспорт: HTTP 401.
	// Наружу все причины отказа аутентификации неразличимы.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена/секрета истёк. Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked — токен/секрет отозван (отзыв гранта/ротация/повтор)
	// и недействителен независимо от срока. Транспорт: HTTP 401.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrPermissionDenied — аутентификация прошла, но scope/права не покрывают
	// операцию. Транспорт: HTTP 403 (идентичность известна, в отличие от 401).
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidEmail — e-mail имеет некорректный формат.
	// Транспорт: HTTP 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidScopes — пустой после нормализации список scope.
	// Транспорт: HTTP 400.
	ErrInvalidScopes = errors.New("at least one scope is required")

	// ErrNotFound — заявка или грант с указанным id не существует.
	// Транспорт: HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrRequestNotPending — попытка решить уже решённую заявку.
	// Терминальное состояние первой развязки не меняется. Транспорт: HTTP 409.
	ErrRequestNotPending = errors.New("request not pending")

	// ErrGrantConflict — проигрыш гонки за единственный активный грант
	// пользователя; операцию можно повторить. Транспорт: HTTP 409.
	ErrGrantConflict = errors.New("active grant conflict")

	// ErrRefreshSecretCollision — исчерпаны попытки сгенерировать уникальный
	// refresh-секрет (редкие коллизии lookup-хэша). Транспорт: HTTP 500.
	ErrRefreshSecretCollision = errors.New("refresh secret collision")
)

// Service описывает бизнес-логику token-сервиса.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig
	gcache  cache.GrantCache // может быть nil, если кэш не сконфигурирован
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.AuthConfig) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}

// SetGrantCache устанавливает кэш отзыва грантов (опционально).
func (s *Service) SetGrantCache(c cache.GrantCache) {
	s.gcache = c
}
