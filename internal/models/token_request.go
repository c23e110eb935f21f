package models

import (
	"time"

	"github.com/google/uuid"
)

// TokenRequestStatus — статус заявки на доступ.
type TokenRequestStatus string

const (
	RequestPending  TokenRequestStatus = "pending"
	RequestApproved TokenRequestStatus = "approved"
	RequestRejected TokenRequestStatus = "rejected"
)

// Valid проверяет, что значение статуса известно.
func (s TokenRequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	}

	return false
}

// TokenRequest — заявка пользователя на выдачу токена.
//
// Жизненный цикл: создаётся в pending и ровно один раз переходит
// в approved (с привязкой GrantID) или rejected (только заметка).
// Повторное решение по уже решённой заявке — конфликт, а не перезапись.
type TokenRequest struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Scopes    []string
	Status    TokenRequestStatus
	AdminNote string
	GrantID   *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
