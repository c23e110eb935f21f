package models

import (
	"time"

	"github.com/google/uuid"
)

// User - пользователь API. Создаётся при первой заявке на токен,
// в штатной работе никогда не удаляется.
type User struct {
	ID        uuid.UUID
	Email     string
	IsAdmin   bool
	CreatedAt time.Time
}
