package models

import (
	"time"

	"github.com/google/uuid"
)

// Grant — долговременная запись выданного доступа.
//
// Описание:
//   - JTI — стабильный идентификатор, который вшивается в подписанные
//     access-токены; отзыв по JTI мгновенно гасит все ранее выданные
//     access-токены этого гранта;
//   - Scopes — набор строковых разрешений (непустой, без дубликатов);
//   - инвариант хранилища: не более одного активного гранта на пользователя;
//   - грант никогда не удаляется физически — только active=false + RevokedAt,
//     история сохраняется для аудита.
type Grant struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	JTI        string
	Scopes     []string
	Active     bool
	CreatedAt  time.Time
	ExpiresAt  time.Time
	RevokedAt  *time.Time
	LastUsedAt *time.Time
}
