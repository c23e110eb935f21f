package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshSecret — данные refresh-секрета для ротации токенов.
//
// Plaintext секрета возвращается клиенту ровно один раз при создании
// и никогда не сохраняется и не логируется. В БД лежат:
//   - LookupHash — детерминированный тег (sha256 → base64url) для O(1)-поиска;
//   - SecretHash — bcrypt-хэш для проверки предъявленного значения.
//
// Одновременно у гранта живёт не более одного неотозванного секрета:
// при ротации и при переподтверждении гранта старые отзываются, не удаляются.
type RefreshSecret struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	GrantID    uuid.UUID
	LookupHash string
	SecretHash string
	CreatedAt  time.Time
	ExpiresAt  time.Time
	RevokedAt  *time.Time
}

// Revoked сообщает, был ли секрет отозван.
func (r *RefreshSecret) Revoked() bool {
	return r.RevokedAt != nil
}
