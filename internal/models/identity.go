package models

import "github.com/google/uuid"

// Identity — результат аутентификации bearer-значения.
//
// IsAdmin вычисляется ровно один раз в момент аутентификации
// (флаг пользователя либо сервисный admin-ключ); дальнейшая авторизация
// смотрит только на готовую Identity и никогда не перечитывает заголовки.
type Identity struct {
	UserID  uuid.UUID
	Email   string
	GrantID uuid.UUID
	JTI     string
	Scopes  []string
	IsAdmin bool
}

// ScopeAll — маркер «все разрешения».
const ScopeAll = "*"

// HasScope сообщает, покрывает ли Identity требуемый scope
// (точное совпадение либо wildcard).
func (i *Identity) HasScope(scope string) bool {
	for _, s := range i.Scopes {
		if s == ScopeAll || s == scope {
			return true
		}
	}

	return false
}
