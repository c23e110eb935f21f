package models

import "time"

// TokenPair — пара учётных данных, выдаваемая при одобрении заявки и при ротации.
//
// Описание:
//   - AccessToken — короткоживущий JWT с sub/jti/scopes;
//   - RefreshSecret — случайный непрозрачный секрет для ротации; на сервере
//     хранится только его хэш;
//   - AccessExpiresAt — момент истечения access-токена (UTC).
type TokenPair struct {
	// AccessToken — JWT для авторизации запросов.
	AccessToken string
	// RefreshSecret — случайный секрет для обновления пары.
	RefreshSecret string
	// AccessExpiresAt — время истечения действия access-токена (UTC).
	AccessExpiresAt time.Time
}
