// Package log передаёт request-scoped slog.Logger через context.Context.
// HTTP-middleware обогащает логгер атрибутами запроса (request_id, метод,
// путь) и кладёт его в контекст; нижние слои достают его через From.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into возвращает контекст с привязанным логгером.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From возвращает логгер запроса из контекста.
// Вне запроса (janitor, startup) — slog.Default().
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}
