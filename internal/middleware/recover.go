// recover.go реализует перехватчик паник для HTTP-обработчиков.
package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/pribylovaa/go-token-service/internal/pkg/log"
)

// Recover перехватывает паники в обработчиках, логирует их и отвечает клиенту
// нейтральным 500 без раскрытия внутренних деталей.
//
// Если в контексте уже есть логгер (см. pkg/log), будет использован он;
// иначе — переданный base (если не nil), либо slog.Default().
func Recover(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := log.From(r.Context())
			if l == slog.Default() && base != nil {
				l = base
			}

			defer func() {
				if rec := recover(); rec != nil {
					l.Error("panic_recovered",
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())),
					)

					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
