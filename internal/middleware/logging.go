package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-token-service/internal/pkg/log"
)

// statusWriter перехватывает код ответа для итоговой логзаписи.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	return w.ResponseWriter.Write(b)
}

// Logging реализует логирование HTTP-запросов с контекстным логгером.
//
// Поведение и формат логов:
//   - Вытягивает X-Request-Id из заголовков, иначе генерирует UUID;
//   - Извлекает peer (IP:port клиента), метод и путь;
//   - Кладёт обогащённый *slog.Logger в context (pkg/log), чтобы он был
//     доступен глубже по стеку;
//   - После выполнения handler пишет одну строку уровня Info: msg="http",
//     status=<код ответа>, dur=<время выполнения>.
//
// Безопасность:
//   - Логи не содержат чувствительных данных (только метод/путь/peer/request_id);
//   - Если базовый логгер не передан, используется slog.Default() (без паник).
func Logging(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// request_id: из заголовка, иначе генерируется новый.
			rid := r.Header.Get("X-Request-Id")
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set("X-Request-Id", rid)

			l := base.With(
				slog.String("request_id", rid),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("peer", r.RemoteAddr),
			)

			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r.WithContext(log.Into(r.Context(), l)))

			if sw.status == 0 {
				sw.status = http.StatusOK
			}

			// итоговая запись.
			l.Info("http",
				slog.Int("status", sw.status),
				slog.Duration("dur", time.Since(start)),
			)
		})
	}
}
