package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-token-service/internal/pkg/log"
)

type capHandler struct {
	base    []slog.Attr
	lastMsg string
	lastLvl slog.Level
	attrs   map[string]any
}

func (h *capHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capHandler) Handle(_ context.Context, r slog.Record) error {
	out := make(map[string]any, len(h.base)+8)
	for _, a := range h.base {
		out[a.Key] = a.Value.Any()
	}

	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.Any()
		return true
	})

	h.lastMsg = r.Message
	h.lastLvl = r.Level
	h.attrs = out
	return nil
}

func (h *capHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.base = append(h.base, attrs...)
	return h
}

func (h *capHandler) WithGroup(string) slog.Handler { return h }

func TestLogging_Success_WithRequestID(t *testing.T) {
	h := &capHandler{}
	logger := slog.New(h)

	var ctxLogger *slog.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = log.From(r.Context())
		time.Sleep(5 * time.Millisecond)
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/request", nil)
	req.Header.Set("X-Request-Id", "rid-123")
	rec := httptest.NewRecorder()

	Logging(logger)(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "rid-123", rec.Header().Get("X-Request-Id"))

	// Обогащённый логгер доехал до обработчика через контекст.
	require.NotNil(t, ctxLogger)
	require.NotEqual(t, slog.Default(), ctxLogger)

	require.Equal(t, "http", h.lastMsg)
	require.Equal(t, slog.LevelInfo, h.lastLvl)
	require.Equal(t, "rid-123", h.attrs["request_id"])
	require.Equal(t, http.MethodPost, h.attrs["method"])
	require.Equal(t, "/api/v1/auth/request", h.attrs["path"])
	require.Equal(t, int64(http.StatusCreated), h.attrs["status"])

	if d, ok := h.attrs["dur"].(time.Duration); ok {
		require.Greater(t, d, time.Duration(0))
	} else {
		t.Fatalf("dur attr not found or wrong type: %#v", h.attrs["dur"])
	}
}

func TestLogging_GeneratesUUID(t *testing.T) {
	h := &capHandler{}
	logger := slog.New(h)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/requests", nil)
	rec := httptest.NewRecorder()

	Logging(logger)(next).ServeHTTP(rec, req)

	rid, _ := h.attrs["request_id"].(string)
	require.NotEmpty(t, rid)
	_, parseErr := uuid.Parse(rid)
	require.NoError(t, parseErr)
	require.Equal(t, rid, rec.Header().Get("X-Request-Id"))
}

func TestLogging_DefaultStatus200(t *testing.T) {
	h := &capHandler{}
	logger := slog.New(h)

	// Обработчик пишет тело без явного WriteHeader.
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	Logging(logger)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, int64(http.StatusOK), h.attrs["status"])
}

func TestRecover_PanicTo500_AndLogsStack(t *testing.T) {
	h := &capHandler{}
	logger := slog.New(h)

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	Recover(logger)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/will-panic", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	require.Equal(t, "panic_recovered", h.lastMsg)
	require.Equal(t, slog.LevelError, h.lastLvl)
	require.Equal(t, "boom", h.attrs["panic"])

	stack, _ := h.attrs["stack"].(string)
	require.NotEmpty(t, stack)
}

func TestWithTimeout_SetsDeadlineOnce(t *testing.T) {
	var gotDeadline time.Time
	var hadDeadline bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDeadline, hadDeadline = r.Context().Deadline()
	})

	rec := httptest.NewRecorder()
	WithTimeout(2 * time.Second)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, hadDeadline)
	require.WithinDuration(t, time.Now().Add(2*time.Second), gotDeadline, time.Second)
}

func TestWithTimeout_KeepsExistingDeadline(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var gotDeadline time.Time
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDeadline, _ = r.Context().Deadline()
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(parent)
	rec := httptest.NewRecorder()
	WithTimeout(time.Second)(next).ServeHTTP(rec, req)

	// Существующий дедлайн не перекрывается более коротким.
	require.WithinDuration(t, time.Now().Add(10*time.Second), gotDeadline, time.Second)
}
