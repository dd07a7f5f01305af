package kit

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteError_IncludesRequestID(t *testing.T) {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusTeapot, "nope", map[string]any{"why": "test"})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "nope", body.Error)
	assert.NotEmpty(t, body.RequestID)
	assert.Equal(t, map[string]any{"why": "test"}, body.Details)
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusOK, map[string]any{"price": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"server error"}`, rec.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("encode response failed").Len())
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "{\"id\":1}\n", rec.Body.String())
}

func TestMetricsAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name   string
		token  string
		header string
		want   int
	}{
		{name: "valid token", token: "s3cret", header: "Bearer s3cret", want: http.StatusOK},
		{name: "wrong token", token: "s3cret", header: "Bearer other", want: http.StatusForbidden},
		{name: "missing header", token: "s3cret", want: http.StatusForbidden},
		{name: "wrong scheme", token: "s3cret", header: "Basic s3cret", want: http.StatusForbidden},
		{name: "unset token locks endpoint", token: "", header: "Bearer ", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			MetricsAuth(tt.token)(ok).ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(Logging(zap.New(core)))
	r.Get("/products", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products?limit=2", nil))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/products", fields["path"])
	assert.Equal(t, "limit=2", fields["query"])
	assert.Equal(t, int64(http.StatusAccepted), fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestRoutePattern(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Get("/products/{id}", func(_ http.ResponseWriter, r *http.Request) {
		got = RoutePattern(r)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/products/7", nil))
	assert.Equal(t, "/products/{id}", got)

	bare := httptest.NewRequest(http.MethodGet, "/elsewhere", nil)
	assert.Equal(t, "unmatched", RoutePattern(bare))
}

func TestNewLogger_Level(t *testing.T) {
	assert.True(t, NewLogger("svc", "debug").Core().Enabled(zapcore.DebugLevel))
	assert.False(t, NewLogger("svc", "warn").Core().Enabled(zapcore.InfoLevel))
	assert.True(t, NewLogger("svc", "bogus").Core().Enabled(zapcore.InfoLevel))
	assert.False(t, NewLogger("svc", "bogus").Core().Enabled(zapcore.DebugLevel))
}
