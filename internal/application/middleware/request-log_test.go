package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"weather-app/pkg/log"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(zapcore.AddSync(&buf))
	t.Cleanup(func() { log.SetOutput(zapcore.AddSync(os.Stdout)) })
	return &buf
}

func entries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var result []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		result = append(result, entry)
	}
	return result
}

func newServer() *echo.Echo {
	e := echo.New()
	Setup(e, nil)
	e.POST("/get_weather", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})
	return e
}

func TestRequestIsLoggedWithRequestID(t *testing.T) {
	buf := captureLogs(t)
	e := newServer()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/get_weather", nil))

	logged := entries(t, buf)
	require.Len(t, logged, 1)
	assert.Equal(t, "info", logged[0]["level"])
	assert.Equal(t, "/get_weather", logged[0]["uri"])
	assert.EqualValues(t, http.StatusNotFound, logged[0]["status"])
	assert.NotEmpty(t, logged[0]["request_id"])
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), logged[0]["request_id"])
}

func TestHealthIsNotLogged(t *testing.T) {
	buf := captureLogs(t)

	newServer().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Empty(t, entries(t, buf))
}

func TestPanicIsRecoveredAndLogged(t *testing.T) {
	buf := captureLogs(t)
	rec := httptest.NewRecorder()

	newServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	logged := entries(t, buf)
	require.Len(t, logged, 1)
	assert.Equal(t, "warn", logged[0]["level"])
	assert.EqualValues(t, http.StatusInternalServerError, logged[0]["status"])
}
