package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func loggerTestRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := slog.New(slog.NewTextHandler(buf, nil))

	r := gin.New()
	r.Use(Logger(l))
	r.GET("/static/app.css", func(c *gin.Context) { c.String(http.StatusOK, "body{}") })
	r.GET("/admin/orders/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func TestLoggerSkipsStaticAssets(t *testing.T) {
	var buf bytes.Buffer
	r := loggerTestRouter(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, buf.String(), "successful asset hits are not logged")
}

func TestLoggerRecordsRouteAndStatus(t *testing.T) {
	var buf bytes.Buffer
	r := loggerTestRouter(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/orders/7?page=2", nil))

	out := buf.String()
	assert.Contains(t, out, "http_request")
	assert.Contains(t, out, "/admin/orders/7?page=2")
	assert.Contains(t, out, "route=/admin/orders/:id")
	assert.Contains(t, out, "status=200")
}

func TestLoggerLogsFailedStaticRequests(t *testing.T) {
	var buf bytes.Buffer
	r := loggerTestRouter(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/missing.css", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, buf.String(), "status=404")
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelForStatus(200))
	assert.Equal(t, slog.LevelWarn, levelForStatus(404))
	assert.Equal(t, slog.LevelError, levelForStatus(502))
}
