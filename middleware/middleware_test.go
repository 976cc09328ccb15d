package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/ensmetadata/base/ctx"
)

func TestAddContext(t *testing.T) {
	req := require.New(t)
	m := InitMiddleware()

	e := echo.New()
	e.Use(m.ResponseLogger())
	e.Use(m.AddContext())
	e.Use(m.CORS)
	e.GET("/ping", func(c echo.Context) error {
		cont, ok := c.Get("ctx").(ctx.Ctx)
		req.True(ok)
		req.Equal("req-1", cont.Value("requestID"))
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/ping", nil)
	e.Pre(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderXRequestID, "req-1")
			return next(c)
		}
	})
	e.ServeHTTP(rec, r)

	req.Equal(http.StatusOK, rec.Code)
	req.Equal("pong", rec.Body.String())
	req.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestResponseLogger_WithoutContext(t *testing.T) {
	e := echo.New()
	e.Use(InitMiddleware().ResponseLogger())
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
