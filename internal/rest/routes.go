package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/daniilsolovey/yanews/docs"
)

const (
	healthPath  = "/health"
	metricsPath = "/metrics"
	swaggerPath = "/swagger/doc.json"

	// RPCPath serves JSON-RPC. It takes no cookies and is exempt from CSRF checks.
	RPCPath = "/v1/rpc/"

	csrfCookie = "csrftoken"
	csrfHeader = "X-CSRFToken"
	csrfField  = "csrfmiddlewaretoken"
)

// RegisterRoutes builds the echo instance with all page and account routes.
func (h *NewsHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(h.loggingMiddleware())
	e.Use(metricsMiddleware)
	e.Use(h.sessionMiddleware)
	e.Use(h.csrfMiddleware())

	e.GET(healthPath, h.handleHealth)
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))
	e.GET(swaggerPath, h.handleSwagger)

	e.GET("/", h.Home)
	e.GET("/news/:id/", h.Detail)
	e.POST("/news/:id/", h.CreateComment)
	e.GET("/edit_comment/:id/", h.EditComment)
	e.POST("/edit_comment/:id/", h.UpdateComment)
	e.GET("/delete_comment/:id/", h.DeleteCommentPage)
	e.POST("/delete_comment/:id/", h.DeleteComment)

	e.GET(signUpPath, h.SignUpPage)
	e.POST(signUpPath, h.SignUp)
	e.GET(loginPath, h.LoginPage)
	e.POST(loginPath, h.Login)
	e.POST(logoutPath, h.Logout)

	return e
}

// csrfMiddleware issues the csrftoken cookie on safe requests and checks it against
// the X-CSRFToken header or the csrfmiddlewaretoken form field on unsafe ones.
func (h *NewsHandler) csrfMiddleware() echo.MiddlewareFunc {
	return middleware.CSRFWithConfig(middleware.CSRFConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, RPCPath)
		},
		TokenLookup:    "header:" + csrfHeader + ",form:" + csrfField,
		CookieName:     csrfCookie,
		CookiePath:     "/",
		CookieSecure:   h.secureCookie,
		CookieSameSite: http.SameSiteLaxMode,
		ErrorHandler: func(err error, c echo.Context) error {
			return h.handleError(c, err, http.StatusForbidden, "invalid csrf token")
		},
	})
}

func (h *NewsHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *NewsHandler) handleSwagger(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(docs.SwaggerInfo.ReadDoc()))
}

func (h *NewsHandler) loggingMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
			}

			if v.Error != nil {
				h.log.ErrorContext(c.Request().Context(), "HTTP request failed", append(attrs, "error", v.Error)...)
				return nil
			}

			h.log.InfoContext(c.Request().Context(), "HTTP request", attrs...)
			return nil
		},
	})
}
