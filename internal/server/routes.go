package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	authH *handler.AuthHandler,
	ownerH *handler.OwnerHandler,
	propH *handler.PropertyHandler,
	auditH *handler.AuditLogHandler,
) {
	authH.RegisterRoutes(e)
	ownerH.RegisterRoutes(e)
	propH.RegisterRoutes(e, cfg)
	auditH.RegisterRoutes(e, cfg)
}
