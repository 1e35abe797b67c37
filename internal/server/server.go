package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Newはechoを組み立てて全ルートを登録する。
func New(
	cfg config.Config,
	authH *handler.AuthHandler,
	ownerH *handler.OwnerHandler,
	propH *handler.PropertyHandler,
	auditH *handler.AuditLogHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	//保存した画像blobの配信
	e.Static(cfg.StorageBaseURL, cfg.StorageDir)

	RegisterRoutes(e, cfg, authH, ownerH, propH, auditH)

	return e
}

func Start(addr string, e *echo.Echo) error {
	return e.Start(addr)
}
