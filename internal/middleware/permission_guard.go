package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

//contextに入っている権限に必要なクレームがあるかを確認します。

func PermissionGuard(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawPerms := c.Get(CtxPermsKey)
			perms, ok := rawPerms.([]string)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//必要な権限を持っていなければ拒否
			for _, p := range perms {
				if p == required {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, errorJSON("missing permission: "+required))
		}
	}
}
