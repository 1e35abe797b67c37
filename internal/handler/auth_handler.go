package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/Auth のAPI
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/Auth/token", h.token)
}

func (h *AuthHandler) token(c echo.Context) error {
	var in usecase.TokenInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.IssueToken(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
