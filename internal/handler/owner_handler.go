package handler

import (
	"net/http"
	"time"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/Owners のAPI
type OwnerHandler struct {
	uc *usecase.OwnerUsecase
}

// DI
func NewOwnerHandler(uc *usecase.OwnerUsecase) *OwnerHandler {
	return &OwnerHandler{uc: uc}
}

func (h *OwnerHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/Owners", h.create)
}

type createOwnerRequest struct {
	Name     string     `json:"name"`
	Address  *string    `json:"address"`
	Photo    *string    `json:"photo"`
	Birthday *time.Time `json:"birthday"`
}

func (h *OwnerHandler) create(c echo.Context) error {
	var req createOwnerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.CreateOwner(c.Request().Context(), usecase.CreateOwnerInput{
		Name:     req.Name,
		Address:  req.Address,
		Photo:    req.Photo,
		Birthday: req.Birthday,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
