package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// エラー応答の共通形。validation失敗のときだけerrorsが入る。
type ProblemResponse struct {
	Title  string               `json:"title"`
	Detail string               `json:"detail"`
	Status int                  `json:"status"`
	Errors []usecase.FieldError `json:"errors,omitempty"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	if ve, ok := usecase.AsValidationError(err); ok {
		return c.JSON(http.StatusBadRequest, ProblemResponse{
			Title:  "Validation error",
			Detail: "one or more validation errors occurred",
			Status: http.StatusBadRequest,
			Errors: ve.Errors,
		})
	}

	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ProblemResponse{
			Title:  titleForStatus(he.Status),
			Detail: he.Message,
			Status: he.Status,
		})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ProblemResponse{
		Title:  "Unexpected error",
		Detail: "internal error",
		Status: http.StatusInternalServerError,
	})
}

func titleForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad request"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusConflict:
		return "Conflict"
	default:
		return "Unexpected error"
	}
}

func badRequest(c echo.Context, detail string) error {
	return c.JSON(http.StatusBadRequest, ProblemResponse{
		Title:  "Bad request",
		Detail: detail,
		Status: http.StatusBadRequest,
	})
}
