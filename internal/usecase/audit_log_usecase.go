package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AuditLogUsecase struct {
	audit repo.AuditLogRepository
}

// DI
func NewAuditLogUsecase(audit repo.AuditLogRepository) *AuditLogUsecase {
	return &AuditLogUsecase{audit: audit}
}

// GET /api/AuditLogs の入力。空文字のフィルタは条件なし扱い。
type ListAuditLogsInput struct {
	Actor      string
	Action     string
	ResourceID string

	Limit  int
	Offset int
}

type AuditLogOutput struct {
	ID           int64     `json:"id"`
	Actor        string    `json:"actor"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resourceType"`
	ResourceID   string    `json:"resourceId"`
	BeforeJSON   string    `json:"before"`
	AfterJSON    string    `json:"after"`
	CreatedAt    time.Time `json:"createdAt"`
}

// 監査ログを新しい順に返す。
func (u *AuditLogUsecase) ListAuditLogs(ctx context.Context, in ListAuditLogsInput) ([]AuditLogOutput, error) {
	var errs []FieldError

	if in.Limit < 1 || in.Limit > 200 {
		errs = append(errs, FieldError{Field: "limit", Message: "limit must be between 1 and 200"})
	}
	if in.Offset < 0 {
		errs = append(errs, FieldError{Field: "offset", Message: "offset must be greater than or equal to 0"})
	}

	var action *model.AuditAction
	if in.Action != "" {
		a := model.AuditAction(in.Action)
		switch a {
		case model.AuditActionChangePrice, model.AuditActionUpdateProperty:
			action = &a
		default:
			errs = append(errs, FieldError{Field: "action", Message: "action must be CHANGE_PRICE or UPDATE_PROPERTY"})
		}
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	filter := repo.AuditLogFilter{
		Action: action,
		Limit:  in.Limit,
		Offset: in.Offset,
	}
	if in.Actor != "" {
		filter.Actor = &in.Actor
	}
	if in.ResourceID != "" {
		filter.ResourceID = &in.ResourceID
	}

	logs, err := u.audit.List(ctx, filter)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]AuditLogOutput, 0, len(logs))
	for _, l := range logs {
		out = append(out, AuditLogOutput{
			ID:           l.ID,
			Actor:        l.Actor,
			Action:       string(l.Action),
			ResourceType: string(l.ResourceType),
			ResourceID:   l.ResourceID,
			BeforeJSON:   l.BeforeJSON,
			AfterJSON:    l.AfterJSON,
			CreatedAt:    l.CreatedAt,
		})
	}
	return out, nil
}
