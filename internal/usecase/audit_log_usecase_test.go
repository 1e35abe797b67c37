package usecase_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuditLogUsecase_ListAuditLogs_PassesFilter(t *testing.T) {
	audit := new(AuditLogRepoMock)
	uc := usecase.NewAuditLogUsecase(audit)

	actor := "admin"
	action := model.AuditActionChangePrice
	resourceID := "prop-1"
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	audit.On("List", mock.Anything, repo.AuditLogFilter{
		Actor:      &actor,
		Action:     &action,
		ResourceID: &resourceID,
		Limit:      50,
		Offset:     10,
	}).Return([]model.AuditLog{
		{
			ID:           7,
			Actor:        "admin",
			Action:       model.AuditActionChangePrice,
			ResourceType: model.AuditResourceProperty,
			ResourceID:   "prop-1",
			BeforeJSON:   `{"price":"100"}`,
			AfterJSON:    `{"price":"180.5"}`,
			CreatedAt:    created,
		},
	}, nil)

	out, err := uc.ListAuditLogs(context.Background(), usecase.ListAuditLogsInput{
		Actor:      "admin",
		Action:     "CHANGE_PRICE",
		ResourceID: "prop-1",
		Limit:      50,
		Offset:     10,
	})

	assert.NoError(t, err)
	if assert.Len(t, out, 1) {
		assert.Equal(t, int64(7), out[0].ID)
		assert.Equal(t, "CHANGE_PRICE", out[0].Action)
		assert.Equal(t, `{"price":"180.5"}`, out[0].AfterJSON)
	}
	audit.AssertExpectations(t)
}

func TestAuditLogUsecase_ListAuditLogs_EmptyFiltersAreNil(t *testing.T) {
	audit := new(AuditLogRepoMock)
	uc := usecase.NewAuditLogUsecase(audit)

	//空文字のフィルタは条件なし（nil）で渡す
	audit.On("List", mock.Anything, repo.AuditLogFilter{
		Limit:  50,
		Offset: 0,
	}).Return([]model.AuditLog{}, nil)

	out, err := uc.ListAuditLogs(context.Background(), usecase.ListAuditLogsInput{
		Limit: 50,
	})

	assert.NoError(t, err)
	assert.Empty(t, out)
	audit.AssertExpectations(t)
}

func TestAuditLogUsecase_ListAuditLogs_UnknownAction(t *testing.T) {
	audit := new(AuditLogRepoMock)
	uc := usecase.NewAuditLogUsecase(audit)

	_, err := uc.ListAuditLogs(context.Background(), usecase.ListAuditLogsInput{
		Action: "DELETE_EVERYTHING",
		Limit:  50,
	})

	assertErrContains(t, err, "action must be CHANGE_PRICE or UPDATE_PROPERTY")
	audit.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestAuditLogUsecase_ListAuditLogs_ValidatesPaging(t *testing.T) {
	audit := new(AuditLogRepoMock)
	uc := usecase.NewAuditLogUsecase(audit)

	_, err := uc.ListAuditLogs(context.Background(), usecase.ListAuditLogsInput{
		Limit:  201,
		Offset: -1,
	})

	ve, ok := usecase.AsValidationError(err)
	assert.True(t, ok)
	assert.Len(t, ve.Errors, 2)
	audit.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
