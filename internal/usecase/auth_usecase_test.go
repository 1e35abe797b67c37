package usecase_test

import (
	"context"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type issuerStub struct {
	subject string
	perms   []string
	token   string
	ttl     time.Duration
}

func (i *issuerStub) Issue(subject string, perms []string, now time.Time) (string, time.Time, error) {
	i.subject = subject
	i.perms = perms
	return i.token, now.Add(i.ttl), nil
}

func newAuthUsecase(t *testing.T, issuer *issuerStub) *usecase.AuthUsecase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	cfg := config.Config{
		AuthUser:         "admin",
		AuthPasswordHash: string(hash),
	}
	clock := &fixedClock{t: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	return usecase.NewAuthUsecase(cfg, usecase.NewBcryptPasswordVerifier(), issuer, clock)
}

func TestAuthUsecase_IssueToken_Success(t *testing.T) {
	issuer := &issuerStub{token: "signed-token", ttl: 4 * time.Hour}
	uc := newAuthUsecase(t, issuer)

	out, err := uc.IssueToken(context.Background(), usecase.TokenInput{
		User:     "admin",
		Password: "s3cret",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, 4*60*60, out.ExpiresIn)
	assert.Equal(t, "admin", issuer.subject)
	//全権限クレームを持つ
	assert.ElementsMatch(t, []string{
		usecase.PermPropertiesRead,
		usecase.PermPropertiesWrite,
		usecase.PermPropertiesPrice,
		usecase.PermPropertiesTrace,
		usecase.PermAuditRead,
	}, issuer.perms)
}

func TestAuthUsecase_IssueToken_WrongPassword(t *testing.T) {
	issuer := &issuerStub{token: "signed-token", ttl: time.Hour}
	uc := newAuthUsecase(t, issuer)

	_, err := uc.IssueToken(context.Background(), usecase.TokenInput{
		User:     "admin",
		Password: "wrong",
	})

	assertErrContains(t, err, "invalid credentials")
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 401, he.Status)
}

func TestAuthUsecase_IssueToken_UnknownUser(t *testing.T) {
	issuer := &issuerStub{token: "signed-token", ttl: time.Hour}
	uc := newAuthUsecase(t, issuer)

	_, err := uc.IssueToken(context.Background(), usecase.TokenInput{
		User:     "someone",
		Password: "s3cret",
	})

	assertErrContains(t, err, "invalid credentials")
}

func TestAuthUsecase_IssueToken_MissingFields(t *testing.T) {
	issuer := &issuerStub{}
	uc := newAuthUsecase(t, issuer)

	_, err := uc.IssueToken(context.Background(), usecase.TokenInput{})

	_, ok := usecase.AsValidationError(err)
	assert.True(t, ok)
}
