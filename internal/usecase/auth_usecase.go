package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(subject string, perms []string, now time.Time) (token string, expiresAt time.Time, err error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// 物件APIの権限クレーム。
const (
	PermPropertiesRead  = "properties:read"
	PermPropertiesWrite = "properties:write"
	PermPropertiesPrice = "properties:price"
	PermPropertiesTrace = "properties:trace"
	PermAuditRead       = "audit:read"
)

type AuthUsecase struct {
	cfg      config.Config
	verifier PasswordVerifier
	issuer   AccessTokenIssuer
	clock    Clock
}

// DI
func NewAuthUsecase(cfg config.Config, verifier PasswordVerifier, issuer AccessTokenIssuer, clock Clock) *AuthUsecase {
	return &AuthUsecase{
		cfg:      cfg,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

type TokenInput struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

type TokenOutput struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// 固定クレデンシャルの照合（パスワードはbcryptハッシュで設定に持つ）。
// 成功したら全権限クレーム付きのtokenを返す。
func (u *AuthUsecase) IssueToken(ctx context.Context, in TokenInput) (TokenOutput, error) {
	if in.User == "" || in.Password == "" {
		return TokenOutput{}, &ValidationError{Errors: []FieldError{
			{Field: "user", Message: "user and password are required"},
		}}
	}

	if in.User != u.cfg.AuthUser || !u.verifier.Verify(in.Password, u.cfg.AuthPasswordHash) {
		return TokenOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	now := u.clock.Now()
	perms := []string{
		PermPropertiesRead,
		PermPropertiesWrite,
		PermPropertiesPrice,
		PermPropertiesTrace,
		PermAuditRead,
	}

	token, expiresAt, err := u.issuer.Issue(in.User, perms, now)
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return TokenOutput{
		AccessToken: token,
		ExpiresIn:   int(expiresAt.Sub(now).Seconds()),
	}, nil
}
