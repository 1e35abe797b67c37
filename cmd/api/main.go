package main

import (
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/infra/storage"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	//アクセストークン
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 4 * time.Hour,
	}
}

func (i *jwtIssuer) Issue(subject string, perms []string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  subject,
		"perm": perms,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無ければ環境変数だけで動かす
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Owner{},
		&model.Property{},
		&model.PropertyImage{},
		&model.PropertyTrace{},
		&model.AuditLog{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	ownerRepo := infraRepo.NewOwnerGormRepository(gormDB)
	propRepo := infraRepo.NewPropertyGormRepository(gormDB)
	traceRepo := infraRepo.NewPropertyTraceGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（token発行時の照合）
	verifier := usecase.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := newJWTIssuer(cfg.JWTSecret)

	//画像blobの保存先
	fileStorage := storage.NewLocalFileStorage(cfg.StorageDir, cfg.StorageBaseURL)

	//Validator生成
	ownerV := validator.NewOwnerValidator(clock)
	propV := validator.NewPropertyValidator(clock)
	imageV := validator.NewPropertyImageValidator()
	traceV := validator.NewPropertyTraceValidator()

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, verifier, issuer, clock)
	ownerUC := usecase.NewOwnerUsecase(ownerRepo, ownerV, idGen)
	propUC := usecase.NewPropertyUsecase(propRepo, ownerRepo, auditRepo, propV, idGen, clock)
	imageUC := usecase.NewPropertyImageUsecase(txManager, propRepo, fileStorage, imageV, idGen)
	traceUC := usecase.NewPropertyTraceUsecase(propRepo, traceRepo, traceV, idGen, clock)
	auditUC := usecase.NewAuditLogUsecase(auditRepo)

	//Handler生成
	authH := handler.NewAuthHandler(authUC)
	ownerH := handler.NewOwnerHandler(ownerUC)
	propH := handler.NewPropertyHandler(propUC, imageUC, traceUC)
	auditH := handler.NewAuditLogHandler(auditUC)

	//Server起動
	e := server.New(cfg, authH, ownerH, propH, auditH)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, e); err != nil {
		panic(err)
	}
}
