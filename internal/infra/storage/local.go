package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"app/internal/usecase"

	"github.com/google/uuid"
)

// ローカルディスクに画像blobを保存して公開URLを返す。
type LocalFileStorage struct {
	dir     string
	baseURL string
}

// DI
func NewLocalFileStorage(dir string, baseURL string) *LocalFileStorage {
	return &LocalFileStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *LocalFileStorage) SavePropertyImage(ctx context.Context, propertyID string, file usecase.FileResource) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.dir, propertyID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	//元のファイル名は信用せず、拡張子だけ引き継ぐ
	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename()))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.baseURL + "/" + propertyID + "/" + name, nil
}
