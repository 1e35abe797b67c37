package handler

import (
	"io"
	"mime/multipart"

	"app/internal/usecase"
)

// multipartのファイルをusecase.FileResourceに合わせるアダプタ。
type formFileResource struct {
	fh *multipart.FileHeader
}

var _ usecase.FileResource = (*formFileResource)(nil)

func newFormFileResource(fh *multipart.FileHeader) *formFileResource {
	return &formFileResource{fh: fh}
}

func (f *formFileResource) Filename() string { return f.fh.Filename }

func (f *formFileResource) Size() int64 { return f.fh.Size }

func (f *formFileResource) Open() (io.ReadCloser, error) { return f.fh.Open() }
