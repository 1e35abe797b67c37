package usecase

import (
	"context"
	"io"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// アップロードされたファイル1件の約束
type FileResource interface {
	Filename() string
	Size() int64
	Open() (io.ReadCloser, error)
}

// 画像の実体を保存して公開URLを返す約束
type FileStorage interface {
	SavePropertyImage(ctx context.Context, propertyID string, file FileResource) (string, error)
}

// usecaseがValidatorInterfaceに依存する約束
type PropertyImageValidator interface {
	ValidateAdd(in AddPropertyImageInput) error
	ValidateUpload(in UploadPropertyImagesInput) error
}

type PropertyImageUsecase struct {
	tx         repo.TransactionManager
	properties repo.PropertyRepository
	storage    FileStorage
	validator  PropertyImageValidator
	idGen      IDGenerator
}

// DI
func NewPropertyImageUsecase(
	tx repo.TransactionManager,
	properties repo.PropertyRepository,
	storage FileStorage,
	validator PropertyImageValidator,
	idGen IDGenerator,
) *PropertyImageUsecase {
	return &PropertyImageUsecase{
		tx:         tx,
		properties: properties,
		storage:    storage,
		validator:  validator,
		idGen:      idGen,
	}
}

type AddPropertyImageInput struct {
	PropertyID string
	URL        string
	IsCover    bool
}

type UploadPropertyImagesInput struct {
	PropertyID string
	Files      []FileResource
	//元の並び順に対するインデックス。スキップされた位置を指したらカバーなし。
	CoverIndex *int
}

type PropertyImageOutput struct {
	ID         string `json:"idPropertyImage"`
	PropertyID string `json:"idProperty"`
	URL        string `json:"url"`
	IsCover    bool   `json:"isCover"`
}

func toPropertyImageOutput(img model.PropertyImage) PropertyImageOutput {
	return PropertyImageOutput{
		ID:         img.ID,
		PropertyID: img.PropertyID,
		URL:        img.URL,
		IsCover:    img.IsCover,
	}
}

// 画像を1枚追加する。カバー指定なら既存カバーを同じTx内で全て下ろしてから挿す。
// これでcommit後も「カバーは最大1枚」が保たれる。
func (u *PropertyImageUsecase) AddImage(ctx context.Context, in AddPropertyImageInput) (PropertyImageOutput, error) {
	if err := u.validator.ValidateAdd(in); err != nil {
		return PropertyImageOutput{}, err
	}

	var out PropertyImageOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		ok, err := r.Properties().ExistsByID(ctx, in.PropertyID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return NewHTTPError(http.StatusNotFound, "property not found")
		}

		if in.IsCover {
			if err := r.Images().ClearCovers(ctx, in.PropertyID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		created, err := r.Images().Create(ctx, model.PropertyImage{
			ID:         u.idGen.NewID(),
			PropertyID: in.PropertyID,
			URL:        in.URL,
			IsCover:    in.IsCover,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toPropertyImageOutput(created)
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return PropertyImageOutput{}, err
		}
		return PropertyImageOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return out, nil
}

// 複数画像のアップロード。長さ0のファイルは保存も集計もせずスキップする。
// blobの保存はTxの外、画像行の挿入とカバー切替は1つのTxでまとめてcommitする。
// 返り値は実際に処理した件数（入力件数ではない）。
func (u *PropertyImageUsecase) UploadImages(ctx context.Context, in UploadPropertyImagesInput) (int, error) {
	if err := u.validator.ValidateUpload(in); err != nil {
		return 0, err
	}

	ok, err := u.properties.ExistsByID(ctx, in.PropertyID)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !ok {
		return 0, NewHTTPError(http.StatusNotFound, "property not found")
	}

	//入力順のまま1件ずつ保存する。カバー判定は元のインデックスに対して行う。
	staged := make([]model.PropertyImage, 0, len(in.Files))
	for i, f := range in.Files {
		if f == nil || f.Size() <= 0 {
			continue
		}

		url, err := u.storage.SavePropertyImage(ctx, in.PropertyID, f)
		if err != nil {
			return 0, NewHTTPError(http.StatusInternalServerError, "storage error")
		}

		staged = append(staged, model.PropertyImage{
			ID:         u.idGen.NewID(),
			PropertyID: in.PropertyID,
			URL:        url,
			IsCover:    in.CoverIndex != nil && *in.CoverIndex == i,
		})
	}

	if len(staged) == 0 {
		return 0, nil
	}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		for _, img := range staged {
			if img.IsCover {
				if err := r.Images().ClearCovers(ctx, in.PropertyID); err != nil {
					return err
				}
			}
			if _, err := r.Images().Create(ctx, img); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return len(staged), nil
}
