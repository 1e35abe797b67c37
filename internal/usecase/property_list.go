package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// GET /api/Properties/GetProperties の入力
type ListPropertiesInput struct {
	Name         string
	Address      string
	CodeInternal string
	OwnerID      string

	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	MinYear  *int
	MaxYear  *int

	//画像が1枚以上ある物件だけ
	OnlyWithImages bool
	//falseなら帯域節約のためimagesを空で返す
	IncludeAllImages bool

	SortBy string // name / year / price（既定・不明キーはprice asc）
	Desc   bool

	Page     int
	PageSize int
}

type PropertyListItemOutput struct {
	ID           string          `json:"idProperty"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	Price        decimal.Decimal `json:"price"`
	CodeInternal string          `json:"codeInternal"`
	Year         int             `json:"year"`
	OwnerID      string          `json:"idOwner"`

	//カバー画像のURL。カバーがなければ最初の画像、画像ゼロならnull。
	CoverURL *string  `json:"coverUrl"`
	Images   []string `json:"images"`
}

type PagedPropertiesOutput struct {
	Page     int                      `json:"page"`
	PageSize int                      `json:"pageSize"`
	Total    int64                    `json:"total"`
	Items    []PropertyListItemOutput `json:"items"`
}

// 物件一覧。全フィルタはANDで合成し、totalはページング前の件数。
func (u *PropertyUsecase) ListProperties(ctx context.Context, in ListPropertiesInput) (PagedPropertiesOutput, error) {
	if err := u.validator.ValidateList(in); err != nil {
		return PagedPropertiesOutput{}, err
	}

	items, total, err := u.properties.List(ctx, repo.PropertyListQuery{
		Name:           in.Name,
		Address:        in.Address,
		CodeInternal:   in.CodeInternal,
		OwnerID:        in.OwnerID,
		MinPrice:       in.MinPrice,
		MaxPrice:       in.MaxPrice,
		MinYear:        in.MinYear,
		MaxYear:        in.MaxYear,
		OnlyWithImages: in.OnlyWithImages,
		SortBy:         in.SortBy,
		Desc:           in.Desc,
		Page:           in.Page,
		PageSize:       in.PageSize,
	})
	if err != nil {
		return PagedPropertiesOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]PropertyListItemOutput, 0, len(items))
	for _, p := range items {
		out = append(out, toPropertyListItemOutput(p, in.IncludeAllImages))
	}

	return PagedPropertiesOutput{
		Page:     in.Page,
		PageSize: in.PageSize,
		Total:    total,
		Items:    out,
	}, nil
}

func toPropertyListItemOutput(p model.Property, includeAllImages bool) PropertyListItemOutput {
	item := PropertyListItemOutput{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		Price:        p.Price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		OwnerID:      p.OwnerID,
		Images:       []string{},
	}

	//カバー優先、なければ最初の画像
	for i := range p.Images {
		if p.Images[i].IsCover {
			url := p.Images[i].URL
			item.CoverURL = &url
			break
		}
	}
	if item.CoverURL == nil && len(p.Images) > 0 {
		url := p.Images[0].URL
		item.CoverURL = &url
	}

	if includeAllImages {
		urls := make([]string, 0, len(p.Images))
		for _, img := range p.Images {
			urls = append(urls, img.URL)
		}
		item.Images = urls
	}

	return item
}
