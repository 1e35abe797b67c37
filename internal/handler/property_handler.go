package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /api/Properties のAPI
type PropertyHandler struct {
	propUC  *usecase.PropertyUsecase
	imageUC *usecase.PropertyImageUsecase
	traceUC *usecase.PropertyTraceUsecase
}

// DI
func NewPropertyHandler(
	propUC *usecase.PropertyUsecase,
	imageUC *usecase.PropertyImageUsecase,
	traceUC *usecase.PropertyTraceUsecase,
) *PropertyHandler {
	return &PropertyHandler{
		propUC:  propUC,
		imageUC: imageUC,
		traceUC: traceUC,
	}
}

// 物件のルートを登録。更新系は権限クレームごとにガードする。
func (h *PropertyHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	auth := middleware.AuthJWT(cfg)

	g := e.Group("/api/Properties")
	g.GET("/GetProperties", h.list)
	g.POST("/CreateProperties", h.create, auth, middleware.PermissionGuard(usecase.PermPropertiesWrite))
	g.PATCH("/:id/UpdateProperty", h.update, auth, middleware.PermissionGuard(usecase.PermPropertiesWrite))
	g.PATCH("/:id/ChangePropertyPrice", h.changePrice, auth, middleware.PermissionGuard(usecase.PermPropertiesPrice))
	g.POST("/:id/AddImage", h.addImage, auth, middleware.PermissionGuard(usecase.PermPropertiesWrite))
	g.POST("/:id/AddTrace", h.addTrace, auth, middleware.PermissionGuard(usecase.PermPropertiesTrace))
}

func actor(c echo.Context) string {
	sub, _ := c.Get(middleware.CtxSubjectKey).(string)
	return sub
}

// multipart: name, address, price, codeInternal, year, idOwner, images[], coverIndex?
func (h *PropertyHandler) create(c echo.Context) error {
	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return badRequest(c, "invalid price")
	}

	year, err := strconv.Atoi(c.FormValue("year"))
	if err != nil {
		return badRequest(c, "invalid year")
	}

	//coverIndexは作成前に検証する。作成だけcommitされて画像が落ちる事態を避ける。
	var coverIndex *int
	if v := c.FormValue("coverIndex"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil {
			return badRequest(c, "invalid coverIndex")
		}
		coverIndex = &idx
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["images"]
	}

	created, err := h.propUC.CreateProperty(c.Request().Context(), usecase.CreatePropertyInput{
		Name:         c.FormValue("name"),
		Address:      c.FormValue("address"),
		Price:        price,
		CodeInternal: c.FormValue("codeInternal"),
		Year:         year,
		OwnerID:      c.FormValue("idOwner"),
	})
	if err != nil {
		return writeError(c, err)
	}

	//images[]は任意。あれば作成した物件にまとめてアップロードする。
	if len(files) > 0 {
		resources := make([]usecase.FileResource, 0, len(files))
		for _, fh := range files {
			resources = append(resources, newFormFileResource(fh))
		}

		if _, err := h.imageUC.UploadImages(c.Request().Context(), usecase.UploadPropertyImagesInput{
			PropertyID: created.ID,
			Files:      resources,
			CoverIndex: coverIndex,
		}); err != nil {
			return writeError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, created)
}

type updatePropertyRequest struct {
	Name         *string          `json:"name"`
	Address      *string          `json:"address"`
	Price        *decimal.Decimal `json:"price"`
	CodeInternal *string          `json:"codeInternal"`
	Year         *int             `json:"year"`
	OwnerID      *string          `json:"idOwner"`
}

func (h *PropertyHandler) update(c echo.Context) error {
	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.propUC.UpdateProperty(c.Request().Context(), actor(c), usecase.UpdatePropertyInput{
		PropertyID:   c.Param("id"),
		Name:         req.Name,
		Address:      req.Address,
		Price:        req.Price,
		CodeInternal: req.CodeInternal,
		Year:         req.Year,
		OwnerID:      req.OwnerID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

type changePriceRequest struct {
	NewPrice decimal.Decimal `json:"newPrice"`
}

func (h *PropertyHandler) changePrice(c echo.Context) error {
	var req changePriceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.propUC.ChangePropertyPrice(c.Request().Context(), actor(c), usecase.ChangePriceInput{
		PropertyID: c.Param("id"),
		NewPrice:   req.NewPrice,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

type addImageRequest struct {
	URL     string `json:"url"`
	IsCover bool   `json:"isCover"`
}

func (h *PropertyHandler) addImage(c echo.Context) error {
	var req addImageRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.imageUC.AddImage(c.Request().Context(), usecase.AddPropertyImageInput{
		PropertyID: c.Param("id"),
		URL:        req.URL,
		IsCover:    req.IsCover,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

type addTraceRequest struct {
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Tax      decimal.Decimal `json:"tax"`
	DateSale *time.Time      `json:"dateSale"`
}

func (h *PropertyHandler) addTrace(c echo.Context) error {
	var req addTraceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.traceUC.AddTrace(c.Request().Context(), usecase.AddPropertyTraceInput{
		PropertyID: c.Param("id"),
		Name:       req.Name,
		Value:      req.Value,
		Tax:        req.Tax,
		DateSale:   req.DateSale,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *PropertyHandler) list(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return badRequest(c, "invalid page")
		}
		page = p
	}

	// pageSize（default 20）
	pageSize := 20
	if v := c.QueryParam("pageSize"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil {
			return badRequest(c, "invalid pageSize")
		}
		pageSize = s
	}

	var minPrice *decimal.Decimal
	if v := c.QueryParam("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return badRequest(c, "invalid minPrice")
		}
		minPrice = &d
	}

	var maxPrice *decimal.Decimal
	if v := c.QueryParam("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return badRequest(c, "invalid maxPrice")
		}
		maxPrice = &d
	}

	var minYear *int
	if v := c.QueryParam("minYear"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return badRequest(c, "invalid minYear")
		}
		minYear = &y
	}

	var maxYear *int
	if v := c.QueryParam("maxYear"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return badRequest(c, "invalid maxYear")
		}
		maxYear = &y
	}

	onlyWithImages := false
	if v := c.QueryParam("onlyWithImages"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return badRequest(c, "invalid onlyWithImages")
		}
		onlyWithImages = b
	}

	// includeAllImagesの既定はtrue（falseで帯域節約）
	includeAllImages := true
	if v := c.QueryParam("includeAllImages"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return badRequest(c, "invalid includeAllImages")
		}
		includeAllImages = b
	}

	desc := false
	if v := c.QueryParam("desc"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return badRequest(c, "invalid desc")
		}
		desc = b
	}

	sortBy := "price"
	if v := c.QueryParam("sortBy"); v != "" {
		sortBy = strings.ToLower(v)
	}

	out, err := h.propUC.ListProperties(c.Request().Context(), usecase.ListPropertiesInput{
		Name:             c.QueryParam("name"),
		Address:          c.QueryParam("address"),
		CodeInternal:     c.QueryParam("codeInternal"),
		OwnerID:          c.QueryParam("ownerId"),
		MinPrice:         minPrice,
		MaxPrice:         maxPrice,
		MinYear:          minYear,
		MaxYear:          maxYear,
		OnlyWithImages:   onlyWithImages,
		IncludeAllImages: includeAllImages,
		SortBy:           sortBy,
		Desc:             desc,
		Page:             page,
		PageSize:         pageSize,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
