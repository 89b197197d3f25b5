package handler

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"html/template"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/perumahan-service/internal/domain"
	"github.com/perumahan-service/internal/pkg/errors"
	"github.com/perumahan-service/internal/usecase"
	"github.com/perumahan-service/web"
)

const geoJSONPath = "/api/perumahan.geojson"

// ListPageData - данные страницы с картой
type ListPageData struct {
	GeoJSONURL string
}

// DetailPageData - данные страницы объявления
type DetailPageData struct {
	Item PerumahanView
}

// NotFoundPageData - данные 404
type NotFoundPageData struct {
	Slug string
}

// PerumahanView - объявление в виде, удобном шаблону
type PerumahanView struct {
	Name        string
	Slug        string
	PhotoURL    string
	Description string
	Price       int64
	Address     string
	Location    domain.Location
	Polygon     *domain.Polygon
	PolygonJSON string
	Facilities  []string
	Status      string
}

// PageHandler - HTML-страницы: главная, карта, карточка объявления
type PageHandler struct {
	perumahanUC *usecase.PerumahanUseCase
	templates   web.Templates
	logger      *zap.Logger
}

// NewPageHandler - создание нового PageHandler, шаблоны парсятся один раз
func NewPageHandler(perumahanUC *usecase.PerumahanUseCase, logger *zap.Logger) (*PageHandler, error) {
	tmpl, err := web.ParseTemplates(template.FuncMap{
		"rupiah": FormatRupiah,
	})
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		perumahanUC: perumahanUC,
		templates:   tmpl,
		logger:      logger,
	}, nil
}

// Home - главная страница
func (h *PageHandler) Home(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, web.PageHome, nil)
}

// List - страница с картой; данные карта берёт из GeoJSON
func (h *PageHandler) List(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, web.PageList, ListPageData{GeoJSONURL: geoJSONPath})
}

// Detail - карточка объявления по slug, 404-страница если его нет
func (h *PageHandler) Detail(c *fiber.Ctx) error {
	slug := c.Params("slug")

	p, err := h.perumahanUC.GetBySlug(c.UserContext(), slug)
	if stderrors.Is(err, errors.ErrPerumahanNotFound) {
		return h.render(c, fiber.StatusNotFound, web.PageNotFound, NotFoundPageData{Slug: slug})
	}
	if err != nil {
		return err
	}

	return h.render(c, fiber.StatusOK, web.PageDetail, DetailPageData{Item: h.view(p)})
}

// NotFound - 404 для неизвестных HTML-маршрутов
func (h *PageHandler) NotFound(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusNotFound, web.PageNotFound, NotFoundPageData{})
}

func (h *PageHandler) view(p *domain.Perumahan) PerumahanView {
	v := PerumahanView{
		Name:        p.Name,
		Slug:        p.Slug,
		PhotoURL:    h.perumahanUC.PhotoURL(p),
		Description: p.Description,
		Price:       p.Price,
		Address:     p.Address,
		Location:    p.Location,
		Facilities:  p.FacilityList(),
		Status:      string(p.Status),
	}
	if p.HasPolygon() {
		v.Polygon = p.Polygon
		if raw, err := json.Marshal(p.Polygon); err == nil {
			v.PolygonJSON = string(raw)
		}
	}
	return v
}

func (h *PageHandler) render(c *fiber.Ctx, status int, page string, data interface{}) error {
	tmpl, ok := h.templates[page]
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "template not found: "+page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		h.logger.Error("Failed to render page", zap.String("page", page), zap.Error(err))
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// FormatRupiah - цена с разделителем тысяч: 1500000 -> "1.500.000"
func FormatRupiah(price int64) string {
	s := strconv.FormatInt(price, 10)
	sign := ""
	if price < 0 {
		sign, s = "-", s[1:]
	}

	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, s[i])
	}
	return sign + string(out)
}
