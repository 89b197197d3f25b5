package dto

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/perumahan-service/internal/domain"
	"github.com/perumahan-service/internal/pkg/errors"
	"github.com/perumahan-service/internal/pkg/validator"
)

// PerumahanForm - multipart-форма админки. location, polygon и facilities приходят
// JSON-строками из скрытых полей, которые заполняет карта с инструментом рисования.
type PerumahanForm struct {
	Name        string `form:"name" validate:"required,max=200"`
	Slug        string `form:"slug" validate:"omitempty,max=255"`
	Description string `form:"description" validate:"required"`
	Price       string `form:"price" validate:"required"`
	Address     string `form:"address" validate:"required,max=400"`
	Location    string `form:"location" validate:"required"`
	Polygon     string `form:"polygon"`
	Facilities  string `form:"facilities"`
	Status      string `form:"status" validate:"omitempty,oneof=available sold"`
}

// PhotoUpload - загруженный файл фотографии
type PhotoUpload struct {
	Filename string
	Content  io.Reader
}

// PerumahanInput - разобранные и провалидированные данные формы
type PerumahanInput struct {
	Name        string
	Slug        string
	Description string
	Price       int64
	Address     string
	Location    domain.Location
	Polygon     *domain.Polygon
	Facilities  []string
	Status      domain.Status
	Photo       *PhotoUpload
}

// PerumahanListRequest - фильтры списка в админке
type PerumahanListRequest struct {
	Status      string `query:"status" validate:"omitempty,oneof=available sold"`
	Query       string `query:"q" validate:"max=200"`
	CreatedFrom string `query:"created_from" validate:"omitempty,datetime=2006-01-02"`
	CreatedTo   string `query:"created_to" validate:"omitempty,datetime=2006-01-02"`
}

// maxPrice - предел NUMERIC(12, 0)
const maxPrice = 999_999_999_999

// Parse валидирует форму и разбирает JSON-поля.
// Ошибки возвращаются как ErrValidation с деталями по полям.
func (f *PerumahanForm) Parse() (*PerumahanInput, error) {
	f.trim()

	details := map[string]interface{}{}
	if err := validator.Validate(f); err != nil {
		vd := validator.Details(err)
		if vd == nil {
			return nil, errors.ErrInvalidRequest
		}
		details = vd
	}

	in := &PerumahanInput{
		Name:        f.Name,
		Slug:        f.Slug,
		Description: f.Description,
		Address:     f.Address,
		Status:      domain.Status(f.Status),
	}
	if in.Status == "" {
		in.Status = domain.DefaultStatus
	}

	if _, failed := details["price"]; !failed {
		price, err := strconv.ParseInt(f.Price, 10, 64)
		switch {
		case err != nil:
			details["price"] = "integer"
		case price > maxPrice || price < -maxPrice:
			details["price"] = "max=12 digits"
		default:
			in.Price = price
		}
	}

	if _, failed := details["location"]; !failed {
		loc, msg := parseLocation(f.Location)
		if msg != "" {
			details["location"] = msg
		} else {
			in.Location = loc
		}
	}

	polygon, msg := parsePolygon(f.Polygon)
	if msg != "" {
		details["polygon"] = msg
	}
	in.Polygon = polygon

	facilities, msg := parseFacilities(f.Facilities)
	if msg != "" {
		details["facilities"] = msg
	}
	in.Facilities = facilities

	if len(details) > 0 {
		return nil, errors.ErrValidation.WithDetails(details)
	}
	return in, nil
}

func (f *PerumahanForm) trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.Slug = strings.TrimSpace(f.Slug)
	f.Description = strings.TrimSpace(f.Description)
	f.Price = strings.TrimSpace(f.Price)
	f.Address = strings.TrimSpace(f.Address)
	f.Location = strings.TrimSpace(f.Location)
	f.Polygon = strings.TrimSpace(f.Polygon)
	f.Facilities = strings.TrimSpace(f.Facilities)
	f.Status = strings.TrimSpace(f.Status)
}

// Диапазоны lat/lng не проверяются, только наличие обоих чисел
func parseLocation(raw string) (domain.Location, string) {
	var v struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return domain.Location{}, "json object {lat, lng}"
	}
	if v.Lat == nil || v.Lng == nil {
		return domain.Location{}, "lat and lng required"
	}
	return domain.Location{Lat: *v.Lat, Lng: *v.Lng}, ""
}

// Принимает GeoJSON-геометрию {"type", "coordinates"} или голый массив колец.
// Кольца не валидируются, проверяется только наличие coordinates.
func parsePolygon(raw string) (*domain.Polygon, string) {
	if raw == "" || raw == "null" {
		return nil, ""
	}

	if strings.HasPrefix(raw, "[") {
		if !json.Valid([]byte(raw)) {
			return nil, "invalid json"
		}
		return &domain.Polygon{Type: GeometryPolygon, Coordinates: json.RawMessage(raw)}, ""
	}

	var p domain.Polygon
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, "json object {type, coordinates}"
	}
	if !p.HasCoordinates() {
		return nil, "coordinates required"
	}
	if p.Type == "" {
		p.Type = GeometryPolygon
	}
	p.Coordinates = compact(p.Coordinates)
	return &p, ""
}

func parseFacilities(raw string) ([]string, string) {
	if raw == "" || raw == "null" {
		return []string{}, ""
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, "json array of strings"
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out, ""
}

func compact(raw json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return buf.Bytes()
}
