package testhelpers

import (
	"encoding/json"

	"github.com/perumahan-service/internal/domain"
)

// NewPerumahan возвращает заполненное объявление для тестов
func NewPerumahan(name, slug string) *domain.Perumahan {
	return &domain.Perumahan{
		Name:        name,
		Slug:        slug,
		PhotoPath:   "perumahan_photos/" + slug + ".jpg",
		Description: "Perumahan " + name,
		Price:       1500000,
		Address:     "Jl. Timor Raya, Kupang",
		Location:    domain.Location{Lat: -10.1772, Lng: 123.607},
		Facilities:  []string{"School", "Park"},
		Status:      domain.StatusAvailable,
	}
}

// WithSquare добавляет объявлению квадратный полигон
func WithSquare(p *domain.Perumahan) *domain.Perumahan {
	p.Polygon = &domain.Polygon{
		Type:        "Polygon",
		Coordinates: json.RawMessage(`[[[0,0],[0,1],[1,1],[1,0],[0,0]]]`),
	}
	return p
}
