package dto

import (
	"time"

	"github.com/perumahan-service/internal/domain"
)

// PerumahanResponse - объявление для JSON API
type PerumahanResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Photo       string          `json:"photo"`
	PhotoURL    string          `json:"photo_url"`
	Description string          `json:"description"`
	Price       int64           `json:"price"`
	Address     string          `json:"address"`
	Location    domain.Location `json:"location"`
	Polygon     *domain.Polygon `json:"polygon"`
	Facilities  []string        `json:"facilities"`
	Status      domain.Status   `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewPerumahanResponse собирает ответ; photoURL уже разрешен хранилищем
func NewPerumahanResponse(p *domain.Perumahan, photoURL string) PerumahanResponse {
	return PerumahanResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Photo:       p.PhotoPath,
		PhotoURL:    photoURL,
		Description: p.Description,
		Price:       p.Price,
		Address:     p.Address,
		Location:    p.Location,
		Polygon:     p.Polygon,
		Facilities:  p.FacilityList(),
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}
