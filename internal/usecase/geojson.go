package usecase

import (
	"time"

	"github.com/perumahan-service/internal/domain"
	"github.com/perumahan-service/internal/domain/repository"
	"github.com/perumahan-service/internal/usecase/dto"
)

// BuildFeatureCollection проецирует объявления в GeoJSON: точка на каждое объявление
// и, если нарисован контур, следом полигон. Порядок входа сохраняется.
func BuildFeatureCollection(items []*domain.Perumahan, photos repository.PhotoURLResolver) dto.FeatureCollection {
	features := make([]dto.Feature, 0, len(items))

	for _, p := range items {
		features = append(features, pointFeature(p, photos))
		if p.HasPolygon() {
			features = append(features, polygonFeature(p))
		}
	}

	return dto.FeatureCollection{
		Type:     dto.TypeFeatureCollection,
		Features: features,
	}
}

func pointFeature(p *domain.Perumahan, photos repository.PhotoURLResolver) dto.Feature {
	photoURL := ""
	if photos != nil {
		photoURL = photos.URL(p.PhotoPath)
	}

	return dto.Feature{
		Type: dto.TypeFeature,
		Properties: dto.PointProperties{
			ID:         p.ID,
			Slug:       p.Slug,
			Name:       p.Name,
			Price:      p.Price,
			Address:    p.Address,
			PhotoURL:   photoURL,
			Facilities: p.FacilityList(),
			Status:     string(p.Status),
			CreatedAt:  p.CreatedAt.Format(time.RFC3339Nano),
		},
		Geometry: dto.Geometry{
			Type:        dto.GeometryPoint,
			Coordinates: p.Location.Coordinates(),
		},
	}
}

func polygonFeature(p *domain.Perumahan) dto.Feature {
	return dto.Feature{
		Type: dto.TypeFeature,
		Properties: dto.PolygonProperties{
			ID:     p.ID,
			Slug:   p.Slug,
			Name:   p.Name,
			Price:  p.Price,
			Status: string(p.Status),
		},
		Geometry: dto.Geometry{
			Type:        dto.GeometryPolygon,
			Coordinates: p.Polygon.Coordinates,
		},
	}
}
