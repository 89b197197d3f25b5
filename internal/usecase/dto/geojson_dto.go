package dto

const (
	TypeFeatureCollection = "FeatureCollection"
	TypeFeature           = "Feature"
	GeometryPoint         = "Point"
	GeometryPolygon       = "Polygon"
)

// FeatureCollection - GeoJSON FeatureCollection всех объявлений
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature - GeoJSON Feature; Properties - PointProperties или PolygonProperties
type Feature struct {
	Type       string      `json:"type"`
	Properties interface{} `json:"properties"`
	Geometry   Geometry    `json:"geometry"`
}

// Geometry - координаты Point ([lng, lat]) или Polygon (кольца как есть)
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

// PointProperties - полный набор свойств точки
type PointProperties struct {
	ID         int64    `json:"id"`
	Slug       string   `json:"slug"`
	Name       string   `json:"name"`
	Price      int64    `json:"price"`
	Address    string   `json:"address"`
	PhotoURL   string   `json:"photo_url"`
	Facilities []string `json:"facilities"`
	Status     string   `json:"status"`
	CreatedAt  string   `json:"created_at"`
}

// PolygonProperties - сокращенный набор: без адреса, фото, удобств и даты
type PolygonProperties struct {
	ID     int64  `json:"id"`
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	Status string `json:"status"`
}
