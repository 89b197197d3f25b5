package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/lib/pq"
)

// Status - статус продажи перумахана
type Status string

const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"

	DefaultStatus = StatusAvailable
)

// Valid проверяет, что статус входит в допустимый набор
func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusSold
}

// Perumahan - объявление о жилом комплексе (housing development)
type Perumahan struct {
	ID          int64          `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Slug        string         `db:"slug" json:"slug"`
	PhotoPath   string         `db:"photo" json:"photo"`
	Description string         `db:"description" json:"description"`
	Price       int64          `db:"price" json:"price"`
	Address     string         `db:"address" json:"address"`
	Location    Location       `db:"location" json:"location"`
	Polygon     *Polygon       `db:"polygon" json:"polygon,omitempty"`
	Facilities  pq.StringArray `db:"facilities" json:"facilities"`
	Status      Status         `db:"status" json:"status"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

func (p *Perumahan) String() string {
	return p.Name
}

// HasPolygon - есть ли у объявления контур участка
func (p *Perumahan) HasPolygon() bool {
	return p.Polygon != nil && p.Polygon.HasCoordinates()
}

// FacilityList возвращает удобства, пустой срез вместо nil
func (p *Perumahan) FacilityList() []string {
	if p.Facilities == nil {
		return []string{}
	}
	return p.Facilities
}

// Location хранится в JSONB как {"lat": ..., "lng": ...}
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Coordinates - порядок GeoJSON: [lng, lat]
func (l Location) Coordinates() []float64 {
	return []float64{l.Lng, l.Lat}
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(src interface{}) error {
	data, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("scan location: %w", err)
	}
	return json.Unmarshal(data, l)
}

// Polygon - GeoJSON-полигон, нарисованный на карте в админке.
// Coordinates не валидируются и отдаются наружу как есть.
type Polygon struct {
	Type        string          `json:"type,omitempty"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// HasCoordinates - есть ли непустой член coordinates
func (p *Polygon) HasCoordinates() bool {
	if p == nil {
		return false
	}
	trimmed := bytes.TrimSpace(p.Coordinates)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

func (p *Polygon) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *Polygon) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	data, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("scan polygon: %w", err)
	}
	return json.Unmarshal(data, p)
}

func jsonBytes(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported type %T", src)
	}
}

// slugDropped - символы, которые slug.Make по умолчанию заменил бы словами ("and", "at")
var slugDropped = strings.NewReplacer("&", "", "@", "")

// Slugify - URL-safe идентификатор из названия: "Green Valley" -> "green-valley",
// "Green & Valley" -> "green-valley"
func Slugify(name string) string {
	return slug.Make(slugDropped.Replace(name))
}
