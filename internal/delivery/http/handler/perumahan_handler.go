package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/perumahan-service/internal/pkg/metrics"
	"github.com/perumahan-service/internal/pkg/utils"
	"github.com/perumahan-service/internal/usecase"
	"github.com/perumahan-service/internal/usecase/dto"
)

// PerumahanHandler - публичный JSON API объявлений
type PerumahanHandler struct {
	perumahanUC *usecase.PerumahanUseCase
	logger      *zap.Logger
}

// NewPerumahanHandler создает новый экземпляр PerumahanHandler
func NewPerumahanHandler(perumahanUC *usecase.PerumahanUseCase, logger *zap.Logger) *PerumahanHandler {
	return &PerumahanHandler{
		perumahanUC: perumahanUC,
		logger:      logger,
	}
}

// GeoJSON godoc
// @Summary Perumahan FeatureCollection
// @Description Все объявления: Point на каждое, затем Polygon, если у объявления есть контур.
// @Description Координаты в порядке GeoJSON [lng, lat].
// @Tags Perumahan
// @Produce json
// @Success 200 {object} dto.FeatureCollection
// @Success 304 "Not Modified"
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/perumahan.geojson [get]
func (h *PerumahanHandler) GeoJSON(c *fiber.Ctx) error {
	fc, err := h.perumahanUC.GeoJSON(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to build GeoJSON", zap.Error(err))
		return utils.SendError(c, err)
	}

	metrics.GeoJSONFeatures.Set(float64(len(fc.Features)))

	return c.JSON(fc)
}

// GetBySlug godoc
// @Summary Get perumahan by slug
// @Tags Perumahan
// @Produce json
// @Param slug path string true "Slug объявления"
// @Success 200 {object} utils.SuccessResponse{data=dto.PerumahanResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/perumahan/{slug} [get]
func (h *PerumahanHandler) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	p, err := h.perumahanUC.GetBySlug(c.UserContext(), slug)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewPerumahanResponse(p, h.perumahanUC.PhotoURL(p)), nil)
}
