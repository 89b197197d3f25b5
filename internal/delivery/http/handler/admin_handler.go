package handler

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/perumahan-service/internal/domain"
	"github.com/perumahan-service/internal/pkg/errors"
	"github.com/perumahan-service/internal/pkg/utils"
	"github.com/perumahan-service/internal/pkg/validator"
	"github.com/perumahan-service/internal/usecase"
	"github.com/perumahan-service/internal/usecase/dto"
)

// AdminHandler - CRUD объявлений для админки
type AdminHandler struct {
	adminUC *usecase.AdminUseCase
	auditUC *usecase.AuditUseCase
	logger  *zap.Logger
}

// NewAdminHandler создает новый экземпляр AdminHandler
func NewAdminHandler(adminUC *usecase.AdminUseCase, auditUC *usecase.AuditUseCase, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
		auditUC: auditUC,
		logger:  logger,
	}
}

// List godoc
// @Summary List perumahan (admin)
// @Description Новые сверху. Фильтры по статусу и дате создания, поиск по названию/адресу
// @Tags Admin
// @Produce json
// @Security BasicAuth
// @Param status query string false "available | sold"
// @Param q query string false "Поиск по name и address"
// @Param created_from query string false "Создано не раньше (YYYY-MM-DD, UTC)"
// @Param created_to query string false "Создано не позже (YYYY-MM-DD включительно, UTC)"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.PerumahanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /admin/api/perumahan [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	var req dto.PerumahanListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithDetails(validator.Details(err)))
	}

	items, err := h.adminUC.Search(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	out := make([]dto.PerumahanResponse, 0, len(items))
	for _, p := range items {
		out = append(out, h.response(p))
	}

	return utils.SendSuccess(c, out, &utils.Meta{Total: len(out)})
}

// Get godoc
// @Summary Get perumahan by ID (admin)
// @Tags Admin
// @Produce json
// @Security BasicAuth
// @Param id path int true "ID объявления"
// @Success 200 {object} utils.SuccessResponse{data=dto.PerumahanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /admin/api/perumahan/{id} [get]
func (h *AdminHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	p, err := h.adminUC.Get(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, h.response(p), nil)
}

// Create godoc
// @Summary Create perumahan (admin)
// @Description multipart/form-data. location, polygon, facilities - JSON-строки.
// @Description Пустой slug выводится из названия.
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Security BasicAuth
// @Param name formData string true "Название"
// @Param slug formData string false "Slug"
// @Param description formData string true "Описание"
// @Param price formData integer true "Цена"
// @Param address formData string true "Адрес"
// @Param location formData string true "{\"lat\": -10.17, \"lng\": 123.6}"
// @Param polygon formData string false "GeoJSON Polygon"
// @Param facilities formData string false "[\"School\", \"Hospital\"]"
// @Param status formData string false "available | sold"
// @Param photo formData file true "Фотография"
// @Success 201 {object} utils.SuccessResponse{data=dto.PerumahanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /admin/api/perumahan [post]
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	in, closePhoto, err := h.parseInput(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	defer closePhoto()

	p, err := h.adminUC.Create(c.UserContext(), in)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, h.response(p))
}

// Update godoc
// @Summary Update perumahan (admin)
// @Description Slug не меняется. Фото заменяется только если передан новый файл.
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Security BasicAuth
// @Param id path int true "ID объявления"
// @Param name formData string true "Название"
// @Param description formData string true "Описание"
// @Param price formData integer true "Цена"
// @Param address formData string true "Адрес"
// @Param location formData string true "{\"lat\": -10.17, \"lng\": 123.6}"
// @Param polygon formData string false "GeoJSON Polygon"
// @Param facilities formData string false "[\"School\", \"Hospital\"]"
// @Param status formData string false "available | sold"
// @Param photo formData file false "Фотография"
// @Success 200 {object} utils.SuccessResponse{data=dto.PerumahanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /admin/api/perumahan/{id} [put]
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	in, closePhoto, err := h.parseInput(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	defer closePhoto()

	p, err := h.adminUC.Update(c.UserContext(), id, in)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, h.response(p), nil)
}

// Delete godoc
// @Summary Delete perumahan (admin)
// @Tags Admin
// @Security BasicAuth
// @Param id path int true "ID объявления"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Router /admin/api/perumahan/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.adminUC.Delete(c.UserContext(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// History godoc
// @Summary Change history of perumahan (admin)
// @Description События created/updated/deleted из журнала аудита, новые сверху.
// @Description Журнал заполняет воркер, читающий stream:perumahan:events.
// @Tags Admin
// @Produce json
// @Security BasicAuth
// @Param id path int true "ID объявления"
// @Param limit query int false "Сколько событий вернуть (по умолчанию 50, максимум 500)"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.EventRecord}
// @Failure 400 {object} utils.ErrorResponse
// @Router /admin/api/perumahan/{id}/events [get]
func (h *AdminHandler) History(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	records, err := h.auditUC.History(c.UserContext(), id, c.QueryInt("limit"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, records, &utils.Meta{Total: len(records)})
}

func (h *AdminHandler) response(p *domain.Perumahan) dto.PerumahanResponse {
	return dto.NewPerumahanResponse(p, h.adminUC.PhotoURL(p))
}

// parseInput разбирает форму и файл photo. Возвращаемая функция закрывает файл.
func (h *AdminHandler) parseInput(c *fiber.Ctx) (*dto.PerumahanInput, func(), error) {
	noop := func() {}

	var form dto.PerumahanForm
	if err := c.BodyParser(&form); err != nil {
		h.logger.Debug("Failed to parse admin form", zap.Error(err))
		return nil, noop, errors.ErrInvalidRequest
	}

	in, err := form.Parse()
	if err != nil {
		return nil, noop, err
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		if stderrors.Is(err, fasthttp.ErrMissingFile) || stderrors.Is(err, fasthttp.ErrNoMultipartForm) {
			return in, noop, nil
		}
		h.logger.Debug("Failed to read photo", zap.Error(err))
		return nil, noop, errors.ErrInvalidRequest
	}

	file, err := fh.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded photo", zap.String("filename", fh.Filename), zap.Error(err))
		return nil, noop, errors.ErrInvalidRequest
	}

	in.Photo = &dto.PhotoUpload{Filename: fh.Filename, Content: file}
	return in, func() { _ = file.Close() }, nil
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"id": "positive integer"})
	}
	return int64(id), nil
}
