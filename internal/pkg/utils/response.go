package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/perumahan-service/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total int `json:"total"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendCreated - то же, что SendSuccess, но со статусом 201
func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{Data: data})
}

// AsAppError приводит произвольную ошибку к AppError; неизвестные ошибки становятся 500
func AsAppError(err error) *errors.AppError {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var fiberErr *fiber.Error
	if stderrors.As(err, &fiberErr) {
		return errors.New("HTTP_ERROR", fiberErr.Message, fiberErr.Code)
	}

	return errors.ErrInternalServer
}

func SendError(c *fiber.Ctx, err error) error {
	appErr := AsAppError(err)
	return c.Status(appErr.StatusCode).JSON(ErrorResponse{
		Error: appErr,
	})
}
