package handler

import (
	"github.com/gofiber/fiber/v2"

	"eksapi/internal/service"
)

// ListResources godoc
// @Summary List items
// @Tags resource
// @Produce json
// @Success 200 {array} string
// @Router /api/eks [get]
func ListResources(svc service.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(items)
	}
}

// GetResource godoc
// @Summary Get an item
// @Tags resource
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {string} string
// @Failure 400 {object} errorPayload
// @Router /api/eks/{id} [get]
func GetResource(svc service.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		v, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(v)
	}
}

// CreateResource godoc
// @Summary Create an item
// @Tags resource
// @Accept json,plain
// @Param value body string true "Item value"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 415 {object} errorPayload
// @Router /api/eks [post]
func CreateResource(svc service.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value, err := decodeStringBody(c)
		if err != nil {
			return writeBodyError(c, err)
		}
		if err := svc.Create(c.UserContext(), value); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UpdateResource godoc
// @Summary Replace an item
// @Tags resource
// @Accept json,plain
// @Param id path int true "Item ID"
// @Param value body string true "Item value"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 415 {object} errorPayload
// @Router /api/eks/{id} [put]
func UpdateResource(svc service.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		value, err := decodeStringBody(c)
		if err != nil {
			return writeBodyError(c, err)
		}
		if err := svc.Update(c.UserContext(), id, value); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteResource godoc
// @Summary Delete an item
// @Tags resource
// @Param id path int true "Item ID"
// @Success 204
// @Failure 400 {object} errorPayload
// @Router /api/eks/{id} [delete]
func DeleteResource(svc service.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
