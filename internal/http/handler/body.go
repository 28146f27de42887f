package handler

import (
	"errors"
	"mime"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"eksapi/internal/service"
)

var (
	errBodyRequired    = errors.New("request body is required")
	errInvalidBody     = errors.New("request body must be a string")
	errUnsupportedType = errors.New("unsupported content type")
)

// parseID binds the :id path parameter as a 32-bit signed integer.
func parseID(c *fiber.Ctx) (service.ID, error) {
	n, err := strconv.ParseInt(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return service.ID(n), nil
}

// decodeStringBody reads the request body as a single string value.
//
// application/json bodies must hold a JSON string literal; null is rejected.
// text/plain bodies are taken verbatim, including the empty body.
func decodeStringBody(c *fiber.Ctx) (string, error) {
	body := c.Body()

	mediaType := ""
	if ct := c.Get(fiber.HeaderContentType); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return "", errUnsupportedType
		}
		mediaType = mt
	}

	switch mediaType {
	case fiber.MIMEApplicationJSON:
		if len(body) == 0 {
			return "", errBodyRequired
		}
		var v *string
		if err := c.App().Config().JSONDecoder(body, &v); err != nil {
			return "", errInvalidBody
		}
		if v == nil {
			return "", errInvalidBody
		}
		return *v, nil
	case fiber.MIMETextPlain:
		return string(body), nil
	case "":
		if len(body) == 0 {
			return "", errBodyRequired
		}
		return "", errUnsupportedType
	default:
		return "", errUnsupportedType
	}
}

// writeBodyError maps decodeStringBody failures to client errors.
func writeBodyError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errBodyRequired):
		return writeError(c, fiber.StatusBadRequest, "BODY_REQUIRED", "request body is required")
	case errors.Is(err, errUnsupportedType):
		return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "content type must be application/json or text/plain")
	default:
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a string")
	}
}
