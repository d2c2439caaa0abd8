package middleware

import (
	"errors"
	"strings"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// InternalErrorMsg is returned for errors that carry no external message.
const InternalErrorMsg = "Internal error."

// ErrorHandler logs errors with the request logger and writes the external message as plain text.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError // Default 500 statuscode
	message := InternalErrorMsg

	var fiberErr *fiber.Error
	var richErr richerrors.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else if errors.As(err, &richErr) {
		if richErr.ExternalMsg != "" {
			message = richErr.ExternalMsg
		}
		if richErr.Code != 0 {
			code = richErr.Code
		}
	}

	logger := zerolog.Ctx(ctx.UserContext())
	event := logger.Debug()
	if code >= fiber.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Int("httpStatusCode", code).
		Str("httpPath", strings.TrimPrefix(ctx.Path(), "/")).
		Str("httpMethod", ctx.Method()).
		Msg("caught an error from http request")

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return ctx.Status(code).SendString(message)
}
