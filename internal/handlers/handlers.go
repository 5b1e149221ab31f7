// Package handlers is the gateway's view layer: each handler family maps a
// page's data needs onto the query cache and the resource clients, and runs
// form payloads through schema validation before anything touches the network.
package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// checkForm validates a parsed form payload and reports whether it passed.
// On failure the 400 response has already been written; validation failures
// never reach the network.
func checkForm(c *fiber.Ctx, form any) bool {
	err := validate.Struct(form)
	if err == nil {
		return true
	}

	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fieldKey(fe.Field())] = validationMessage(fe)
		}
	}

	_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  fields,
	})
	return false
}

func fieldKey(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Too few entries"
	case "gt", "gte":
		return "Must be a positive amount"
	case "len":
		return "Wrong length"
	case "numeric":
		return "Must contain only digits"
	case "url":
		return "Must be a valid URL"
	default:
		return "Invalid value"
	}
}

// badRequest renders a client-side error in the same envelope shape the
// remote API uses
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
