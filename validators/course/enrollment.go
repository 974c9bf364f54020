package courseValidator

import (
	"strconv"
	"strings"

	"coursereg/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterModule validates the module ID param and the userId body field for
// the register endpoint.
func RegisterModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("id"))
		if moduleIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID is required!", nil)
		}

		// Validate ModuleID is a valid integer
		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			UserID *uint `json:"userId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.UserID == nil || *reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("moduleID", uint(moduleID))
		c.Locals("userID", *reqData.UserID)
		return c.Next()
	}
}

// MyEnrollments validates the userId body field for the enrollment listing
// endpoint.
func MyEnrollments() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID *uint `json:"userId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.UserID == nil || *reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("userID", *reqData.UserID)
		return c.Next()
	}
}
