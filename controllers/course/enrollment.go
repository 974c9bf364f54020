package controllers

import (
	"errors"
	"log"

	"coursereg/middleware"
	"coursereg/services/enrollment"

	"github.com/gofiber/fiber/v2"
)

// EnrollmentController exposes the enrollment service over HTTP.
type EnrollmentController struct {
	service *enrollment.Service
}

// NewEnrollmentController creates a new enrollment controller
func NewEnrollmentController(service *enrollment.Service) *EnrollmentController {
	return &EnrollmentController{service: service}
}

// RegisterModule enrolls the given user into the given module.
func (ctl *EnrollmentController) RegisterModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)
	userID := c.Locals("userID").(uint)

	created, err := ctl.service.Register(c.UserContext(), userID, moduleID)
	if err != nil {
		switch {
		case errors.Is(err, enrollment.ErrModuleNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		case errors.Is(err, enrollment.ErrUserNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		case errors.Is(err, enrollment.ErrCapacityExceeded):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Module is full. Cannot enroll!", nil)
		case errors.Is(err, enrollment.ErrAlreadyEnrolled):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this module!", nil)
		case errors.Is(err, enrollment.ErrTransient):
			log.Printf("Enrollment temporarily unavailable: %v", err)
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Please try again in a moment!", nil)
		default:
			log.Printf("Error enrolling user %d in module %d: %v", userID, moduleID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in module!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in module successfully!", fiber.Map{
		"id":          created.ID,
		"user_id":     created.UserID,
		"module_id":   created.ModuleID,
		"enrolled_at": created.CreatedAt,
	})
}

// MyEnrollments lists the user's enrollments with joined module, course and
// instructor fields. An unknown user gets an empty list, not an error.
func (ctl *EnrollmentController) MyEnrollments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	enrollments, err := ctl.service.ListEnrollments(c.UserContext(), userID)
	if err != nil {
		log.Printf("Error fetching enrollments for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	modules := make([]fiber.Map, 0, len(enrollments))
	for _, e := range enrollments {
		payload := modulePayload(e.Module)
		payload["enrolledAt"] = e.CreatedAt
		modules = append(modules, payload)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"modules": modules,
	})
}
