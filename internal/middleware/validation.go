package middleware

import (
	"course-planner/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidatedCourseIDKey is the fiber.Locals key holding a validated :id.
const ValidatedCourseIDKey = "validated_course_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateCourseID rejects requests whose :id path parameter is not a ULID.
func (vm *ValidationMiddleware) ValidateCourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateCourseID(id); len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedCourseIDKey, id)
		return c.Next()
	}
}
