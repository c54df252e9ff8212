package handler

import (
	"course-planner/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodes the JSON request body into v, reporting malformed
// bodies as a validation failure.
func parseBody(c *fiber.Ctx, v interface{}) error {
	if err := c.BodyParser(v); err != nil {
		return domain.ValidationErrors{
			domain.NewInvalidFormatError("body", "請求內容格式錯誤"),
		}
	}
	return nil
}
