package handler

import (
	"course-planner/internal/domain"
	"course-planner/internal/dto"
	"course-planner/internal/middleware"
	"course-planner/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CourseHandler exposes the course document store.
type CourseHandler struct {
	service service.CourseService
}

// NewCourseHandler creates a new CourseHandler instance
func NewCourseHandler(svc service.CourseService) *CourseHandler {
	return &CourseHandler{service: svc}
}

// ListCourses godoc
// @Summary List courses
// @Description Returns every stored course, newest first
// @Tags courses
// @Produce json
// @Success 200 {object} dto.CourseListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	courses, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.CourseListResponse{Courses: courses})
}

// GetCourse godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	course, err := h.service.Get(c.UserContext(), courseID(c))
	if err != nil {
		return err
	}
	return c.JSON(course)
}

// CreateCourse godoc
// @Summary Store a course
// @Description Stores any JSON object; id and timestamps are assigned by the server
// @Tags courses
// @Accept json
// @Produce json
// @Param course body object true "Course document"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /courses [post]
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	data, err := parseDocument(c)
	if err != nil {
		return err
	}
	course, err := h.service.Create(c.UserContext(), data)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

// UpdateCourse godoc
// @Summary Update a course
// @Description Replaces the given top-level fields and keeps the others
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param course body object true "Fields to replace"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /courses/{id} [put]
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	data, err := parseDocument(c)
	if err != nil {
		return err
	}
	course, err := h.service.Update(c.UserContext(), courseID(c), data)
	if err != nil {
		return err
	}
	return c.JSON(course)
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags courses
// @Param id path string true "Course ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), courseID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func courseID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.ValidatedCourseIDKey).(string); ok {
		return id
	}
	return c.Params("id")
}

func parseDocument(c *fiber.Ctx) (map[string]interface{}, error) {
	var data map[string]interface{}
	if err := c.BodyParser(&data); err != nil || data == nil {
		return nil, domain.ValidationErrors{
			domain.NewInvalidFormatError("body", "課程資料必須是 JSON 物件"),
		}
	}
	return data, nil
}
