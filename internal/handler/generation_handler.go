package handler

import (
	"course-planner/internal/domain"
	"course-planner/internal/dto"
	"course-planner/internal/service"
	"course-planner/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GenerationHandler serves the AI generation endpoints. Every endpoint
// answers 200 with a Result envelope once the request is valid.
type GenerationHandler struct {
	service   service.GenerationService
	validator *validation.Validator
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(svc service.GenerationService) *GenerationHandler {
	return &GenerationHandler{
		service:   svc,
		validator: validation.NewValidator(),
	}
}

// GenerateClassNames godoc
// @Summary Suggest class names
// @Description Returns three short class-name suggestions for a topic and audience
// @Tags generate
// @Accept json
// @Produce json
// @Param request body dto.ClassNamesRequest true "Class name request"
// @Success 200 {object} domain.Result[[]string]
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /generate/class-names [post]
func (h *GenerationHandler) GenerateClassNames(c *fiber.Ctx) error {
	var req dto.ClassNamesRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateClassNamesRequest(req); len(errs) > 0 {
		return errs
	}
	return c.JSON(h.service.GenerateClassNames(c.UserContext(), req.Topic, req.Audience, req.Keywords))
}

// GenerateCurriculum godoc
// @Summary Generate one day of curriculum
// @Tags generate
// @Accept json
// @Produce json
// @Param request body dto.CurriculumRequest true "Curriculum request"
// @Success 200 {object} domain.Result[domain.DayCurriculum]
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /generate/curriculum [post]
func (h *GenerationHandler) GenerateCurriculum(c *fiber.Ctx) error {
	var req dto.CurriculumRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateCurriculumRequest(req); len(errs) > 0 {
		return errs
	}
	return c.JSON(h.service.GenerateDayCurriculum(c.UserContext(), req.Course.ToDomain(), req.Day))
}

// GenerateCourse godoc
// @Summary Generate the curriculum of every course day
// @Description Days are generated in order; the first failing day aborts the request
// @Tags generate
// @Accept json
// @Produce json
// @Param request body dto.CourseRequest true "Course request"
// @Success 200 {object} domain.Result[[]domain.DayCurriculum]
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /generate/course [post]
func (h *GenerationHandler) GenerateCourse(c *fiber.Ctx) error {
	var req dto.CourseRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateCourseRequest(req); len(errs) > 0 {
		return errs
	}
	return c.JSON(h.service.GenerateCourse(c.UserContext(), req.Course.ToDomain()))
}

// GeneratePromotion godoc
// @Summary Generate promotional copy
// @Tags generate
// @Accept json
// @Produce json
// @Param request body dto.PromotionRequest true "Promotion request"
// @Success 200 {object} domain.Result[string]
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /generate/promotion [post]
func (h *GenerationHandler) GeneratePromotion(c *fiber.Ctx) error {
	var req dto.PromotionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidatePromotionRequest(req); len(errs) > 0 {
		return errs
	}
	return c.JSON(h.service.GeneratePromotion(c.UserContext(), service.PromotionRequest{
		Info:       req.Course.ToDomain(),
		Curriculum: req.Curriculum,
		Schedule:   req.Schedule,
		Fee:        req.Fee,
	}))
}

// GenerateInfographic godoc
// @Summary Generate one infographic
// @Description Always succeeds; a placeholder image is returned when generation fails
// @Tags generate
// @Accept json
// @Produce json
// @Param request body dto.InfographicRequest true "Infographic request"
// @Success 200 {object} domain.Result[domain.InfographicResult]
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /generate/infographic [post]
func (h *GenerationHandler) GenerateInfographic(c *fiber.Ctx) error {
	var req dto.InfographicRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateInfographicRequest(req); len(errs) > 0 {
		return errs
	}
	return c.JSON(h.service.GenerateImage(c.UserContext(), service.ImageRequest{
		UnitName:   req.UnitName,
		Objectives: req.Objectives,
		Style:      domain.Style(req.Style),
		Summary:    req.Summary,
		Category:   domain.Category(req.Category),
	}))
}

// GenerateInfographics godoc
// @Summary Generate one infographic per curriculum day
// @Tags generate
// @Accept json
// @Produce json
// @Param request body dto.InfographicsRequest true "Infographics request"
// @Success 200 {object} domain.Result[[]domain.InfographicResult]
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /generate/infographics [post]
func (h *GenerationHandler) GenerateInfographics(c *fiber.Ctx) error {
	var req dto.InfographicsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateInfographicsRequest(req); len(errs) > 0 {
		return errs
	}
	results := h.service.GenerateInfographics(c.UserContext(), req.Course.ToDomain(), req.Curriculum, domain.Style(req.Style))
	return c.JSON(domain.Ok(results))
}
