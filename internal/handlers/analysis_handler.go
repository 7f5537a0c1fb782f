package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hirehub/hirehub-api/internal/llm"
	"hirehub/hirehub-api/internal/models"
	"hirehub/hirehub-api/internal/services"
)

type AnalysisHandler struct {
	analyzer services.CandidateAnalyzer
	batch    services.BatchAnalyzer
	validate *validator.Validate
}

func NewAnalysisHandler(
	analyzer services.CandidateAnalyzer,
	batch services.BatchAnalyzer,
) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer: analyzer,
		batch:    batch,
		validate: validator.New(),
	}
}

// HandleAnalyzeCandidate handles POST /applications/analyze
func (h *AnalysisHandler) HandleAnalyzeCandidate(c *fiber.Ctx) error {
	var req models.AnalyzeCandidateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "All fields are required.",
		})
	}

	result, err := h.analyzer.AnalyzeCandidate(c.Context(), &req)
	if err != nil {
		return analysisErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.AnalyzeCandidateResponse{
		Message:        "Profile analyzed successfully",
		Rating:         result.Rating,
		Summary:        result.Summary,
		Strengths:      result.Strengths,
		Weaknesses:     result.Weaknesses,
		Recommendation: result.Recommendation,
	})
}

// HandleAnalyzeAll handles POST /applications/analyze-all
func (h *AnalysisHandler) HandleAnalyzeAll(c *fiber.Ctx) error {
	var req models.AnalyzeAllRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Job Post ID is required.",
		})
	}

	jobPostID, err := uuid.Parse(req.JobPostID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid job post ID format.",
		})
	}

	requesterID, err := uuid.Parse(req.RequesterID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid requester ID format.",
		})
	}

	report, err := h.batch.AnalyzeAllPending(c.Context(), jobPostID, requesterID)
	if err != nil {
		return analysisErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(report)
}

// analysisErrorResponse maps the analysis error taxonomy onto HTTP statuses.
func analysisErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validationErr.Message,
		})
	}

	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Job post not found.",
		})
	}

	var authErr *services.AuthorizationError
	if errors.As(err, &authErr) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": authErr.Message,
		})
	}

	var emptyErr *services.EmptyResultError
	if errors.As(err, &emptyErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":     "Couldn't able to analyze candidates. Please try again.",
			"error":       "All analysis attempts failed",
			"failedCount": emptyErr.FailedCount,
		})
	}

	var modelErr *llm.ModelError
	var parseErr *services.ParseError
	if errors.As(err, &modelErr) || errors.As(err, &parseErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal Server Error",
	})
}
