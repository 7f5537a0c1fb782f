package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hirehub/hirehub-api/internal/repositories"
)

type ApplicationHandler struct {
	jobPostRepo repositories.JobPostRepository
	appRepo     repositories.JobApplicationRepository
}

func NewApplicationHandler(
	jobPostRepo repositories.JobPostRepository,
	appRepo repositories.JobApplicationRepository,
) *ApplicationHandler {
	return &ApplicationHandler{
		jobPostRepo: jobPostRepo,
		appRepo:     appRepo,
	}
}

// HandleListByJobPost handles GET /applications/job-post/:jobPostId. Only
// the job post's owner may list its applications.
func (h *ApplicationHandler) HandleListByJobPost(c *fiber.Ctx) error {
	jobPostID, err := uuid.Parse(c.Params("jobPostId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid job post ID format.",
		})
	}

	requesterID, err := uuid.Parse(c.Query("requesterId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid requester ID format.",
		})
	}

	jobPost, err := h.jobPostRepo.FindByID(jobPostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Job post not found.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}

	if jobPost.HRID != requesterID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You are not authorized to view these applications.",
		})
	}

	applications, err := h.appRepo.FindByJobPost(jobPostID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"applications": applications,
	})
}
