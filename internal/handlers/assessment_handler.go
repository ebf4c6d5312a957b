package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skillpath/internal/models"
	"skillpath/internal/repositories"
)

type AssessmentHandler struct {
	repo repositories.AssessmentRepository
}

func NewAssessmentHandler(repo repositories.AssessmentRepository) *AssessmentHandler {
	return &AssessmentHandler{repo: repo}
}

// Handle dispatches POST /skill-assessments on the operation field.
func (h *AssessmentHandler) Handle(c *fiber.Ctx) error {
	var req models.AssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	switch req.Operation {
	case "list":
		return h.list(c)
	case "read":
		return h.read(c, req)
	case "create":
		return h.create(c, req)
	case "update":
		return h.update(c, req)
	case "delete":
		return h.delete(c, req)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing operation",
		})
	}
}

func (h *AssessmentHandler) list(c *fiber.Ctx) error {
	assessments, err := h.repo.Scan()
	if err != nil {
		return err
	}

	// The frontend expects an array, never null.
	items := make([]models.SkillAssessment, 0, len(assessments))
	items = append(items, assessments...)

	return c.JSON(fiber.Map{"Skill-Assessments": items})
}

func (h *AssessmentHandler) read(c *fiber.Ctx, req models.AssessmentRequest) error {
	if req.SkillAssessmentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing SkillAssessmentId",
		})
	}

	assessment, err := h.repo.Get(req.SkillAssessmentID)
	if err != nil {
		return err
	}
	if assessment == nil {
		// Absent reads return an empty object, not a 404. The frontend
		// treats {} as "nothing yet".
		return c.JSON(fiber.Map{})
	}

	return c.JSON(assessment)
}

func (h *AssessmentHandler) create(c *fiber.Ctx, req models.AssessmentRequest) error {
	if req.Employee == "" || req.Skill == "" || req.Current == "" || req.Target == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: Employee, Skill, Current, Target",
		})
	}

	id := req.SkillAssessmentID
	if id == "" {
		id = uuid.New().String()
	}

	assessment := &models.SkillAssessment{
		ID:           id,
		Employee:     req.Employee,
		Skill:        req.Skill,
		CurrentLevel: req.Current,
		TargetLevel:  req.Target,
	}

	if err := h.repo.Put(assessment); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Created", "SkillAssessmentId": id})
}

func (h *AssessmentHandler) update(c *fiber.Ctx, req models.AssessmentRequest) error {
	if req.SkillAssessmentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing SkillAssessmentId",
		})
	}

	// Full overwrite, matching the put-item semantics of the store.
	assessment := &models.SkillAssessment{
		ID:           req.SkillAssessmentID,
		Employee:     req.Employee,
		Skill:        req.Skill,
		CurrentLevel: req.Current,
		TargetLevel:  req.Target,
	}

	if err := h.repo.Put(assessment); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Updated"})
}

func (h *AssessmentHandler) delete(c *fiber.Ctx, req models.AssessmentRequest) error {
	if req.SkillAssessmentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing SkillAssessmentId",
		})
	}

	if err := h.repo.Delete(req.SkillAssessmentID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Deleted"})
}
